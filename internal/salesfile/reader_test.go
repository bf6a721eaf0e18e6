package salesfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales_data.txt")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestReadSalesDataDropsHeaderAndBlanks(t *testing.T) {
	path := writeInput(t, []byte(
		"TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region\n"+
			"\n"+
			"T1|2024-01-01|P1|Widget|5|10.00|C1|North\n"+
			"   \n"+
			"T2|2024-01-01|P2|Gadget|3|20.00|C1|South\n"))

	lines, err := ReadSalesData(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "T1|2024-01-01|P1|Widget|5|10.00|C1|North", lines[0])
	assert.Equal(t, "T2|2024-01-01|P2|Gadget|3|20.00|C1|South", lines[1])
}

func TestReadSalesDataLatin1Fallback(t *testing.T) {
	// "Región" encoded in Latin-1: 0xF3 is not valid UTF-8, so the reader
	// must fall back to the next encoding in the list.
	data := []byte("header\nT1|2024-01-01|P1|Widget|5|10.00|C1|Regi")
	data = append(data, 0xF3)
	data = append(data, []byte("n\n")...)

	lines, err := ReadSalesData(writeInput(t, data))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Región")
}

func TestReadSalesDataMissingFile(t *testing.T) {
	_, err := ReadSalesData(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestReadSalesDataEmptyFile(t *testing.T) {
	lines, err := ReadSalesData(writeInput(t, nil))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadSalesDataHeaderOnly(t *testing.T) {
	lines, err := ReadSalesData(writeInput(t, []byte("TransactionID|Date\n")))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadSalesDataCRLF(t *testing.T) {
	path := writeInput(t, []byte("header\r\nT1|2024-01-01|P1|Widget|5|10.00|C1|North\r\n"))

	lines, err := ReadSalesData(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "T1|2024-01-01|P1|Widget|5|10.00|C1|North", lines[0])
}
