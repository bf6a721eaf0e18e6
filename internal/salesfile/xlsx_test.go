package salesfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales_data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestIsXLSX(t *testing.T) {
	assert.True(t, IsXLSX("data/sales.xlsx"))
	assert.True(t, IsXLSX("data/sales.XLSX"))
	assert.False(t, IsXLSX("data/sales.txt"))
	assert.False(t, IsXLSX("data/sales"))
}

func TestReadSalesDataXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"TransactionID", "Date", "ProductID", "ProductName", "Quantity", "UnitPrice", "CustomerID", "Region"},
		{"T1", "2024-01-01", "P1", "Widget", 5, 10.00, "C1", "North"},
		{"", "", "", "", "", "", "", ""},
		{"T2", "2024-01-01", "P2", "Gadget", 3, 20.00, "C1", "South"},
	})

	lines, err := ReadSalesDataXLSX(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// The rows become canonical pipe-delimited lines, so the normal parser
	// applies unchanged.
	txs := ParseTransactions(lines)
	require.Len(t, txs, 2)
	assert.Equal(t, "T1", txs[0].TransactionID)
	assert.Equal(t, 5, txs[0].Quantity)
	assert.Equal(t, "South", txs[1].Region)
}

func TestReadSalesDataXLSXMissingFile(t *testing.T) {
	_, err := ReadSalesDataXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
