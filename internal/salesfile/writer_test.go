package salesfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

func TestWriteEnrichedData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "enriched_sales_data.txt")

	enriched := []types.EnrichedTransaction{
		{
			Transaction: types.Transaction{
				TransactionID: "T1", Date: "2024-01-01", ProductID: "P1",
				ProductName: "Widget", Quantity: 5, UnitPrice: 10,
				CustomerID: "C1", Region: "North",
			},
			APIMatch: true, Category: "tools", Brand: "Acme", CatalogPrice: 9.5,
		},
		{
			Transaction: types.Transaction{
				TransactionID: "T2", Date: "2024-01-02", ProductID: "P2",
				ProductName: "Gadget", Quantity: 3, UnitPrice: 20,
				CustomerID: "C2", Region: "South",
			},
		},
	}

	require.NoError(t, WriteEnrichedData(path, enriched))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, enrichedHeader, lines[0])
	assert.Equal(t, "T1|2024-01-01|P1|Widget|5|10.00|C1|North|true|tools|Acme|9.50", lines[1])
	assert.Equal(t, "T2|2024-01-02|P2|Gadget|3|20.00|C2|South|false|||0.00", lines[2])
}

func TestWriteEnrichedDataEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.txt")
	require.NoError(t, WriteEnrichedData(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, enrichedHeader+"\n", string(data))
}
