// =============================================================================
// Sales Analytics - Enriched Dataset Writer
// =============================================================================
//
// Persists the enriched transaction set as a flat pipe-delimited file that
// mirrors the input schema plus the enrichment columns. The file is the
// hand-off format for downstream consumers, so the column order is fixed.
//
// =============================================================================

package salesfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// enrichedHeader is the fixed column header of the enriched output file.
const enrichedHeader = "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region|API_Match|Category|Brand|CatalogPrice"

// WriteEnrichedData writes the enriched transactions to path, creating the
// parent directory if needed. An existing file is overwritten; the enriched
// dataset is derived data and is rebuilt on every run.
func WriteEnrichedData(path string, enriched []types.EnrichedTransaction) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create enriched data file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, enrichedHeader)

	for _, e := range enriched {
		fmt.Fprintf(w, "%s|%s|%s|%s|%d|%s|%s|%s|%t|%s|%s|%s\n",
			e.TransactionID,
			e.Date,
			e.ProductID,
			e.ProductName,
			e.Quantity,
			strconv.FormatFloat(e.UnitPrice, 'f', 2, 64),
			e.CustomerID,
			e.Region,
			e.APIMatch,
			e.Category,
			e.Brand,
			strconv.FormatFloat(e.CatalogPrice, 'f', 2, 64),
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write enriched data file: %w", err)
	}
	return nil
}
