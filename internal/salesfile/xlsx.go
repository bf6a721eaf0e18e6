// =============================================================================
// Sales Analytics - XLSX Input Support
// =============================================================================
//
// Some teams hand over the same sales export as a workbook instead of the
// pipe-delimited text file. This module reads the first sheet of an .xlsx
// file and converts each row into the canonical pipe-delimited line shape,
// so the downstream parser and its tolerance rules apply unchanged.
//
// =============================================================================

package salesfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// IsXLSX reports whether the input path should be read as a workbook.
func IsXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// ReadSalesDataXLSX reads the first sheet of a workbook and returns its data
// rows re-encoded as pipe-delimited lines. The first row is treated as the
// header and dropped, mirroring the text reader. Rows whose cells are all
// blank are dropped as well.
func ReadSalesDataXLSX(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	var lines []string
	for i, row := range rows {
		if i == 0 || isBlankRow(row) {
			continue
		}
		lines = append(lines, strings.Join(row, "|"))
	}

	return lines, nil
}

// isBlankRow reports whether every cell in the row is empty or whitespace.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
