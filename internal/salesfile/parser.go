// =============================================================================
// Sales Analytics - Transaction Parser
// =============================================================================
//
// This module turns raw pipe-delimited lines into Transaction records. It is
// deliberately tolerant: the legacy exports contain truncated rows, embedded
// thousands separators in Quantity, and currency noise in UnitPrice. A line
// that cannot be parsed is dropped and processing continues; nothing here is
// fatal for the run.
//
// PARSING RULES:
//   - A line must split into exactly 8 fields on '|'; any other field count
//     means the line is skipped.
//   - ProductName: comma plus optional whitespace collapses to one space.
//   - Quantity: everything except digits and '-' is stripped before the
//     integer conversion, so "1,200" parses as 1200.
//   - UnitPrice: everything except digits, '.' and '-' is stripped before
//     the float conversion.
//   - A failed numeric conversion drops the whole row, never part of it.
//
// =============================================================================

package salesfile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// fieldCount is the exact number of pipe-separated fields per record:
// TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
const fieldCount = 8

var (
	commaRun     = regexp.MustCompile(`,\s*`)
	nonQuantity  = regexp.MustCompile(`[^0-9-]`)
	nonUnitPrice = regexp.MustCompile(`[^0-9.-]`)
)

// ParseTransactions parses raw data lines into Transaction records.
// Malformed lines are skipped silently; the output preserves input order.
func ParseTransactions(lines []string) []types.Transaction {
	transactions := make([]types.Transaction, 0, len(lines))

	for _, line := range lines {
		tx, ok := parseLine(line)
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}

	return transactions
}

// parseLine parses a single record. The second return value is false when
// the line has the wrong field count or a numeric field fails to convert.
func parseLine(line string) (types.Transaction, bool) {
	fields := strings.Split(line, "|")
	if len(fields) != fieldCount {
		return types.Transaction{}, false
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	quantity, ok := parseQuantity(fields[4])
	if !ok {
		return types.Transaction{}, false
	}

	unitPrice, ok := parseUnitPrice(fields[5])
	if !ok {
		return types.Transaction{}, false
	}

	return types.Transaction{
		TransactionID: fields[0],
		Date:          fields[1],
		ProductID:     fields[2],
		ProductName:   normalizeProductName(fields[3]),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    fields[6],
		Region:        fields[7],
	}, true
}

// normalizeProductName collapses comma-plus-whitespace runs to single spaces.
// Product names arrive with embedded commas ("Widget, Large") because the
// upstream export reuses a CSV column.
func normalizeProductName(name string) string {
	return strings.TrimSpace(commaRun.ReplaceAllString(name, " "))
}

// parseQuantity converts a quantity field, tolerating thousands separators.
// Only digits and minus signs survive the cleanup; strconv then rejects
// anything that still is not an integer (including misplaced minus signs).
func parseQuantity(field string) (int, bool) {
	cleaned := nonQuantity.ReplaceAllString(field, "")
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseUnitPrice converts a unit price field, tolerating currency symbols
// and separators. Digits, '.' and '-' survive the cleanup.
func parseUnitPrice(field string) (float64, bool) {
	cleaned := nonUnitPrice.ReplaceAllString(field, "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
