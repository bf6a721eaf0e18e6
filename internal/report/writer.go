// =============================================================================
// Sales Analytics - Report Writer
// =============================================================================
//
// Generates the plain-text analytics report. The report is a consumer of the
// aggregation outputs; nothing here recomputes business numbers beyond the
// overall summary figures that only exist at the report level (average order
// value, date range, enrichment success rate).
//
// REPORT SECTIONS (fixed order):
//   1. Banner with generation timestamp and record count
//   2. Overall summary: total revenue, transaction count, average order
//      value, date range
//   3. Region-wise performance table
//   4. Top-N products by quantity table
//   5. API enrichment summary with up to 10 unmatched product names
//
// =============================================================================

package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ginjaninja78/sales-analytics/internal/analytics"
	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// maxUnmatchedListed caps the unmatched-product list; the remainder is
// reported as an overflow count.
const maxUnmatchedListed = 10

// currency is the symbol prefixed to monetary values in the report.
const currency = "₹"

// money formats monetary values with locale thousands separators.
var money = message.NewPrinter(language.English)

// Writer renders the analytics report.
type Writer struct {
	// TopN is the size of the product ranking table.
	TopN int

	// Now supplies the banner timestamp. Tests override it; a nil Now
	// means time.Now.
	Now func() time.Time
}

// NewWriter returns a report writer with the given product ranking size.
func NewWriter(topN int) *Writer {
	if topN <= 0 {
		topN = analytics.DefaultTopN
	}
	return &Writer{TopN: topN}
}

// Write renders the report for the valid and enriched transaction sets and
// writes it to path, creating the parent directory if needed.
func (w *Writer) Write(path string, valid []types.Transaction, enriched []types.EnrichedTransaction) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	content := w.render(valid, enriched)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// render builds the full report text.
func (w *Writer) render(valid []types.Transaction, enriched []types.EnrichedTransaction) string {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	var b strings.Builder

	// =========================================================================
	// SECTION 1: BANNER
	// =========================================================================
	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	b.WriteString("           SALES ANALYTICS REPORT\n")
	fmt.Fprintf(&b, "     Generated: %s\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "     Records Processed: %d\n", len(valid))
	b.WriteString(rule + "\n\n")

	// =========================================================================
	// SECTION 2: OVERALL SUMMARY
	// =========================================================================
	totalRevenue := analytics.TotalRevenue(valid)
	avgOrder := 0.0
	if len(valid) > 0 {
		avgOrder = analytics.Round2(totalRevenue / float64(len(valid)))
	}
	dateMin, dateMax := dateRange(valid)

	b.WriteString("OVERALL SUMMARY\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Total Revenue          : %s%s\n", currency, money.Sprintf("%.2f", totalRevenue))
	fmt.Fprintf(&b, "Total Transactions     : %s\n", money.Sprintf("%d", len(valid)))
	fmt.Fprintf(&b, "Average Order Value    : %s%s\n", currency, money.Sprintf("%.2f", avgOrder))
	fmt.Fprintf(&b, "Date Range             : %s to %s\n\n", dateMin, dateMax)

	// =========================================================================
	// SECTION 3: REGION-WISE PERFORMANCE
	// =========================================================================
	b.WriteString("REGION-WISE PERFORMANCE\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "%-12s %15s %12s %12s\n", "Region", "Sales Amount", "% of Total", "Transactions")
	b.WriteString(strings.Repeat("-", 55) + "\n")
	for _, r := range analytics.RegionWiseSales(valid) {
		fmt.Fprintf(&b, "%-12s %s%14s %11.2f%% %12d\n",
			r.Region, currency, money.Sprintf("%.2f", r.TotalSales), r.Percentage, r.Count)
	}
	b.WriteString("\n")

	// =========================================================================
	// SECTION 4: TOP PRODUCTS BY QUANTITY
	// =========================================================================
	fmt.Fprintf(&b, "TOP %d PRODUCTS BY QUANTITY SOLD\n", w.TopN)
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "%-6s %-28s %10s %15s\n", "Rank", "Product Name", "Qty Sold", "Revenue")
	b.WriteString(strings.Repeat("-", 65) + "\n")
	for i, p := range analytics.TopSellingProducts(valid, w.TopN) {
		fmt.Fprintf(&b, "%-6d %-28s %10s %s%14s\n",
			i+1, p.Name, money.Sprintf("%d", p.Quantity), currency, money.Sprintf("%.2f", p.Revenue))
	}
	b.WriteString("\n")

	// =========================================================================
	// SECTION 5: API ENRICHMENT SUMMARY
	// =========================================================================
	matched := 0
	unmatchedSet := make(map[string]struct{})
	for _, e := range enriched {
		if e.APIMatch {
			matched++
		} else {
			unmatchedSet[e.ProductName] = struct{}{}
		}
	}
	successRate := 0.0
	if len(enriched) > 0 {
		// One decimal place, matching the success-rate line format.
		successRate = math.Round(float64(matched)/float64(len(enriched))*1000) / 10
	}

	b.WriteString("API ENRICHMENT SUMMARY\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Total processed transactions : %d\n", len(enriched))
	fmt.Fprintf(&b, "Successfully enriched        : %d\n", matched)
	fmt.Fprintf(&b, "Success rate                 : %.1f%%\n", successRate)

	if len(unmatchedSet) > 0 {
		unmatched := make([]string, 0, len(unmatchedSet))
		for name := range unmatchedSet {
			unmatched = append(unmatched, name)
		}
		sort.Strings(unmatched)

		b.WriteString("\nProducts not found in API:\n")
		listed := unmatched
		if len(listed) > maxUnmatchedListed {
			listed = listed[:maxUnmatchedListed]
		}
		for _, name := range listed {
			fmt.Fprintf(&b, "  • %s\n", name)
		}
		if overflow := len(unmatched) - maxUnmatchedListed; overflow > 0 {
			fmt.Fprintf(&b, "  ... (+%d more)\n", overflow)
		}
	}

	return b.String()
}

// dateRange returns the lexical min and max dates, or "N/A" placeholders
// when no record carries a date.
func dateRange(transactions []types.Transaction) (string, string) {
	min, max := "", ""
	for _, t := range transactions {
		if t.Date == "" {
			continue
		}
		if min == "" || t.Date < min {
			min = t.Date
		}
		if t.Date > max {
			max = t.Date
		}
	}
	if min == "" {
		return "N/A", "N/A"
	}
	return min, max
}
