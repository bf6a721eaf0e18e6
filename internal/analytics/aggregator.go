// =============================================================================
// Sales Analytics - Aggregation Module
// =============================================================================
//
// This module computes every aggregate view of the valid transaction set:
// revenue totals, region breakdowns, product rankings, per-customer
// summaries, and daily trend statistics.
//
// DESIGN:
//   - Every function is pure: it reads the transaction slice and never
//     mutates it. Aggregates are recomputed per run and never persisted.
//   - Grouping is one accumulation pass over the ordered input. Each group
//     keeps an accumulator struct; a side slice remembers first-encounter
//     order so that sorting ties stay deterministic.
//   - Accumulation runs on unrounded float64 values. Rounding to two
//     decimals happens once, at the point a value leaves for reporting,
//     so rounding error never compounds.
//
// =============================================================================

package analytics

import (
	"math"
	"sort"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// Defaults for the ranking functions, overridable via configuration.
const (
	DefaultTopN         = 5
	DefaultLowThreshold = 10
)

// Round2 rounds a monetary value to two decimal places. Used at reporting
// boundaries only; intermediate sums stay unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// =============================================================================
// TOTAL REVENUE
// =============================================================================

// TotalRevenue returns the summed Amount over all records, rounded to two
// decimal places.
func TotalRevenue(transactions []types.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		total += t.Amount()
	}
	return Round2(total)
}

// =============================================================================
// REGION-WISE SALES
// =============================================================================

// RegionStat is one region's share of the run.
type RegionStat struct {
	Region     string
	TotalSales float64
	Percentage float64
	Count      int
}

// RegionWiseSales groups records by region and returns per-region totals,
// record counts, and the percentage of the grand total, ordered by total
// sales descending. Percentages are 0 when the grand total is 0.
func RegionWiseSales(transactions []types.Transaction) []RegionStat {
	type acc struct {
		sales float64
		count int
	}

	groups := make(map[string]*acc)
	var order []string

	for _, t := range transactions {
		g, ok := groups[t.Region]
		if !ok {
			g = &acc{}
			groups[t.Region] = g
			order = append(order, t.Region)
		}
		g.sales += t.Amount()
		g.count++
	}

	var grandTotal float64
	for _, g := range groups {
		grandTotal += g.sales
	}

	stats := make([]RegionStat, 0, len(order))
	for _, region := range order {
		g := groups[region]
		percentage := 0.0
		if grandTotal > 0 {
			percentage = Round2(g.sales / grandTotal * 100)
		}
		stats = append(stats, RegionStat{
			Region:     region,
			TotalSales: Round2(g.sales),
			Percentage: percentage,
			Count:      g.count,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales > stats[j].TotalSales
	})
	return stats
}

// =============================================================================
// PRODUCT RANKINGS
// =============================================================================

// ProductStat is one product's aggregate position.
type ProductStat struct {
	Name     string
	Quantity int
	Revenue  float64
}

// groupByProduct accumulates quantity and revenue per product name,
// preserving first-encounter order for stable tie-breaking.
func groupByProduct(transactions []types.Transaction) []ProductStat {
	type acc struct {
		qty     int
		revenue float64
	}

	groups := make(map[string]*acc)
	var order []string

	for _, t := range transactions {
		g, ok := groups[t.ProductName]
		if !ok {
			g = &acc{}
			groups[t.ProductName] = g
			order = append(order, t.ProductName)
		}
		g.qty += t.Quantity
		g.revenue += t.Amount()
	}

	stats := make([]ProductStat, 0, len(order))
	for _, name := range order {
		g := groups[name]
		stats = append(stats, ProductStat{
			Name:     name,
			Quantity: g.qty,
			Revenue:  Round2(g.revenue),
		})
	}
	return stats
}

// TopSellingProducts returns the first n products ranked by summed quantity
// descending. Ties keep the grouping-encounter order.
func TopSellingProducts(transactions []types.Transaction, n int) []ProductStat {
	if n <= 0 {
		n = DefaultTopN
	}

	stats := groupByProduct(transactions)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Quantity > stats[j].Quantity
	})

	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// LowPerformingProducts returns products whose summed quantity is strictly
// below threshold, ordered ascending by quantity.
func LowPerformingProducts(transactions []types.Transaction, threshold int) []ProductStat {
	if threshold <= 0 {
		threshold = DefaultLowThreshold
	}

	var low []ProductStat
	for _, s := range groupByProduct(transactions) {
		if s.Quantity < threshold {
			low = append(low, s)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	return low
}

// =============================================================================
// CUSTOMER ANALYSIS
// =============================================================================

// CustomerStat summarizes one customer's purchasing.
type CustomerStat struct {
	CustomerID    string
	TotalSpent    float64
	PurchaseCount int
	AvgOrderValue float64

	// Products is the distinct set of product names bought, sorted lexically.
	Products []string
}

// CustomerAnalysis groups records by customer and returns spend totals,
// purchase counts, average order values, and the distinct products bought,
// ordered by total spent descending.
func CustomerAnalysis(transactions []types.Transaction) []CustomerStat {
	type acc struct {
		spent    float64
		count    int
		products map[string]struct{}
	}

	groups := make(map[string]*acc)
	var order []string

	for _, t := range transactions {
		g, ok := groups[t.CustomerID]
		if !ok {
			g = &acc{products: make(map[string]struct{})}
			groups[t.CustomerID] = g
			order = append(order, t.CustomerID)
		}
		g.spent += t.Amount()
		g.count++
		g.products[t.ProductName] = struct{}{}
	}

	stats := make([]CustomerStat, 0, len(order))
	for _, id := range order {
		g := groups[id]

		products := make([]string, 0, len(g.products))
		for name := range g.products {
			products = append(products, name)
		}
		sort.Strings(products)

		avg := 0.0
		if g.count > 0 {
			avg = Round2(g.spent / float64(g.count))
		}

		stats = append(stats, CustomerStat{
			CustomerID:    id,
			TotalSpent:    Round2(g.spent),
			PurchaseCount: g.count,
			AvgOrderValue: avg,
			Products:      products,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent > stats[j].TotalSpent
	})
	return stats
}

// =============================================================================
// DAILY TREND AND PEAK DAY
// =============================================================================

// DailyStat is one day's aggregate activity.
type DailyStat struct {
	Date             string
	Revenue          float64
	TransactionCount int
	UniqueCustomers  int
}

// DailySalesTrend groups records by date and returns revenue, transaction
// counts, and distinct customer counts, ordered by date ascending. Dates are
// ISO-like strings, so lexical order is chronological order.
func DailySalesTrend(transactions []types.Transaction) []DailyStat {
	type acc struct {
		revenue   float64
		count     int
		customers map[string]struct{}
	}

	groups := make(map[string]*acc)

	for _, t := range transactions {
		g, ok := groups[t.Date]
		if !ok {
			g = &acc{customers: make(map[string]struct{})}
			groups[t.Date] = g
		}
		g.revenue += t.Amount()
		g.count++
		g.customers[t.CustomerID] = struct{}{}
	}

	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	stats := make([]DailyStat, 0, len(dates))
	for _, date := range dates {
		g := groups[date]
		stats = append(stats, DailyStat{
			Date:             date,
			Revenue:          Round2(g.revenue),
			TransactionCount: g.count,
			UniqueCustomers:  len(g.customers),
		})
	}
	return stats
}

// PeakDay is the single highest-revenue date of the run.
type PeakDay struct {
	Date    string
	Revenue float64
	Count   int
}

// NoDataDate is the sentinel date returned when there are no records.
const NoDataDate = "No data"

// FindPeakSalesDay returns the date with the maximum summed revenue. With no
// records it returns the documented sentinel ("No data", 0, 0). The scan
// compares unrounded daily sums and rounds only the winner; revenue ties
// resolve to the lexically earliest date.
func FindPeakSalesDay(transactions []types.Transaction) PeakDay {
	type acc struct {
		revenue float64
		count   int
	}

	groups := make(map[string]*acc)
	for _, t := range transactions {
		g, ok := groups[t.Date]
		if !ok {
			g = &acc{}
			groups[t.Date] = g
		}
		g.revenue += t.Amount()
		g.count++
	}

	if len(groups) == 0 {
		return PeakDay{Date: NoDataDate, Revenue: 0, Count: 0}
	}

	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	peakDate := dates[0]
	for _, date := range dates[1:] {
		if groups[date].revenue > groups[peakDate].revenue {
			peakDate = date
		}
	}

	g := groups[peakDate]
	return PeakDay{Date: peakDate, Revenue: Round2(g.revenue), Count: g.count}
}
