// =============================================================================
// Sales Analytics - Enrichment
// =============================================================================
//
// Joins the valid transaction set against the fetched catalog. Matching is
// by normalized product name: the legacy sales export does not carry the
// catalog's numeric product IDs, only names.
//
// =============================================================================

package catalog

import (
	"strings"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// Mapping is a lookup from normalized product name to catalog entry.
type Mapping map[string]Product

// BuildProductMapping indexes the fetched products by normalized title.
// When two products normalize to the same key the first one wins.
func BuildProductMapping(products []Product) Mapping {
	mapping := make(Mapping, len(products))
	for _, p := range products {
		key := normalizeName(p.Title)
		if key == "" {
			continue
		}
		if _, exists := mapping[key]; !exists {
			mapping[key] = p
		}
	}
	return mapping
}

// Enrich annotates every valid transaction with catalog attributes. Every
// input record appears in the output exactly once, in order; APIMatch is
// false for products absent from the mapping.
func Enrich(transactions []types.Transaction, mapping Mapping) []types.EnrichedTransaction {
	enriched := make([]types.EnrichedTransaction, 0, len(transactions))

	for _, t := range transactions {
		e := types.EnrichedTransaction{Transaction: t}
		if p, ok := mapping[normalizeName(t.ProductName)]; ok {
			e.APIMatch = true
			e.Category = p.Category
			e.Brand = p.Brand
			e.CatalogPrice = p.Price
		}
		enriched = append(enriched, e)
	}

	return enriched
}

// MatchCount returns how many enriched records carry a catalog match.
func MatchCount(enriched []types.EnrichedTransaction) int {
	count := 0
	for _, e := range enriched {
		if e.APIMatch {
			count++
		}
	}
	return count
}

// normalizeName canonicalizes a product name for matching.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
