// =============================================================================
// Sales Analytics - Validation and Filter Engine
// =============================================================================
//
// This module applies the business rules that decide which parsed records
// participate in analytics and enrichment, and then the optional user
// filters on top of them.
//
// VALIDATION STRATEGY:
//   Validation is a two-stage gate:
//   1. Structural rules, always on. A record failing any rule is discarded
//      permanently and counted once in InvalidCount, regardless of how many
//      rules it violates. No per-rule breakdown is kept.
//   2. Optional filters (region, amount range), applied only to records that
//      passed stage 1. A filtered record is excluded but NOT invalid: it is
//      tracked in filter-specific counters instead. The counters are not
//      exclusive; a record missing both the region and the amount window
//      increments both.
//
// STRUCTURAL RULES:
//   - TransactionID starts with "T"
//   - ProductID starts with "P"
//   - CustomerID starts with "C"
//   - Quantity > 0
//   - UnitPrice > 0
//   - Region non-empty
//
// =============================================================================

package validation

import (
	"sort"
	"strings"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// =============================================================================
// FILTER PARAMETERS
// =============================================================================

// FilterParams are the resolved optional filters for a run. Where they come
// from (flags, interactive prompt) is the caller's concern.
type FilterParams struct {
	// Region keeps only records whose region matches, compared
	// case-insensitively. Empty means no region filter.
	Region string

	// MinAmount excludes records with Amount strictly below it.
	// The boundary itself is kept. Nil means no lower bound.
	MinAmount *float64

	// MaxAmount excludes records with Amount strictly above it.
	// The boundary itself is kept. Nil means no upper bound.
	MaxAmount *float64
}

// None reports whether no filter is active.
func (p FilterParams) None() bool {
	return p.Region == "" && p.MinAmount == nil && p.MaxAmount == nil
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summary reports how the input set was partitioned. The filter counters
// apply to the structurally valid subset only and are not exclusive, so the
// counts are not required to add up to TotalInput.
type Summary struct {
	TotalInput       int
	InvalidCount     int
	FilteredByRegion int
	FilteredByAmount int
	ValidCount       int
}

// =============================================================================
// VALIDATE AND FILTER
// =============================================================================

// ValidateAndFilter applies the structural rules and then the optional
// filters to the parsed transactions. The input is not mutated; the returned
// slice preserves input order.
func ValidateAndFilter(transactions []types.Transaction, params FilterParams) ([]types.Transaction, Summary) {
	valid := make([]types.Transaction, 0, len(transactions))
	summary := Summary{TotalInput: len(transactions)}

	for _, t := range transactions {
		if isInvalid(t) {
			summary.InvalidCount++
			continue
		}

		excluded := false

		if params.Region != "" && !strings.EqualFold(t.Region, params.Region) {
			summary.FilteredByRegion++
			excluded = true
		}

		amount := t.Amount()
		if (params.MinAmount != nil && amount < *params.MinAmount) ||
			(params.MaxAmount != nil && amount > *params.MaxAmount) {
			summary.FilteredByAmount++
			excluded = true
		}

		if excluded {
			continue
		}

		valid = append(valid, t)
	}

	summary.ValidCount = len(valid)
	return valid, summary
}

// isInvalid evaluates all structural rules. The rules are independent; a
// record violating several still counts as one invalid record, so there is
// no need to short-circuit.
func isInvalid(t types.Transaction) bool {
	invalid := false

	if !strings.HasPrefix(t.TransactionID, "T") {
		invalid = true
	}
	if !strings.HasPrefix(t.ProductID, "P") {
		invalid = true
	}
	if !strings.HasPrefix(t.CustomerID, "C") {
		invalid = true
	}
	if t.Quantity <= 0 {
		invalid = true
	}
	if t.UnitPrice <= 0 {
		invalid = true
	}
	if t.Region == "" {
		invalid = true
	}

	return invalid
}

// =============================================================================
// FILTER GUIDANCE
// =============================================================================

// Hints describes the structurally valid subset so a user can choose filter
// parameters. It is informational only and feeds the interactive prompt.
type Hints struct {
	// Regions is the sorted set of distinct regions present.
	Regions []string

	// MinAmount and MaxAmount bound the observed amounts. Both are zero
	// when no structurally valid record exists.
	MinAmount float64
	MaxAmount float64
}

// FilterHints computes guidance values from the parsed transactions,
// considering only records that pass the structural rules.
func FilterHints(transactions []types.Transaction) Hints {
	hints := Hints{}
	seen := make(map[string]struct{})
	first := true

	for _, t := range transactions {
		if isInvalid(t) {
			continue
		}

		if _, ok := seen[t.Region]; !ok {
			seen[t.Region] = struct{}{}
			hints.Regions = append(hints.Regions, t.Region)
		}

		amount := t.Amount()
		if first {
			hints.MinAmount, hints.MaxAmount = amount, amount
			first = false
			continue
		}
		if amount < hints.MinAmount {
			hints.MinAmount = amount
		}
		if amount > hints.MaxAmount {
			hints.MaxAmount = amount
		}
	}

	sort.Strings(hints.Regions)
	return hints
}
