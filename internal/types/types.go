// =============================================================================
// Sales Analytics - Shared Types
// =============================================================================
//
// This package contains shared domain types used across multiple modules to
// avoid import cycles. Types defined here are used by:
//   - salesfile (parsing and persistence)
//   - validation
//   - analytics
//   - catalog (enrichment)
//   - report
//
// =============================================================================

package types

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// Transaction represents a single parsed sales record, before validation.
// All string fields are whitespace-trimmed by the parser. Quantity and
// UnitPrice may still be non-positive at this stage; validation decides
// whether the record survives.
type Transaction struct {
	// TransactionID is the record identifier. Valid records start with "T".
	TransactionID string

	// Date is the transaction date as an ISO-like string (YYYY-MM-DD).
	// Dates are kept as strings; lexical order matches chronological order.
	Date string

	// ProductID is the product identifier. Valid records start with "P".
	ProductID string

	// ProductName is the product display name. Comma sequences from the
	// source file are collapsed to single spaces by the parser.
	ProductName string

	// Quantity is the number of units sold. Must be positive after validation.
	Quantity int

	// UnitPrice is the per-unit sale price. Must be positive after validation.
	UnitPrice float64

	// CustomerID is the customer identifier. Valid records start with "C".
	CustomerID string

	// Region is the sales region. Must be non-empty after validation.
	Region string
}

// Amount is the total value of the transaction (Quantity x UnitPrice).
// It is derived on demand and never stored.
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// =============================================================================
// ENRICHED TRANSACTION
// =============================================================================

// EnrichedTransaction is a Transaction annotated with product catalog data.
// APIMatch reports whether the product was found in the external catalog;
// the catalog fields are zero-valued when it was not.
type EnrichedTransaction struct {
	Transaction

	// APIMatch is true when ProductName was found in the catalog mapping.
	APIMatch bool

	// Category is the catalog category of the matched product.
	Category string

	// Brand is the catalog brand of the matched product.
	Brand string

	// CatalogPrice is the catalog list price of the matched product.
	CatalogPrice float64
}
