package catalog

import (
	"context"

	"souq-store/internal/model"
)

// Source is one tier of the product fallback chain.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Fetch retrieves products matching the filter. A nil error with an
	// empty slice is a legitimate empty result, distinct from failure.
	Fetch(ctx context.Context, f model.Filter) ([]model.Product, error)

	// FetchByID retrieves a single product. Returns (nil, nil) when the
	// product does not exist at this source.
	FetchByID(ctx context.Context, id int64) (*model.Product, error)
}

// Outcome classifies a tier attempt. The advance-to-next-tier decision is an
// explicit predicate on this value rather than an implicit error/length check.
type Outcome int

const (
	// OutcomeSuccess means the tier returned at least one product.
	OutcomeSuccess Outcome = iota

	// OutcomeEmpty means the tier answered with zero matching products.
	OutcomeEmpty

	// OutcomeFailed means the tier itself failed (connection error,
	// malformed response) and the next tier should be consulted.
	OutcomeFailed
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// tierResult is the tagged result of one tier attempt.
type tierResult struct {
	products []model.Product
	outcome  Outcome
	err      error
}
