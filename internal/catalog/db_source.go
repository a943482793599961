package catalog

import (
	"context"

	"souq-store/internal/model"
	"souq-store/internal/repository"

	"github.com/rs/zerolog"
)

// databaseSource is the primary tier: products served straight from
// PostgreSQL with the category slug resolved to its internal ID first.
type databaseSource struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	logger     zerolog.Logger
}

// NewDatabaseSource creates the primary, relational-store-backed source.
func NewDatabaseSource(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	logger zerolog.Logger,
) Source {
	return &databaseSource{
		products:   products,
		categories: categories,
		logger:     logger.With().Str("source", "database").Logger(),
	}
}

// Name identifies the source in logs.
func (s *databaseSource) Name() string {
	return "database"
}

// Fetch resolves the category slug, then lists matching products. A slug
// that resolves to no known category yields a legitimate empty result rather
// than an error.
func (s *databaseSource) Fetch(ctx context.Context, f model.Filter) ([]model.Product, error) {
	opts := repository.ListOptions{
		Search:       f.Search,
		FeaturedOnly: f.Featured,
		Limit:        f.EffectiveLimit(),
	}

	if f.Category != "" {
		category, err := s.categories.GetBySlug(ctx, f.Category)
		if err != nil {
			return nil, err
		}
		if category == nil {
			s.logger.Debug().Str("slug", f.Category).Msg("unknown category slug")
			return []model.Product{}, nil
		}
		opts.CategoryID = category.ID
	}

	return s.products.List(ctx, opts)
}

// FetchByID retrieves a single product from the relational store.
func (s *databaseSource) FetchByID(ctx context.Context, id int64) (*model.Product, error) {
	return s.products.GetByID(ctx, id)
}
