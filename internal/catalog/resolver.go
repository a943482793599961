package catalog

import (
	"context"

	"souq-store/internal/model"
	"souq-store/internal/repository"

	"github.com/rs/zerolog"
)

// Resolver answers product queries with best-effort availability. It walks
// the configured sources in tier order and falls back to the static sample
// catalogue when every tier is unavailable, so callers always receive a
// presentable result and never an error.
//
// Fall-through policy: a tier is skipped only when it *fails*. A legitimate
// empty answer to a narrow filter is final. The one exception is a broad,
// unfiltered query coming back empty, which is read as "tier unconfigured" —
// a live catalogue is never empty.
type Resolver struct {
	sources    []Source
	samples    *SampleCatalog
	categories repository.CategoryRepository // optional, nil when the DB tier is down
	logger     zerolog.Logger
}

// NewResolver creates a resolver. Sources are consulted in the given order;
// samples is the always-available final tier. categories may be nil.
func NewResolver(samples *SampleCatalog, categories repository.CategoryRepository, logger zerolog.Logger, sources ...Source) *Resolver {
	return &Resolver{
		sources:    sources,
		samples:    samples,
		categories: categories,
		logger:     logger.With().Str("component", "catalog-resolver").Logger(),
	}
}

// Resolve returns products matching the filter. The result always carries
// normalised prices, a resolved category display name, and a usable image
// URL regardless of which tier produced it.
func (r *Resolver) Resolve(ctx context.Context, f model.Filter) []model.Product {
	for _, src := range r.sources {
		res := r.attempt(ctx, src, f)
		switch res.outcome {
		case OutcomeSuccess:
			r.logger.Debug().
				Str("source", src.Name()).
				Int("count", len(res.products)).
				Msg("products resolved")
			return r.finalise(res.products, f)

		case OutcomeEmpty:
			if !f.IsBroad() {
				// Zero matches for a narrow filter is a valid final
				// answer, not a reason to consult the next tier.
				r.logger.Debug().
					Str("source", src.Name()).
					Msg("narrow query matched no products")
				return []model.Product{}
			}
			r.logger.Warn().
				Str("source", src.Name()).
				Msg("broad query returned no products, trying next tier")

		case OutcomeFailed:
			r.logger.Warn().
				Err(res.err).
				Str("source", src.Name()).
				Msg("source failed, trying next tier")
		}
	}

	r.logger.Info().Msg("serving products from sample catalogue")
	return r.finalise(r.samples.Filter(f), f)
}

// ResolveProduct returns a single product by ID, consulting the tiers in
// order. The boolean reports whether any tier knew the product.
func (r *Resolver) ResolveProduct(ctx context.Context, id int64) (*model.Product, bool) {
	for _, src := range r.sources {
		p, err := src.FetchByID(ctx, id)
		if err != nil {
			r.logger.Warn().
				Err(err).
				Str("source", src.Name()).
				Int64("product_id", id).
				Msg("source failed for product lookup, trying next tier")
			continue
		}
		if p != nil {
			p.Normalise()
			return p, true
		}
		// Known-absent at a healthy tier is a final answer.
		return nil, false
	}

	p, ok := r.samples.Product(id)
	if !ok {
		return nil, false
	}
	p.Normalise()
	return p, true
}

// ResolveCategories lists categories from the primary store, falling back to
// the sample catalogue when the store is down or unconfigured.
func (r *Resolver) ResolveCategories(ctx context.Context) []model.Category {
	if r.categories != nil {
		categories, err := r.categories.List(ctx)
		if err == nil && len(categories) > 0 {
			return categories
		}
		if err != nil {
			r.logger.Warn().Err(err).Msg("category listing failed, serving samples")
		}
	}
	return r.samples.Categories()
}

// attempt runs a single tier and classifies its result.
func (r *Resolver) attempt(ctx context.Context, src Source, f model.Filter) tierResult {
	products, err := src.Fetch(ctx, f)
	if err != nil {
		return tierResult{outcome: OutcomeFailed, err: err}
	}
	if len(products) == 0 {
		return tierResult{outcome: OutcomeEmpty}
	}
	return tierResult{products: products, outcome: OutcomeSuccess}
}

// finalise normalises every product and applies the requested localisation.
func (r *Resolver) finalise(products []model.Product, f model.Filter) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	for i := range out {
		out[i].Normalise()
		if f.Lang == "ar" {
			out[i].Name = out[i].DisplayName("ar")
			out[i].Description = out[i].DisplayDescription("ar")
		}
	}
	return out
}
