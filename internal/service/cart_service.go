package service

import (
	"context"

	"souq-store/internal/model"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	store    CartStore
	resolver ProductResolver
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store CartStore, resolver ProductResolver, logger zerolog.Logger) CartService {
	return &cartService{
		store:    store,
		resolver: resolver,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// GetCart returns the session's cart.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (model.Cart, error) {
	if sessionID == "" {
		return model.Cart{}, model.ErrSessionRequired
	}
	return s.store.Get(sessionID)
}

// AddItem looks the product up across the catalogue tiers, gates on stock,
// and merges a full product snapshot into the cart. The requested quantity
// is clamped to the stock still available to this session, so the cart can
// never hold more units than the catalogue claims to have.
func (s *cartService) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (model.Cart, error) {
	if sessionID == "" {
		return model.Cart{}, model.ErrSessionRequired
	}
	if quantity < 1 {
		quantity = 1
	}

	product, ok := s.resolver.ResolveProduct(ctx, productID)
	if !ok {
		s.logger.Warn().Int64("product_id", productID).Msg("product not found")
		return model.Cart{}, model.ErrProductNotFound
	}

	if product.Stock <= 0 {
		s.logger.Debug().Int64("product_id", productID).Msg("product out of stock")
		return model.Cart{}, model.ErrOutOfStock
	}

	current, err := s.store.Get(sessionID)
	if err != nil {
		return model.Cart{}, err
	}

	inCart := 0
	if item := current.Find(productID); item != nil {
		inCart = item.Quantity
	}

	available := product.Stock - inCart
	if available <= 0 {
		s.logger.Debug().
			Int64("product_id", productID).
			Int("in_cart", inCart).
			Int("stock", product.Stock).
			Msg("cart already holds all available stock")
		return model.Cart{}, model.ErrInsufficientStock
	}
	if quantity > available {
		quantity = available
	}

	updated, err := s.store.AddItem(sessionID, *product, quantity)
	if err != nil {
		return model.Cart{}, err
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Int64("product_id", productID).
		Int("quantity", quantity).
		Msg("item added to cart")

	return updated, nil
}

// UpdateQuantity sets the quantity for a product already in the cart. The
// store clamps to a minimum of 1 and ignores products not in the cart.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (model.Cart, error) {
	if sessionID == "" {
		return model.Cart{}, model.ErrSessionRequired
	}
	return s.store.UpdateQuantity(sessionID, productID, quantity)
}

// RemoveItem removes a product from the cart; absent products are a no-op.
func (s *cartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (model.Cart, error) {
	if sessionID == "" {
		return model.Cart{}, model.ErrSessionRequired
	}
	return s.store.RemoveItem(sessionID, productID)
}

// ClearCart empties the session's cart.
func (s *cartService) ClearCart(ctx context.Context, sessionID string) (model.Cart, error) {
	if sessionID == "" {
		return model.Cart{}, model.ErrSessionRequired
	}
	return s.store.Clear(sessionID)
}
