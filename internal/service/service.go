package service

import (
	"context"

	"souq-store/internal/model"

	"github.com/google/uuid"
)

// ProductResolver answers catalogue queries with best-effort availability.
// Implemented by catalog.Resolver.
type ProductResolver interface {
	// Resolve returns products matching the filter; never errors.
	Resolve(ctx context.Context, f model.Filter) []model.Product

	// ResolveProduct returns a single product by ID across the tiers.
	ResolveProduct(ctx context.Context, id int64) (*model.Product, bool)

	// ResolveCategories lists categories with sample fallback.
	ResolveCategories(ctx context.Context) []model.Category
}

// CartStore is the durable per-session cart container.
// Implemented by cart.Store.
type CartStore interface {
	Get(sessionID string) (model.Cart, error)
	AddItem(sessionID string, product model.Product, quantity int) (model.Cart, error)
	RemoveItem(sessionID string, productID int64) (model.Cart, error)
	UpdateQuantity(sessionID string, productID int64, quantity int) (model.Cart, error)
	Clear(sessionID string) (model.Cart, error)
}

// CartService defines cart operations with catalogue-aware stock gating.
type CartService interface {
	// GetCart returns the session's cart.
	GetCart(ctx context.Context, sessionID string) (model.Cart, error)

	// AddItem adds a product to the cart, clamping the quantity to the
	// stock still available to this session.
	AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (model.Cart, error)

	// UpdateQuantity sets the quantity for a product already in the cart.
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (model.Cart, error)

	// RemoveItem removes a product from the cart.
	RemoveItem(ctx context.Context, sessionID string, productID int64) (model.Cart, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, sessionID string) (model.Cart, error)
}

// CheckoutService turns a cart into a persisted order.
type CheckoutService interface {
	// Checkout creates an order from the session's cart and clears the
	// cart on success.
	Checkout(ctx context.Context, sessionID string) (*model.OrderResponse, error)

	// GetOrder retrieves an order by its ID with all line items.
	GetOrder(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)
}
