package repository

import (
	"context"

	"souq-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListOptions narrows a product listing query. Zero values mean "no
// constraint"; a Limit of 0 means no row cap.
type ListOptions struct {
	CategoryID   int64
	Search       string
	FeaturedOnly bool
	Limit        int
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products matching the given options, newest first,
	// with the category display name joined in.
	List(ctx context.Context, opts ListOptions) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil)
	// when the product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error)

	// DecrementStock reduces a product's stock within the provided
	// transaction. Returns model.ErrInsufficientStock when the remaining
	// stock cannot cover the quantity.
	DecrementStock(ctx context.Context, tx pgx.Tx, id int64, quantity int) error
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]model.Category, error)

	// GetBySlug retrieves a category by its URL slug. Returns (nil, nil)
	// when no category carries the slug.
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)
}
