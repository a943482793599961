package repository

import (
	"context"
	"fmt"
	"strings"

	"souq-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `
	p.id, p.name, p.name_ar, p.description, p.description_ar, p.price,
	p.image_url, p.category_id, c.name AS category, p.stock, p.is_featured,
	p.created_at
`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves products matching the given options, newest first. The
// category display name is joined in so consumers never need a second round
// trip.
func (r *productRepository) List(ctx context.Context, opts ListOptions) ([]model.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id`

	var conds []string
	var args []interface{}

	if opts.CategoryID > 0 {
		args = append(args, opts.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if opts.Search != "" {
		args = append(args, "%"+opts.Search+"%")
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}

	if opts.FeaturedOnly {
		conds = append(conds, "p.is_featured = TRUE")
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY p.created_at DESC"

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("category_id", opts.CategoryID).
			Str("search", opts.Search).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan product rows")
		return nil, err
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// GetByIDs retrieves multiple products by their IDs.
func (r *productRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query := `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = ANY($1)
		ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan product rows")
		return nil, err
	}

	return products, nil
}

// DecrementStock reduces stock for a product inside a checkout transaction.
// The guard in the WHERE clause keeps stock from going negative under
// concurrent checkouts.
func (r *productRepository) DecrementStock(ctx context.Context, tx pgx.Tx, id int64, quantity int) error {
	query := `
		UPDATE products
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2
	`

	tag, err := tx.Exec(ctx, query, id, quantity)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("product_id", id).
			Int("quantity", quantity).
			Msg("failed to decrement stock")
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().
			Int64("product_id", id).
			Int("quantity", quantity).
			Msg("insufficient stock")
		return model.ErrInsufficientStock
	}

	return nil
}

// scanProduct scans a single joined product row.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var price float64
	err := row.Scan(
		&p.ID, &p.Name, &p.NameAr, &p.Description, &p.DescriptionAr, &price,
		&p.ImageURL, &p.CategoryID, &p.Category, &p.Stock, &p.IsFeatured,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Price = model.Price(price)
	return &p, nil
}

// scanProducts drains a joined product result set.
func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
