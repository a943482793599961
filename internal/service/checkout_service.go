package service

import (
	"context"
	"fmt"
	"time"

	"souq-store/internal/model"
	"souq-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService. The repositories may be nil
// when the relational store was unreachable at startup; checkout then fails
// with a domain error while the rest of the storefront keeps serving.
type checkoutService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	carts       CartStore
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	carts CartStore,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		carts:       carts,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout creates an order from the session's cart in a single transaction:
// stock is decremented per line item, the order and its items are inserted,
// and only after a successful commit is the cart cleared. Line items carry
// the cart's snapshot prices, not the live catalogue prices.
func (s *checkoutService) Checkout(ctx context.Context, sessionID string) (*model.OrderResponse, error) {
	if sessionID == "" {
		return nil, model.ErrSessionRequired
	}

	cart, err := s.carts.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if len(cart.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	if s.orderRepo == nil || s.productRepo == nil {
		s.logger.Error().Msg("checkout requested while order store is unavailable")
		return nil, model.ErrStoreUnavailable
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	for _, item := range cart.Items {
		if err = s.productRepo.DecrementStock(ctx, tx, item.Product.ID, item.Quantity); err != nil {
			s.logger.Warn().
				Err(err).
				Int64("product_id", item.Product.ID).
				Int("quantity", item.Quantity).
				Msg("stock decrement failed during checkout")
			return nil, err
		}
	}

	now := time.Now()
	order := &model.Order{
		ID:        uuid.New(),
		SessionID: sessionID,
		Total:     cart.TotalPrice(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(cart.Items))
	for i, item := range cart.Items {
		orderItems[i] = model.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			UnitPrice:   float64(item.Product.Price),
			Quantity:    item.Quantity,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if _, clearErr := s.carts.Clear(sessionID); clearErr != nil {
		// The order is committed; a failed clear only risks a stale cart.
		s.logger.Warn().
			Err(clearErr).
			Str("session_id", sessionID).
			Msg("failed to clear cart after checkout")
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("session_id", sessionID).
		Int("item_count", len(orderItems)).
		Float64("total", order.Total).
		Msg("checkout completed")

	return &model.OrderResponse{
		ID:        order.ID,
		SessionID: order.SessionID,
		Items:     orderItems,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}, nil
}

// GetOrder retrieves an order by its ID with all line items.
func (s *checkoutService) GetOrder(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	if s.orderRepo == nil {
		return nil, model.ErrStoreUnavailable
	}

	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderResponse{
		ID:        order.ID,
		SessionID: order.SessionID,
		Items:     items,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}, nil
}
