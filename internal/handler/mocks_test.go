package handler

import (
	"context"

	"souq-store/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockResolver is a mock implementation of service.ProductResolver.
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, f model.Filter) []model.Product {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.Product)
}

func (m *MockResolver) ResolveProduct(ctx context.Context, id int64) (*model.Product, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.Product), args.Bool(1)
}

func (m *MockResolver) ResolveCategories(ctx context.Context) []model.Category {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category)
}

// MockCartService is a mock implementation of service.CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (model.Cart, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (model.Cart, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (model.Cart, error) {
	args := m.Called(ctx, sessionID, productID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(model.Cart), args.Error(1)
}

// MockCheckoutService is a mock implementation of service.CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, sessionID string) (*model.OrderResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockCheckoutService) GetOrder(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}
