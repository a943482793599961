package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"souq-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHandler_Checkout(t *testing.T) {
	svc := new(MockCheckoutService)
	h := NewCheckoutHandler(svc, zerolog.Nop())

	orderID := uuid.New()
	svc.On("Checkout", mock.Anything, "session-a").Return(&model.OrderResponse{
		ID:        orderID,
		SessionID: "session-a",
		Items: []model.OrderItem{
			{OrderID: orderID, ProductID: 1, ProductName: "Earbuds", UnitPrice: 49.99, Quantity: 2},
		},
		Total:     99.98,
		CreatedAt: time.Now(),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	req.Header.Set(SessionHeader, "session-a")
	rec := httptest.NewRecorder()

	h.Checkout(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp model.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, orderID, resp.ID)
	assert.Len(t, resp.Items, 1)
}

func TestCheckoutHandler_Checkout_RequiresSession(t *testing.T) {
	svc := new(MockCheckoutService)
	h := NewCheckoutHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	rec := httptest.NewRecorder()

	h.Checkout(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
}

func TestCheckoutHandler_Checkout_MethodNotAllowed(t *testing.T) {
	h := NewCheckoutHandler(new(MockCheckoutService), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/checkout", nil)
	rec := httptest.NewRecorder()

	h.Checkout(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCheckoutHandler_Checkout_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "empty cart", err: model.ErrEmptyCart, wantStatus: http.StatusBadRequest},
		{name: "insufficient stock", err: model.ErrInsufficientStock, wantStatus: http.StatusConflict},
		{name: "store unavailable", err: model.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCheckoutService)
			h := NewCheckoutHandler(svc, zerolog.Nop())

			svc.On("Checkout", mock.Anything, "session-a").Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
			req.Header.Set(SessionHeader, "session-a")
			rec := httptest.NewRecorder()

			h.Checkout(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckoutHandler_GetOrder(t *testing.T) {
	svc := new(MockCheckoutService)
	h := NewCheckoutHandler(svc, zerolog.Nop())

	orderID := uuid.New()
	svc.On("GetOrder", mock.Anything, orderID).Return(&model.OrderResponse{
		ID:        orderID,
		SessionID: "session-a",
		Total:     49.99,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String(), nil)
	rec := httptest.NewRecorder()

	h.GetOrder(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutHandler_GetOrder_InvalidID(t *testing.T) {
	svc := new(MockCheckoutService)
	h := NewCheckoutHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	h.GetOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestCheckoutHandler_GetOrder_NotFound(t *testing.T) {
	svc := new(MockCheckoutService)
	h := NewCheckoutHandler(svc, zerolog.Nop())

	orderID := uuid.New()
	svc.On("GetOrder", mock.Anything, orderID).Return(nil, model.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String(), nil)
	rec := httptest.NewRecorder()

	h.GetOrder(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
