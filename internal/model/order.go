package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a checked-out cart persisted to the relational store.
type Order struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SessionID string    `json:"sessionId" db:"session_id"`
	Total     float64   `json:"total" db:"total"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a line item in an order. UnitPrice is the cart snapshot price
// at add time, not the live catalogue price.
type OrderItem struct {
	ID          uuid.UUID `json:"-" db:"id"`
	OrderID     uuid.UUID `json:"-" db:"order_id"`
	ProductID   int64     `json:"productId" db:"product_id"`
	ProductName string    `json:"productName" db:"product_name"`
	UnitPrice   float64   `json:"unitPrice" db:"unit_price"`
	Quantity    int       `json:"quantity" db:"quantity"`
}

// OrderResponse is the API payload for a created or retrieved order.
type OrderResponse struct {
	ID        uuid.UUID   `json:"id"`
	SessionID string      `json:"sessionId"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}
