package model

import "github.com/shopspring/decimal"

// CartItem holds a full product snapshot taken at add time, so later price
// changes do not retroactively affect carts.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered collection of cart items, unique by product ID.
// Invariants: no two items share a product ID, and every quantity is >= 1.
// All operations are total functions over well-typed state.
type Cart struct {
	Items []CartItem `json:"items"`
}

// AddItem merges the product into the cart. An existing entry has its
// quantity incremented; otherwise a new item is appended. Quantities below 1
// are treated as 1.
func (c *Cart) AddItem(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: quantity})
}

// RemoveItem deletes the entry for the given product ID. Removing an absent
// product is a no-op, not an error.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the given product ID, clamped to a
// minimum of 1. Removal is a separate explicit action; quantities <= 0 clamp
// rather than delete. Updating an absent product is a no-op, never an
// implicit add.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems returns the sum of quantities across all items, not the number
// of distinct products.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price*quantity across all items. The
// arithmetic runs on decimals so repeated float addition cannot drift.
func (c *Cart) TotalPrice() float64 {
	total := decimal.Zero
	for _, item := range c.Items {
		line := decimal.NewFromFloat(float64(item.Product.Price)).
			Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}

// Find returns the item for the given product ID, or nil if absent.
func (c *Cart) Find(productID int64) *CartItem {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
