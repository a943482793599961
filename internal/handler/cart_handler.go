package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"souq-store/internal/model"
	"souq-store/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionHeader carries the visitor's cart session ID. The server mints one
// on first contact and echoes it on every cart response.
const SessionHeader = "X-Session-ID"

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the API payload for the session's cart.
type cartResponse struct {
	SessionID  string           `json:"sessionId"`
	Items      []model.CartItem `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPrice float64          `json:"totalPrice"`
}

// addItemRequest is the payload for adding a product to the cart.
type addItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// updateItemRequest is the payload for setting an item's quantity.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)

	cart, err := h.service.GetCart(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.writeCart(w, sessionID, cart)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.ProductID < 1 {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productId is required", h.logger)
		return
	}

	cart, err := h.service.AddItem(r.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.writeCart(w, sessionID, cart)
}

// UpdateItem handles PUT /api/cart/items/{id} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)

	productID, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.writeCart(w, sessionID, cart)
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)

	productID, ok := h.itemID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), sessionID, productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.writeCart(w, sessionID, cart)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := h.session(w, r)

	cart, err := h.service.ClearCart(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.writeCart(w, sessionID, cart)
}

// session returns the request's session ID, minting a fresh one when the
// header is absent, and echoes it on the response so the client can persist
// it.
func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) string {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
		h.logger.Debug().Str("session_id", sessionID).Msg("minted new cart session")
	}
	w.Header().Set(SessionHeader, sessionID)
	return sessionID
}

// itemID extracts the product ID from /api/cart/items/{id} paths.
func (h *CartHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid product ID", h.logger)
		return 0, false
	}
	return id, true
}

// writeCart writes the standard cart payload.
func (h *CartHandler) writeCart(w http.ResponseWriter, sessionID string, cart model.Cart) {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	writeJSON(w, http.StatusOK, cartResponse{
		SessionID:  sessionID,
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	})
}
