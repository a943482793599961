package handler

import (
	"net/http"
	"strconv"
	"strings"

	"souq-store/internal/model"
	"souq-store/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	resolver service.ProductResolver
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(resolver service.ProductResolver, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		resolver: resolver,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with optional category, search,
// limit, featured and lang query parameters. The resolver guarantees a
// presentable result, so this endpoint never returns a server error for a
// listing.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	products := h.resolver.Resolve(r.Context(), parseFilter(r))
	writeJSON(w, http.StatusOK, products)
}

// Featured handles GET /api/products/featured requests: the same resolver
// path with the featured filter forced on.
func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	f := parseFilter(r)
	f.Featured = true

	products := h.resolver.Resolve(r.Context(), f)
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid product ID", h.logger)
		return
	}

	product, ok := h.resolver.ResolveProduct(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// parseFilter builds a product filter from query parameters. Invalid or
// non-positive limits and unparseable featured flags are ignored rather than
// rejected.
func parseFilter(r *http.Request) model.Filter {
	q := r.URL.Query()

	f := model.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Lang:     requestLang(r),
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			f.Limit = limit
		}
	}

	if featuredStr := q.Get("featured"); featuredStr != "" {
		if featured, err := strconv.ParseBool(featuredStr); err == nil {
			f.Featured = featured
		}
	}

	return f
}

// requestLang picks the display language: explicit lang parameter first,
// then the Accept-Language header. Only Arabic is distinguished; everything
// else is English.
func requestLang(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if strings.HasPrefix(strings.ToLower(lang), "ar") {
			return "ar"
		}
		return "en"
	}
	if strings.HasPrefix(strings.ToLower(r.Header.Get("Accept-Language")), "ar") {
		return "ar"
	}
	return "en"
}
