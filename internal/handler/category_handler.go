package handler

import (
	"net/http"

	"souq-store/internal/model"
	"souq-store/internal/service"

	"github.com/rs/zerolog"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	resolver service.ProductResolver
	logger   zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(resolver service.ProductResolver, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		resolver: resolver,
		logger:   logger.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /api/categories requests.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	categories := h.resolver.ResolveCategories(r.Context())

	if requestLang(r) == "ar" {
		localised := make([]model.Category, len(categories))
		copy(localised, categories)
		for i := range localised {
			localised[i].Name = localised[i].DisplayName("ar")
		}
		categories = localised
	}

	writeJSON(w, http.StatusOK, categories)
}
