package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"souq-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func handlerCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Electronics", NameAr: "إلكترونيات", Slug: "electronics"},
		{ID: 2, Name: "Fashion", NameAr: "أزياء", Slug: "fashion"},
	}
}

func TestCategoryHandler_List(t *testing.T) {
	resolver := new(MockResolver)
	h := NewCategoryHandler(resolver, zerolog.Nop())

	resolver.On("ResolveCategories", mock.Anything).Return(handlerCategories())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].Name)
}

func TestCategoryHandler_List_Arabic(t *testing.T) {
	resolver := new(MockResolver)
	h := NewCategoryHandler(resolver, zerolog.Nop())

	resolver.On("ResolveCategories", mock.Anything).Return(handlerCategories())

	req := httptest.NewRequest(http.MethodGet, "/api/categories?lang=ar", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "إلكترونيات", categories[0].Name)
}

func TestCategoryHandler_List_MethodNotAllowed(t *testing.T) {
	h := NewCategoryHandler(new(MockResolver), zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/categories", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
