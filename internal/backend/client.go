// Package backend is the secondary catalogue tier: a hosted REST service
// consulted when the relational store is down or unconfigured. Its records
// carry the category as a flat display string and prices that may arrive as
// strings; the client maps both to the canonical product shape.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"souq-store/internal/config"
	"souq-store/internal/model"

	"github.com/rs/zerolog"
)

// Client queries the hosted backend's product collection over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a backend client from configuration.
func NewClient(cfg config.BackendConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With().Str("source", "backend").Logger(),
	}
}

// backendProduct is the backend's record shape. Category is a flat string,
// not a foreign key, and price may be a quoted number.
type backendProduct struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	NameAr        string      `json:"name_ar"`
	Description   string      `json:"description"`
	DescriptionAr string      `json:"description_ar"`
	Price         model.Price `json:"price"`
	ImageURL      string      `json:"image_url"`
	Category      string      `json:"category"`
	Stock         int         `json:"stock"`
	IsFeatured    bool        `json:"is_featured"`
	CreatedAt     string      `json:"created_at"`
}

// Name identifies the source in logs.
func (c *Client) Name() string {
	return "backend"
}

// Fetch queries the backend's product collection with the given filter and
// maps the response to the canonical product shape.
func (c *Client) Fetch(ctx context.Context, f model.Filter) ([]model.Product, error) {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Featured {
		params.Set("featured", "true")
	}
	if limit := f.EffectiveLimit(); limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var records []backendProduct
	if err := c.get(ctx, "/products", params, &records); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toProduct())
	}

	c.logger.Debug().
		Int("count", len(products)).
		Msg("products fetched from backend")

	return products, nil
}

// FetchByID retrieves a single product from the backend. A 404 maps to
// (nil, nil).
func (c *Client) FetchByID(ctx context.Context, id int64) (*model.Product, error) {
	var rec backendProduct
	err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &rec)
	if err != nil {
		if err == errNotFound {
			return nil, nil
		}
		return nil, err
	}

	product := rec.toProduct()
	return &product, nil
}

var errNotFound = fmt.Errorf("backend: not found")

// get performs a GET request against the backend and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("backend request failed")
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", endpoint).
			Msg("backend returned non-OK status")
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("failed to decode backend response")
		return fmt.Errorf("failed to decode backend response: %w", err)
	}

	return nil
}

// toProduct maps a backend record to the canonical product shape.
func (p backendProduct) toProduct() model.Product {
	product := model.Product{
		ID:            p.ID,
		Name:          p.Name,
		NameAr:        p.NameAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Price:         p.Price,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		Stock:         p.Stock,
		IsFeatured:    p.IsFeatured,
	}
	if t, err := parseBackendTime(p.CreatedAt); err == nil {
		product.CreatedAt = t
	}
	product.Normalise()
	return product
}
