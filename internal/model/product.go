package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// PlaceholderImageURL is substituted for products whose image is missing or
// unusable, so every listing renders with a deterministic image.
const PlaceholderImageURL = "/images/placeholder.png"

// Price is a monetary amount. Upstream sources disagree on representation
// (the secondary backend and sample files may carry prices as JSON strings),
// so Price normalises both forms to a number at the decode boundary.
type Price float64

// UnmarshalJSON accepts both `19.99` and `"19.99"`.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
		if s == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", s, err)
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	*p = Price(f)
	return nil
}

// Product represents a storefront product. Category carries the resolved
// display name regardless of which source tier produced the record.
type Product struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	NameAr        string    `json:"nameAr,omitempty" db:"name_ar"`
	Description   string    `json:"description" db:"description"`
	DescriptionAr string    `json:"descriptionAr,omitempty" db:"description_ar"`
	Price         Price     `json:"price" db:"price"`
	ImageURL      string    `json:"imageUrl" db:"image_url"`
	CategoryID    int64     `json:"categoryId,omitempty" db:"category_id"`
	Category      string    `json:"category" db:"category"`
	Stock         int       `json:"stock" db:"stock"`
	IsFeatured    bool      `json:"isFeatured" db:"is_featured"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// DisplayName returns the localised product name for the given language tag.
func (p *Product) DisplayName(lang string) string {
	if lang == "ar" && p.NameAr != "" {
		return p.NameAr
	}
	return p.Name
}

// DisplayDescription returns the localised description for the given language tag.
func (p *Product) DisplayDescription(lang string) string {
	if lang == "ar" && p.DescriptionAr != "" {
		return p.DescriptionAr
	}
	return p.Description
}

// Normalise fills in defaults every consumer relies on: a usable image URL
// and a non-negative stock count.
func (p *Product) Normalise() {
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImageURL
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
}

// Filter describes an optional product listing filter. Zero values mean
// "no constraint"; Limit values below 1 are ignored.
type Filter struct {
	Category string // category slug
	Search   string // case-insensitive substring match on name/description
	Limit    int
	Featured bool // when true, only featured products
	Lang     string
}

// IsBroad reports whether the filter places no constraint on the result set.
// A broad query against a live catalogue can never legitimately be empty, so
// the resolver treats a broad-and-empty tier as unconfigured.
func (f Filter) IsBroad() bool {
	return f.Category == "" && f.Search == "" && !f.Featured
}

// EffectiveLimit returns the validated row cap, or 0 for "no limit".
func (f Filter) EffectiveLimit() int {
	if f.Limit < 1 {
		return 0
	}
	return f.Limit
}
