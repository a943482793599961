package catalog

import (
	"strings"
	"sync"
	"time"

	"souq-store/internal/model"
)

// SampleData is the wire shape of a sample catalogue file.
type SampleData struct {
	Products   []model.Product  `json:"products"`
	Categories []model.Category `json:"categories"`
}

// SampleCatalog is the final fallback tier: a fixed in-memory dataset that
// never fails and is never empty for an unfiltered query. It starts from the
// compiled-in dataset and may be replaced wholesale by a loader at startup.
type SampleCatalog struct {
	mu         sync.RWMutex
	products   []model.Product
	categories []model.Category
}

// NewSampleCatalog creates a sample catalogue seeded with the compiled-in
// dataset.
func NewSampleCatalog() *SampleCatalog {
	return &SampleCatalog{
		products:   defaultSampleProducts(),
		categories: defaultSampleCategories(),
	}
}

// Replace swaps in an externally loaded dataset. Empty data is ignored so a
// truncated file can never leave the fallback tier without products.
func (s *SampleCatalog) Replace(data *SampleData) {
	if data == nil || len(data.Products) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = data.Products
	if len(data.Categories) > 0 {
		s.categories = data.Categories
	}
}

// Filter applies the same predicate logic as the live tiers, in-process:
// case-insensitive substring match on name/description, category display
// name equality, featured equality, and a limit slice.
func (s *SampleCatalog) Filter(f model.Filter) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categoryName := s.categoryNameForSlug(f.Category)

	var out []model.Product
	for _, p := range s.products {
		if f.Category != "" && !strings.EqualFold(p.Category, categoryName) {
			continue
		}
		if f.Featured && !p.IsFeatured {
			continue
		}
		if f.Search != "" && !matchesSearch(&p, f.Search) {
			continue
		}
		out = append(out, p)
		if limit := f.EffectiveLimit(); limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Product returns the sample product with the given ID.
func (s *SampleCatalog) Product(id int64) (*model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, true
		}
	}
	return nil, false
}

// Categories returns the sample categories.
func (s *SampleCatalog) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Size returns the number of sample products.
func (s *SampleCatalog) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// categoryNameForSlug maps a slug to the category display name carried on
// sample products. An unknown slug falls back to the raw value so direct
// display-name filters still match.
func (s *SampleCatalog) categoryNameForSlug(slug string) string {
	if slug == "" {
		return ""
	}
	for _, c := range s.categories {
		if c.Slug == slug {
			return c.Name
		}
	}
	return slug
}

// matchesSearch reports whether the search term appears in any localised
// name or description, case-insensitively.
func matchesSearch(p *model.Product, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.NameAr), term) ||
		strings.Contains(strings.ToLower(p.DescriptionAr), term)
}

var sampleCreatedAt = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func defaultSampleCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Electronics", NameAr: "إلكترونيات", Slug: "electronics", Description: "Phones, audio and accessories"},
		{ID: 2, Name: "Fashion", NameAr: "أزياء", Slug: "fashion", Description: "Clothing and accessories"},
		{ID: 3, Name: "Home & Kitchen", NameAr: "المنزل والمطبخ", Slug: "home-kitchen", Description: "Everything for the home"},
	}
}

func defaultSampleProducts() []model.Product {
	return []model.Product{
		{
			ID: 1, Name: "Wireless Earbuds", NameAr: "سماعات لاسلكية",
			Description: "Bluetooth 5.3 earbuds with noise cancellation",
			DescriptionAr: "سماعات بلوتوث مع خاصية إلغاء الضوضاء",
			Price: 49.99, CategoryID: 1, Category: "Electronics",
			Stock: 25, IsFeatured: true, CreatedAt: sampleCreatedAt.Add(7 * 24 * time.Hour),
		},
		{
			ID: 2, Name: "Smart Watch", NameAr: "ساعة ذكية",
			Description: "Fitness tracking watch with AMOLED display",
			DescriptionAr: "ساعة لتتبع اللياقة بشاشة أموليد",
			Price: 89.00, CategoryID: 1, Category: "Electronics",
			Stock: 12, IsFeatured: true, CreatedAt: sampleCreatedAt.Add(6 * 24 * time.Hour),
		},
		{
			ID: 3, Name: "USB-C Charger 65W", NameAr: "شاحن 65 واط",
			Description: "Fast GaN wall charger with two ports",
			DescriptionAr: "شاحن حائط سريع بمنفذين",
			Price: 24.50, CategoryID: 1, Category: "Electronics",
			Stock: 40, CreatedAt: sampleCreatedAt.Add(5 * 24 * time.Hour),
		},
		{
			ID: 4, Name: "Classic Abaya", NameAr: "عباية كلاسيكية",
			Description: "Black crepe abaya with embroidered sleeves",
			DescriptionAr: "عباية كريب سوداء بأكمام مطرزة",
			Price: 120.00, CategoryID: 2, Category: "Fashion",
			Stock: 8, IsFeatured: true, CreatedAt: sampleCreatedAt.Add(4 * 24 * time.Hour),
		},
		{
			ID: 5, Name: "Leather Wallet", NameAr: "محفظة جلدية",
			Description: "Slim handmade leather wallet",
			DescriptionAr: "محفظة جلد طبيعي رفيعة",
			Price: 35.00, CategoryID: 2, Category: "Fashion",
			Stock: 30, CreatedAt: sampleCreatedAt.Add(3 * 24 * time.Hour),
		},
		{
			ID: 6, Name: "Arabic Coffee Pot", NameAr: "دلة قهوة عربية",
			Description: "Traditional stainless steel dallah, 1L",
			DescriptionAr: "دلة ستانلس ستيل تقليدية سعة لتر",
			Price: 42.75, CategoryID: 3, Category: "Home & Kitchen",
			Stock: 15, IsFeatured: true, CreatedAt: sampleCreatedAt.Add(2 * 24 * time.Hour),
		},
		{
			ID: 7, Name: "Ceramic Dinner Set", NameAr: "طقم عشاء سيراميك",
			Description: "12-piece ceramic dinner set",
			DescriptionAr: "طقم عشاء سيراميك من 12 قطعة",
			Price: 75.00, CategoryID: 3, Category: "Home & Kitchen",
			Stock: 10, CreatedAt: sampleCreatedAt.Add(24 * time.Hour),
		},
		{
			ID: 8, Name: "Scented Oud Candle", NameAr: "شمعة بعطر العود",
			Description: "Hand-poured candle with oud fragrance",
			DescriptionAr: "شمعة مصنوعة يدويا بعطر العود",
			Price: 18.25, CategoryID: 3, Category: "Home & Kitchen",
			Stock: 50, CreatedAt: sampleCreatedAt,
		},
	}
}
