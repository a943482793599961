package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"souq-store/internal/model"
)

// generateSampleCatalog writes a sample catalogue file matching the shape the
// fallback loader expects, useful for local development and for seeding the
// S3 bucket.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	createdAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	catalog := struct {
		Products   []model.Product  `json:"products"`
		Categories []model.Category `json:"categories"`
	}{
		Categories: []model.Category{
			{ID: 1, Name: "Electronics", NameAr: "إلكترونيات", Slug: "electronics", Description: "Phones, audio and accessories"},
			{ID: 2, Name: "Fashion", NameAr: "أزياء", Slug: "fashion", Description: "Clothing and accessories"},
			{ID: 3, Name: "Home & Kitchen", NameAr: "المنزل والمطبخ", Slug: "home-kitchen", Description: "Everything for the home"},
		},
		Products: []model.Product{
			{
				ID: 1, Name: "Wireless Earbuds", NameAr: "سماعات لاسلكية",
				Description:   "Bluetooth 5.3 earbuds with noise cancellation",
				DescriptionAr: "سماعات بلوتوث مع خاصية إلغاء الضوضاء",
				Price:         49.99, CategoryID: 1, Category: "Electronics",
				Stock: 25, IsFeatured: true, CreatedAt: createdAt.Add(7 * 24 * time.Hour),
			},
			{
				ID: 2, Name: "Smart Watch", NameAr: "ساعة ذكية",
				Description:   "Fitness tracking watch with AMOLED display",
				DescriptionAr: "ساعة لتتبع اللياقة بشاشة أموليد",
				Price:         89.00, CategoryID: 1, Category: "Electronics",
				Stock: 12, IsFeatured: true, CreatedAt: createdAt.Add(6 * 24 * time.Hour),
			},
			{
				ID: 3, Name: "USB-C Charger 65W", NameAr: "شاحن 65 واط",
				Description:   "Fast GaN wall charger with two ports",
				DescriptionAr: "شاحن حائط سريع بمنفذين",
				Price:         24.50, CategoryID: 1, Category: "Electronics",
				Stock: 40, CreatedAt: createdAt.Add(5 * 24 * time.Hour),
			},
			{
				ID: 4, Name: "Classic Abaya", NameAr: "عباية كلاسيكية",
				Description:   "Black crepe abaya with embroidered sleeves",
				DescriptionAr: "عباية كريب سوداء بأكمام مطرزة",
				Price:         120.00, CategoryID: 2, Category: "Fashion",
				Stock: 8, IsFeatured: true, CreatedAt: createdAt.Add(4 * 24 * time.Hour),
			},
			{
				ID: 5, Name: "Leather Wallet", NameAr: "محفظة جلدية",
				Description:   "Slim handmade leather wallet",
				DescriptionAr: "محفظة جلد طبيعي رفيعة",
				Price:         35.00, CategoryID: 2, Category: "Fashion",
				Stock: 30, CreatedAt: createdAt.Add(3 * 24 * time.Hour),
			},
			{
				ID: 6, Name: "Arabic Coffee Pot", NameAr: "دلة قهوة عربية",
				Description:   "Traditional stainless steel dallah, 1L",
				DescriptionAr: "دلة ستانلس ستيل تقليدية سعة لتر",
				Price:         42.75, CategoryID: 3, Category: "Home & Kitchen",
				Stock: 15, IsFeatured: true, CreatedAt: createdAt.Add(2 * 24 * time.Hour),
			},
			{
				ID: 7, Name: "Ceramic Dinner Set", NameAr: "طقم عشاء سيراميك",
				Description:   "12-piece ceramic dinner set",
				DescriptionAr: "طقم عشاء سيراميك من 12 قطعة",
				Price:         75.00, CategoryID: 3, Category: "Home & Kitchen",
				Stock: 10, CreatedAt: createdAt.Add(24 * time.Hour),
			},
			{
				ID: 8, Name: "Scented Oud Candle", NameAr: "شمعة بعطر العود",
				Description:   "Hand-poured candle with oud fragrance",
				DescriptionAr: "شمعة مصنوعة يدويا بعطر العود",
				Price:         18.25, CategoryID: 3, Category: "Home & Kitchen",
				Stock: 50, CreatedAt: createdAt,
			},
		},
	}

	filePath := filepath.Join(dataDir, "sample_catalog.json")

	file, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(catalog); err != nil {
		log.Fatalf("Failed to write catalogue: %v", err)
	}

	fmt.Printf("Created %s with %d products and %d categories\n",
		filePath, len(catalog.Products), len(catalog.Categories))
}
