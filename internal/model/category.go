package model

// Category groups products. Slug is the URL-safe filter key used by listing
// queries; ID is internal to the relational store.
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	NameAr      string `json:"nameAr,omitempty" db:"name_ar"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description,omitempty" db:"description"`
	ImageURL    string `json:"imageUrl,omitempty" db:"image_url"`
}

// DisplayName returns the localised category name for the given language tag.
func (c *Category) DisplayName(lang string) string {
	if lang == "ar" && c.NameAr != "" {
		return c.NameAr
	}
	return c.Name
}
