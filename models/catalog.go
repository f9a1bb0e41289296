package models

import "encoding/json"

// Category represents a product category
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"productCount,omitempty"`
}

// UnmarshalJSON accepts both the stable object shape and a bare category name.
// Older cart snapshots (and some source page variants) persisted the category
// as a plain string; the union is resolved here, once, so consumers only ever
// see one Category shape.
func (c *Category) UnmarshalJSON(data []byte) error {
	trimmed := json.RawMessage(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*c = Category{Name: name}
		return nil
	}

	type categoryAlias Category
	var alias categoryAlias
	if err := json.Unmarshal(trimmed, &alias); err != nil {
		return err
	}
	*c = Category(alias)
	return nil
}

// Color represents a product color variant
type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"` // "#rrggbb"
}

// ProductImage represents one image of a product, tagged with its color
type ProductImage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Color Color  `json:"color"`
}

// Product represents a product as returned by the catalog source.
// Price is kept as the decimal string the database returns; coercion to a
// number happens only where totals are computed.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       string         `json:"price"`
	Stock       int            `json:"stock"`
	IsFeatured  bool           `json:"isFeatured"`
	Category    *Category      `json:"category,omitempty"`
	Images      []ProductImage `json:"images,omitempty"`
}

// CategoryName returns the category name or "" when the product has none
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// FirstImageURL returns the URL of the first image, or "" when there is none
func (p *Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
