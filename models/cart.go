package models

import "storemerch/utils"

// CartLine is one persisted cart entry, keyed by (ProductID, SelectedColor).
// All other fields are a snapshot of the product at add-time: later catalog
// changes must not retroactively alter cart contents.
type CartLine struct {
	ProductID         string   `json:"productId"`
	Name              string   `json:"name"`
	Price             string   `json:"price"`
	Stock             int      `json:"stock"`
	Category          Category `json:"category,omitempty"`
	SelectedColor     string   `json:"selectedColor,omitempty"` // hex, "" when the product has no variants
	SelectedColorName string   `json:"selectedColorName,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	Quantity          int      `json:"quantity"`
}

// SameLine reports whether other refers to the same cart entry, comparing the
// full composite key. Two no-variant entries for the same product match.
func (l CartLine) SameLine(other CartLine) bool {
	return l.ProductID == other.ProductID && l.SelectedColor == other.SelectedColor
}

// UnitPrice coerces the snapshotted price string into a number
func (l CartLine) UnitPrice() float64 {
	return utils.ParsePrice(l.Price)
}

// Subtotal returns unit price times quantity
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice() * float64(l.Quantity)
}
