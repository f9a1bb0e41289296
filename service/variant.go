package service

import "storemerch/models"

// UniqueColors returns the distinct colors across a product's images, in
// first-occurrence order. Products whose images carry no color yield an
// empty slice — such products have no variants and go into the cart with an
// empty color key.
func UniqueColors(product *models.Product) []models.Color {
	seen := make(map[string]bool)
	var colors []models.Color
	for _, image := range product.Images {
		if image.Color.Hex == "" {
			continue
		}
		if seen[image.Color.Hex] {
			continue
		}
		seen[image.Color.Hex] = true
		colors = append(colors, image.Color)
	}
	return colors
}

// SelectedVariant resolves the image matching the selected color hex.
// Computed per render from the current selection — no state is kept between
// renders. Returns false when no color is selected or no image matches.
func SelectedVariant(product *models.Product, selectedHex string) (models.ProductImage, bool) {
	if selectedHex == "" {
		return models.ProductImage{}, false
	}
	for _, image := range product.Images {
		if image.Color.Hex == selectedHex {
			return image, true
		}
	}
	return models.ProductImage{}, false
}
