package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"storemerch/db"
)

// ProductImageRepository handles database operations for product images
type ProductImageRepository struct{}

// NewProductImageRepository creates a new ProductImageRepository
func NewProductImageRepository() *ProductImageRepository {
	return &ProductImageRepository{}
}

// Ensure ProductImageRepository implements ProductImageRepositoryInterface
var _ ProductImageRepositoryInterface = (*ProductImageRepository)(nil)

// GetImageURL retrieves the source URL of a product image.
// Returns ErrNotFound when the id does not exist.
func (r *ProductImageRepository) GetImageURL(ctx context.Context, imageID string) (string, error) {
	query := `SELECT url FROM product_images WHERE id::text = $1`

	var url string
	err := db.DB.QueryRowContext(ctx, query, imageID).Scan(&url)
	if err == sql.ErrNoRows {
		log.Printf("⚠️  Product image id=%s not found", imageID)
		return "", ErrNotFound
	}
	if err != nil {
		log.Printf("❌ Error fetching product image url: %v", err)
		return "", fmt.Errorf("failed to get product image: %w", err)
	}

	return url, nil
}

// ExistsByURL checks whether an image with the given source URL was already
// imported
func (r *ProductImageRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM product_images WHERE url = $1)`

	var exists bool
	if err := db.DB.QueryRowContext(ctx, query, url).Scan(&exists); err != nil {
		log.Printf("❌ Error checking image existence: %v", err)
		return false, fmt.Errorf("failed to check image existence: %w", err)
	}
	return exists, nil
}

// Insert adds a product image row at the end of the product's image order
func (r *ProductImageRepository) Insert(ctx context.Context, productID, colorID, url string) error {
	query := `
		INSERT INTO product_images (product_id, color_id, url, position, created_at)
		VALUES (
			$1, $2, $3,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM product_images WHERE product_id = $1),
			NOW()
		)
	`

	if _, err := db.DB.ExecContext(ctx, query, productID, colorID, url); err != nil {
		log.Printf("❌ Error inserting product image: %v", err)
		return fmt.Errorf("failed to insert product image: %w", err)
	}

	log.Printf("✓ Product image inserted (productId=%s, colorId=%s)", productID, colorID)
	return nil
}
