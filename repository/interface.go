package repository

import (
	"context"
	"errors"

	"storemerch/models"
)

// ErrNotFound marks a missing entity (unknown category or product id), as
// opposed to a failed query. Pages render a not-found view for this and an
// error view for everything else.
var ErrNotFound = errors.New("not found")

// CatalogRepositoryInterface defines the read-only contract against the
// catalog source. Nothing in the storefront mutates catalog rows.
type CatalogRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetColorByName(ctx context.Context, name string) (*models.Color, error)
}

// ProductImageRepositoryInterface defines the contract for product image
// rows: lookups for the image endpoint plus the inserts the Drive sync needs.
type ProductImageRepositoryInterface interface {
	GetImageURL(ctx context.Context, imageID string) (string, error)
	ExistsByURL(ctx context.Context, url string) (bool, error)
	Insert(ctx context.Context, productID, colorID, url string) error
}
