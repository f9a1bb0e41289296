package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"storemerch/db"
	"storemerch/models"
)

// CatalogRepository handles read queries against the catalog tables
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// GetCategories retrieves all categories with their product counts
func (r *CatalogRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	log.Printf("🔍 GetCategories: Fetching categories")

	query := `
		SELECT c.id::text, c.name, COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying categories: %v", err)
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.ProductCount); err != nil {
			log.Printf("❌ Error scanning category: %v", err)
			continue
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating categories: %v", err)
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	log.Printf("✓ Successfully fetched %d categories", len(categories))
	return categories, nil
}

// GetCategory retrieves a single category by id.
// Returns ErrNotFound when the id does not exist.
func (r *CatalogRepository) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	log.Printf("🔍 GetCategory: Fetching category id=%s", id)

	query := `
		SELECT c.id::text, c.name,
		       (SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS product_count
		FROM categories c
		WHERE c.id::text = $1
	`

	var category models.Category
	err := db.DB.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.ProductCount)
	if err == sql.ErrNoRows {
		log.Printf("⚠️  Category id=%s not found", id)
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("❌ Error fetching category: %v", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	log.Printf("✓ Category found: %s", category.Name)
	return &category, nil
}

// productListQuery is the base query for product list pages. Each product
// carries its category (when set) and the URL of its first image.
const productListQuery = `
	SELECT p.id::text, p.name, COALESCE(p.description, ''), p.price::text, p.stock, p.is_featured,
	       COALESCE(c.id::text, ''), COALESCE(c.name, ''),
	       COALESCE(pi.url, '')
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN LATERAL (
		SELECT url
		FROM product_images
		WHERE product_id = p.id
		ORDER BY position ASC, created_at ASC
		LIMIT 1
	) pi ON true
`

// listProducts runs the product list query with an optional condition
func (r *CatalogRepository) listProducts(ctx context.Context, condition string, args ...interface{}) ([]models.Product, error) {
	query := productListQuery
	if condition != "" {
		query += " WHERE " + condition
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Error querying products: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		var categoryID, categoryName, imageURL string

		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.IsFeatured,
			&categoryID,
			&categoryName,
			&imageURL,
		)
		if err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			continue
		}

		if categoryID != "" {
			product.Category = &models.Category{ID: categoryID, Name: categoryName}
		}
		if imageURL != "" {
			product.Images = []models.ProductImage{{URL: imageURL}}
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating products: %v", err)
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// GetProducts retrieves all products
func (r *CatalogRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	log.Printf("🔍 GetProducts: Fetching all products")

	products, err := r.listProducts(ctx, "")
	if err != nil {
		return nil, err
	}

	log.Printf("✓ Successfully fetched %d products", len(products))
	return products, nil
}

// GetFeaturedProducts retrieves the products flagged for the home page
func (r *CatalogRepository) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	log.Printf("🔍 GetFeaturedProducts: Fetching featured products")

	products, err := r.listProducts(ctx, "p.is_featured = true")
	if err != nil {
		return nil, err
	}

	log.Printf("✓ Successfully fetched %d featured products", len(products))
	return products, nil
}

// GetProductsByCategory retrieves the products belonging to a category
func (r *CatalogRepository) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	log.Printf("🔍 GetProductsByCategory: Fetching products for category=%s", categoryID)

	products, err := r.listProducts(ctx, "p.category_id::text = $1", categoryID)
	if err != nil {
		return nil, err
	}

	log.Printf("✓ Successfully fetched %d products for category=%s", len(products), categoryID)
	return products, nil
}

// GetProduct retrieves a single product with its images and colors.
// Returns ErrNotFound when the id does not exist.
func (r *CatalogRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	log.Printf("🔍 GetProduct: Fetching product id=%s", id)

	query := `
		SELECT p.id::text, p.name, COALESCE(p.description, ''), p.price::text, p.stock, p.is_featured,
		       COALESCE(c.id::text, ''), COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id::text = $1
	`

	var product models.Product
	var categoryID, categoryName string

	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.IsFeatured,
		&categoryID,
		&categoryName,
	)
	if err == sql.ErrNoRows {
		log.Printf("⚠️  Product id=%s not found", id)
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("❌ Error fetching product: %v", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if categoryID != "" {
		product.Category = &models.Category{ID: categoryID, Name: categoryName}
	}

	// Fetch ordered images with their colors
	imagesQuery := `
		SELECT pi.id::text, pi.url,
		       COALESCE(cl.id::text, ''), COALESCE(cl.name, ''), COALESCE(cl.hex, '')
		FROM product_images pi
		LEFT JOIN colors cl ON pi.color_id = cl.id
		WHERE pi.product_id::text = $1
		ORDER BY pi.position ASC, pi.created_at ASC
	`

	rows, err := db.DB.QueryContext(ctx, imagesQuery, id)
	if err != nil {
		log.Printf("❌ Error querying product images: %v", err)
		return nil, fmt.Errorf("failed to query product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var image models.ProductImage
		err := rows.Scan(&image.ID, &image.URL, &image.Color.ID, &image.Color.Name, &image.Color.Hex)
		if err != nil {
			log.Printf("❌ Error scanning product image: %v", err)
			continue
		}
		product.Images = append(product.Images, image)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating product images: %v", err)
		return nil, fmt.Errorf("failed to iterate product images: %w", err)
	}

	log.Printf("✓ Product found: %s (%d images)", product.Name, len(product.Images))
	return &product, nil
}

// GetColorByName retrieves a color by its (case-insensitive) name.
// Returns ErrNotFound when no such color exists.
func (r *CatalogRepository) GetColorByName(ctx context.Context, name string) (*models.Color, error) {
	query := `
		SELECT id::text, name, hex
		FROM colors
		WHERE LOWER(name) = LOWER($1)
	`

	var color models.Color
	err := db.DB.QueryRowContext(ctx, query, name).Scan(&color.ID, &color.Name, &color.Hex)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("❌ Error fetching color by name: %v", err)
		return nil, fmt.Errorf("failed to get color: %w", err)
	}

	return &color, nil
}
