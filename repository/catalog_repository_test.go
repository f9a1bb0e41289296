package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storemerch/db"
	"storemerch/models"
)

// withMockDB swaps the global connection for a sqlmock and restores it when
// the test finishes
func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	previous := db.DB
	db.DB = mockDB
	t.Cleanup(func() {
		db.DB = previous
		mockDB.Close()
	})

	return mock
}

func TestGetCategories(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM categories c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "product_count"}).
			AddRow("c1", "Accesorios", 3).
			AddRow("c2", "Camas", 0))

	categories, err := NewCatalogRepository().GetCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, models.Category{ID: "c1", Name: "Accesorios", ProductCount: 3}, categories[0])
	assert.Equal(t, 0, categories[1].ProductCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryNotFound(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM categories c").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "product_count"}))

	_, err := NewCatalogRepository().GetCategory(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProducts(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM products p").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock", "is_featured",
			"category_id", "category_name", "image_url",
		}).
			AddRow("p1", "Collar", "Collar rojo", "15.50", 8, true, "c1", "Accesorios", "https://cdn.example.com/collar.jpg").
			AddRow("p2", "Cama", "", "40", 2, false, "", "", ""))

	products, err := NewCatalogRepository().GetProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "15.50", products[0].Price, "price stays the decimal string the database returns")
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "Accesorios", products[0].Category.Name)
	assert.Equal(t, "https://cdn.example.com/collar.jpg", products[0].FirstImageURL())

	assert.Nil(t, products[1].Category)
	assert.Empty(t, products[1].Images)
}

func TestGetFeaturedProducts(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("p.is_featured = true").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock", "is_featured",
			"category_id", "category_name", "image_url",
		}).AddRow("p1", "Collar", "", "15.50", 8, true, "", "", ""))

	products, err := NewCatalogRepository().GetFeaturedProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].IsFeatured)
}

func TestGetProductsByCategory(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("p.category_id::text = \\$1").
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock", "is_featured",
			"category_id", "category_name", "image_url",
		}).AddRow("p1", "Collar", "", "15.50", 8, false, "c1", "Accesorios", ""))

	products, err := NewCatalogRepository().GetProductsByCategory(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "c1", products[0].Category.ID)
}

func TestGetProductWithImages(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM products p").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock", "is_featured", "category_id", "category_name",
		}).AddRow("p1", "Collar", "Collar rojo", "15.50", 8, true, "c1", "Accesorios"))
	mock.ExpectQuery("FROM product_images pi").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "color_id", "color_name", "color_hex"}).
			AddRow("i1", "https://cdn.example.com/rojo.jpg", "cl1", "Rojo", "#ff0000").
			AddRow("i2", "https://cdn.example.com/azul.jpg", "cl2", "Azul", "#0000ff"))

	product, err := NewCatalogRepository().GetProduct(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Collar", product.Name)
	require.Len(t, product.Images, 2)
	assert.Equal(t, "Rojo", product.Images[0].Color.Name)
	assert.Equal(t, "#0000ff", product.Images[1].Color.Hex)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductNotFound(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM products p").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock", "is_featured", "category_id", "category_name",
		}))

	_, err := NewCatalogRepository().GetProduct(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetColorByName(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM colors").
		WithArgs("rojo").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "hex"}).
			AddRow("cl1", "Rojo", "#ff0000"))

	color, err := NewCatalogRepository().GetColorByName(context.Background(), "rojo")

	require.NoError(t, err)
	assert.Equal(t, "#ff0000", color.Hex)
}

func TestGetColorByNameNotFound(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM colors").
		WithArgs("fucsia").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "hex"}))

	_, err := NewCatalogRepository().GetColorByName(context.Background(), "fucsia")

	assert.ErrorIs(t, err, ErrNotFound)
}
