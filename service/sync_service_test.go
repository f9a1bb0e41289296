package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storemerch/models"
	"storemerch/repository"
)

// stubDrive returns a canned folder listing
type stubDrive struct {
	images []DriveImage
	err    error
}

func (s *stubDrive) ListFolderImages(folderID string) ([]DriveImage, error) {
	return s.images, s.err
}

// stubSyncCatalog resolves one product and a fixed color set
type stubSyncCatalog struct {
	colors map[string]*models.Color
}

var _ repository.CatalogRepositoryInterface = (*stubSyncCatalog)(nil)

func (s *stubSyncCatalog) GetCategories(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (s *stubSyncCatalog) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return nil, repository.ErrNotFound
}

func (s *stubSyncCatalog) GetProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (s *stubSyncCatalog) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

func (s *stubSyncCatalog) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return nil, nil
}

func (s *stubSyncCatalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if id == "p1" {
		return &models.Product{ID: "p1", Name: "Collar"}, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubSyncCatalog) GetColorByName(ctx context.Context, name string) (*models.Color, error) {
	if color, ok := s.colors[name]; ok {
		return color, nil
	}
	return nil, repository.ErrNotFound
}

// stubImageRepo records inserts and pretends some URLs already exist
type stubImageRepo struct {
	existing map[string]bool
	inserted []string
}

var _ repository.ProductImageRepositoryInterface = (*stubImageRepo)(nil)

func (s *stubImageRepo) GetImageURL(ctx context.Context, imageID string) (string, error) {
	return "", repository.ErrNotFound
}

func (s *stubImageRepo) ExistsByURL(ctx context.Context, url string) (bool, error) {
	return s.existing[url], nil
}

func (s *stubImageRepo) Insert(ctx context.Context, productID, colorID, url string) error {
	s.inserted = append(s.inserted, url)
	return nil
}

func TestSyncProductImages(t *testing.T) {
	drive := &stubDrive{images: []DriveImage{
		{FileID: "f1", FileName: "rojo-frente.png", URL: "https://drive.google.com/uc?id=f1", ColorName: "rojo"},
		{FileID: "f2", FileName: "azul-frente.png", URL: "https://drive.google.com/uc?id=f2", ColorName: "azul"},
		{FileID: "f3", FileName: "fucsia-frente.png", URL: "https://drive.google.com/uc?id=f3", ColorName: "fucsia"},
		{FileID: "f4", FileName: "rojo-lado.png", URL: "https://drive.google.com/uc?id=f4", ColorName: "rojo"},
	}}
	catalog := &stubSyncCatalog{colors: map[string]*models.Color{
		"rojo": {ID: "cl1", Name: "Rojo", Hex: "#ff0000"},
		"azul": {ID: "cl2", Name: "Azul", Hex: "#0000ff"},
	}}
	// f4 was imported on a previous run
	imageRepo := &stubImageRepo{existing: map[string]bool{"https://drive.google.com/uc?id=f4": true}}

	sync := NewSyncService(drive, catalog, imageRepo)
	inserted, skipped, total, err := sync.SyncProductImages(context.Background(), "p1", "folder1")

	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 2, skipped, "already imported and unknown-color files are skipped")
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{
		"https://drive.google.com/uc?id=f1",
		"https://drive.google.com/uc?id=f2",
	}, imageRepo.inserted)
}

func TestSyncProductImagesUnknownProduct(t *testing.T) {
	sync := NewSyncService(&stubDrive{}, &stubSyncCatalog{}, &stubImageRepo{})

	_, _, _, err := sync.SyncProductImages(context.Background(), "missing", "folder1")

	assert.Error(t, err)
}

func TestSyncProductImagesDriveFailure(t *testing.T) {
	drive := &stubDrive{err: assert.AnError}
	sync := NewSyncService(drive, &stubSyncCatalog{}, &stubImageRepo{})

	_, _, _, err := sync.SyncProductImages(context.Background(), "p1", "folder1")

	assert.ErrorIs(t, err, assert.AnError)
}
