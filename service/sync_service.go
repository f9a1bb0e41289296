package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"storemerch/repository"
)

// SyncService imports product images from a Google Drive folder into the
// catalog. Only the Drive URL is stored; the file itself stays in Drive.
type SyncService struct {
	driveService DriveServiceInterface
	catalogRepo  repository.CatalogRepositoryInterface
	imageRepo    repository.ProductImageRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(
	driveService DriveServiceInterface,
	catalogRepo repository.CatalogRepositoryInterface,
	imageRepo repository.ProductImageRepositoryInterface,
) *SyncService {
	return &SyncService{
		driveService: driveService,
		catalogRepo:  catalogRepo,
		imageRepo:    imageRepo,
	}
}

// SyncProductImages imports the images of a Drive folder as product_images
// rows for the given product, matching each file's color name against the
// colors table. Files already imported (by URL) or with an unknown color are
// skipped. Returns inserted / skipped / total counts.
func (s *SyncService) SyncProductImages(ctx context.Context, productID, folderID string) (inserted, skipped, total int, err error) {
	log.Printf("🔄 Starting image sync for product=%s, folder=%s", productID, folderID)

	// The product must exist before anything is imported
	if _, err := s.catalogRepo.GetProduct(ctx, productID); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to load product %s: %w", productID, err)
	}

	driveImages, err := s.driveService.ListFolderImages(folderID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to list images from Drive: %w", err)
	}

	log.Printf("📦 Processing %d image(s) from Google Drive", len(driveImages))
	total = len(driveImages)

	for _, image := range driveImages {
		exists, err := s.imageRepo.ExistsByURL(ctx, image.URL)
		if err != nil {
			log.Printf("❌ Error checking existence for %s: %v", image.FileName, err)
			continue
		}
		if exists {
			log.Printf("⏭️  Skipping %s (already imported)", image.FileName)
			skipped++
			continue
		}

		color, err := s.catalogRepo.GetColorByName(ctx, image.ColorName)
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("⚠️  Skipping %s: unknown color %q", image.FileName, image.ColorName)
			skipped++
			continue
		}
		if err != nil {
			log.Printf("❌ Error resolving color for %s: %v", image.FileName, err)
			continue
		}

		if err := s.imageRepo.Insert(ctx, productID, color.ID, image.URL); err != nil {
			log.Printf("❌ Error inserting image %s: %v", image.FileName, err)
			continue
		}

		log.Printf("✅ Imported %s (color=%s)", image.FileName, color.Name)
		inserted++
	}

	log.Printf("🎉 Image sync completed: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return inserted, skipped, total, nil
}
