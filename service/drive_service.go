package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"storemerch/utils"
)

// DriveImage is one importable image file found in a Drive folder
type DriveImage struct {
	FileID    string
	FileName  string
	URL       string
	ColorName string // parsed from the filename
}

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListFolderImages(folderID string) ([]DriveImage, error)
}

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance.
// credentialsPath is the path to the Service Account JSON file.
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{client: driveService}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListFolderImages lists all image files in a Drive folder and parses the
// color name out of each filename. Files whose name yields no color are
// skipped with a warning.
func (ds *DriveService) ListFolderImages(folderID string) ([]DriveImage, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}

	var images []DriveImage
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		colorName, err := utils.ParseColorFromFilename(file.Name)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", file.Name, err)
			continue
		}

		images = append(images, DriveImage{
			FileID:    file.Id,
			FileName:  file.Name,
			URL:       fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id),
			ColorName: colorName,
		})
	}

	return images, nil
}
