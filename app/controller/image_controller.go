package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"storemerch/repository"
	"storemerch/service"
)

// ImageController serves resized variants of externally hosted product images
type ImageController struct {
	repository repository.ProductImageRepositoryInterface
	optimizer  *service.ImageOptimizer
}

// NewImageController creates a new ImageController
func NewImageController(repo repository.ProductImageRepositoryInterface, optimizer *service.ImageOptimizer) *ImageController {
	return &ImageController{
		repository: repo,
		optimizer:  optimizer,
	}
}

// GetOptimizedImage handles GET /images/{id}?size=thumb|medium
func (c *ImageController) GetOptimizedImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	imageID := strings.TrimPrefix(r.URL.Path, "/images/")
	if imageID == "" || strings.Contains(imageID, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	size := r.URL.Query().Get("size")
	if size != "thumb" && size != "medium" {
		size = "thumb"
	}

	cachePath := c.optimizer.CachePath(imageID, size)
	if data, ok := c.optimizer.ReadFromCache(cachePath); ok {
		serveJPEG(w, data)
		return
	}

	url, err := c.repository.GetImageURL(r.Context(), imageID)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("❌ GetOptimizedImage: failed to look up image %s: %v", imageID, err)
		http.Error(w, "Failed to load image", http.StatusInternalServerError)
		return
	}

	data, err := c.optimizer.Fetch(url)
	if err != nil {
		log.Printf("❌ GetOptimizedImage: failed to fetch source for %s: %v", imageID, err)
		http.Error(w, "Failed to fetch image", http.StatusBadGateway)
		return
	}

	optimized, err := c.optimizer.Optimize(data, size)
	if err != nil {
		log.Printf("❌ GetOptimizedImage: failed to optimize %s: %v", imageID, err)
		http.Error(w, "Failed to process image", http.StatusInternalServerError)
		return
	}

	if err := c.optimizer.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  GetOptimizedImage: failed to cache %s: %v", imageID, err)
	}

	serveJPEG(w, optimized)
}

func serveJPEG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
