package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ImageOptimizer produces resized JPEG variants of externally hosted product
// images and caches them on disk. The originals stay wherever the catalog
// hosts them; only derived variants live here.
type ImageOptimizer struct {
	cacheDir string
	client   *http.Client
}

// NewImageOptimizer creates an ImageOptimizer caching under cacheDir
// (default "cache/images")
func NewImageOptimizer(cacheDir string) *ImageOptimizer {
	if cacheDir == "" {
		cacheDir = filepath.Join("cache", "images")
	}
	return &ImageOptimizer{
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

// CachePath returns the cache file path for a given image id and size
func (o *ImageOptimizer) CachePath(imageID, size string) string {
	filename := fmt.Sprintf("product_image_%s_%s.jpg", imageID, size)
	return filepath.Join(o.cacheDir, filename)
}

// ReadFromCache reads a cached variant, or returns false when none exists
func (o *ImageOptimizer) ReadFromCache(cachePath string) ([]byte, bool) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SaveToCache writes an optimized variant to the cache
func (o *ImageOptimizer) SaveToCache(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Printf("✓ Image cached: %s", cachePath)
	return nil
}

// Fetch downloads the source image from its external URL
func (o *ImageOptimizer) Fetch(url string) ([]byte, error) {
	resp, err := o.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image source returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

// Optimize converts raw image bytes (PNG, JPEG, ...) into a resized JPEG.
// size is "thumb" or "medium"; anything else falls back to medium.
func (o *ImageOptimizer) Optimize(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim, quality int
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	// Fit preserves aspect ratio and never upscales smaller images
	bounds := img.Bounds()
	resized := img
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		log.Printf("🔄 Resizing image: %dx%d -> max %dpx", bounds.Dx(), bounds.Dy(), maxDim)
		resized = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, buf.Len())
	return buf.Bytes(), nil
}
