package cart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"storemerch/models"
)

// DefaultStoragePath is the default slot the cart is persisted to. The name
// mirrors the storage slot the web client used ("cart-storage").
const DefaultStoragePath = "data/cart-storage.json"

// FilePersister keeps the cart in a single JSON file on disk
type FilePersister struct {
	path string
}

// NewFilePersister creates a FilePersister writing to path (or the default
// slot when path is empty)
func NewFilePersister(path string) *FilePersister {
	if path == "" {
		path = DefaultStoragePath
	}
	return &FilePersister{path: path}
}

// Ensure FilePersister implements Persister
var _ Persister = (*FilePersister)(nil)

// Load reads the persisted cart lines. A missing or empty slot is a fresh
// cart, not an error.
func (p *FilePersister) Load() ([]models.CartLine, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart storage: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart storage: %w", err)
	}
	return lines, nil
}

// Save overwrites the slot with the full line list
func (p *FilePersister) Save(lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart storage: %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cart storage directory: %w", err)
		}
	}

	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cart storage: %w", err)
	}
	return nil
}
