package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"storemerch/repository"
	"storemerch/service"
)

// AdminController handles the store-owner endpoints: the Drive image sync
// and the printable catalog export
type AdminController struct {
	syncService   *service.SyncService // nil when Drive credentials are not configured
	exportService *service.CatalogExportService
}

// NewAdminController creates a new AdminController
func NewAdminController(syncService *service.SyncService, exportService *service.CatalogExportService) *AdminController {
	return &AdminController{
		syncService:   syncService,
		exportService: exportService,
	}
}

// SyncProductImages handles POST /admin/products/{id}/images/sync?folderId=...
func (c *AdminController) SyncProductImages(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SyncProductImages: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Fails closed when Drive credentials are absent
	if c.syncService == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "google drive credentials are not configured",
		})
		return
	}

	// Path shape: /admin/products/{id}/images/sync
	path := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	productID := strings.TrimSuffix(path, "/images/sync")
	if productID == "" || productID == path || strings.Contains(productID, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		http.Error(w, "folderId query parameter is required", http.StatusBadRequest)
		return
	}

	inserted, skipped, total, err := c.syncService.SyncProductImages(r.Context(), productID, folderID)
	if err != nil {
		log.Printf("❌ SyncProductImages: sync failed: %v", err)
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %v", err), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to sync images: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"inserted": inserted,
		"skipped":  skipped,
		"total":    total,
	})
}

// RenderCatalog handles GET /admin/catalog/render
// Serves the print-ready HTML page; headless Chrome loads this route during
// the PDF export.
func (c *AdminController) RenderCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html, err := c.exportService.RenderCatalogHTML(r.Context())
	if err != nil {
		log.Printf("❌ RenderCatalog: %v", err)
		http.Error(w, "Failed to render catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// ExportCatalog handles GET /admin/catalog/export
func (c *AdminController) ExportCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pdf, err := c.exportService.ExportPDF(r.Context())
	if err != nil {
		log.Printf("❌ ExportCatalog: %v", err)
		http.Error(w, "Failed to export catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}
