package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"storemerch/repository"
	"storemerch/utils"
)

// exportItem is one product cell on the printable catalog
type exportItem struct {
	Name        string
	Price       string
	Stock       int
	Category    string
	ImageBase64 template.URL
}

// CatalogExportService renders the storefront's product grid into a
// print-ready HTML page and drives headless Chrome to turn it into a PDF the
// store owner can share over WhatsApp.
type CatalogExportService struct {
	repository repository.CatalogRepositoryInterface
	optimizer  *ImageOptimizer
	baseURL    string // where the render endpoint is reachable for Chrome
}

// NewCatalogExportService creates a new CatalogExportService
func NewCatalogExportService(
	repo repository.CatalogRepositoryInterface,
	optimizer *ImageOptimizer,
	baseURL string,
) *CatalogExportService {
	return &CatalogExportService{
		repository: repo,
		optimizer:  optimizer,
		baseURL:    baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// imageAsBase64DataURI downloads a product image and inlines it as a data
// URI, so the exported page carries no external references
func (s *CatalogExportService) imageAsBase64DataURI(url string) (template.URL, error) {
	data, err := s.optimizer.Fetch(url)
	if err != nil {
		return "", err
	}

	// Medium variant keeps the PDF size reasonable
	optimized, err := s.optimizer.Optimize(data, "medium")
	if err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(optimized)
	return template.URL("data:image/jpeg;base64," + encoded), nil
}

// paginateItems splits items into pages of 9 items each
func paginateItems(items []exportItem) [][]exportItem {
	const itemsPerPage = 9
	var pages [][]exportItem

	for i := 0; i < len(items); i += itemsPerPage {
		end := i + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}

	return pages
}

// RenderCatalogHTML renders the printable catalog page for all products
func (s *CatalogExportService) RenderCatalogHTML(ctx context.Context) (string, error) {
	products, err := s.repository.GetProducts(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load products for catalog: %w", err)
	}

	items := make([]exportItem, 0, len(products))
	for _, product := range products {
		item := exportItem{
			Name:     product.Name,
			Price:    utils.FormatPrice(utils.ParsePrice(product.Price)),
			Stock:    product.Stock,
			Category: product.CategoryName(),
		}

		if url := product.FirstImageURL(); url != "" {
			dataURI, err := s.imageAsBase64DataURI(url)
			if err != nil {
				log.Printf("⚠️  Warning: failed to inline image for %s: %v", product.Name, err)
			} else {
				item.ImageBase64 = dataURI
			}
		}

		items = append(items, item)
	}

	templateData := struct {
		Pages       [][]exportItem
		GeneratedAt string
	}{
		Pages:       paginateItems(items),
		GeneratedAt: time.Now().Format("2006-01-02"),
	}

	templatePath := filepath.Join("templates", "catalog_export.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ExportPDF generates a PDF of the printable catalog using chromedp
func (s *CatalogExportService) ExportPDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/catalog/render", s.baseURL)
	log.Printf("🖨️  Generating catalog PDF from %s", renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(1*time.Second), // images are inlined, fonts may still load
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait; page breaks come from the template's CSS
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ Catalog PDF generated (%d bytes)", len(pdfBuf))
	return pdfBuf, nil
}
