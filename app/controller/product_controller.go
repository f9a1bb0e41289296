package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"storemerch/app/view"
	"storemerch/cart"
	"storemerch/models"
	"storemerch/repository"
	"storemerch/service"
)

// ProductController handles the product pages
type ProductController struct {
	repository repository.CatalogRepositoryInterface
	cart       *cart.Store
	view       *view.Renderer
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.CatalogRepositoryInterface, cartStore *cart.Store, renderer *view.Renderer) *ProductController {
	return &ProductController{
		repository: repo,
		cart:       cartStore,
		view:       renderer,
	}
}

// Products handles GET /products
func (c *ProductController) Products(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := c.repository.GetProducts(r.Context())
	if err != nil {
		log.Printf("❌ Products: failed to load products: %v", err)
		c.view.RenderError(w, "We could not load the products right now. Please try again.")
		return
	}

	c.view.Render(w, http.StatusOK, "products", struct {
		Title     string
		CartCount int
		Products  []models.Product
	}{
		Title:     "Products",
		CartCount: c.cart.LineCount(),
		Products:  products,
	})
}

// ProductByID handles GET /products/{id}
// The selected color comes from the ?color= query parameter and the variant
// is re-derived from it on every render; when nothing is selected yet, the
// first available color is used.
func (c *ProductController) ProductByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/products/")
	if id == "" || strings.Contains(id, "/") {
		c.view.RenderNotFound(w, "The product you are looking for does not exist.")
		return
	}

	product, err := c.repository.GetProduct(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.view.RenderNotFound(w, "The product you are looking for does not exist.")
		return
	}
	if err != nil {
		log.Printf("❌ ProductByID: failed to load product %s: %v", id, err)
		c.view.RenderError(w, "We could not load this product right now. Please try again.")
		return
	}

	colors := service.UniqueColors(product)

	selectedHex := r.URL.Query().Get("color")
	if selectedHex == "" && len(colors) > 0 {
		selectedHex = colors[0].Hex
	}

	selectedImage, hasVariant := service.SelectedVariant(product, selectedHex)

	displayImage := product.FirstImageURL()
	if hasVariant {
		displayImage = selectedImage.URL
	}

	// The add action stays disabled until the product is in stock and, when
	// variants exist, one of them is selected
	canAdd := product.Stock > 0 && (len(colors) == 0 || hasVariant)

	c.view.Render(w, http.StatusOK, "product", struct {
		Title         string
		CartCount     int
		Product       *models.Product
		Colors        []models.Color
		SelectedColor string
		SelectedImage models.ProductImage
		HasVariant    bool
		DisplayImage  string
		CanAdd        bool
	}{
		Title:         product.Name,
		CartCount:     c.cart.LineCount(),
		Product:       product,
		Colors:        colors,
		SelectedColor: selectedHex,
		SelectedImage: selectedImage,
		HasVariant:    hasVariant,
		DisplayImage:  displayImage,
		CanAdd:        canAdd,
	})
}
