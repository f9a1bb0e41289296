package controller

import (
	"log"
	"net/http"

	"storemerch/app/view"
	"storemerch/cart"
	"storemerch/models"
	"storemerch/repository"
)

// HomeController handles the storefront home page
type HomeController struct {
	repository repository.CatalogRepositoryInterface
	cart       *cart.Store
	view       *view.Renderer
}

// NewHomeController creates a new HomeController
func NewHomeController(repo repository.CatalogRepositoryInterface, cartStore *cart.Store, renderer *view.Renderer) *HomeController {
	return &HomeController{
		repository: repo,
		cart:       cartStore,
		view:       renderer,
	}
}

// Home handles GET /
// Renders featured products and the category list. Registered on the root
// pattern, so any path no other route matched lands here and renders the
// not-found view.
func (c *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		c.view.RenderNotFound(w, "The page you are looking for does not exist.")
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	featured, err := c.repository.GetFeaturedProducts(ctx)
	if err != nil {
		log.Printf("❌ Home: failed to load featured products: %v", err)
		c.view.RenderError(w, "We could not load the store right now. Please try again.")
		return
	}

	categories, err := c.repository.GetCategories(ctx)
	if err != nil {
		log.Printf("❌ Home: failed to load categories: %v", err)
		c.view.RenderError(w, "We could not load the store right now. Please try again.")
		return
	}

	c.view.Render(w, http.StatusOK, "home", struct {
		Title      string
		CartCount  int
		Featured   []models.Product
		Categories []models.Category
	}{
		Title:      "Store",
		CartCount:  c.cart.LineCount(),
		Featured:   featured,
		Categories: categories,
	})
}
