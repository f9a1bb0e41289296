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
)

// CategoryController handles the category pages
type CategoryController struct {
	repository repository.CatalogRepositoryInterface
	cart       *cart.Store
	view       *view.Renderer
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(repo repository.CatalogRepositoryInterface, cartStore *cart.Store, renderer *view.Renderer) *CategoryController {
	return &CategoryController{
		repository: repo,
		cart:       cartStore,
		view:       renderer,
	}
}

// Categories handles GET /categories
func (c *CategoryController) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	categories, err := c.repository.GetCategories(r.Context())
	if err != nil {
		log.Printf("❌ Categories: failed to load categories: %v", err)
		c.view.RenderError(w, "We could not load the categories right now. Please try again.")
		return
	}

	c.view.Render(w, http.StatusOK, "categories", struct {
		Title      string
		CartCount  int
		Categories []models.Category
	}{
		Title:      "Categories",
		CartCount:  c.cart.LineCount(),
		Categories: categories,
	})
}

// CategoryByID handles GET /categories/{id}
func (c *CategoryController) CategoryByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/categories/")
	if id == "" || strings.Contains(id, "/") {
		c.view.RenderNotFound(w, "The category you are looking for does not exist.")
		return
	}

	ctx := r.Context()

	category, err := c.repository.GetCategory(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.view.RenderNotFound(w, "The category you are looking for does not exist.")
		return
	}
	if err != nil {
		log.Printf("❌ CategoryByID: failed to load category %s: %v", id, err)
		c.view.RenderError(w, "We could not load this category right now. Please try again.")
		return
	}

	products, err := c.repository.GetProductsByCategory(ctx, id)
	if err != nil {
		log.Printf("❌ CategoryByID: failed to load products for %s: %v", id, err)
		c.view.RenderError(w, "We could not load this category right now. Please try again.")
		return
	}

	c.view.Render(w, http.StatusOK, "category", struct {
		Title     string
		CartCount int
		Category  *models.Category
		Products  []models.Product
	}{
		Title:     category.Name,
		CartCount: c.cart.LineCount(),
		Category:  category,
		Products:  products,
	})
}
