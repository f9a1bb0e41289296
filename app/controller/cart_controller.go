package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"storemerch/app/view"
	"storemerch/cart"
	"storemerch/checkout"
	"storemerch/models"
	"storemerch/repository"
	"storemerch/service"
)

// noticeMessages maps the ?notice= codes carried across redirects to the
// transient messages shown on the cart page
var noticeMessages = map[string]string{
	"added":   "Item added to cart",
	"updated": "Item quantity updated in cart",
	"removed": "Item removed from cart",
}

// CartController handles the cart page and all cart mutations
type CartController struct {
	repository repository.CatalogRepositoryInterface
	cart       *cart.Store
	formatter  *checkout.Formatter
	view       *view.Renderer
}

// NewCartController creates a new CartController
func NewCartController(
	repo repository.CatalogRepositoryInterface,
	cartStore *cart.Store,
	formatter *checkout.Formatter,
	renderer *view.Renderer,
) *CartController {
	return &CartController{
		repository: repo,
		cart:       cartStore,
		formatter:  formatter,
		view:       renderer,
	}
}

// CartPage handles GET /cart
func (c *CartController) CartPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lines := c.cart.Lines()

	c.view.Render(w, http.StatusOK, "cart", struct {
		Title              string
		CartCount          int
		Lines              []models.CartLine
		Total              float64
		Notice             string
		CheckoutConfigured bool
	}{
		Title:              "Shopping Cart",
		CartCount:          len(lines),
		Lines:              lines,
		Total:              c.cart.TotalPrice(),
		Notice:             noticeMessages[r.URL.Query().Get("notice")],
		CheckoutConfigured: c.formatter.Configured(),
	})
}

// AddItem handles POST /cart/items
// Validates and clamps the request before the store is invoked: the store
// itself trusts its input and performs no bound-checking.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	productID := strings.TrimSpace(r.PostFormValue("productId"))
	if productID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	product, err := c.repository.GetProduct(r.Context(), productID)
	if errors.Is(err, repository.ErrNotFound) {
		c.view.RenderNotFound(w, "The product you are looking for does not exist.")
		return
	}
	if err != nil {
		log.Printf("❌ AddItem: failed to load product %s: %v", productID, err)
		c.view.RenderError(w, "We could not add this item right now. Please try again.")
		return
	}

	colors := service.UniqueColors(product)
	selectedHex := strings.TrimSpace(r.PostFormValue("color"))

	// When variants exist, a color must be chosen before anything reaches
	// the store
	if len(colors) > 0 && selectedHex == "" {
		http.Redirect(w, r, "/products/"+productID, http.StatusSeeOther)
		return
	}

	var selectedName, imageURL string
	if selectedHex != "" {
		image, ok := service.SelectedVariant(product, selectedHex)
		if !ok {
			log.Printf("⚠️  AddItem: product %s has no variant for color %s", productID, selectedHex)
			http.Redirect(w, r, "/products/"+productID, http.StatusSeeOther)
			return
		}
		selectedName = image.Color.Name
		imageURL = image.URL
	} else {
		imageURL = product.FirstImageURL()
	}

	// Clamp the quantity to [1, stock]
	quantity, _ := strconv.Atoi(r.PostFormValue("quantity"))
	if quantity < 1 {
		quantity = 1
	}
	if product.Stock > 0 && quantity > product.Stock {
		quantity = product.Stock
	}

	var category models.Category
	if product.Category != nil {
		category = *product.Category
	}

	result := c.cart.AddItem(models.CartLine{
		ProductID:         product.ID,
		Name:              product.Name,
		Price:             product.Price,
		Stock:             product.Stock,
		Category:          category,
		SelectedColor:     selectedHex,
		SelectedColorName: selectedName,
		ImageURL:          imageURL,
		Quantity:          quantity,
	})

	notice := "added"
	if result == cart.LineUpdated {
		notice = "updated"
	}
	http.Redirect(w, r, "/cart?notice="+notice, http.StatusSeeOther)
}

// RemoveItem handles POST /cart/items/remove
// Removes every variant of the product; the notification is suppressed when
// nothing was removed.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := strings.TrimSpace(r.PostFormValue("productId"))
	if productID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	removed := c.cart.RemoveItem(productID)
	if removed == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/cart?notice=removed", http.StatusSeeOther)
}

// UpdateQuantity handles POST /cart/items/quantity
// Clamps the new quantity to [1, stock] using the stock captured in the
// line's snapshot; a quantity of 0 removes the line.
func (c *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := strings.TrimSpace(r.PostFormValue("productId"))
	if productID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		http.Error(w, "quantity must be a number", http.StatusBadRequest)
		return
	}
	if quantity < 0 {
		quantity = 0
	}

	for _, line := range c.cart.Lines() {
		if line.ProductID == productID {
			if line.Stock > 0 && quantity > line.Stock {
				quantity = line.Stock
			}
			break
		}
	}

	c.cart.UpdateQuantity(productID, quantity)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Clear handles POST /cart/clear
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.cart.RemoveAll()
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}
