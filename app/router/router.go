package router

import (
	"net/http"
	"strings"

	"storemerch/app/controller"
)

// Controllers groups everything the route table needs
type Controllers struct {
	Home     *controller.HomeController
	Category *controller.CategoryController
	Product  *controller.ProductController
	Cart     *controller.CartController
	Checkout *controller.CheckoutController
	Image    *controller.ImageController
	Admin    *controller.AdminController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers all routes on the default mux
func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Home; also the fallback for any path no other route matched
	http.HandleFunc("/", controllers.Home.Home)

	// Catalog pages
	http.HandleFunc("/categories", controllers.Category.Categories)
	http.HandleFunc("/categories/", controllers.Category.CategoryByID)
	http.HandleFunc("/products", controllers.Product.Products)
	http.HandleFunc("/products/", controllers.Product.ProductByID)

	// Cart page and mutations
	http.HandleFunc("/cart", controllers.Cart.CartPage)
	http.HandleFunc("/cart/items", controllers.Cart.AddItem)
	http.HandleFunc("/cart/items/remove", controllers.Cart.RemoveItem)
	http.HandleFunc("/cart/items/quantity", controllers.Cart.UpdateQuantity)
	http.HandleFunc("/cart/clear", controllers.Cart.Clear)

	// Checkout hand-off
	http.HandleFunc("/checkout", controllers.Checkout.Checkout)

	// Optimized product images
	http.HandleFunc("/images/", controllers.Image.GetOptimizedImage)

	// Admin: Drive image sync
	http.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/images/sync") {
			controllers.Admin.SyncProductImages(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Admin: printable catalog
	http.HandleFunc("/admin/catalog/render", controllers.Admin.RenderCatalog)
	http.HandleFunc("/admin/catalog/export", controllers.Admin.ExportCatalog)
}
