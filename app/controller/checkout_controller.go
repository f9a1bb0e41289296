package controller

import (
	"errors"
	"log"
	"net/http"

	"storemerch/cart"
	"storemerch/checkout"
)

// CheckoutController hands the cart off to the external messaging endpoint
type CheckoutController struct {
	cart      *cart.Store
	formatter *checkout.Formatter
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(cartStore *cart.Store, formatter *checkout.Formatter) *CheckoutController {
	return &CheckoutController{
		cart:      cartStore,
		formatter: formatter,
	}
}

// Checkout handles GET /checkout
// Redirects to the WhatsApp link carrying the formatted order summary. The
// system receives no confirmation of the order — the redirect is the end of
// the flow.
func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lines := c.cart.Lines()
	if len(lines) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	url, err := c.formatter.CheckoutURL(lines)
	if errors.Is(err, checkout.ErrNotConfigured) {
		// The cart page already shows the configuration banner and disables
		// the checkout action; this guards direct navigation
		log.Printf("⚠️  Checkout requested but no destination number is configured")
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Printf("❌ Checkout: failed to build checkout link: %v", err)
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	log.Printf("✅ Checkout: handing off %d line(s) to WhatsApp", len(lines))
	http.Redirect(w, r, url, http.StatusFound)
}
