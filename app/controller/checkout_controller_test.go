package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"storemerch/cart"
	"storemerch/checkout"
	"storemerch/models"
)

func checkoutRequest(c *CheckoutController) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	rec := httptest.NewRecorder()
	c.Checkout(rec, req)
	return rec
}

func TestCheckoutRedirectsToWhatsApp(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddItem(models.CartLine{ProductID: "p1", Name: "Collar", Price: "15.50", SelectedColorName: "Rojo", Quantity: 2})
	c := NewCheckoutController(store, checkout.NewFormatter("", "573001112233"))

	rec := checkoutRequest(c)

	assert.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "https://wa.me/573001112233?text="), location)
}

func TestCheckoutEmptyCartGoesBackToCart(t *testing.T) {
	c := NewCheckoutController(cart.NewStore(nil), checkout.NewFormatter("", "573001112233"))

	rec := checkoutRequest(c)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get("Location"))
}

func TestCheckoutUnconfiguredGoesBackToCart(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddItem(models.CartLine{ProductID: "p1", Name: "Collar", Price: "15.50", Quantity: 1})
	c := NewCheckoutController(store, checkout.NewFormatter("", ""))

	rec := checkoutRequest(c)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get("Location"))
}

func TestCheckoutRejectsPost(t *testing.T) {
	c := NewCheckoutController(cart.NewStore(nil), checkout.NewFormatter("", "573001112233"))

	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	rec := httptest.NewRecorder()
	c.Checkout(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
