package checkout

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storemerch/models"
)

func sampleLines() []models.CartLine {
	return []models.CartLine{
		{ProductID: "p1", Name: "Collar", Price: "15.50", SelectedColor: "#ff0000", SelectedColorName: "Rojo", Quantity: 2},
		{ProductID: "p2", Name: "Cama", Price: "40", Quantity: 1},
	}
}

func TestSummarizeMessageShape(t *testing.T) {
	f := NewFormatter("", "573001112233")

	message := f.Summarize(sampleLines())

	assert.True(t, strings.HasPrefix(message, "🛍️ *Nuevo Pedido*\n\n*Productos:*\n"))
	assert.Contains(t, message, "• Collar (Rojo) x2 - $31.00")
	assert.Contains(t, message, "• Cama x1 - $40.00")
	assert.Contains(t, message, "\n\n*Total:* $71.00\n*Ref:* ")
}

func TestSummarizeOmitsColorWhenProductHasNoVariant(t *testing.T) {
	f := NewFormatter("", "573001112233")

	message := f.Summarize([]models.CartLine{
		{ProductID: "p1", Name: "Cama", Price: "40", Quantity: 1},
	})

	assert.Contains(t, message, "• Cama x1 - $40.00")
	assert.NotContains(t, message, "Cama (")
}

func TestSummarizeRefIsShortAndFresh(t *testing.T) {
	f := NewFormatter("", "573001112233")
	lines := sampleLines()

	first := f.Summarize(lines)
	second := f.Summarize(lines)

	_, ref1, ok := strings.Cut(first, "*Ref:* ")
	require.True(t, ok)
	_, ref2, ok := strings.Cut(second, "*Ref:* ")
	require.True(t, ok)

	assert.Len(t, strings.TrimSpace(ref1), 8)
	assert.NotEqual(t, ref1, ref2)
}

func TestCheckoutURLEncodesMessage(t *testing.T) {
	f := NewFormatter("", "573001112233")

	rawURL, err := f.CheckoutURL(sampleLines())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rawURL, "https://wa.me/573001112233?text="), rawURL)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	message := parsed.Query().Get("text")
	assert.Contains(t, message, "🛍️ *Nuevo Pedido*")
	assert.Contains(t, message, "• Collar (Rojo) x2 - $31.00")
	// the raw query must not carry unescaped spaces or newlines
	assert.NotContains(t, rawURL, " ")
	assert.NotContains(t, rawURL, "\n")
}

func TestCheckoutURLFailsClosedWithoutNumber(t *testing.T) {
	f := NewFormatter("", "")

	assert.False(t, f.Configured())

	_, err := f.CheckoutURL(sampleLines())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCheckoutURLWhitespaceNumberCountsAsUnconfigured(t *testing.T) {
	f := NewFormatter("", "   ")

	assert.False(t, f.Configured())
}

func TestCheckoutURLCustomBaseURL(t *testing.T) {
	f := NewFormatter("https://api.whatsapp.example/", "573001112233")

	rawURL, err := f.CheckoutURL(sampleLines())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rawURL, "https://api.whatsapp.example/573001112233?text="), rawURL)
}

func TestCheckoutURLEmptyCartStillBuildsMessage(t *testing.T) {
	f := NewFormatter("", "573001112233")

	rawURL, err := f.CheckoutURL(nil)
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	message := parsed.Query().Get("text")
	assert.Contains(t, message, fmt.Sprintf("*Total:* %s", "$0.00"))
}
