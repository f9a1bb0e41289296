package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"storemerch/models"
	"storemerch/utils"
)

// ErrNotConfigured is returned when no destination number is configured.
// Checkout fails closed: callers disable the checkout action instead of
// opening a malformed link.
var ErrNotConfigured = errors.New("whatsapp number is not configured")

// DefaultBaseURL is the WhatsApp click-to-chat endpoint
const DefaultBaseURL = "https://wa.me"

// Formatter renders the cart into the order message handed to WhatsApp and
// builds the outbound checkout link. The system gets no confirmation back —
// the order exists only as the message.
type Formatter struct {
	baseURL     string
	phoneNumber string
}

// NewFormatter creates a Formatter for the given destination number.
// phoneNumber may be empty, in which case checkout is disabled.
func NewFormatter(baseURL, phoneNumber string) *Formatter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Formatter{
		baseURL:     strings.TrimRight(baseURL, "/"),
		phoneNumber: strings.TrimSpace(phoneNumber),
	}
}

// Configured reports whether a destination number is set
func (f *Formatter) Configured() bool {
	return f.phoneNumber != ""
}

// Summarize renders the cart lines into the order message: one bullet per
// line with name, variant, quantity and subtotal, then the grand total and a
// short order reference the store owner can quote back.
func (f *Formatter) Summarize(lines []models.CartLine) string {
	items := make([]string, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		label := line.Name
		if line.SelectedColorName != "" {
			label = fmt.Sprintf("%s (%s)", line.Name, line.SelectedColorName)
		}
		items = append(items, fmt.Sprintf("• %s x%d - %s", label, line.Quantity, utils.FormatPrice(line.Subtotal())))
		total += line.Subtotal()
	}

	return fmt.Sprintf("🛍️ *Nuevo Pedido*\n\n*Productos:*\n%s\n\n*Total:* %s\n*Ref:* %s",
		strings.Join(items, "\n"), utils.FormatPrice(total), newOrderRef())
}

// CheckoutURL builds the outbound link:
// <base-url>/<number>?text=<url-encoded summary>
func (f *Formatter) CheckoutURL(lines []models.CartLine) (string, error) {
	if !f.Configured() {
		return "", ErrNotConfigured
	}

	message := f.Summarize(lines)
	return fmt.Sprintf("%s/%s?text=%s", f.baseURL, f.phoneNumber, url.QueryEscape(message)), nil
}

// newOrderRef returns a short reference for the order message
func newOrderRef() string {
	return uuid.NewString()[:8]
}
