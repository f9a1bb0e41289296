package cart

import (
	"log"
	"sync"

	"storemerch/models"
)

// AddResult distinguishes the two outcomes of AddItem so the caller can show
// the matching notification ("item added" vs "quantity updated").
type AddResult int

const (
	LineAdded AddResult = iota
	LineUpdated
)

// Store is the authoritative, persisted set of cart lines. It owns an
// in-memory line list plus a pluggable persistence adapter; every mutation is
// written back to the adapter, and a write failure is logged as a warning
// while the in-memory state stays authoritative for the session.
type Store struct {
	mu        sync.RWMutex
	lines     []models.CartLine
	persister Persister
}

// NewStore creates a Store hydrated from the given persister. A load failure
// starts an empty cart with a warning instead of failing.
func NewStore(p Persister) *Store {
	s := &Store{persister: p}
	if p != nil {
		lines, err := p.Load()
		if err != nil {
			log.Printf("⚠️  Cart: failed to restore persisted cart, starting empty: %v", err)
		} else {
			s.lines = lines
			log.Printf("✓ Cart restored: %d line(s)", len(lines))
		}
	}
	return s
}

// AddItem merges entry into the cart by its composite key
// (productId, selectedColor). An existing line accumulates the quantity and
// keeps every other snapshot field; otherwise the entry is appended verbatim.
// No stock validation happens here — the calling UI clamps quantities before
// invoking the store.
func (s *Store) AddItem(entry models.CartLine) AddResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].SameLine(entry) {
			s.lines[i].Quantity += entry.Quantity
			s.persistLocked()
			log.Printf("🔁 Cart: quantity updated (productId=%s, color=%s, quantity=%d)",
				entry.ProductID, entry.SelectedColor, s.lines[i].Quantity)
			return LineUpdated
		}
	}

	s.lines = append(s.lines, entry)
	s.persistLocked()
	log.Printf("🛒 Cart: item added (productId=%s, color=%s, quantity=%d)",
		entry.ProductID, entry.SelectedColor, entry.Quantity)
	return LineAdded
}

// RemoveItem removes every line whose product id matches, regardless of the
// selected variant (removal deliberately uses a narrower key than merging;
// see DESIGN.md). Returns the number of lines removed so the caller may
// suppress the notification on a no-op. The cart is re-persisted either way.
func (s *Store) RemoveItem(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	var kept []models.CartLine
	for _, line := range s.lines {
		if line.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	s.lines = kept
	s.persistLocked()

	if removed > 0 {
		log.Printf("🗑️  Cart: removed %d line(s) for productId=%s", removed, productID)
	}
	return removed
}

// UpdateQuantity sets the quantity of every line with the given product id.
// A quantity below 1 removes the line: a line never survives at quantity 0.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
		}
	}
	s.persistLocked()
}

// RemoveAll clears every line unconditionally
func (s *Store) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persistLocked()
	log.Printf("🧹 Cart: cleared")
}

// Lines returns a copy of the current cart lines in insertion order
func (s *Store) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartLine(nil), s.lines...)
}

// LineCount returns the number of distinct lines. This is what the cart badge
// shows: distinct lines, not the sum of quantities.
func (s *Store) LineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// TotalPrice recomputes the cart total (unit price × quantity over all
// lines) on every call; it is never cached.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// persistLocked writes the full line list to the persister. Callers hold the
// lock. A failed write never alters the in-memory state.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	snapshot := append([]models.CartLine(nil), s.lines...)
	if err := s.persister.Save(snapshot); err != nil {
		log.Printf("⚠️  Cart: failed to persist cart: %v", err)
	}
}
