package cart

import "storemerch/models"

// Persister abstracts the durable slot the cart is written to. The store
// reads the slot once at construction and overwrites it wholesale after every
// mutation; there are no incremental writes.
type Persister interface {
	Load() ([]models.CartLine, error)
	Save(lines []models.CartLine) error
}
