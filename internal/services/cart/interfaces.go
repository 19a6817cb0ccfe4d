package cart

import "tienda/internal/models"

// Service manages the per-session shopping cart. Carts live in memory
// only; losing the process loses the carts, which is acceptable for the
// checkout demo.
type Service interface {
	Add(sessionID string, item models.CartItem)
	Remove(sessionID string, itemID uint)
	Items(sessionID string) []models.CartItem
	Total(sessionID string) float64
	Clear(sessionID string)
}
