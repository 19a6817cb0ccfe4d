package cart

import (
	"sync"

	"tienda/internal/models"
)

type service struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

// NewService creates an in-memory cart service.
func NewService() Service {
	return &service{carts: make(map[string][]models.CartItem)}
}

// Add appends an item to the cart, merging the quantity into an
// existing line with the same product id.
func (s *service) Add(sessionID string, item models.CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Quantity += item.Quantity
			return
		}
	}
	s.carts[sessionID] = append(lines, item)
}

// Remove drops the line with the given product id.
func (s *service) Remove(sessionID string, itemID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ID == itemID {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// Items returns the cart lines in insertion order. The slice is a copy.
func (s *service) Items(sessionID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[sessionID]
	out := make([]models.CartItem, len(lines))
	copy(out, lines)
	return out
}

// Total returns the sum of line subtotals.
func (s *service) Total(sessionID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.carts[sessionID] {
		total += line.Subtotal()
	}
	return total
}

// Clear empties the cart.
func (s *service) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
