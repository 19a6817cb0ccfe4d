package models

// CartItem is a single line in a user's cart.
type CartItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the line total for the item.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
