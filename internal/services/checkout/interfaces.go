package checkout

import (
	"context"

	"tienda/internal/models"
)

// Gateway is the commerce backend the flow submits to.
type Gateway interface {
	CreateOrder(ctx context.Context, token string, items []models.OrderItem) (models.OrderID, error)
	SubmitPayment(ctx context.Context, token string, req models.PaymentRequest) error
}

// TokenStore resolves the persisted auth token for a session. An empty
// token means the session is not logged in.
type TokenStore interface {
	Token(ctx context.Context, sessionID string) (string, error)
}

// CartService is the slice of the cart API the flow consumes.
type CartService interface {
	Items(sessionID string) []models.CartItem
	Total(sessionID string) float64
	Clear(sessionID string)
}

// BankRegistry lists the supported banks.
type BankRegistry interface {
	All() []models.Bank
	ByID(id string) (models.Bank, error)
}
