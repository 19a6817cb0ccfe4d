package models

// PaymentRequest is the body sent to POST /payments on the backend.
// Card fields carry the formatted display values as typed by the user
// (spaces in the number, slash in the expiry); the backend accepts
// them as-is. The request is transient and never persisted locally.
type PaymentRequest struct {
	OrderID     OrderID `json:"order_id"`
	Amount      float64 `json:"amount"`
	CardNumber  string  `json:"card_number"`
	CVV         string  `json:"cvv"`
	Expiry      string  `json:"expiry"`
	BankID      string  `json:"bank_id"`
	Description string  `json:"description"`
}
