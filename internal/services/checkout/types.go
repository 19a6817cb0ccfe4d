package checkout

import "tienda/internal/models"

// Session carries the external state a request acts on behalf of.
type Session struct {
	ID   string
	User *models.UserClaims // nil when the request carried no valid identity
}

// Step names the interactive step the session is in.
type Step string

const (
	StepSelectingBank Step = "selecting_bank"
	StepEnteringCard  Step = "entering_card"
)

// CardInput is the card form as typed by the user. The flow applies the
// input masks before submission.
type CardInput struct {
	Number string `json:"card_number"`
	Expiry string `json:"card_expiry"`
	CVV    string `json:"card_cvv"`
}

// View is the render state of the checkout page for one session.
type View struct {
	Redirect     string            `json:"redirect,omitempty"`
	Step         Step              `json:"step,omitempty"`
	Banks        []models.Bank     `json:"banks,omitempty"`
	SelectedBank *models.Bank      `json:"selected_bank,omitempty"`
	Processing   bool              `json:"processing"`
	Items        []models.CartItem `json:"items,omitempty"`
	Total        float64           `json:"total"`
}

// Receipt is the outcome of a successful payment submission.
type Receipt struct {
	OrderID  models.OrderID `json:"order_id"`
	Bank     models.Bank    `json:"bank"`
	Message  string         `json:"message"`
	Redirect string         `json:"redirect"`
}
