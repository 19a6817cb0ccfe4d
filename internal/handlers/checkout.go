package handlers

import (
	"errors"

	"tienda/internal/middleware"
	"tienda/internal/services/checkout"
	"tienda/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler exposes the checkout flow over HTTP.
type CheckoutHandler struct {
	svc *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// GetCheckout returns the render state for the session: the bank grid,
// or the card form with the selected bank, plus the order summary. An
// empty cart yields only a redirect to the product listing.
func (h *CheckoutHandler) GetCheckout(c *fiber.Ctx) error {
	view := h.svc.View(c.Context(), session(c))
	return c.JSON(view)
}

// SelectBank handles a tap on a bank tile.
func (h *CheckoutHandler) SelectBank(c *fiber.Ctx) error {
	var input struct {
		BankID string `json:"bank_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	view, err := h.svc.SelectBank(c.Context(), session(c), input.BankID)
	if err != nil {
		return flowFailure(c, err)
	}
	return response.Success(c, "Banco seleccionado", view)
}

// ChangeBank clears the bank selection.
func (h *CheckoutHandler) ChangeBank(c *fiber.Ctx) error {
	view := h.svc.ChangeBank(c.Context(), session(c))
	return response.Success(c, "Cambiar Banco", view)
}

// Pay submits the card form: order creation followed by payment.
func (h *CheckoutHandler) Pay(c *fiber.Ctx) error {
	var input checkout.CardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	receipt, err := h.svc.Pay(c.Context(), session(c), input)
	if err != nil {
		return flowFailure(c, err)
	}
	return response.Success(c, receipt.Message, receipt)
}

func session(c *fiber.Ctx) checkout.Session {
	return checkout.Session{
		ID:   middleware.SessionID(c),
		User: middleware.Claims(c),
	}
}

// flowFailure maps a checkout failure to its HTTP shape. The message is
// what the client shows as the error notification.
func flowFailure(c *fiber.Ctx, err error) error {
	var flowErr *checkout.FlowError
	if !errors.As(err, &flowErr) {
		return response.ServerError(c, checkout.MsgGenericError)
	}
	if flowErr.AuthRequired {
		return response.AuthRequired(c, flowErr.Message)
	}
	status := fiber.StatusBadRequest
	if flowErr.Message == checkout.MsgPaymentInProgress {
		status = fiber.StatusConflict
	}
	return response.FlowFailure(c, status, flowErr.Message, flowErr.Redirect)
}
