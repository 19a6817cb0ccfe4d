package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tienda/internal/card"
	"tienda/internal/gateway"
	"tienda/internal/metrics"
	"tienda/internal/models"

	"go.uber.org/zap"
)

// Service drives the checkout flow.
type Service struct {
	banks   BankRegistry
	cart    CartService
	gw      Gateway
	tokens  TokenStore
	states  *stateStore
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewService wires the flow's collaborators.
func NewService(
	banks BankRegistry,
	cartSvc CartService,
	gw Gateway,
	tokens TokenStore,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &Service{
		banks:   banks,
		cart:    cartSvc,
		gw:      gw,
		tokens:  tokens,
		states:  newStateStore(),
		log:     logger,
		metrics: m,
	}
}

// View returns the render state for the session. An empty cart sends
// the client back to the product listing, except while a submission is
// still in flight (the cart empties on success before navigation).
func (s *Service) View(_ context.Context, sess Session) View {
	state := s.states.get(sess.ID)
	items := s.cart.Items(sess.ID)

	if len(items) == 0 && !state.processing {
		return View{Redirect: RedirectProducts}
	}

	v := View{
		Processing: state.processing,
		Items:      items,
		Total:      s.cart.Total(sess.ID),
	}
	if state.selectedBank == nil {
		v.Step = StepSelectingBank
		v.Banks = s.banks.All()
	} else {
		v.Step = StepEnteringCard
		v.SelectedBank = state.selectedBank
	}
	return v
}

// SelectBank records the user's bank choice. Without an authenticated
// user the selection is refused and the client is told to open the
// login prompt; the selection stays empty and nothing is called.
func (s *Service) SelectBank(ctx context.Context, sess Session, bankID string) (View, error) {
	if sess.User == nil {
		return View{}, &FlowError{Message: MsgLoginToContinue, AuthRequired: true}
	}

	bank, err := s.banks.ByID(bankID)
	if err != nil {
		return View{}, &FlowError{Message: MsgSelectBank, Err: err}
	}

	s.states.setBank(sess.ID, &bank)
	s.metrics.BankSelections.WithLabelValues(bank.ID).Inc()
	return s.View(ctx, sess), nil
}

// ChangeBank clears the selection and returns to bank selection.
func (s *Service) ChangeBank(ctx context.Context, sess Session) View {
	s.states.setBank(sess.ID, nil)
	return s.View(ctx, sess)
}

// Pay runs the submission pipeline: create the order, then submit the
// payment with the returned order id. The two calls are strictly
// sequential and neither is retried. The processing flag covers the
// whole span and is reset on every path.
func (s *Service) Pay(ctx context.Context, sess Session, in CardInput) (*Receipt, error) {
	state := s.states.get(sess.ID)
	if state.selectedBank == nil {
		return nil, &FlowError{Message: MsgSelectBank}
	}
	bank := *state.selectedBank

	token, err := s.tokens.Token(ctx, sess.ID)
	if err != nil {
		s.log.Error("token lookup failed", zap.Error(err))
		return nil, &FlowError{Message: MsgGenericError, Err: err}
	}
	if token == "" {
		return nil, &FlowError{Message: MsgLoginToBuy, Redirect: RedirectAccount}
	}

	if !s.states.beginProcessing(sess.ID) {
		return nil, &FlowError{Message: MsgPaymentInProgress}
	}
	defer s.states.endProcessing(sess.ID)

	start := time.Now()
	receipt, err := s.submit(ctx, sess, bank, token, in)
	s.metrics.PaymentDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.PaymentsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	s.metrics.PaymentsTotal.WithLabelValues("success").Inc()
	return receipt, nil
}

func (s *Service) submit(ctx context.Context, sess Session, bank models.Bank, token string, in CardInput) (*Receipt, error) {
	items := s.cart.Items(sess.ID)
	total := s.cart.Total(sess.ID)

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ID,
			Quantity:  item.Quantity,
		})
	}

	orderID, err := s.gw.CreateOrder(ctx, token, orderItems)
	if err != nil {
		s.log.Error("order creation failed",
			zap.String("bank_id", bank.ID),
			zap.Error(err),
		)
		return nil, s.flowError(err)
	}

	payment := models.PaymentRequest{
		OrderID:     orderID,
		Amount:      total,
		CardNumber:  card.FormatNumber(in.Number),
		CVV:         card.ClampCVV(in.CVV),
		Expiry:      card.FormatExpiry(in.Expiry),
		BankID:      bank.ID,
		Description: fmt.Sprintf(descriptionFormat, len(items), orderID),
	}

	if err := s.gw.SubmitPayment(ctx, token, payment); err != nil {
		s.log.Error("payment submission failed",
			zap.String("order_id", string(orderID)),
			zap.String("bank_id", bank.ID),
			zap.Error(err),
		)
		return nil, s.flowError(err)
	}

	s.cart.Clear(sess.ID)
	s.states.setBank(sess.ID, nil)

	s.log.Info("payment processed",
		zap.String("order_id", string(orderID)),
		zap.String("bank_id", bank.ID),
		zap.Float64("amount", total),
	)

	return &Receipt{
		OrderID:  orderID,
		Bank:     bank,
		Message:  fmt.Sprintf(successFormat, bank.Name),
		Redirect: RedirectAccount,
	}, nil
}

// flowError converts a gateway failure into its user-facing form: the
// backend's detail message when it sent one, the generic fallback for
// network and decode failures.
func (s *Service) flowError(err error) error {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return &FlowError{Message: apiErr.Detail, Err: err}
	}
	return &FlowError{Message: MsgGenericError, Err: err}
}
