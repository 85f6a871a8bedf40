// Package checkout drives one customer session from browsing to a
// payment outcome. The flow owns the cart for the duration of the
// session and is the only component that talks to the gateway during
// checkout.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/choihyeonji00/project-kiosk/cart"
	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/gateway"
)

type State string

const (
	StateBrowsing               State = "browsing"
	StateOrdering               State = "ordering"
	StatePaymentMethodSelection State = "payment_method_selection"
	StatePaymentConfirmation    State = "payment_confirmation"
	StatePaymentProcessing      State = "payment_processing"
	StatePaymentSuccess         State = "payment_success"
	StatePaymentFailure         State = "payment_failure"
)

var (
	ErrInvalidTransition  = errors.New("invalid checkout transition")
	ErrSubmissionInFlight = errors.New("order submission already in flight")
)

// ValidationError is a local precondition failure. It blocks the
// transition outright; the machine stays where it is and no network
// call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// forward transitions; PaymentProcessing is reachable only through
// Submit, never listed here.
var forward = map[State]State{
	StateBrowsing:               StateOrdering,
	StateOrdering:               StatePaymentMethodSelection,
	StatePaymentMethodSelection: StatePaymentConfirmation,
}

// back navigation; processing and terminal states have no back edge.
var backward = map[State]State{
	StateOrdering:               StateBrowsing,
	StatePaymentMethodSelection: StateOrdering,
	StatePaymentConfirmation:    StatePaymentMethodSelection,
}

// OrderPlacer is the one gateway call the flow needs. *gateway.Client
// satisfies it; tests substitute their own.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req gateway.OrderRequest) (*entity.Order, error)
}

type Flow struct {
	mu     sync.Mutex
	state  State
	cart   *cart.OrderCart
	api    OrderPlacer
	logger *slog.Logger

	submitting bool
	placed     *entity.Order
	failure    string
}

func NewFlow(c *cart.OrderCart, api OrderPlacer, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{state: StateBrowsing, cart: c, api: api, logger: logger}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) Cart() *cart.OrderCart { return f.cart }

// StartOrdering moves Browsing → Ordering.
func (f *Flow) StartOrdering() error {
	return f.advance(StateBrowsing)
}

// ProceedToPayment moves Ordering → PaymentMethodSelection.
func (f *Flow) ProceedToPayment() error {
	return f.advance(StateOrdering)
}

func (f *Flow) advance(from State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != from {
		return ErrInvalidTransition
	}
	f.state = forward[from]
	return nil
}

// ConfirmOrder moves PaymentMethodSelection → PaymentConfirmation.
// Requires a non-empty cart and a selected payment method; a violation
// keeps the machine in place with an actionable message.
func (f *Flow) ConfirmOrder() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePaymentMethodSelection {
		return ErrInvalidTransition
	}
	if len(f.cart.Items()) == 0 {
		return &ValidationError{Reason: "cart is empty: add at least one item before checkout"}
	}
	if f.cart.PaymentMethod() == nil {
		return &ValidationError{Reason: "no payment method selected"}
	}

	f.state = StatePaymentConfirmation
	return nil
}

// Back steps one screen back. Not allowed while a submission is in
// flight or from a terminal state.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting || f.state == StatePaymentProcessing {
		return ErrInvalidTransition
	}
	prev, ok := backward[f.state]
	if !ok {
		return ErrInvalidTransition
	}
	f.state = prev
	return nil
}

// Submit enters PaymentProcessing and issues exactly one CreateOrder
// call. A second submit while one is in flight is rejected, not queued.
// The gateway outcome is not an error of the flow: it lands in
// PaymentSuccess or PaymentFailure and the normalized message is kept
// for display. Submit itself only errors on preconditions.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting || f.state == StatePaymentProcessing {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if f.state != StatePaymentConfirmation {
		f.mu.Unlock()
		return ErrInvalidTransition
	}

	req, err := f.buildRequest()
	if err != nil {
		// validation failure: stay in PaymentConfirmation, no network call
		f.mu.Unlock()
		return err
	}

	f.state = StatePaymentProcessing
	f.submitting = true
	f.mu.Unlock()

	order, err := f.api.CreateOrder(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.state = StatePaymentFailure
		f.failure = failureMessage(err)
		f.logger.Warn("order submission failed", "error", err)
		return nil
	}
	f.state = StatePaymentSuccess
	f.placed = order
	f.logger.Info("order submitted", "orderNumber", order.OrderNumber, "total", req.ComputedTotal)
	return nil
}

// buildRequest snapshots the cart into the submission payload. Caller
// holds f.mu; the cart has its own lock and never calls back into the
// flow.
func (f *Flow) buildRequest() (gateway.OrderRequest, error) {
	items := f.cart.Items()
	if len(items) == 0 {
		return gateway.OrderRequest{}, &ValidationError{Reason: "cart is empty: add at least one item before checkout"}
	}
	method := f.cart.PaymentMethod()
	if method == nil {
		return gateway.OrderRequest{}, &ValidationError{Reason: "no payment method selected"}
	}

	subtotal := f.cart.TotalPrice()
	discount := f.cart.TotalDiscount()
	points := f.cart.UsedPoints()
	// points are valued at one minor currency unit each
	if discount+points > subtotal {
		return gateway.OrderRequest{}, &ValidationError{Reason: "discount and points exceed the order total"}
	}

	var memberID *uint
	if m := f.cart.CurrentMember(); m != nil {
		id := m.ID
		memberID = &id
	}

	return gateway.OrderRequest{
		Items:           items,
		PaymentMethodID: method.ID,
		MemberID:        memberID,
		TotalDiscount:   discount,
		UsedPoints:      points,
		ComputedTotal:   subtotal,
	}, nil
}

// FailureMessage is the normalized gateway message carried into
// PaymentFailure, empty otherwise.
func (f *Flow) FailureMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failure
}

// PlacedOrder is the created order after PaymentSuccess, nil otherwise.
func (f *Flow) PlacedOrder() *entity.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.placed
}

// Restart leaves a terminal state for Browsing and clears the cart so
// the next session starts empty.
func (f *Flow) Restart() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePaymentSuccess && f.state != StatePaymentFailure {
		return ErrInvalidTransition
	}
	f.state = StateBrowsing
	f.placed = nil
	f.failure = ""
	f.cart.Clear()
	return nil
}

func failureMessage(err error) string {
	var gerr *gateway.Error
	if errors.As(err, &gerr) {
		return gerr.Message
	}
	return err.Error()
}
