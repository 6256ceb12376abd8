package checkout

import (
	"context"
	"errors"
	"log"
	"sync"

	"ecowaste_back_end/internal/cart"
	"ecowaste_back_end/internal/models"
	"ecowaste_back_end/internal/orders"
)

var (
	ErrEmptyCart         = errors.New("checkout: cart is empty")
	ErrNoSession         = errors.New("checkout: no active checkout session")
	ErrInvalidPayment    = errors.New("checkout: all payment fields are required")
	ErrAlreadyProcessing = errors.New("checkout: payment already processing")
)

type state int

const (
	stateAwaitingPayment state = iota
	stateProcessing
)

// session holds the snapshot taken when the user entered checkout. The order
// is built from this snapshot, not from the live cart.
type session struct {
	items []models.OrderItem
	total float64
	state state
}

// Manager drives one checkout session per user: Begin snapshots the cart,
// SubmitPayment runs the simulated charge exactly once and turns the snapshot
// into an order, Abandon drops the session with no side effects.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	cart     *cart.Store
	orders   orders.Store
	payments PaymentProcessor
}

func NewManager(cartStore *cart.Store, orderStore orders.Store, payments PaymentProcessor) *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		cart:     cartStore,
		orders:   orderStore,
		payments: payments,
	}
}

// Begin snapshots the user's cart and opens a checkout session. An empty cart
// is rejected so no further checkout state is reachable with one.
func (m *Manager) Begin(ctx context.Context, userID string) ([]models.OrderItem, float64, error) {
	lines, total, err := m.cart.Summary(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(lines) == 0 {
		return nil, 0, ErrEmptyCart
	}

	items := make([]models.OrderItem, len(lines))
	for i, l := range lines {
		items[i] = models.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Image:     l.Image,
		}
	}

	m.mu.Lock()
	m.sessions[userID] = &session{items: items, total: total, state: stateAwaitingPayment}
	m.mu.Unlock()

	return items, total, nil
}

// SubmitPayment validates the form, charges the simulator and creates exactly
// one order from the Begin-time snapshot. A second submission while the first
// is still processing gets ErrAlreadyProcessing and no second order.
func (m *Manager) SubmitPayment(ctx context.Context, userID string, details PaymentDetails) (*models.Order, error) {
	if !details.complete() {
		// Validation failure leaves the session awaiting payment.
		return nil, ErrInvalidPayment
	}

	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrNoSession
	}
	if sess.state == stateProcessing {
		m.mu.Unlock()
		return nil, ErrAlreadyProcessing
	}
	sess.state = stateProcessing
	m.mu.Unlock()

	// Once processing starts it runs to completion, even if the request
	// that triggered it goes away.
	ctx = context.WithoutCancel(ctx)

	if err := m.payments.Charge(ctx, sess.total, details); err != nil {
		m.mu.Lock()
		sess.state = stateAwaitingPayment
		m.mu.Unlock()
		return nil, err
	}

	order := &models.Order{
		UserID: userID,
		Items:  sess.items,
		Total:  sess.total,
		Status: models.OrderStatusCompleted,
	}
	if err := m.orders.Create(ctx, order); err != nil {
		m.mu.Lock()
		sess.state = stateAwaitingPayment
		m.mu.Unlock()
		return nil, err
	}

	// The order is the durable fact; a failed cart clear must not undo the
	// checkout. The stale key is capped by its TTL anyway.
	if err := m.cart.ClearAfterCheckout(ctx, userID); err != nil {
		log.Printf("⚠️ Cart clear after checkout failed for %s: %v", userID, err)
	}

	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()

	return order, nil
}

// Abandon drops the session before payment; the cart is untouched. Dropping
// is refused while a payment is processing.
func (m *Manager) Abandon(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		return nil
	}
	if sess.state == stateProcessing {
		return ErrAlreadyProcessing
	}
	delete(m.sessions, userID)
	return nil
}
