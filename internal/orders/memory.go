package orders

import (
	"context"
	"sync"
	"time"

	"ecowaste_back_end/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps orders in a slice, newest first. Used by tests and local
// runs without a ScyllaDB cluster.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []models.Order
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (m *MemoryStore) Create(_ context.Context, order *models.Order) error {
	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = m.now().UTC()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusCompleted
	}

	stored := *order
	stored.Items = append([]models.OrderItem(nil), order.Items...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append([]models.Order{stored}, m.orders...)
	return nil
}

func (m *MemoryStore) ListForUser(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			cp := o
			cp.Items = append([]models.OrderItem(nil), o.Items...)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, userID, orderID string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.orders {
		if o.UserID == userID && o.OrderID == orderID {
			cp := o
			cp.Items = append([]models.OrderItem(nil), o.Items...)
			return &cp, nil
		}
	}
	return nil, ErrOrderNotFound
}
