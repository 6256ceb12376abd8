package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecowaste_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// ScyllaStore persists orders in the orders keyspace. The table clusters by
// created_at DESC so ListForUser reads most-recent-first without sorting:
//
//	CREATE TABLE orders (
//	    user_id    text,
//	    created_at timestamp,
//	    order_id   text,
//	    items      text,
//	    total      double,
//	    status     text,
//	    PRIMARY KEY ((user_id), created_at, order_id)
//	) WITH CLUSTERING ORDER BY (created_at DESC, order_id ASC);
type ScyllaStore struct {
	session *gocql.Session
	now     func() time.Time
}

func NewScyllaStore(session *gocql.Session) *ScyllaStore {
	return &ScyllaStore{session: session, now: time.Now}
}

func (s *ScyllaStore) Create(ctx context.Context, order *models.Order) error {
	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now().UTC()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusCompleted
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	err = s.session.Query(`INSERT INTO orders (user_id, created_at, order_id, items, total, status)
	                       VALUES (?, ?, ?, ?, ?, ?)`,
		order.UserID, order.CreatedAt, order.OrderID, string(items), order.Total, string(order.Status)).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (s *ScyllaStore) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	iter := s.session.Query(`SELECT created_at, order_id, items, total, status
	                         FROM orders WHERE user_id = ?`, userID).
		WithContext(ctx).Iter()

	var out []models.Order
	var (
		createdAt time.Time
		orderID   string
		itemsJSON string
		total     float64
		status    string
	)
	for iter.Scan(&createdAt, &orderID, &itemsJSON, &total, &status) {
		var items []models.OrderItem
		if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
			iter.Close()
			return nil, fmt.Errorf("decode order %s: %w", orderID, err)
		}
		out = append(out, models.Order{
			OrderID:   orderID,
			UserID:    userID,
			Items:     items,
			Total:     total,
			Status:    models.OrderStatus(status),
			CreatedAt: createdAt,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (s *ScyllaStore) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	all, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].OrderID == orderID {
			return &all[i], nil
		}
	}
	return nil, ErrOrderNotFound
}
