package orders

import (
	"context"
	"errors"

	"ecowaste_back_end/internal/models"
)

var ErrOrderNotFound = errors.New("orders: order not found")

// Store is the append-only order collection. Orders are never updated or
// deleted; ListForUser returns most-recent-first.
type Store interface {
	Create(ctx context.Context, order *models.Order) error
	ListForUser(ctx context.Context, userID string) ([]models.Order, error)
	Get(ctx context.Context, userID, orderID string) (*models.Order, error)
}
