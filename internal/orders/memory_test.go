package orders

import (
	"context"
	"testing"
	"time"

	"ecowaste_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAssignsIDAndTimestamp(t *testing.T) {
	s := NewMemoryStore()
	order := &models.Order{UserID: "u1", Total: 8.50}

	require.NoError(t, s.Create(context.Background(), order))

	assert.NotEmpty(t, order.OrderID)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
}

func TestMemoryStore_ListIsMostRecentFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := &models.Order{UserID: "u1", Total: 1}
	second := &models.Order{UserID: "u1", Total: 2}
	other := &models.Order{UserID: "u2", Total: 3}
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))
	require.NoError(t, s.Create(ctx, other))

	got, err := s.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.OrderID, got[0].OrderID)
	assert.Equal(t, first.OrderID, got[1].OrderID)
}

func TestMemoryStore_StoredOrderIsImmutable(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	order := &models.Order{
		UserID: "u1",
		Items:  []models.OrderItem{{ProductID: "veg-1", Name: "carrots", UnitPrice: 2.50, Quantity: 3}},
		Total:  7.50,
	}
	require.NoError(t, s.Create(ctx, order))

	// Mutating the caller's copy after creation must not reach the store.
	order.Items[0].UnitPrice = 99
	order.Total = 99

	got, err := s.Get(ctx, "u1", order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 2.50, got.Items[0].UnitPrice)
	assert.Equal(t, 7.50, got.Total)

	// And mutating a listed copy must not either.
	got.Items[0].Quantity = 42
	again, err := s.Get(ctx, "u1", order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Items[0].Quantity)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	s.now = func() time.Time { return time.Unix(0, 0) }

	_, err := s.Get(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
