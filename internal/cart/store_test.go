package cart

import (
	"context"
	"testing"
	"time"

	"ecowaste_back_end/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(storage.NewRedisKV(client, 30*24*time.Hour)), mr
}

func TestStore_AddAccumulatesQuantity(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.Add(ctx, "u1", entry("veg-2", 1.00)))

	lines, total, err := s.Summary(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.InDelta(t, 6.00, total, 1e-9)
}

func TestStore_RemoveDropsEveryUnit(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.Add(ctx, "u1", entry("veg-2", 1.00)))

	require.NoError(t, s.Remove(ctx, "u1", "veg-1"))

	lines, total, err := s.Summary(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "veg-2", lines[0].ProductID)
	assert.InDelta(t, 1.00, total, 1e-9)
}

func TestStore_DecrementToZeroRemovesProduct(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.UpdateQuantity(ctx, "u1", "veg-1", -1))

	lines, _, err := s.Summary(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestStore_IncrementAbsentProductIsNoop(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.UpdateQuantity(ctx, "u1", "veg-9", 1))

	lines, _, err := s.Summary(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "veg-1", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestStore_DeltaMagnitudeIsIgnored(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.UpdateQuantity(ctx, "u1", "veg-1", 5)) // still +1

	lines, _, err := s.Summary(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	require.NoError(t, s.UpdateQuantity(ctx, "u1", "veg-1", -5)) // still -1
	lines, _, err = s.Summary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestStore_WriteThroughSurvivesNewInstance(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	kv := storage.NewRedisKV(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, NewStore(kv).Add(ctx, "u1", entry("veg-1", 2.50)))

	// A fresh store over the same storage sees the persisted entries,
	// the same way a page reload restores the cart.
	lines, _, err := NewStore(kv).Summary(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "veg-1", lines[0].ProductID)
}

func TestStore_ClearKeepsKeyClearAfterCheckoutRemovesIt(t *testing.T) {
	s, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.Clear(ctx, "u1"))

	// Explicit clear persists an empty list under the same key.
	assert.True(t, mr.Exists("cart:u1"))
	lines, _, err := s.Summary(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, s.Add(ctx, "u1", entry("veg-1", 2.50)))
	require.NoError(t, s.ClearAfterCheckout(ctx, "u1"))

	// Checkout must leave no residual storage artifact.
	assert.False(t, mr.Exists("cart:u1"))
}
