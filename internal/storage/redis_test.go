package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisKV(t *testing.T) (*RedisKV, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisKV(client, 30*24*time.Hour), mr
}

func TestRedisKV_SaveLoad(t *testing.T) {
	kv, _ := setupRedisKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Save(ctx, "cart:u1", []byte(`[{"product_id":"veg-1"}]`)))

	data, err := kv.Load(ctx, "cart:u1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"product_id":"veg-1"}]`, string(data))
}

func TestRedisKV_LoadMissingKey(t *testing.T) {
	kv, _ := setupRedisKV(t)

	_, err := kv.Load(context.Background(), "cart:nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisKV_RemoveDeletesKey(t *testing.T) {
	kv, mr := setupRedisKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Save(ctx, "cart:u1", []byte("[]")))
	require.NoError(t, kv.Remove(ctx, "cart:u1"))

	assert.False(t, mr.Exists("cart:u1"))
	_, err := kv.Load(ctx, "cart:u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisKV_SaveSetsTTL(t *testing.T) {
	kv, mr := setupRedisKV(t)

	require.NoError(t, kv.Save(context.Background(), "cart:u1", []byte("[]")))
	assert.Greater(t, mr.TTL("cart:u1"), time.Duration(0))
}
