package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ecowaste_back_end/internal/cart"
	"ecowaste_back_end/internal/models"
	"ecowaste_back_end/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWSFixture(t *testing.T) (*httptest.Server, *redis.Client, *cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cartStore := cart.NewStore(storage.NewRedisKV(client, time.Hour))
	h := &Handler{Cart: cartStore, Redis: client}

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set("user_id", "u1")
		h.CartWebSocket(c)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, client, cartStore
}

func TestCartWebSocket_PushesUpdatesAndCleansUpOnDisconnect(t *testing.T) {
	prev := wsPingInterval
	wsPingInterval = 20 * time.Millisecond
	t.Cleanup(func() { wsPingInterval = prev })

	srv, client, cartStore := newWSFixture(t)
	ctx := context.Background()
	const channel = "cart:u1:events"

	require.NoError(t, cartStore.Add(ctx, "u1", models.CartEntry{
		ProductID: "veg-1", Name: "carrots", UnitPrice: 2.50,
	}))

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var frame struct {
		Type  string            `json:"type"`
		Items []models.CartLine `json:"items"`
		Total float64           `json:"total"`
	}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "connected", frame.Type)

	// The subscription comes up asynchronously; publish until it is seen.
	require.Eventually(t, func() bool {
		return client.Publish(ctx, channel, "updated").Val() > 0
	}, 2*time.Second, 10*time.Millisecond)

	for frame.Type != "cart" {
		require.NoError(t, conn.ReadJSON(&frame))
	}
	require.Len(t, frame.Items, 1)
	assert.Equal(t, "veg-1", frame.Items[0].ProductID)
	assert.InDelta(t, 2.50, frame.Total, 1e-9)

	// An idle socket still gets keepalive pings.
	for frame.Type != "ping" {
		require.NoError(t, conn.ReadJSON(&frame))
	}

	// A client that vanishes without a close frame is detected by the next
	// ping write failing, which ends the loop and closes the subscription.
	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool {
		return client.Publish(ctx, channel, "noop").Val() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
