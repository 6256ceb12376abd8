package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Browser origin enforcement happens at the CORS layer.
		return true
	},
}

// wsPingInterval paces the keepalive below; a var so tests can shorten it.
var wsPingInterval = 30 * time.Second

// CartWebSocket streams live cart state to the client. Every cart mutation
// publishes to the user's Redis channel; each connected socket reacts by
// pushing the freshly aggregated summary.
func (h *Handler) CartWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")
	if h.Redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cart sync is not available"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.Redis.Subscribe(ctx, "cart:"+userID+":events")
	defer pubsub.Close()
	ch := pubsub.Channel()

	conn.WriteJSON(gin.H{"type": "connected"})

	// The request context stops firing once Upgrade hijacks the
	// connection, so a periodic ping is what detects a vanished peer:
	// its write fails and ends the loop.
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}
			lines, total, err := h.Cart.Summary(ctx, userID)
			if err != nil {
				log.Printf("⚠️ Cart read for websocket failed: %v", err)
				continue
			}
			if err := conn.WriteJSON(gin.H{"type": "cart", "items": lines, "total": total}); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteJSON(gin.H{"type": "ping"}); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
