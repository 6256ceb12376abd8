package handlers

import (
	"errors"
	"log"
	"net/http"

	"ecowaste_back_end/internal/orders"
	"ecowaste_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/orders
func (h *Handler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	list, err := h.Orders.ListForUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("❌ Order lookup failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// GET /api/orders/:id
func (h *Handler) GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	order, err := h.Orders.Get(c.Request.Context(), userID, orderID)
	if errors.Is(err, orders.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load order"})
		return
	}

	resp := gin.H{"order": order}
	if qr, err := utils.GeneratePickupQR(order.OrderID); err == nil {
		resp["pickup_qr"] = qr
	}
	c.JSON(http.StatusOK, resp)
}
