package handlers

import (
	"net/http"

	"ecowaste_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	lines, total, err := h.Cart.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}

// POST /api/cart/add
func (h *Handler) AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string  `json:"product_id" binding:"required"`
		Name      string  `json:"name" binding:"required"`
		UnitPrice float64 `json:"unit_price"`
		Image     string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	entry := models.CartEntry{
		ProductID: input.ProductID,
		Name:      input.Name,
		UnitPrice: input.UnitPrice,
		Image:     input.Image,
	}
	if err := h.Cart.Add(c.Request.Context(), userID, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
		return
	}
	h.publishCartEvent(c.Request.Context(), userID, "updated")

	lines, total, err := h.Cart.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "added to cart", "items": lines, "total": total})
}

// POST /api/cart/quantity
func (h *Handler) UpdateQuantity(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Delta     int    `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.Cart.UpdateQuantity(c.Request.Context(), userID, input.ProductID, input.Delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
		return
	}
	h.publishCartEvent(c.Request.Context(), userID, "updated")

	lines, total, err := h.Cart.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}

// DELETE /api/cart/:productId
func (h *Handler) RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	if err := h.Cart.Remove(c.Request.Context(), userID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update cart"})
		return
	}
	h.publishCartEvent(c.Request.Context(), userID, "updated")

	lines, total, err := h.Cart.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from cart", "items": lines, "total": total})
}

// DELETE /api/cart
func (h *Handler) ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.Cart.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear cart"})
		return
	}
	h.publishCartEvent(c.Request.Context(), userID, "cleared")

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
