package handlers

import (
	"errors"
	"log"
	"net/http"

	"ecowaste_back_end/internal/checkout"

	"github.com/gin-gonic/gin"
)

// POST /api/checkout/begin
func (h *Handler) BeginCheckout(c *gin.Context) {
	userID := c.GetString("user_id")

	items, total, err := h.Checkout.Begin(c.Request.Context(), userID)
	if errors.Is(err, checkout.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start checkout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// POST /api/checkout/pay
func (h *Handler) SubmitPayment(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")

	var details checkout.PaymentDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	order, err := h.Checkout.SubmitPayment(c.Request.Context(), userID, details)
	switch {
	case errors.Is(err, checkout.ErrInvalidPayment):
		c.JSON(http.StatusBadRequest, gin.H{"error": "all payment fields are required"})
		return
	case errors.Is(err, checkout.ErrNoSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no active checkout"})
		return
	case errors.Is(err, checkout.ErrAlreadyProcessing):
		c.JSON(http.StatusConflict, gin.H{"error": "payment already processing"})
		return
	case err != nil:
		log.Printf("❌ Checkout failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}

	h.publishCartEvent(c.Request.Context(), userID, "cleared")
	if email != "" && h.SendConfirmation != nil {
		go h.SendConfirmation(email, *order)
	}

	log.Printf("🧾 Order %s placed by %s (%.2f€)", order.OrderID, userID, order.Total)
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// POST /api/checkout/abandon
func (h *Handler) AbandonCheckout(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.Checkout.Abandon(userID); errors.Is(err, checkout.ErrAlreadyProcessing) {
		c.JSON(http.StatusConflict, gin.H{"error": "payment already processing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "checkout abandoned"})
}
