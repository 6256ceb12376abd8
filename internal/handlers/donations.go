package handlers

import (
	"net/http"

	"ecowaste_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// POST /api/donations
func (h *Handler) CreateDonation(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Amount  float64 `json:"amount" binding:"required,gt=0"`
		Message string  `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive amount is required"})
		return
	}

	donation := &models.Donation{
		UserID:  userID,
		Amount:  input.Amount,
		Message: input.Message,
	}
	if err := h.Donations.Create(c.Request.Context(), donation); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"donation": donation})
}

// GET /api/donations
func (h *Handler) ListMyDonations(c *gin.Context) {
	userID := c.GetString("user_id")

	list, err := h.Donations.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load donations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": list})
}
