package handlers

import (
	"context"
	"log"

	"ecowaste_back_end/internal/cart"
	"ecowaste_back_end/internal/catalog"
	"ecowaste_back_end/internal/checkout"
	"ecowaste_back_end/internal/donations"
	"ecowaste_back_end/internal/models"
	"ecowaste_back_end/internal/orders"
	"ecowaste_back_end/internal/utils"

	"github.com/redis/go-redis/v9"
)

// Handler carries the stores each route needs. Everything is injected once
// at startup instead of read from package globals, so tests can assemble a
// handler over in-memory stores.
type Handler struct {
	Cart      *cart.Store
	Orders    orders.Store
	Checkout  *checkout.Manager
	Catalog   *catalog.Store
	Search    *catalog.SearchService
	Images    *catalog.ImageStore
	Donations donations.Store
	Redis     *redis.Client

	// SendConfirmation runs after a completed checkout, detached from the
	// request. Left nil, no mail is sent (tests, reduced environments).
	SendConfirmation func(email string, order models.Order)
}

// DefaultConfirmationSender renders the receipt PDF and emails it. A failed
// render downgrades to a mail without attachment; a failed send only logs.
func DefaultConfirmationSender(email string, order models.Order) {
	pdf, err := utils.RenderReceiptPDF(order.OrderID)
	if err != nil {
		log.Printf("⚠️ Receipt PDF for order %s failed, sending without attachment: %v", order.OrderID, err)
		pdf = nil
	}
	if err := utils.SendOrderConfirmation(email, order, pdf); err != nil {
		log.Printf("⚠️ Confirmation email for order %s failed: %v", order.OrderID, err)
	}
}

// publishCartEvent tells the user's open websockets that the cart changed.
// Best effort: a failed publish never fails the mutation that triggered it.
func (h *Handler) publishCartEvent(ctx context.Context, userID, event string) {
	if h.Redis == nil {
		return
	}
	if err := h.Redis.Publish(ctx, "cart:"+userID+":events", event).Err(); err != nil {
		log.Printf("⚠️ Cart event publish failed for %s: %v", userID, err)
	}
}
