package models

import "time"

type OrderStatus string

const (
	// OrderStatusCompleted is the only status the checkout flow produces
	// today; the enum exists so pickup/refund states can be added later.
	OrderStatusCompleted OrderStatus = "completed"
)

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Order is a frozen copy of the cart at checkout time. Total is fixed at
// creation and never recomputed from live catalog prices.
type Order struct {
	OrderID   string      `json:"order_id"`
	UserID    string      `json:"user_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
