package models

import "time"

// Donation is a monetary contribution to the food-rescue fund.
type Donation struct {
	DonationID string    `json:"donation_id"`
	UserID     string    `json:"user_id"`
	Amount     float64   `json:"amount"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
