package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Product is a surplus-food deal published by a partner store.
type Product struct {
	ID            gocql.UUID `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"original_price"`
	Stock         int        `json:"stock"`
	Category      string     `json:"category"`
	ImageURLs     []string   `json:"image_urls"`
	Tags          []string   `json:"tags"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}
