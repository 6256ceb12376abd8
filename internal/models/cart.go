package models

// CartEntry is a single unit of purchase intent. Adding the same deal twice
// produces two entries; quantity is always derived by counting entries that
// share a ProductID, never stored on the entry itself.
type CartEntry struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
}

// CartLine is the per-product view of the cart, recomputed from the entry
// list on every read.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}
