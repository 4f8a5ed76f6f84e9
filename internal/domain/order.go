package domain

import "time"

// Order is the record of a simulated checkout.
type Order struct {
	OrderID   string     `json:"order_id"`
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	PlacedAt  time.Time  `json:"placed_at"`
}
