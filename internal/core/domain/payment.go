package domain

import (
	"errors"
	"time"
)

var ErrPaymentNotFound = errors.New("payment not found")

// Payment records money received from a customer.
type Payment struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Amount     float64   `json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
	Method     string    `json:"method,omitempty"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
