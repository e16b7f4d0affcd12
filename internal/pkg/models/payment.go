package models

import (
	"time"
)

// Payment represents a requested transfer. It is constructed by the
// submission flow immediately before validation and never mutated
// afterwards.
type Payment struct {
	ID             string    `json:"id"`
	RecipientEmail string    `json:"recipientEmail"`
	Amount         float64   `json:"amount"`
	Currency       Currency  `json:"currency"`
	Timestamp      time.Time `json:"timestamp"`
}

// PaymentRequest represents the POST /payments request body
type PaymentRequest struct {
	RecipientEmail string  `json:"recipientEmail"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
}

// PaymentResponse represents the response to a payment submission
type PaymentResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Payment *Payment `json:"payment,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// PaymentProcessedEvent is published after a payment has been validated
// and recorded
type PaymentProcessedEvent struct {
	EventID        string    `json:"event_id"`
	PaymentID      string    `json:"payment_id"`
	RecipientEmail string    `json:"recipient_email"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Timestamp      time.Time `json:"timestamp"`
}
