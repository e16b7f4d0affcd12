package gateway

import (
	natspkg "github.com/arshalif/cashi/internal/pkg/nats"
)

// PaymentGW publishes payment events to NATS
type PaymentGW struct {
	natsClient *natspkg.Client
}

// NewPaymentGW creates a new payment gateway instance
func NewPaymentGW(natsClient *natspkg.Client) *PaymentGW {
	return &PaymentGW{
		natsClient: natsClient,
	}
}
