package payments

import (
	"context"

	"github.com/arshalif/cashi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/arshalif/cashi/services/payments PaymentGW

// PaymentGW defines the payment gateways interface
type PaymentGW interface {
	// PublishPaymentProcessed emits an event for a recorded payment
	PublishPaymentProcessed(ctx context.Context, event *models.PaymentProcessedEvent) error
}
