package payments

import (
	"context"

	"github.com/arshalif/cashi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/arshalif/cashi/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// SubmitPayment validates a payment request and records it. It
	// returns a ValidationError when the request is rejected before any
	// storage call is made.
	SubmitPayment(ctx context.Context, req *models.PaymentRequest) (*models.Payment, error)

	// ListTransactions returns all recorded transactions sorted newest
	// first. Storage failures degrade to the cached or empty listing.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}
