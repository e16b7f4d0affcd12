package usecase

import (
	"github.com/arshalif/cashi/internal/pkg/models"
	"github.com/arshalif/cashi/services/payments"
)

// PaymentUC implements the payment submission and transaction listing
// flows on top of the storage and gateway ports.
type PaymentUC struct {
	transactionRepo payments.TransactionRepo
	paymentGW       payments.PaymentGW
	cfg             *models.Config
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	transactionRepo payments.TransactionRepo,
	paymentGW payments.PaymentGW,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		transactionRepo: transactionRepo,
		paymentGW:       paymentGW,
		cfg:             cfg,
	}
}
