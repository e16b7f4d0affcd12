package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/arshalif/cashi/internal/pkg/logger"
	"github.com/arshalif/cashi/internal/pkg/models"
	"github.com/arshalif/cashi/internal/pkg/validation"
)

// SubmitPayment validates a payment request and records it. Validation
// failures short-circuit before any storage call; exactly one write is
// attempted per call and there are no retries.
func (u *PaymentUC) SubmitPayment(ctx context.Context, req *models.PaymentRequest) (*models.Payment, error) {
	currency, ok := models.CurrencyFromCode(req.Currency)
	if !ok {
		return nil, validation.NewValidationError(fmt.Sprintf("Unsupported currency: %s", req.Currency))
	}

	now := time.Now().UTC()
	payment := &models.Payment{
		// The ID is derived from the payment timestamp so it is
		// deterministic and sortable without a database sequence.
		// Submissions racing within the same millisecond can collide;
		// acceptable for this service's guarantees.
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		RecipientEmail: req.RecipientEmail,
		Amount:         req.Amount,
		Currency:       currency,
		Timestamp:      now,
	}

	if result := validation.ValidatePayment(payment); !result.Valid {
		logger.Warn("Payment rejected by validation",
			logger.String("currency", payment.Currency.Code()),
			logger.Float64("amount", payment.Amount),
			logger.String("reason", result.Message),
		)
		return nil, validation.NewValidationError(result.Message)
	}

	if err := u.transactionRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	u.publishProcessed(ctx, payment)

	return payment, nil
}

// publishProcessed emits the payment-processed event. Publishing is best
// effort: a failed emission is logged and never fails the submission.
func (u *PaymentUC) publishProcessed(ctx context.Context, payment *models.Payment) {
	event := &models.PaymentProcessedEvent{
		EventID:        uuid.NewString(),
		PaymentID:      payment.ID,
		RecipientEmail: payment.RecipientEmail,
		Amount:         payment.Amount,
		Currency:       payment.Currency.Code(),
		Timestamp:      payment.Timestamp,
	}

	if err := u.paymentGW.PublishPaymentProcessed(ctx, event); err != nil {
		logger.Warn("Failed to publish payment processed event",
			logger.String("payment_id", payment.ID),
			logger.ErrorField(err),
		)
	}
}
