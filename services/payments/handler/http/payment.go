package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/arshalif/cashi/internal/pkg/logger"
	"github.com/arshalif/cashi/internal/pkg/models"
	"github.com/arshalif/cashi/internal/pkg/validation"
	"github.com/arshalif/cashi/internal/utils"
	"github.com/arshalif/cashi/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// SubmitPayment handles payment submission requests
func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for payment submission",
			logger.ErrorField(err),
			logger.String("endpoint", "SubmitPayment"),
		)
		return utils.PaymentValidationFailedResponse(c, "Invalid request payload")
	}

	payment, err := h.paymentUC.SubmitPayment(c.Request().Context(), &req)
	if err != nil {
		var vErr *validation.ValidationError
		if errors.As(err, &vErr) {
			return utils.PaymentValidationFailedResponse(c, vErr.Reason)
		}

		logger.Error("Failed to process payment",
			logger.ErrorField(err),
			logger.String("currency", req.Currency),
		)
		return utils.PaymentInternalErrorResponse(c, err.Error())
	}

	return utils.PaymentCreatedResponse(c, payment)
}

// ListTransactions handles transaction history requests
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.paymentUC.ListTransactions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.ErrorField(err),
		)
		return utils.TransactionListErrorResponse(c, err.Error())
	}

	return utils.TransactionListResponse(c, transactions)
}
