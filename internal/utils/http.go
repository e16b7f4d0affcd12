package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arshalif/cashi/internal/pkg/models"
)

// PaymentCreatedResponse sends the 201 body for a processed payment
func PaymentCreatedResponse(c echo.Context, payment *models.Payment) error {
	return c.JSON(http.StatusCreated, models.PaymentResponse{
		Success: true,
		Message: "Payment processed successfully",
		Payment: payment,
	})
}

// PaymentValidationFailedResponse sends the 400 body for a rejected payment
func PaymentValidationFailedResponse(c echo.Context, reason string) error {
	return c.JSON(http.StatusBadRequest, models.PaymentResponse{
		Success: false,
		Message: "Payment validation failed",
		Error:   reason,
	})
}

// PaymentInternalErrorResponse sends the 500 body for an unexpected failure
func PaymentInternalErrorResponse(c echo.Context, reason string) error {
	return c.JSON(http.StatusInternalServerError, models.PaymentResponse{
		Success: false,
		Message: "Internal server error",
		Error:   reason,
	})
}

// TransactionListResponse sends the 200 body for a transaction listing
func TransactionListResponse(c echo.Context, transactions []models.Transaction) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return c.JSON(http.StatusOK, models.TransactionListResponse{
		Success:      true,
		Transactions: transactions,
	})
}

// TransactionListErrorResponse sends the 500 body for a failed listing
func TransactionListErrorResponse(c echo.Context, reason string) error {
	return c.JSON(http.StatusInternalServerError, models.TransactionListResponse{
		Success:      false,
		Transactions: []models.Transaction{},
		Error:        reason,
	})
}
