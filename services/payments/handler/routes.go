package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/arshalif/cashi/internal/pkg/models"
	"github.com/arshalif/cashi/services/payments/handler/http"
)

// Handler coordinates the protocol handlers for the payments service
type Handler struct {
	paymentHandler *http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *http.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payments service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/payments", h.paymentHandler.SubmitPayment)
	e.GET("/transactions", h.paymentHandler.ListTransactions)
}
