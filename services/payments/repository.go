package payments

import (
	"context"

	"github.com/arshalif/cashi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/arshalif/cashi/services/payments TransactionRepo

// TransactionRepo is the storage port for transaction records
type TransactionRepo interface {
	// SavePayment appends one transaction record for a validated payment
	SavePayment(ctx context.Context, payment *models.Payment) error

	// ListTransactions returns every stored record in raw form
	ListTransactions(ctx context.Context) ([]models.TransactionRecord, error)

	// CacheListing stores a listing snapshot for degraded reads
	CacheListing(ctx context.Context, transactions []models.Transaction) error

	// CachedListing returns the last snapshot stored by CacheListing
	CachedListing(ctx context.Context) ([]models.Transaction, error)
}
