package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arshalif/cashi/internal/pkg/models"
)

const (
	// listingCacheKey holds the last successful listing snapshot
	listingCacheKey = "transactions:listing"
	// listingCacheTTL bounds how stale a degraded listing can be
	listingCacheTTL = 10 * time.Minute
)

// SavePayment appends one transaction record for a validated payment
func (r *TransactionRepo) SavePayment(ctx context.Context, payment *models.Payment) error {
	record := models.TransactionRecord{
		ID:             payment.ID,
		RecipientEmail: payment.RecipientEmail,
		Amount:         payment.Amount,
		Currency:       payment.Currency.Code(),
		Timestamp:      payment.Timestamp.Format(time.RFC3339Nano),
	}

	query := `
		INSERT INTO transactions (id, recipient_email, amount, currency, timestamp)
		VALUES (:id, :recipient_email, :amount, :currency, :timestamp)
	`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListTransactions returns every stored record in raw form. Currency
// and timestamp stay serialized; tolerant parsing happens in the
// listing flow.
func (r *TransactionRepo) ListTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	query := `
		SELECT id, recipient_email, amount, currency, timestamp
		FROM transactions
	`

	var records []models.TransactionRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return records, nil
}

// CacheListing stores a listing snapshot for degraded reads
func (r *TransactionRepo) CacheListing(ctx context.Context, transactions []models.Transaction) error {
	data, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to marshal listing snapshot: %w", err)
	}

	if err := r.redisClient.Set(ctx, listingCacheKey, data, listingCacheTTL); err != nil {
		return fmt.Errorf("failed to cache listing snapshot: %w", err)
	}

	return nil
}

// CachedListing returns the last snapshot stored by CacheListing
func (r *TransactionRepo) CachedListing(ctx context.Context) ([]models.Transaction, error) {
	data, err := r.redisClient.Get(ctx, listingCacheKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing snapshot: %w", err)
	}

	var transactions []models.Transaction
	if err := json.Unmarshal([]byte(data), &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing snapshot: %w", err)
	}

	return transactions, nil
}
