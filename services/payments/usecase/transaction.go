package usecase

import (
	"context"
	"sort"

	"github.com/arshalif/cashi/internal/pkg/logger"
	"github.com/arshalif/cashi/internal/pkg/models"
)

// ListTransactions returns all recorded transactions sorted newest
// first. A storage failure degrades to the last cached listing, or an
// empty one, rather than failing the caller: transaction history is
// better shown empty than not at all.
func (u *PaymentUC) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	records, err := u.transactionRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to list transactions from storage",
			logger.ErrorField(err),
		)
		return u.cachedListing(ctx), nil
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, record.ToTransaction())
	}

	sortNewestFirst(transactions)

	if err := u.transactionRepo.CacheListing(ctx, transactions); err != nil {
		logger.Warn("Failed to cache transaction listing",
			logger.ErrorField(err),
		)
	}

	return transactions, nil
}

func (u *PaymentUC) cachedListing(ctx context.Context) []models.Transaction {
	cached, err := u.transactionRepo.CachedListing(ctx)
	if err != nil {
		logger.Warn("Transaction listing cache unavailable",
			logger.ErrorField(err),
		)
		return []models.Transaction{}
	}
	sortNewestFirst(cached)
	return cached
}

// sortNewestFirst orders transactions by timestamp descending. The sort
// is stable so equal timestamps keep their stored order across calls.
func sortNewestFirst(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.After(transactions[j].Timestamp)
	})
}
