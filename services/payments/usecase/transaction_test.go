package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshalif/cashi/internal/pkg/models"
)

func recordAt(id string, ts time.Time) models.TransactionRecord {
	return models.TransactionRecord{
		ID:             id,
		RecipientEmail: "test@example.com",
		Amount:         100.0,
		Currency:       "USD",
		Timestamp:      ts.Format(time.RFC3339Nano),
	}
}

func TestListTransactions_SortedNewestFirst(t *testing.T) {
	uc, mockRepo, _ := setupPaymentUCTest(t)

	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	t3 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Stored order is oldest first; the listing must reverse it.
	mockRepo.EXPECT().
		ListTransactions(gomock.Any()).
		Return([]models.TransactionRecord{
			recordAt("1", t1),
			recordAt("3", t3),
			recordAt("2", t2),
		}, nil)
	mockRepo.EXPECT().CacheListing(gomock.Any(), gomock.Any()).Return(nil)

	transactions, err := uc.ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, "3", transactions[0].ID)
	assert.Equal(t, "2", transactions[1].ID)
	assert.Equal(t, "1", transactions[2].ID)
}

func TestListTransactions_Idempotent(t *testing.T) {
	uc, mockRepo, _ := setupPaymentUCTest(t)

	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	records := []models.TransactionRecord{recordAt("1", t1), recordAt("2", t2)}

	mockRepo.EXPECT().ListTransactions(gomock.Any()).Return(records, nil).Times(2)
	mockRepo.EXPECT().CacheListing(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := uc.ListTransactions(context.Background())
	require.NoError(t, err)
	second, err := uc.ListTransactions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListTransactions_CorruptRecordsIncludedWithDefaults(t *testing.T) {
	uc, mockRepo, _ := setupPaymentUCTest(t)

	mockRepo.EXPECT().
		ListTransactions(gomock.Any()).
		Return([]models.TransactionRecord{
			{
				ID:             "corrupt",
				RecipientEmail: "test@example.com",
				Amount:         10.0,
				Currency:       "???",
				Timestamp:      "not-a-timestamp",
			},
			recordAt("good", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		}, nil)
	mockRepo.EXPECT().CacheListing(gomock.Any(), gomock.Any()).Return(nil)

	transactions, err := uc.ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, transactions, 2, "corrupt records are substituted, not dropped")

	// The corrupt record sorts last with its epoch-zero timestamp.
	corrupt := transactions[1]
	assert.Equal(t, "corrupt", corrupt.ID)
	assert.Equal(t, models.DefaultCurrency, corrupt.Currency)
	assert.Equal(t, int64(0), corrupt.Timestamp.Unix())
}

func TestListTransactions_StorageFailureFallsBackToCache(t *testing.T) {
	uc, mockRepo, _ := setupPaymentUCTest(t)

	cached := []models.Transaction{
		{ID: "2", Timestamp: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)},
		{ID: "1", Timestamp: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
	}

	mockRepo.EXPECT().ListTransactions(gomock.Any()).Return(nil, errors.New("connection refused"))
	mockRepo.EXPECT().CachedListing(gomock.Any()).Return(cached, nil)

	transactions, err := uc.ListTransactions(context.Background())

	require.NoError(t, err, "storage failures degrade, they do not propagate")
	assert.Equal(t, cached, transactions)
}

func TestListTransactions_StorageAndCacheFailureReturnsEmpty(t *testing.T) {
	uc, mockRepo, _ := setupPaymentUCTest(t)

	mockRepo.EXPECT().ListTransactions(gomock.Any()).Return(nil, errors.New("connection refused"))
	mockRepo.EXPECT().CachedListing(gomock.Any()).Return(nil, errors.New("cache miss"))

	transactions, err := uc.ListTransactions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestListTransactions_CacheWriteFailureIsNonFatal(t *testing.T) {
	uc, mockRepo, _ := setupPaymentUCTest(t)

	mockRepo.EXPECT().
		ListTransactions(gomock.Any()).
		Return([]models.TransactionRecord{recordAt("1", time.Now().UTC())}, nil)
	mockRepo.EXPECT().CacheListing(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	transactions, err := uc.ListTransactions(context.Background())

	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}
