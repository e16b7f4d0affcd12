package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshalif/cashi/internal/pkg/database"
	"github.com/arshalif/cashi/internal/pkg/models"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Redis is not exercised by the SQL paths under test
	redisClient := &database.RedisClient{}

	repo := &TransactionRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: redisClient,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestSavePayment(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO transactions").
					WithArgs("1748779200000", "test@example.com", 100.0, "USD", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Insert failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO transactions").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to insert transaction")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			payment := &models.Payment{
				ID:             "1748779200000",
				RecipientEmail: "test@example.com",
				Amount:         100.0,
				Currency:       models.USD,
				Timestamp:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			}

			err := repo.SavePayment(context.Background(), payment)
			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListTransactions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "recipient_email", "amount", "currency", "timestamp"}).
			AddRow("1", "a@example.com", 10.0, "USD", "2025-06-01T10:00:00Z").
			AddRow("2", "b@example.com", 20.0, "EUR", "2025-06-01T11:00:00Z")
		mock.ExpectQuery("SELECT (.+) FROM transactions").WillReturnRows(rows)

		records, err := repo.ListTransactions(context.Background())

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0].ID)
		assert.Equal(t, "EUR", records[1].Currency)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query failure", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT (.+) FROM transactions").
			WillReturnError(errors.New("connection refused"))

		records, err := repo.ListTransactions(context.Background())

		assert.Nil(t, records)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list transactions")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty table", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "recipient_email", "amount", "currency", "timestamp"})
		mock.ExpectQuery("SELECT (.+) FROM transactions").WillReturnRows(rows)

		records, err := repo.ListTransactions(context.Background())

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
