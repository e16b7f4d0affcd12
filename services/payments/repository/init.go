package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/arshalif/cashi/internal/pkg/database"
	"github.com/arshalif/cashi/internal/pkg/models"
)

// TransactionRepo persists transaction records in Postgres and keeps a
// listing snapshot in Redis for degraded reads.
type TransactionRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewTransactionRepo creates a new transaction repository instance
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *TransactionRepo {
	return &TransactionRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
