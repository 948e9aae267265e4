package importer

import (
	"context"

	"github.com/bhavika1504/my-finance-planner/internal/models"

	"gorm.io/gorm"
)

// batch size for a single INSERT; large statements are chunked but
// still commit inside one database transaction.
const insertBatchSize = 100

// GormStore persists transaction batches through gorm.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// SaveBatch writes all transactions inside a single database
// transaction, so a statement never commits partially.
func (s *GormStore) SaveBatch(ctx context.Context, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&txs, insertBatchSize).Error
	})
}
