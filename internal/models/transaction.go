package models

import "time"

// Transaction sources.
const (
	SourceBankUpload = "bank_upload"
	SourceManual     = "manual"
)

// Transaction is a single money movement owned by a user.
// Amounts are stored as signed cents: positive = inflow, negative = outflow.
// Records are immutable after creation.
type Transaction struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	AmountCent  int64  `gorm:"not null"`
	Description string `gorm:"size:255"`
	Category    string `gorm:"size:32;index;not null"`
	Source      string `gorm:"size:16;not null"` // bank_upload / manual
	CreatedAt   time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
