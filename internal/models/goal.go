package models

import "time"

// Goal is a savings goal with a target amount and running progress.
type Goal struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     uint       `gorm:"index;not null"`
	Name       string     `gorm:"size:64;not null"`
	TargetCent int64      `gorm:"not null"`
	SavedCent  int64      `gorm:"not null;default:0"`
	Deadline   *time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
