package util

import (
	"fmt"
	"time"
)

// maximum absolute amount accepted from any input, in cents (10 million units)
const maxAmountCent = 10_000_000 * 100

// ValidateAmountCent validates a signed amount (non-zero, within limits).
func ValidateAmountCent(cent int64) error {
	if cent == 0 {
		return fmt.Errorf("amount must be non-zero")
	}
	if cent >= maxAmountCent || cent <= -maxAmountCent {
		return fmt.Errorf("amount too large, got %d cents", cent)
	}
	return nil
}

// ValidateDate validates a date string (must be YYYY-MM-DD).
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateDescription validates a free-text description (may be empty, bounded length).
func ValidateDescription(description string) error {
	if len(description) > 255 {
		return fmt.Errorf("description too long, max 255 characters")
	}
	return nil
}
