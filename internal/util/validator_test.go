package util

import (
	"strings"
	"testing"
)

func TestValidateAmountCent_Valid(t *testing.T) {
	testCases := []int64{1, 100, -100, 999_999_999}

	for _, cent := range testCases {
		if err := ValidateAmountCent(cent); err != nil {
			t.Errorf("ValidateAmountCent(%d) error = %v, want nil", cent, err)
		}
	}
}

func TestValidateAmountCent_Zero(t *testing.T) {
	if err := ValidateAmountCent(0); err == nil {
		t.Error("ValidateAmountCent(0) error = nil, want error")
	}
}

func TestValidateAmountCent_TooLarge(t *testing.T) {
	testCases := []int64{maxAmountCent, maxAmountCent + 1, -maxAmountCent}

	for _, cent := range testCases {
		if err := ValidateAmountCent(cent); err == nil {
			t.Errorf("ValidateAmountCent(%d) error = nil, want error", cent)
		}
	}
}

func TestValidateDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, date := range testCases {
		if err := ValidateDate(date); err != nil {
			t.Errorf("ValidateDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestValidateDate_InvalidFormat(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		if err := ValidateDate(date); err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	// empty is fine, overlong is not
	if err := ValidateDescription(""); err != nil {
		t.Errorf("ValidateDescription(\"\") error = %v, want nil", err)
	}
	if err := ValidateDescription("UBER TRIP 45"); err != nil {
		t.Errorf("ValidateDescription(short) error = %v, want nil", err)
	}
	if err := ValidateDescription(strings.Repeat("x", 256)); err == nil {
		t.Error("ValidateDescription(256 chars) error = nil, want error")
	}
}
