package util

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CentFromString converts a decimal amount string (e.g. "250", "-12.34")
// to signed cents. Sub-cent precision is rounded half away from zero.
func CentFromString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// FormatCent renders signed cents as a decimal string with two places.
func FormatCent(cent int64) string {
	return decimal.New(cent, -2).StringFixed(2)
}
