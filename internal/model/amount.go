package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount validates raw user-entered amount text and returns it as an
// exact decimal. The amount must be a positive number with at most two
// fractional digits; anything else is ErrInvalidAmount.
func ParseAmount(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	// Reject sub-cent precision; trailing zeros like "1.50" are fine.
	if !amount.Equal(amount.Round(2)) {
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}

// FormatAmount renders a balance the way the record store serializes it:
// a plain decimal string with exactly two fractional digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
