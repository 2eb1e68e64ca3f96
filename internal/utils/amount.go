package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a ledger value with exactly two decimal places,
// rounding half away from zero so display and journal output agree regardless
// of float noise.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// FormatWithCurrency renders "12.30 RON" style amounts for reports.
func FormatWithCurrency(v float64, currency string) string {
	return FormatAmount(v) + " " + currency
}

// ParseAmount parses a decimal amount string into a float ledger value.
// Accepts "150", "150.5" and "150.50"; anything else is an error.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	f, _ := d.Float64()
	return f, nil
}
