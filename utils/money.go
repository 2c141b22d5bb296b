package utils

import "github.com/shopspring/decimal"

const currencySymbol = "₹"

// FormatCents renders minor units for display only; amounts stay int64 everywhere else.
func FormatCents(cents int64) string {
	return currencySymbol + decimal.New(cents, -2).StringFixed(2)
}
