package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatSignedCurrency formats a decimal with an explicit sign, for
// difference columns.
func FormatSignedCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "+$" + amount.StringFixed(2)
}

// FormatDollars formats a float64 dollar amount with no cents, for
// forecast values.
func FormatDollars(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', 0, 64)
}

// FormatSignedDollars formats a float64 with an explicit sign and no cents.
func FormatSignedDollars(amount float64) string {
	if amount < 0 {
		return "-" + FormatDollars(-amount)
	}
	return "+" + FormatDollars(amount)
}
