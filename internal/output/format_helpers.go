package output

import (
	money "github.com/rpgo/withdrawal-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as whole US dollars with grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FormatCurrency(amount)
}

// FormatPercentage formats a rate fraction as a percentage with two decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return money.FormatPercent(rate)
}

// FormatOptionalCurrency formats amount, or "N/A" when it is undefined.
func FormatOptionalCurrency(amount *decimal.Decimal) string {
	if amount == nil {
		return "N/A"
	}
	return FormatCurrency(*amount)
}
