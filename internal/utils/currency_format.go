package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places shown for money.
const DisplayPrecision = 2

// FormatMoney renders amount with the currency symbol and two decimal places.
// Example: FormatMoney(12.345, "$") returns "$12.35"; FormatMoney(-3, "Rp") returns "-Rp3.00".
func FormatMoney(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(DisplayPrecision)
	}
	return symbol + amount.StringFixed(DisplayPrecision)
}
