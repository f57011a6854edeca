package formulas

import (
	"math"

	"github.com/dustin/go-humanize"
)

// CurrencySymbol prefixes every formatted amount
const CurrencySymbol = "R"

// FormatAmount renders an amount with thousands separators and at most two
// decimals, trailing zeros trimmed: 12500 -> "12,500", 159.99 -> "159.99".
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0"
	}
	return humanize.CommafWithDigits(Round2(amount), 2)
}

// FormatRand renders an amount as currency, e.g. "R12,500"
func FormatRand(amount float64) string {
	if amount < 0 {
		return "-" + CurrencySymbol + FormatAmount(-amount)
	}
	return CurrencySymbol + FormatAmount(amount)
}
