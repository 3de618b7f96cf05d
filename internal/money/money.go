package money

import (
	"github.com/shopspring/decimal"
)

// Monetary helpers shared by the payout waterfall, persistence, and
// statement reconstruction. Amounts stay full-precision decimals through
// every calculation stage; Display rounds to 2dp for presentation only.

// Zero is the zero dollar amount.
func Zero() decimal.Decimal {
	return decimal.Zero
}

// FromFloat converts a float64 (e.g. parsed request body) to a decimal.
// Precision loss is bounded by the float itself; use FromString where the
// client sends amounts as strings.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// FromString parses a decimal amount ("49285.00").
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// FromCents builds an amount from integer minor units.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}

// Cents returns the amount as integer minor units, rounded half-up.
func Cents(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Display rounds to 2 decimal places for presentation. Never call this on
// intermediate waterfall values.
func Display(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// DisplayString formats the amount with exactly 2 decimal places.
func DisplayString(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Sum adds a slice of amounts.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
