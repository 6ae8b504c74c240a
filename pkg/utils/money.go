package utils

import "github.com/shopspring/decimal"

// ToCents converts a decimal currency amount to integer cents
func ToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FromCents converts integer cents to a decimal currency amount
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// RoundQuantity rounds a stock quantity to two decimal places. Quantities are
// adjusted through decimal arithmetic so repeated fractional sales do not
// accumulate floating-point drift.
func RoundQuantity(q float64) float64 {
	f, _ := decimal.NewFromFloat(q).Round(2).Float64()
	return f
}

// MulCents multiplies a cents amount by a fractional quantity, rounding to the
// nearest cent
func MulCents(cents int64, qty float64) int64 {
	return decimal.NewFromInt(cents).Mul(decimal.NewFromFloat(qty)).Round(0).IntPart()
}

// LoyaltyPoints returns the points accrued for a revenue amount in cents:
// one point per 100 whole currency units spent
func LoyaltyPoints(revenueCents int64) int {
	if revenueCents < 0 {
		return 0
	}
	return int(revenueCents / 10000)
}
