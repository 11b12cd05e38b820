package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// Tolerance is the absolute slack allowed when comparing monetary sums
var Tolerance = decimal.RequireFromString("0.01")

var hundred = decimal.NewFromInt(100)

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Ptr parses an optional amount; empty or unparsable input yields nil
func Ptr(s string) *decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := FromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// OrZero dereferences an optional amount, treating nil as zero
func OrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return Zero
	}
	return *d
}

// WithinTolerance reports whether |a-b| <= Tolerance
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// RoundHalfAwayFromZero rounds to the given places; ties move away from zero
// (2.675 -> 2.68, -0.125 -> -0.13). This is not banker's rounding.
func RoundHalfAwayFromZero(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// CalculateVAT computes round(amount * rate / 100, 2) with ties away from zero
func CalculateVAT(amount, ratePercent decimal.Decimal) decimal.Decimal {
	return RoundHalfAwayFromZero(amount.Mul(ratePercent).Div(hundred), 2)
}

// FractionalDigits counts the digits after the decimal point in the canonical
// string form of d. Trailing zeros are not significant: 100.10 has one.
func FractionalDigits(d decimal.Decimal) int {
	s := d.String()
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(s) - dot - 1
}

// HasMaxDecimals reports whether d carries at most places fractional digits
func HasMaxDecimals(d decimal.Decimal, places int) bool {
	return FractionalDigits(d) <= places
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
