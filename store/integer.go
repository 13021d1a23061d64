package store

import (
	"math"

	"github.com/shopspring/decimal"
)

// asInteger converts v to a decimal when it is an integer-valued number.
// JSON decoding delivers numbers as float64, so integral floats are
// accepted; fractional values and non-numbers are rejected.
func asInteger(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromInt(int64(n)), true
	case decimal.Decimal:
		if !n.IsInteger() {
			return decimal.Decimal{}, false
		}
		return n, true
	default:
		return decimal.Decimal{}, false
	}
}
