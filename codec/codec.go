// Package codec converts record values between their wire form and the
// exact-decimal representation used by the inventory table. Quantities and
// prices are stored as decimals so integral values survive round trips
// without binary floating point rounding; Normalize restores native numeric
// types on the read path.
package codec

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ToDecimal converts a scalar to its exact-decimal form. Numeric strings are
// accepted; everything else is rejected with an error naming the offending
// type. Floats are converted through their shortest string representation,
// matching the way values arrive from JSON input.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromString(fmt.Sprintf("%v", n))
	case float32:
		return decimal.NewFromString(fmt.Sprintf("%v", n))
	case string:
		return decimal.NewFromString(n)
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot convert %T to decimal", v)
	}
}

// IsNumber reports whether v is a native numeric scalar (the types JSON
// decoding and Go literals produce). Numeric strings are not numbers; the
// store passes them through verbatim on partial updates.
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int64, float32, float64, decimal.Decimal:
		return true
	default:
		return false
	}
}

// Normalize walks an arbitrarily nested structure of maps and slices and
// replaces every decimal with a native numeric type: int64 when the value
// has no fractional part, float64 otherwise. Non-decimal leaves pass through
// untouched. Integral values convert losslessly; fractional values accept
// ordinary float64 representational precision.
func Normalize(v any) any {
	switch t := v.(type) {
	case decimal.Decimal:
		if t.IsInteger() {
			return t.IntPart()
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, elem := range t {
			t[k] = Normalize(elem)
		}
		return t
	case []any:
		for i, elem := range t {
			t[i] = Normalize(elem)
		}
		return t
	default:
		return v
	}
}
