// Package money converts between decimal currency strings at the API
// boundary and the integer minor units used everywhere inside the engine.
// All ledger arithmetic happens in minor units; decimals exist only for
// parsing and display.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal currency string (e.g. "12.34") to minor units.
// Input with more than two fraction digits is rejected rather than rounded:
// the ledger never rounds.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	return shifted.IntPart(), nil
}

// Format renders minor units as a decimal string with two fraction digits.
func Format(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
