// Package currency provides fixed-point euro amounts for transfer records.
//
// Amounts are stored as integer cents so that summation never accumulates
// binary floating-point drift. Invariants:
//   - Parsed amounts are in the range [0, 9999.99] with at most 2 decimals.
//   - Arithmetic on totals happens in cents; floats only appear at the
//     presentation boundary.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidAmount is returned when a value cannot be parsed as a
	// currency amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrAmountRange is returned when a value is negative or above 9999.99.
	ErrAmountRange = errors.New("amount must be between 0 and 9999.99")
	// ErrAmountPrecision is returned when a value carries more than two
	// decimal places. Sub-cent input is rejected, not rounded.
	ErrAmountPrecision = errors.New("amount must have at most 2 decimal places")
)

// Amount is a monetary value in euro cents.
type Amount int64

// MaxAmount is the largest accepted value, 9999.99 EUR in cents.
const MaxAmount Amount = 999999

// Parse converts a user-supplied string into an Amount. Both the German
// locale form ("1.234,56": decimal comma, optional thousands dots) and the
// plain form ("1234.56") are accepted. Values with more than two decimals,
// negative values and values above 9999.99 are rejected.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// A comma marks the German locale form; dots are thousands separators.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
		if strings.Contains(s, ",") {
			return 0, ErrInvalidAmount
		}
	}
	if strings.HasPrefix(s, "-") {
		return 0, ErrAmountRange
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, ErrAmountPrecision
	}
	for len(frac) < 2 {
		frac += "0"
	}

	var cents int64
	for _, r := range whole + frac {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
		cents = cents*10 + int64(r-'0')
		if cents > int64(MaxAmount) {
			return 0, ErrAmountRange
		}
	}
	return Amount(cents), nil
}

// FromFloat converts a numeric value into an Amount under the same bounds
// and precision policy as Parse.
func FromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	if f < 0 {
		return 0, ErrAmountRange
	}
	scaled := f * 100
	cents := math.Round(scaled)
	// Tolerance absorbs binary representation error of exact cent values
	// (e.g. 0.07*100 == 7.000000000000001) without admitting sub-cent input.
	if math.Abs(scaled-cents) > 1e-6 {
		return 0, ErrAmountPrecision
	}
	if cents > float64(MaxAmount) {
		return 0, ErrAmountRange
	}
	return Amount(cents), nil
}

// Cents returns the raw cent value.
func (a Amount) Cents() int64 { return int64(a) }

// Float returns the amount in euros for presentation. Amounts are at most
// 9999.99 so the conversion is exact.
func (a Amount) Float() float64 { return float64(a) / 100 }

// String formats the amount with two decimals, e.g. "1234.56".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
