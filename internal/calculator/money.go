package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// centsPlaces is the number of minor-unit digits of the group currency.
const centsPlaces = 2

// MaxAmountCents caps any single ledger amount at 10 trillion in major units,
// far below the point where summing a ledger could overflow int64.
const MaxAmountCents int64 = 1_000_000_000_000_000

var maxCents = decimal.NewFromInt(MaxAmountCents)

// ParseAmount converts a decimal string in major units to cents, rounding half
// away from zero on the third decimal place.
//
// A comma is a decimal separator ("12,34") only when the string has no dot;
// otherwise commas are thousands separators ("1,000.50"). Sign is preserved;
// callers decide whether non-positive amounts are allowed. Magnitudes above
// MaxAmountCents are rejected.
func ParseAmount(s string) (int64, error) {
	s = normalizeSeparators(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents := d.Shift(centsPlaces).Round(0)
	if cents.Abs().GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: %q exceeds the maximum amount", ErrInvalidAmount, s)
	}
	return cents.IntPart(), nil
}

func normalizeSeparators(s string) string {
	if strings.Contains(s, ".") {
		return strings.ReplaceAll(s, ",", "")
	}
	return strings.Replace(s, ",", ".", 1)
}

// FormatCents renders cents in major units with exactly two decimals.
func FormatCents(cents int64) string {
	return decimal.New(cents, -centsPlaces).StringFixed(centsPlaces)
}
