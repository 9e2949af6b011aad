// Package money converts between decimal currency strings and the
// integer minor-unit (cents) representation used for storage.
//
// Policy: the DOT is the only accepted decimal separator; amounts using
// a comma are rejected. Parsing is pure integer math, so no value ever
// passes through a float. ToMinorUnits(ToDisplay(m)) == m holds for
// every non-negative m; the reverse direction is not guaranteed because
// inputs with more than two fractional digits are rounded.
package money

import (
	"fmt"
	"strings"

	"gamestore-backend/shared/utils/apperrors"
)

// ToMinorUnits parses a decimal amount like "59.90" into minor units
// (5990). Inputs with more than two fractional digits are rounded
// half-up on the third digit. Negative, empty or non-numeric input
// fails with ErrInvalidAmount.
func ToMinorUnits(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, apperrors.ErrInvalidAmount
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return 0, apperrors.ErrInvalidAmount
		}
	}
	if intPart == "" && fracPart == "" {
		return 0, apperrors.ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}

	var cents int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, apperrors.ErrInvalidAmount
		}
		cents = cents*10 + int64(r-'0')
		if cents > 1<<53 {
			return 0, apperrors.ErrInvalidAmount
		}
	}
	cents *= 100

	// Fractional digits: first two count as cents, the third rounds.
	for i, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, apperrors.ErrInvalidAmount
		}
		d := int64(r - '0')
		switch i {
		case 0:
			cents += d * 10
		case 1:
			cents += d
		case 2:
			if d >= 5 {
				cents++
			}
		}
	}

	return cents, nil
}

// ToDisplay formats minor units as a decimal string with exactly two
// fractional digits, e.g. 5990 -> "59.90".
func ToDisplay(minorUnits int64) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}
	return fmt.Sprintf("%s%d.%02d", sign, minorUnits/100, minorUnits%100)
}
