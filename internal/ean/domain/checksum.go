package domain

import (
	apperrors "github.com/allisson/codeval/internal/errors"
)

// CheckDigit calculates the Mod 10 check digit for an EAN data part
// (7, 12, or 13 digits).
//
// Positions are numbered from the rightmost digit per GS1: odd positions from
// the right carry weight 3, even positions carry weight 1. The check digit is
// (10 - sum mod 10) mod 10.
func CheckDigit(dataPart string) (string, error) {
	if !isDigits(dataPart) {
		return "", apperrors.Wrapf(ErrInvalidBaseCode,
			"EAN data part must be numeric, got '%s'", dataPart)
	}

	switch len(dataPart) {
	case EAN8Length - 1, EAN13Length - 1, EAN14Length - 1:
	default:
		return "", apperrors.Wrapf(ErrInvalidBaseCode,
			"EAN data part must be 7, 12, or 13 digits long, got %d", len(dataPart))
	}

	sum := 0
	for i := 0; i < len(dataPart); i++ {
		digit := int(dataPart[len(dataPart)-1-i] - '0')
		// i=0 is the rightmost digit (position 1, weight 3).
		if i%2 == 0 {
			digit *= 3
		}
		sum += digit
	}

	check := (10 - (sum % 10)) % 10
	return string(byte('0' + check)), nil
}

// validCheckDigit reports whether the trailing digit of a normalized,
// all-digit code of supported length matches the recomputed check digit.
func validCheckDigit(code string) bool {
	expected, err := CheckDigit(code[:len(code)-1])
	if err != nil {
		return false
	}
	return expected == code[len(code)-1:]
}
