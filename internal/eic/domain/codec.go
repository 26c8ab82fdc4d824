package domain

import (
	apperrors "github.com/allisson/codeval/internal/errors"
)

// CharValue converts a character to its ISO 7064 Mod 37,36 numerical value:
// '0'-'9' map to 0-9 and 'A'-'Z' map to 10-35. Lowercase input is rejected;
// callers normalize to uppercase first.
func CharValue(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, nil
	default:
		return 0, apperrors.Wrapf(ErrInvalidCharacter, "'%c'", c)
	}
}

// ValueChar converts a numerical value back to its character representation,
// the inverse of CharValue. Values outside 0..35 are rejected.
func ValueChar(value int) (byte, error) {
	switch {
	case value >= 0 && value <= 9:
		return byte('0' + value), nil
	case value >= 10 && value <= 35:
		return byte('A' + value - 10), nil
	default:
		return 0, apperrors.Wrapf(ErrInvalidValue, "%d", value)
	}
}
