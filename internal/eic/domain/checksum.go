package domain

import (
	apperrors "github.com/allisson/codeval/internal/errors"
)

// CheckCharacter calculates the ISO 7064 Mod 37,36 check character for a
// 15-character EIC base over [0-9A-Z].
//
// The algorithm folds left to right: remainder = (remainder*36 + value) mod 37
// for each character, then check = (37 - remainder) mod 37. A check value of
// 36 has no character at that position and is remapped to 0; ENTSO-E documents
// both the 0 and 36 complement cases as the digit '0'.
func CheckCharacter(base string) (string, error) {
	if len(base) != BaseLength {
		return "", apperrors.Wrapf(ErrInvalidLength,
			"EIC base must be exactly %d characters long, got %d", BaseLength, len(base))
	}

	remainder := 0
	for i := 0; i < len(base); i++ {
		value, err := CharValue(base[i])
		if err != nil {
			return "", err
		}
		remainder = (remainder*36 + value) % 37
	}

	check := (37 - remainder) % 37
	if check == 36 {
		check = 0
	}

	checkChar, err := ValueChar(check)
	if err != nil {
		return "", err
	}

	return string(checkChar), nil
}

// validCheckCharacter reports whether the trailing character of a normalized
// 16-character code matches the recomputed check character.
func validCheckCharacter(code string) bool {
	if len(code) != Length {
		return false
	}
	expected, err := CheckCharacter(code[:BaseLength])
	if err != nil {
		return false
	}
	return expected == code[BaseLength:]
}
