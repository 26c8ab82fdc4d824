// Package random provides cryptographically secure random string generation
// for identifier synthesis, plus a uniqueness-enforcing bulk collector.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Character sets used by the identifier generators.
const (
	// Digits is the numeric charset used for EAN base codes.
	Digits = "0123456789"

	// UppercaseAlphanumeric is the [0-9A-Z] charset used for EIC identifiers.
	UppercaseAlphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// MaxLength is the maximum allowed length for a generated string.
const MaxLength = 255

// String draws a random string of the given length from the charset using
// crypto/rand. Each character is an independent uniform draw.
func String(charset string, length int) (string, error) {
	if len(charset) == 0 {
		return "", errors.New("charset cannot be empty")
	}
	if length < 1 {
		return "", errors.New("length must be at least 1")
	}
	if length > MaxLength {
		return "", errors.New("length must not exceed 255")
	}

	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		result[i] = charset[n.Int64()]
	}

	return string(result), nil
}
