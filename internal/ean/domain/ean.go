// Package domain implements the EAN (European Article Number) identifier model
// per GS1: EAN-8, EAN-13, and EAN-14 codes with a Mod 10 check digit.
//
// An EAN code is a data part (7, 12, or 13 digits) followed by a single check
// digit computed with alternating weights of 3 and 1 from the rightmost digit.
package domain

import (
	"strings"

	apperrors "github.com/allisson/codeval/internal/errors"
)

// Format identifies one of the supported EAN formats.
type Format string

const (
	FormatEAN8  Format = "EAN-8"
	FormatEAN13 Format = "EAN-13"
	FormatEAN14 Format = "EAN-14"
)

// Code lengths per format (data part + check digit).
const (
	EAN8Length  = 8
	EAN13Length = 13
	EAN14Length = 14
)

// Validate checks if the format is one of the supported EAN formats.
func (f Format) Validate() error {
	switch f {
	case FormatEAN8, FormatEAN13, FormatEAN14:
		return nil
	default:
		return ErrInvalidFormat
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// CodeLength returns the total code length for the format, check digit included.
func (f Format) CodeLength() int {
	switch f {
	case FormatEAN8:
		return EAN8Length
	case FormatEAN13:
		return EAN13Length
	case FormatEAN14:
		return EAN14Length
	default:
		return 0
	}
}

// BaseLength returns the data part length for the format.
func (f Format) BaseLength() int {
	if f.Validate() != nil {
		return 0
	}
	return f.CodeLength() - 1
}

// ParseFormat converts a format label to a Format. Labels are case-insensitive
// ("ean-8" and "EAN-8" are equivalent). Returns ErrInvalidFormat for anything
// outside the three supported formats.
func ParseFormat(label string) (Format, error) {
	format := Format(strings.ToUpper(label))
	if err := format.Validate(); err != nil {
		return "", apperrors.Wrapf(err, "'%s' must be 'EAN-8', 'EAN-13', or 'EAN-14'", label)
	}
	return format, nil
}

// FormatForLength returns the format implied by a total code length.
func FormatForLength(length int) (Format, bool) {
	switch length {
	case EAN8Length:
		return FormatEAN8, true
	case EAN13Length:
		return FormatEAN13, true
	case EAN14Length:
		return FormatEAN14, true
	default:
		return "", false
	}
}

// Components holds the parsed parts of a complete EAN code.
type Components struct {
	DataPart   string
	CheckDigit string
	Format     Format
}

// FullCode returns the complete EAN code.
func (c Components) FullCode() string {
	return c.DataPart + c.CheckDigit
}

// ParseComponents splits a normalized EAN code into its components.
// Returns false if the code is not all digits or has an unsupported length.
func ParseComponents(code string) (Components, bool) {
	if !isDigits(code) {
		return Components{}, false
	}

	format, ok := FormatForLength(len(code))
	if !ok {
		return Components{}, false
	}

	return Components{
		DataPart:   code[:len(code)-1],
		CheckDigit: code[len(code)-1:],
		Format:     format,
	}, true
}

// isDigits reports whether s is non-empty and contains only 0-9.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
