package domain

import (
	"fmt"
	"strings"

	"github.com/allisson/codeval/internal/normalize"
)

// FormatValidation is the detailed result of validating an EAN code.
// Format and Components are only set when the code is valid.
type FormatValidation struct {
	IsValid    bool
	Format     Format
	Errors     []string
	Components *Components
}

// ValidateFormat validates an EAN code with detailed error reporting.
// The input is normalized (separators stripped, whitespace trimmed) before
// the numeric, length, and check digit checks run.
func ValidateFormat(raw string) FormatValidation {
	code := normalize.Code(raw)

	if !isDigits(code) {
		return FormatValidation{
			Errors: []string{"EAN must contain only numeric digits (0-9)"},
		}
	}

	if _, ok := FormatForLength(len(code)); !ok {
		return FormatValidation{
			Errors: []string{
				fmt.Sprintf("Invalid EAN length: expected 8, 13, or 14 digits, got %d", len(code)),
			},
		}
	}

	components, ok := ParseComponents(code)
	if !ok {
		return FormatValidation{
			Errors: []string{"Failed to parse EAN components"},
		}
	}

	if !validCheckDigit(code) {
		return FormatValidation{
			Errors: []string{"Invalid check digit"},
		}
	}

	return FormatValidation{
		IsValid:    true,
		Format:     components.Format,
		Errors:     []string{},
		Components: &components,
	}
}

// Validate is the terse validation entry point: it reports validity, the
// inferred format when valid, and a single joined error message when not.
func Validate(raw string) (bool, Format, string) {
	result := ValidateFormat(raw)
	if result.IsValid {
		return true, result.Format, ""
	}
	return false, "", strings.Join(result.Errors, "; ")
}
