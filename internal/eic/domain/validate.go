package domain

import (
	"fmt"

	"github.com/allisson/codeval/internal/normalize"
)

// FormatValidation is the detailed result of validating an EIC code.
// Components is only set when the code is valid.
type FormatValidation struct {
	IsValid    bool
	Errors     []string
	Components *Components
}

// Validation is the comprehensive validation result: it always carries the
// normalized code for display, regardless of validity.
type Validation struct {
	IsValid    bool
	Code       string
	Errors     []string
	Components *Components
}

// ValidateFormat validates an EIC code with detailed error reporting.
// The input is normalized (separators stripped, uppercased) first. Length and
// character set failures stop validation; the remaining checks accumulate
// per-field diagnostics plus the check digit comparison.
func ValidateFormat(raw string) FormatValidation {
	code := normalize.UppercaseCode(raw)

	if len(code) != Length {
		return FormatValidation{
			Errors: []string{
				fmt.Sprintf("Invalid EIC length: expected %d characters, got %d", Length, len(code)),
			},
		}
	}

	if !isUppercaseAlphanumeric(code) {
		return FormatValidation{
			Errors: []string{"EIC contains invalid characters. Only 0-9 and A-Z are allowed"},
		}
	}

	components, ok := ParseComponents(code)
	if !ok {
		return FormatValidation{
			Errors: []string{"Failed to parse EIC components"},
		}
	}

	// Per-field diagnostics. The character set check above already guarantees
	// these pass; they exist so a field-level failure reports its own error.
	var errs []string
	if !isUppercaseAlphanumeric(components.OfficeID) || len(components.OfficeID) != OfficeIDLength {
		errs = append(errs, fmt.Sprintf("Invalid office identifier format: '%s'", components.OfficeID))
	}
	if !isUppercaseAlphanumeric(components.EntityType) || len(components.EntityType) != EntityTypeLength {
		errs = append(errs, fmt.Sprintf("Invalid entity type format: '%s'", components.EntityType))
	}
	if !isUppercaseAlphanumeric(components.IndividualID) ||
		len(components.IndividualID) != IndividualIDLength {
		errs = append(errs, fmt.Sprintf("Invalid individual identifier format: '%s'", components.IndividualID))
	}

	if !validCheckCharacter(code) {
		errs = append(errs, "Invalid check digit")
	}

	if len(errs) > 0 {
		return FormatValidation{Errors: errs}
	}

	return FormatValidation{
		IsValid:    true,
		Errors:     []string{},
		Components: &components,
	}
}

// IsValid is the comprehensive validation entry point. The normalized code is
// returned whenever it has the expected length; otherwise the raw input is
// echoed back so the caller can still display what was checked.
func IsValid(raw string) Validation {
	result := ValidateFormat(raw)

	code := normalize.UppercaseCode(raw)
	if len(code) != Length {
		code = raw
	}

	return Validation{
		IsValid:    result.IsValid,
		Code:       code,
		Errors:     result.Errors,
		Components: result.Components,
	}
}
