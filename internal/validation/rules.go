// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/codeval/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Digits validates that a string contains only numeric digits (0-9)
var Digits = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, c := range s {
			if c < '0' || c > '9' {
				return false
			}
		}
		return s != ""
	},
	validation.NewError("validation_digits", "must contain only numeric digits"),
)

// UppercaseAlphanumeric validates that a string contains only 0-9 and A-Z
var UppercaseAlphanumeric = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, c := range s {
			if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
				return false
			}
		}
		return s != ""
	},
	validation.NewError("validation_uppercase_alphanumeric", "must contain only 0-9 and A-Z"),
)
