package domain

import (
	"github.com/allisson/codeval/internal/errors"
)

var (
	// ErrInvalidCharacter indicates a character outside [0-9A-Z] in check digit input.
	ErrInvalidCharacter = errors.Wrap(errors.ErrInvalidInput, "invalid character for EIC calculation")

	// ErrInvalidValue indicates a numeric value outside 0..35 in character conversion.
	ErrInvalidValue = errors.Wrap(errors.ErrInvalidInput, "invalid value for EIC character conversion")

	// ErrInvalidLength indicates a check digit base that is not exactly 15 characters.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid EIC base length")

	// ErrInvalidCountryCode indicates a country code outside the ENTSO-E office registry.
	ErrInvalidCountryCode = errors.Wrap(errors.ErrInvalidInput, "invalid country code")

	// ErrInvalidEntityType indicates an entity type outside the ENTSO-E registry.
	ErrInvalidEntityType = errors.Wrap(errors.ErrInvalidInput, "invalid entity type")

	// ErrInvalidCount indicates a non-positive bulk generation count.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "count must be a positive integer")
)
