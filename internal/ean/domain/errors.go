package domain

import (
	"github.com/allisson/codeval/internal/errors"
)

var (
	// ErrInvalidFormat indicates an unrecognized EAN format label was provided.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "invalid EAN format")

	// ErrInvalidBaseCode indicates the base code has the wrong length or contains non-digits.
	ErrInvalidBaseCode = errors.Wrap(errors.ErrInvalidInput, "invalid base code")

	// ErrInvalidCount indicates a non-positive bulk generation count.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "count must be a positive integer")
)
