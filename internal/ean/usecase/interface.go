// Package usecase implements EAN validation and generation business logic.
package usecase

import (
	"context"

	eanDomain "github.com/allisson/codeval/internal/ean/domain"
)

// EANUseCase defines the operations exposed by the EAN engine.
type EANUseCase interface {
	// Validate checks an EAN code and returns the detailed validation result.
	// "code is invalid" is an expected outcome, not an error.
	Validate(ctx context.Context, code string) eanDomain.FormatValidation

	// Generate builds a complete EAN code from a base code by appending the
	// Mod 10 check digit. Deterministic: the same base yields the same code.
	Generate(ctx context.Context, baseCode string, format eanDomain.Format) (string, error)

	// GenerateRandom draws a cryptographically random base code for the
	// format and appends its check digit.
	GenerateRandom(ctx context.Context, format eanDomain.Format) (string, error)

	// GenerateMany generates count distinct random EAN codes.
	GenerateMany(ctx context.Context, format eanDomain.Format, count int) ([]string, error)
}
