// Package usecase implements EIC validation and generation business logic.
package usecase

import (
	"context"

	eicDomain "github.com/allisson/codeval/internal/eic/domain"
)

// EICUseCase defines the operations exposed by the EIC engine.
type EICUseCase interface {
	// Validate checks an EIC code and returns the comprehensive validation
	// result, including the normalized code for display.
	Validate(ctx context.Context, code string) eicDomain.Validation

	// Generate builds a complete EIC code from a registered country code and
	// entity type with a random 12-character individual identifier.
	Generate(ctx context.Context, countryCode, entityType string) (string, error)

	// GenerateMany generates count distinct EIC codes sharing the same
	// country code and entity type.
	GenerateMany(ctx context.Context, countryCode, entityType string, count int) ([]string, error)
}
