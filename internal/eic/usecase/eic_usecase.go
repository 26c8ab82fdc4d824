package usecase

import (
	"context"
	"strings"

	eicDomain "github.com/allisson/codeval/internal/eic/domain"
	apperrors "github.com/allisson/codeval/internal/errors"
	"github.com/allisson/codeval/internal/random"
)

// eicUseCase implements EICUseCase on the pure domain functions.
type eicUseCase struct{}

// NewEICUseCase creates the EIC use case. The implementation is stateless and
// safe for concurrent use; the registries it consults are read-only.
func NewEICUseCase() EICUseCase {
	return &eicUseCase{}
}

// Validate checks an EIC code and returns the comprehensive validation result.
func (u *eicUseCase) Validate(_ context.Context, code string) eicDomain.Validation {
	return eicDomain.IsValid(code)
}

// Generate builds a complete EIC code for the country code and entity type.
func (u *eicUseCase) Generate(_ context.Context, countryCode, entityType string) (string, error) {
	countryCode = strings.ToUpper(countryCode)
	entityType = strings.ToUpper(entityType)

	if !eicDomain.IsValidOfficeCode(countryCode) {
		return "", apperrors.Wrapf(eicDomain.ErrInvalidCountryCode,
			"'%s' must be 2 characters and in the ENTSO-E list", countryCode)
	}
	if !eicDomain.IsValidEntityType(entityType) {
		return "", apperrors.Wrapf(eicDomain.ErrInvalidEntityType,
			"'%s' must be 1 character and in the ENTSO-E list", entityType)
	}

	identifier, err := random.String(random.UppercaseAlphanumeric, eicDomain.IndividualIDLength)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate individual identifier")
	}

	base := countryCode + entityType + identifier
	checkDigit, err := eicDomain.CheckCharacter(base)
	if err != nil {
		return "", err
	}

	return base + checkDigit, nil
}

// GenerateMany generates count distinct EIC codes with the same country code
// and entity type.
func (u *eicUseCase) GenerateMany(
	ctx context.Context,
	countryCode, entityType string,
	count int,
) ([]string, error) {
	if count <= 0 {
		return nil, eicDomain.ErrInvalidCount
	}

	countryCode = strings.ToUpper(countryCode)
	entityType = strings.ToUpper(entityType)

	// Validate the parameters once up front so a bad country code fails
	// before any draws happen.
	if !eicDomain.IsValidOfficeCode(countryCode) {
		return nil, apperrors.Wrapf(eicDomain.ErrInvalidCountryCode,
			"'%s' must be 2 characters and in the ENTSO-E list", countryCode)
	}
	if !eicDomain.IsValidEntityType(entityType) {
		return nil, apperrors.Wrapf(eicDomain.ErrInvalidEntityType,
			"'%s' must be 1 character and in the ENTSO-E list", entityType)
	}

	return random.Unique(ctx, count, func() (string, error) {
		return u.Generate(ctx, countryCode, entityType)
	})
}
