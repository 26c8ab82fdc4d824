package usecase

import (
	"context"

	eanDomain "github.com/allisson/codeval/internal/ean/domain"
	apperrors "github.com/allisson/codeval/internal/errors"
	"github.com/allisson/codeval/internal/normalize"
	"github.com/allisson/codeval/internal/random"
)

// eanUseCase implements EANUseCase on the pure domain functions.
type eanUseCase struct{}

// NewEANUseCase creates the EAN use case. The implementation is stateless and
// safe for concurrent use.
func NewEANUseCase() EANUseCase {
	return &eanUseCase{}
}

// Validate checks an EAN code and returns the detailed validation result.
func (u *eanUseCase) Validate(_ context.Context, code string) eanDomain.FormatValidation {
	return eanDomain.ValidateFormat(code)
}

// Generate builds a complete EAN code from a base code for the target format.
func (u *eanUseCase) Generate(
	_ context.Context,
	baseCode string,
	format eanDomain.Format,
) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}

	base := normalize.Code(baseCode)
	if err := validateBaseCode(base, format); err != nil {
		return "", err
	}

	checkDigit, err := eanDomain.CheckDigit(base)
	if err != nil {
		return "", err
	}

	return base + checkDigit, nil
}

// GenerateRandom draws a random base code of the required length and delegates
// to Generate.
func (u *eanUseCase) GenerateRandom(
	ctx context.Context,
	format eanDomain.Format,
) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}

	base, err := random.String(random.Digits, format.BaseLength())
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate random base code")
	}

	return u.Generate(ctx, base, format)
}

// GenerateMany generates count distinct random EAN codes for the format.
func (u *eanUseCase) GenerateMany(
	ctx context.Context,
	format eanDomain.Format,
	count int,
) ([]string, error) {
	if count <= 0 {
		return nil, eanDomain.ErrInvalidCount
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	return random.Unique(ctx, count, func() (string, error) {
		return u.GenerateRandom(ctx, format)
	})
}

// validateBaseCode checks the base code is all digits with the exact length
// the format requires.
func validateBaseCode(base string, format eanDomain.Format) error {
	for _, c := range base {
		if c < '0' || c > '9' {
			return apperrors.Wrapf(eanDomain.ErrInvalidBaseCode,
				"base code must contain only numeric digits, got '%s'", base)
		}
	}

	if len(base) != format.BaseLength() {
		return apperrors.Wrapf(eanDomain.ErrInvalidBaseCode,
			"base code for %s must be exactly %d digits, got %d",
			format, format.BaseLength(), len(base))
	}

	return nil
}
