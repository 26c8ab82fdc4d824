package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eanDomain "github.com/allisson/codeval/internal/ean/domain"
)

func TestEANUseCase_Validate(t *testing.T) {
	useCase := NewEANUseCase()
	ctx := context.Background()

	t.Run("valid code", func(t *testing.T) {
		result := useCase.Validate(ctx, "4006381333931")

		assert.True(t, result.IsValid)
		assert.Equal(t, eanDomain.FormatEAN13, result.Format)
	})

	t.Run("invalid code", func(t *testing.T) {
		result := useCase.Validate(ctx, "12345679")

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Invalid check digit")
	})
}

func TestEANUseCase_Generate(t *testing.T) {
	useCase := NewEANUseCase()
	ctx := context.Background()

	tests := []struct {
		name        string
		baseCode    string
		format      eanDomain.Format
		expected    string
		expectedErr error
	}{
		{
			name:     "ean8",
			baseCode: "1234567",
			format:   eanDomain.FormatEAN8,
			expected: "12345670",
		},
		{
			name:     "ean13",
			baseCode: "400638133393",
			format:   eanDomain.FormatEAN13,
			expected: "4006381333931",
		},
		{
			name:     "ean14",
			baseCode: "0400638133393",
			format:   eanDomain.FormatEAN14,
			expected: "04006381333931",
		},
		{
			name:     "base with display separators",
			baseCode: " 1234-567 ",
			format:   eanDomain.FormatEAN8,
			expected: "12345670",
		},
		{
			name:        "base too short for format",
			baseCode:    "1234567",
			format:      eanDomain.FormatEAN13,
			expectedErr: eanDomain.ErrInvalidBaseCode,
		},
		{
			name:        "base too long for format",
			baseCode:    "12345678",
			format:      eanDomain.FormatEAN8,
			expectedErr: eanDomain.ErrInvalidBaseCode,
		},
		{
			name:        "non-numeric base",
			baseCode:    "123456A",
			format:      eanDomain.FormatEAN8,
			expectedErr: eanDomain.ErrInvalidBaseCode,
		},
		{
			name:        "empty base",
			baseCode:    "",
			format:      eanDomain.FormatEAN8,
			expectedErr: eanDomain.ErrInvalidBaseCode,
		},
		{
			name:        "unrecognized format",
			baseCode:    "1234567",
			format:      eanDomain.Format("EAN-12"),
			expectedErr: eanDomain.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := useCase.Generate(ctx, tt.baseCode, tt.format)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestEANUseCase_Generate_Deterministic(t *testing.T) {
	useCase := NewEANUseCase()
	ctx := context.Background()

	first, err := useCase.Generate(ctx, "1234567", eanDomain.FormatEAN8)
	require.NoError(t, err)
	second, err := useCase.Generate(ctx, "1234567", eanDomain.FormatEAN8)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEANUseCase_GenerateRandom(t *testing.T) {
	useCase := NewEANUseCase()
	ctx := context.Background()

	for _, format := range []eanDomain.Format{
		eanDomain.FormatEAN8,
		eanDomain.FormatEAN13,
		eanDomain.FormatEAN14,
	} {
		t.Run(format.String(), func(t *testing.T) {
			code, err := useCase.GenerateRandom(ctx, format)

			require.NoError(t, err)
			assert.Len(t, code, format.CodeLength())

			result := useCase.Validate(ctx, code)
			assert.True(t, result.IsValid, "generated code %s should be valid", code)
			assert.Equal(t, format, result.Format)
		})
	}

	t.Run("unrecognized format", func(t *testing.T) {
		_, err := useCase.GenerateRandom(ctx, eanDomain.Format("EAN-12"))
		assert.ErrorIs(t, err, eanDomain.ErrInvalidFormat)
	})
}

func TestEANUseCase_GenerateMany(t *testing.T) {
	useCase := NewEANUseCase()
	ctx := context.Background()

	t.Run("generates distinct valid codes", func(t *testing.T) {
		codes, err := useCase.GenerateMany(ctx, eanDomain.FormatEAN13, 50)

		require.NoError(t, err)
		require.Len(t, codes, 50)

		seen := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			seen[code] = struct{}{}
			result := useCase.Validate(ctx, code)
			assert.True(t, result.IsValid, "code %s should be valid", code)
		}
		assert.Len(t, seen, 50)
	})

	t.Run("count zero", func(t *testing.T) {
		_, err := useCase.GenerateMany(ctx, eanDomain.FormatEAN8, 0)
		assert.ErrorIs(t, err, eanDomain.ErrInvalidCount)
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := useCase.GenerateMany(ctx, eanDomain.FormatEAN8, -3)
		assert.ErrorIs(t, err, eanDomain.ErrInvalidCount)
	})

	t.Run("unrecognized format", func(t *testing.T) {
		_, err := useCase.GenerateMany(ctx, eanDomain.Format("GTIN-12"), 5)
		assert.ErrorIs(t, err, eanDomain.ErrInvalidFormat)
	})
}
