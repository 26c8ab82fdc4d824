package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/codeval/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("wraps non-nil error", func(t *testing.T) {
		err := WrapValidationError(apperrors.New("field is bad"))
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
}

func TestDigits(t *testing.T) {
	assert.NoError(t, Digits.Validate("1234567"))
	assert.Error(t, Digits.Validate("123456A"))
	assert.Error(t, Digits.Validate("123 456"))
	assert.Error(t, Digits.Validate(""))
}

func TestUppercaseAlphanumeric(t *testing.T) {
	assert.NoError(t, UppercaseAlphanumeric.Validate("27XGOEPS0000001"))
	assert.NoError(t, UppercaseAlphanumeric.Validate("0123456789"))
	assert.Error(t, UppercaseAlphanumeric.Validate("27xgoeps0000001"))
	assert.Error(t, UppercaseAlphanumeric.Validate("27XG-OEPS"))
	assert.Error(t, UppercaseAlphanumeric.Validate(""))
}
