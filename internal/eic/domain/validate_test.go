package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		result := ValidateFormat("27XGOEPS0000001H")

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		require.NotNil(t, result.Components)
		assert.Equal(t, "27", result.Components.OfficeID)
		assert.Equal(t, "X", result.Components.EntityType)
		assert.Equal(t, "GOEPS0000001", result.Components.IndividualID)
		assert.Equal(t, "H", result.Components.CheckDigit)
		assert.Equal(t, "27XGOEPS0000001", result.Components.Base())
		assert.Equal(t, "27XGOEPS0000001H", result.Components.FullCode())
	})

	t.Run("lowercase input is uppercased", func(t *testing.T) {
		result := ValidateFormat("27xgoeps0000001h")

		assert.True(t, result.IsValid)
	})

	t.Run("display separators stripped", func(t *testing.T) {
		result := ValidateFormat(" 27XG-OEPS-000000-1H ")

		assert.True(t, result.IsValid)
	})

	t.Run("wrong length stops validation", func(t *testing.T) {
		result := ValidateFormat("TOOSHORT")

		assert.False(t, result.IsValid)
		assert.Nil(t, result.Components)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Invalid EIC length")
	})

	t.Run("invalid characters stop validation", func(t *testing.T) {
		result := ValidateFormat("27XGOEPS000000!H")

		assert.False(t, result.IsValid)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "invalid characters")
	})

	t.Run("wrong check digit", func(t *testing.T) {
		result := ValidateFormat("27XGOEPS00000010")

		assert.False(t, result.IsValid)
		assert.Nil(t, result.Components)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Invalid check digit", result.Errors[0])
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		raw := " 27xg-oeps-000000-1h "
		once := ValidateFormat(raw)
		require.True(t, once.IsValid)

		twice := ValidateFormat(once.Components.FullCode())
		assert.Equal(t, once.IsValid, twice.IsValid)
	})
}

func TestIsValid(t *testing.T) {
	t.Run("valid code returns normalized form", func(t *testing.T) {
		result := IsValid(" 27xg-oeps-000000-1h ")

		assert.True(t, result.IsValid)
		assert.Equal(t, "27XGOEPS0000001H", result.Code)
		assert.Empty(t, result.Errors)
		require.NotNil(t, result.Components)
	})

	t.Run("invalid code with correct length still returns normalized form", func(t *testing.T) {
		result := IsValid("27xgoeps00000010")

		assert.False(t, result.IsValid)
		assert.Equal(t, "27XGOEPS00000010", result.Code)
		assert.Nil(t, result.Components)
	})

	t.Run("wrong length echoes raw input", func(t *testing.T) {
		result := IsValid("too-short")

		assert.False(t, result.IsValid)
		assert.Equal(t, "too-short", result.Code)
	})
}

func TestParseComponents(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		components, ok := ParseComponents("27XGOEPS0000001H")

		require.True(t, ok)
		assert.Equal(t, "27", components.OfficeID)
		assert.Equal(t, "X", components.EntityType)
		assert.Equal(t, "GOEPS0000001", components.IndividualID)
		assert.Equal(t, "H", components.CheckDigit)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, ok := ParseComponents("27XGOEPS0000001")
		assert.False(t, ok)
	})
}
