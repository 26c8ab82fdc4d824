package random

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/codeval/internal/errors"
)

func TestUnique(t *testing.T) {
	t.Run("collects distinct values", func(t *testing.T) {
		i := 0
		values, err := Unique(context.Background(), 5, func() (string, error) {
			i++
			return fmt.Sprintf("value-%d", i), nil
		})

		require.NoError(t, err)
		assert.Len(t, values, 5)
	})

	t.Run("retries duplicates silently", func(t *testing.T) {
		i := 0
		values, err := Unique(context.Background(), 3, func() (string, error) {
			i++
			// Every value is drawn twice before a new one appears.
			return fmt.Sprintf("value-%d", i/2), nil
		})

		require.NoError(t, err)
		assert.Len(t, values, 3)
	})

	t.Run("exhausts on constant draw", func(t *testing.T) {
		_, err := Unique(context.Background(), 2, func() (string, error) {
			return "constant", nil
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSpaceExhausted)
		assert.True(t, apperrors.Is(err, apperrors.ErrExhausted))
	})

	t.Run("propagates draw error", func(t *testing.T) {
		drawErr := fmt.Errorf("random source failed")
		_, err := Unique(context.Background(), 2, func() (string, error) {
			return "", drawErr
		})

		assert.ErrorIs(t, err, drawErr)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Unique(ctx, 2, func() (string, error) {
			return "value", nil
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
