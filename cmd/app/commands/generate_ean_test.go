package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eanUseCase "github.com/allisson/codeval/internal/ean/usecase"
)

func TestRunGenerateEAN(t *testing.T) {
	ctx := context.Background()
	useCase := eanUseCase.NewEANUseCase()

	t.Run("deterministic from base code", func(t *testing.T) {
		var buf bytes.Buffer
		ioTuple := IOTuple{Writer: &buf}

		err := RunGenerateEAN(ctx, useCase, ioTuple, "400638133393", "EAN-13", 1)
		require.NoError(t, err)
		assert.Equal(t, "4006381333931\n", buf.String())
	})

	t.Run("random single code", func(t *testing.T) {
		var buf bytes.Buffer
		ioTuple := IOTuple{Writer: &buf}

		err := RunGenerateEAN(ctx, useCase, ioTuple, "", "EAN-8", 1)
		require.NoError(t, err)
		assert.Len(t, strings.TrimSpace(buf.String()), 8)
	})

	t.Run("random batch", func(t *testing.T) {
		var buf bytes.Buffer
		ioTuple := IOTuple{Writer: &buf}

		err := RunGenerateEAN(ctx, useCase, ioTuple, "", "EAN-13", 5)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 5)
	})

	t.Run("base code with count is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		ioTuple := IOTuple{Writer: &buf}

		err := RunGenerateEAN(ctx, useCase, ioTuple, "400638133393", "EAN-13", 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "single code")
	})

	t.Run("unknown type", func(t *testing.T) {
		var buf bytes.Buffer
		ioTuple := IOTuple{Writer: &buf}

		err := RunGenerateEAN(ctx, useCase, ioTuple, "", "EAN-12", 1)
		require.Error(t, err)
	})
}
