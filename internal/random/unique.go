package random

import (
	"context"

	apperrors "github.com/allisson/codeval/internal/errors"
)

// uniqueAttemptsFactor bounds the redraw loop in Unique. Collisions over the
// identifier spaces in use are vanishingly rare, so the cap exists to turn a
// pathological draw function into an error instead of an infinite loop.
const uniqueAttemptsFactor = 100

// ErrSpaceExhausted indicates the draw function failed to produce enough
// distinct values within the attempt budget.
var ErrSpaceExhausted = apperrors.Wrap(apperrors.ErrExhausted, "could not draw enough unique values")

// Unique collects count distinct values from repeated calls to draw.
// Duplicate draws are silently retried. The loop is bounded by
// count*uniqueAttemptsFactor attempts and honors context cancellation,
// so a caller can time-box large batches.
func Unique(ctx context.Context, count int, draw func() (string, error)) ([]string, error) {
	seen := make(map[string]struct{}, count)
	values := make([]string, 0, count)

	maxAttempts := count * uniqueAttemptsFactor
	for attempt := 0; attempt < maxAttempts && len(values) < count; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, err := draw()
		if err != nil {
			return nil, err
		}

		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}

	if len(values) < count {
		return nil, ErrSpaceExhausted
	}

	return values, nil
}
