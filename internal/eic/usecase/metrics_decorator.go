package usecase

import (
	"context"
	"time"

	eicDomain "github.com/allisson/codeval/internal/eic/domain"
	"github.com/allisson/codeval/internal/metrics"
)

// eicUseCaseWithMetrics decorates EICUseCase with metrics instrumentation.
type eicUseCaseWithMetrics struct {
	next    EICUseCase
	metrics metrics.BusinessMetrics
}

// NewEICUseCaseWithMetrics wraps an EICUseCase with metrics recording.
func NewEICUseCaseWithMetrics(useCase EICUseCase, m metrics.BusinessMetrics) EICUseCase {
	return &eicUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records metrics for validation operations. Validation never fails
// operationally, so the status reflects the data-quality outcome.
func (u *eicUseCaseWithMetrics) Validate(ctx context.Context, code string) eicDomain.Validation {
	start := time.Now()
	result := u.next.Validate(ctx, code)

	status := "valid"
	if !result.IsValid {
		status = "invalid"
	}

	u.metrics.RecordOperation(ctx, "eic", "validate", status)
	u.metrics.RecordDuration(ctx, "eic", "validate", time.Since(start), status)

	return result
}

// Generate records metrics for generation operations.
func (u *eicUseCaseWithMetrics) Generate(
	ctx context.Context,
	countryCode, entityType string,
) (string, error) {
	start := time.Now()
	code, err := u.next.Generate(ctx, countryCode, entityType)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "eic", "generate", status)
	u.metrics.RecordDuration(ctx, "eic", "generate", time.Since(start), status)

	return code, err
}

// GenerateMany records metrics for bulk generation operations.
func (u *eicUseCaseWithMetrics) GenerateMany(
	ctx context.Context,
	countryCode, entityType string,
	count int,
) ([]string, error) {
	start := time.Now()
	codes, err := u.next.GenerateMany(ctx, countryCode, entityType, count)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "eic", "generate_many", status)
	u.metrics.RecordDuration(ctx, "eic", "generate_many", time.Since(start), status)

	return codes, err
}
