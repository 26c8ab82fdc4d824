package usecase

import (
	"context"
	"time"

	eanDomain "github.com/allisson/codeval/internal/ean/domain"
	"github.com/allisson/codeval/internal/metrics"
)

// eanUseCaseWithMetrics decorates EANUseCase with metrics instrumentation.
type eanUseCaseWithMetrics struct {
	next    EANUseCase
	metrics metrics.BusinessMetrics
}

// NewEANUseCaseWithMetrics wraps an EANUseCase with metrics recording.
func NewEANUseCaseWithMetrics(useCase EANUseCase, m metrics.BusinessMetrics) EANUseCase {
	return &eanUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records metrics for validation operations. Validation never fails
// operationally, so the status reflects the data-quality outcome.
func (u *eanUseCaseWithMetrics) Validate(
	ctx context.Context,
	code string,
) eanDomain.FormatValidation {
	start := time.Now()
	result := u.next.Validate(ctx, code)

	status := "valid"
	if !result.IsValid {
		status = "invalid"
	}

	u.metrics.RecordOperation(ctx, "ean", "validate", status)
	u.metrics.RecordDuration(ctx, "ean", "validate", time.Since(start), status)

	return result
}

// Generate records metrics for generation operations.
func (u *eanUseCaseWithMetrics) Generate(
	ctx context.Context,
	baseCode string,
	format eanDomain.Format,
) (string, error) {
	start := time.Now()
	code, err := u.next.Generate(ctx, baseCode, format)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "ean", "generate", status)
	u.metrics.RecordDuration(ctx, "ean", "generate", time.Since(start), status)

	return code, err
}

// GenerateRandom records metrics for random generation operations.
func (u *eanUseCaseWithMetrics) GenerateRandom(
	ctx context.Context,
	format eanDomain.Format,
) (string, error) {
	start := time.Now()
	code, err := u.next.GenerateRandom(ctx, format)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "ean", "generate_random", status)
	u.metrics.RecordDuration(ctx, "ean", "generate_random", time.Since(start), status)

	return code, err
}

// GenerateMany records metrics for bulk generation operations.
func (u *eanUseCaseWithMetrics) GenerateMany(
	ctx context.Context,
	format eanDomain.Format,
	count int,
) ([]string, error) {
	start := time.Now()
	codes, err := u.next.GenerateMany(ctx, format, count)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "ean", "generate_many", status)
	u.metrics.RecordDuration(ctx, "ean", "generate_many", time.Since(start), status)

	return codes, err
}
