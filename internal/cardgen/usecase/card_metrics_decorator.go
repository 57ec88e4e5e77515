package usecase

import (
	"context"
	"time"

	"github.com/allisson/cardgen/internal/cardgen/domain"
	apperrors "github.com/allisson/cardgen/internal/errors"
	"github.com/allisson/cardgen/internal/metrics"
)

const metricsDomain = "cardgen"

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Generate records operation metrics plus the batch outcome. Exhausted
// generations report the achieved count; validation failures record no batch.
func (c *cardUseCaseWithMetrics) Generate(
	ctx context.Context,
	input domain.GenerateInput,
	progress domain.ProgressFunc,
) (*domain.GenerateOutput, error) {
	start := time.Now()
	output, err := c.next.Generate(ctx, input, progress)
	c.record(ctx, "generate", start, err)

	var shortfall *domain.ShortfallError
	switch {
	case err == nil:
		c.metrics.RecordBatch(ctx, output.Batch.Len(), output.Batch.Attempts, "succeeded")
	case apperrors.As(err, &shortfall):
		c.metrics.RecordBatch(ctx, shortfall.Achieved, shortfall.Attempts, "exhausted")
	}

	return output, err
}

func (c *cardUseCaseWithMetrics) Validate(ctx context.Context, number string) (*domain.ValidationResult, error) {
	start := time.Now()
	result, err := c.next.Validate(ctx, number)
	c.record(ctx, "validate", start, err)
	return result, err
}

func (c *cardUseCaseWithMetrics) CheckDigit(ctx context.Context, partial string) (int, error) {
	start := time.Now()
	digit, err := c.next.CheckDigit(ctx, partial)
	c.record(ctx, "check_digit", start, err)
	return digit, err
}
