package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records use case level measurements.
type BusinessMetrics interface {
	// RecordOperation counts one operation. domain is "cardgen", operation is
	// "generate" or "validate", status is "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the operation duration in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordBatch records the outcome of one generation: how many numbers were
	// produced and how many attempts were spent. outcome is "succeeded" or "exhausted".
	RecordBatch(ctx context.Context, generated, attempts int, outcome string)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	generatedCounter metric.Int64Counter
	attemptsHisto    metric.Int64Histogram
}

// NewBusinessMetrics creates the business instruments on meterProvider. Metric
// names are prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	generatedCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_numbers_generated_total", namespace),
		metric.WithDescription("Total number of unique numbers produced by generation"),
		metric.WithUnit("{number}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated counter: %w", err)
	}

	attemptsHisto, err := meter.Int64Histogram(
		fmt.Sprintf("%s_generation_attempts", namespace),
		metric.WithDescription("Attempts spent per generation"),
		metric.WithUnit("{attempt}"),
		metric.WithExplicitBucketBoundaries(10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create attempts histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		generatedCounter: generatedCounter,
		attemptsHisto:    attemptsHisto,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordBatch(ctx context.Context, generated, attempts int, outcome string) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	b.generatedCounter.Add(ctx, int64(generated), attrs)
	b.attemptsHisto.Record(ctx, int64(attempts), attrs)
}

// NoOpBusinessMetrics discards every measurement. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordBatch(ctx context.Context, generated, attempts int, outcome string) {}
