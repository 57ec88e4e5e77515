package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/cardgen/internal/cardgen/domain"
)

// maxPreallocate caps the up-front capacity of the result set so a huge quantity
// does not reserve memory before any number exists.
const maxPreallocate = 1 << 16

// Generator produces batches of unique checksum-valid numbers within an attempt
// budget. A Generator holds no per-call state and may be shared, but the
// DigitSource it wraps is not safe for concurrent use, so concurrent callers
// need one Generator each.
type Generator struct {
	source           DigitSource
	multiplier       int
	progressInterval int
	logger           *slog.Logger
	now              func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the random digit source.
func WithSource(source DigitSource) Option {
	return func(g *Generator) {
		if source != nil {
			g.source = source
		}
	}
}

// WithAttemptMultiplier sets the budget multiplier. Values below 1 are ignored.
func WithAttemptMultiplier(multiplier int) Option {
	return func(g *Generator) {
		if multiplier >= 1 {
			g.multiplier = multiplier
		}
	}
}

// WithProgressInterval sets how many attempts pass between progress reports.
// Values below 1 are ignored.
func WithProgressInterval(interval int) Option {
	return func(g *Generator) {
		if interval >= 1 {
			g.progressInterval = interval
		}
	}
}

// WithLogger sets the logger used for capacity warnings and exhaustion notices.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator with the default multiplier and progress interval.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		source:           NewDigitSource(),
		multiplier:       domain.DefaultAttemptMultiplier,
		progressInterval: domain.DefaultProgressInterval,
		logger:           slog.New(slog.DiscardHandler),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Budget returns the attempt budget for quantity.
func (g *Generator) Budget(quantity int) int {
	return quantity * g.multiplier
}

// Generate draws candidates until quantity unique numbers exist or the budget is
// spent. On exhaustion it returns a *domain.ShortfallError and no batch.
//
// progress may be nil. It is called every progress interval attempts with a
// percentage clamped to 99, and once with 100 after success. The context is
// checked at the same cadence.
func (g *Generator) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
	progress domain.ProgressFunc,
) (*domain.Batch, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	budget := g.Budget(req.Quantity)
	filler := req.FillerDigits()
	if space := domain.CandidateSpace(filler); uint64(req.Quantity) > space {
		g.logger.WarnContext(ctx, "quantity exceeds candidate space, generation will exhaust",
			slog.Int("quantity", req.Quantity),
			slog.Uint64("candidate_space", space),
			slog.Int("filler_digits", filler),
		)
	}

	capacity := min(req.Quantity, maxPreallocate)
	seen := make(map[string]struct{}, capacity)
	numbers := make([]string, 0, capacity)

	partial := make([]byte, req.TargetLength-1)
	copy(partial, req.Prefix)
	prefixLen := len(req.Prefix)

	report := func(attempts int, done bool) {
		if progress == nil {
			return
		}
		progress(domain.Progress{
			Generated: len(numbers),
			Requested: req.Quantity,
			Attempts:  attempts,
			Budget:    budget,
			Percent:   domain.PercentComplete(len(numbers), req.Quantity, done),
		})
	}

	attempts := 0
	for len(numbers) < req.Quantity && attempts < budget {
		for i := prefixLen; i < len(partial); i++ {
			partial[i] = byte('0' + g.source.IntN(10))
		}
		number, err := AppendCheckDigit(string(partial))
		if err != nil {
			return nil, err
		}
		if _, exists := seen[number]; !exists {
			seen[number] = struct{}{}
			numbers = append(numbers, number)
		}
		attempts++

		if attempts%g.progressInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report(attempts, false)
		}
	}

	if len(numbers) < req.Quantity {
		g.logger.InfoContext(ctx, "attempt budget exhausted",
			slog.Int("requested", req.Quantity),
			slog.Int("achieved", len(numbers)),
			slog.Int("attempts", attempts),
		)
		return nil, &domain.ShortfallError{
			Requested: req.Quantity,
			Achieved:  len(numbers),
			Attempts:  attempts,
			Budget:    budget,
		}
	}

	report(attempts, true)

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &domain.Batch{
		ID:        id,
		Prefix:    req.Prefix,
		Numbers:   numbers,
		Attempts:  attempts,
		Budget:    budget,
		CreatedAt: g.now().UTC(),
	}, nil
}

// PerCallGenerator builds a fresh Generator, and with it a fresh digit source,
// for every Generate call. It is safe for concurrent use.
type PerCallGenerator struct {
	opts []Option
}

// NewPerCallGenerator returns a PerCallGenerator applying opts to each Generator it builds.
func NewPerCallGenerator(opts ...Option) *PerCallGenerator {
	return &PerCallGenerator{opts: opts}
}

// Generate runs a single generation on a new Generator.
func (p *PerCallGenerator) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
	progress domain.ProgressFunc,
) (*domain.Batch, error) {
	return NewGenerator(p.opts...).Generate(ctx, req, progress)
}
