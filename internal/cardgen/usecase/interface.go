// Package usecase defines the card generation use cases: validated batch generation
// with export rendering, checksum verification and check digit computation.
package usecase

import (
	"context"

	"github.com/allisson/cardgen/internal/cardgen/domain"
)

// BatchGenerator produces batches of unique checksum-valid numbers.
type BatchGenerator interface {
	// Generate returns a batch of exactly req.Quantity numbers, or a
	// *domain.ShortfallError when the attempt budget runs out first.
	Generate(ctx context.Context, req domain.GenerationRequest, progress domain.ProgressFunc) (*domain.Batch, error)
}

// CardUseCase defines the card number operations exposed to transports.
type CardUseCase interface {
	// Generate validates input, generates a batch and renders the export file.
	// Nothing is rendered when generation fails.
	Generate(
		ctx context.Context,
		input domain.GenerateInput,
		progress domain.ProgressFunc,
	) (*domain.GenerateOutput, error)

	// Validate verifies the checksum of a complete number. Returns ErrInvalidInput
	// for empty or non-digit input.
	Validate(ctx context.Context, number string) (*domain.ValidationResult, error)

	// CheckDigit computes the check digit completing partial.
	CheckDigit(ctx context.Context, partial string) (int, error)
}
