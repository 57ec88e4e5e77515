package usecase

import (
	"context"

	"github.com/allisson/cardgen/internal/cardgen/domain"
	"github.com/allisson/cardgen/internal/cardgen/service"
	customValidation "github.com/allisson/cardgen/internal/validation"
)

type cardUseCase struct {
	generator    BatchGenerator
	targetLength int
	maxQuantity  int
}

func (c *cardUseCase) Generate(
	ctx context.Context,
	input domain.GenerateInput,
	progress domain.ProgressFunc,
) (*domain.GenerateOutput, error) {
	if err := input.Validate(c.maxQuantity); err != nil {
		return nil, err
	}

	batch, err := c.generator.Generate(ctx, domain.GenerationRequest{
		Quantity:     input.Quantity,
		Prefix:       input.Prefix,
		TargetLength: c.targetLength,
	}, progress)
	if err != nil {
		return nil, err
	}

	meta := input.Metadata()
	content, err := service.RenderRecords(batch.Numbers, meta)
	if err != nil {
		return nil, err
	}

	return &domain.GenerateOutput{
		Batch:    batch,
		Metadata: meta,
		Filename: domain.DefaultOutputFilename,
		Content:  content,
	}, nil
}

func (c *cardUseCase) Validate(ctx context.Context, number string) (*domain.ValidationResult, error) {
	if number == "" {
		return nil, domain.ErrEmptySequence
	}
	if !customValidation.IsDigits(number) {
		return nil, domain.ErrNonDigit
	}

	result := &domain.ValidationResult{
		Number: number,
		Valid:  service.Validate(number),
		Length: len(number),
	}
	if len(number) > 1 {
		expected, err := service.ComputeCheckDigit(number[:len(number)-1])
		if err != nil {
			return nil, err
		}
		result.ExpectedCheckDigit = expected
	}
	return result, nil
}

func (c *cardUseCase) CheckDigit(ctx context.Context, partial string) (int, error) {
	return service.ComputeCheckDigit(partial)
}

// NewCardUseCase creates a CardUseCase. targetLength is the generated number
// length including the check digit; maxQuantity caps a single batch. Values
// below 1 fall back to the card format defaults.
func NewCardUseCase(generator BatchGenerator, targetLength, maxQuantity int) CardUseCase {
	if targetLength < 1 {
		targetLength = domain.CardNumberLength
	}
	if maxQuantity < 1 {
		maxQuantity = domain.MaxQuantity
	}
	return &cardUseCase{
		generator:    generator,
		targetLength: targetLength,
		maxQuantity:  maxQuantity,
	}
}
