package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"

	"github.com/allisson/cardgen/internal/errors"
	customValidation "github.com/allisson/cardgen/internal/validation"
)

// GenerationRequest is the core input of the batch generator.
// Prefix may be empty; TargetLength counts the check digit.
type GenerationRequest struct {
	Quantity     int
	Prefix       string
	TargetLength int
}

// Validate checks the generator preconditions.
func (r GenerationRequest) Validate() error {
	if r.Quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, r.Quantity)
	}
	if r.Prefix != "" && !customValidation.IsDigits(r.Prefix) {
		return ErrInvalidPrefix
	}
	if r.TargetLength < MinTargetLength || r.TargetLength > MaxTargetLength ||
		r.TargetLength < len(r.Prefix)+1 {
		return fmt.Errorf(
			"%w: prefix has %d digits, target length is %d",
			ErrInvalidTargetLength,
			len(r.Prefix),
			r.TargetLength,
		)
	}
	return nil
}

// FillerDigits returns the number of random digits each attempt draws.
func (r GenerationRequest) FillerDigits() int {
	return FillerDigits(len(r.Prefix), r.TargetLength)
}

// CardMetadata holds the constant trailing fields appended to every export record.
type CardMetadata struct {
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
}

// GenerateInput is the caller-facing request: what a user submits before any
// generation starts.
type GenerateInput struct {
	Quantity    int
	Prefix      string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
}

// Validate enforces the input contract. maxQuantity caps the batch size; values
// below 1 fall back to MaxQuantity.
func (i GenerateInput) Validate(maxQuantity int) error {
	if maxQuantity < 1 {
		maxQuantity = MaxQuantity
	}
	err := validation.ValidateStruct(&i,
		validation.Field(&i.Quantity,
			validation.Required.Error(fmt.Sprintf("must be between 1 and %d", maxQuantity)),
			validation.Min(1),
			validation.Max(maxQuantity),
		),
		validation.Field(&i.Prefix,
			validation.Required,
			customValidation.Digits(PrefixLength),
		),
		validation.Field(&i.ExpiryMonth,
			validation.Required,
			customValidation.MonthString,
		),
		validation.Field(&i.ExpiryYear,
			validation.Required,
			customValidation.Digits(4),
		),
		validation.Field(&i.CVV,
			validation.Required,
			customValidation.Digits(3),
		),
	)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return nil
}

// Metadata returns the export metadata carried by the input.
func (i GenerateInput) Metadata() CardMetadata {
	return CardMetadata{
		ExpiryMonth: i.ExpiryMonth,
		ExpiryYear:  i.ExpiryYear,
		CVV:         i.CVV,
	}
}
