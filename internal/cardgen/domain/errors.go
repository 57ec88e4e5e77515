package domain

import (
	"fmt"

	"github.com/allisson/cardgen/internal/errors"
)

var (
	// ErrNonDigit indicates a digit sequence contains a character outside 0-9.
	ErrNonDigit = errors.Wrap(errors.ErrInvalidInput, "sequence must contain only decimal digits")

	// ErrEmptySequence indicates a digit sequence is empty.
	ErrEmptySequence = errors.Wrap(errors.ErrInvalidInput, "sequence cannot be empty")

	// ErrInvalidQuantity indicates the requested quantity is below 1 or above the maximum.
	ErrInvalidQuantity = errors.Wrap(errors.ErrInvalidInput, "quantity out of range")

	// ErrInvalidTargetLength indicates the target length cannot hold the prefix plus a check digit.
	ErrInvalidTargetLength = errors.Wrap(errors.ErrInvalidInput, "invalid target length for prefix")

	// ErrInvalidPrefix indicates the prefix is not made of decimal digits.
	ErrInvalidPrefix = errors.Wrap(errors.ErrInvalidInput, "prefix must contain only decimal digits")

	// ErrShortfall indicates the attempt budget ran out before the requested quantity was reached.
	ErrShortfall = errors.Wrap(errors.ErrExhausted, "unique number shortfall")
)

// ShortfallError reports an exhausted generation: how many unique numbers were
// produced against how many were requested.
type ShortfallError struct {
	Requested int
	Achieved  int
	Attempts  int
	Budget    int
}

// Error returns the user-facing shortfall message.
func (e *ShortfallError) Error() string {
	return fmt.Sprintf(
		"could only generate %d of %d requested unique numbers after %d attempts, try a different prefix or a smaller quantity",
		e.Achieved,
		e.Requested,
		e.Attempts,
	)
}

// Unwrap exposes ErrShortfall so callers can match with errors.Is.
func (e *ShortfallError) Unwrap() error {
	return ErrShortfall
}

// Counts returns the achieved and requested quantities.
func (e *ShortfallError) Counts() (achieved, requested int) {
	return e.Achieved, e.Requested
}
