package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	cardgenUseCase "github.com/allisson/cardgen/internal/cardgen/usecase"
)

// RunCheckDigit prints the check digit completing partial.
func RunCheckDigit(
	ctx context.Context,
	cardUseCase cardgenUseCase.CardUseCase,
	writer io.Writer,
	partial string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	digit, err := cardUseCase.CheckDigit(ctx, partial)
	if err != nil {
		return fmt.Errorf("failed to compute check digit: %w", err)
	}
	number := partial + strconv.Itoa(digit)

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"partial":     partial,
			"check_digit": digit,
			"number":      number,
		})
	}

	_, err = fmt.Fprintf(writer, "Check digit: %d\nNumber: %s\n", digit, number)
	return err
}
