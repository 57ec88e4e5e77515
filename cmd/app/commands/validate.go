package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	cardgenUseCase "github.com/allisson/cardgen/internal/cardgen/usecase"
)

type validateResult struct {
	Number             string `json:"number"`
	Valid              bool   `json:"valid"`
	Length             int    `json:"length"`
	ExpectedCheckDigit int    `json:"expected_check_digit"`
}

// RunValidate checks the checksum of each number. Numbers come from args, or
// one per line from io.Reader when args is empty; blank lines are skipped.
// Returns an error when any number is invalid.
func RunValidate(
	ctx context.Context,
	cardUseCase cardgenUseCase.CardUseCase,
	logger *slog.Logger,
	io IOTuple,
	args []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	numbers := args
	if len(numbers) == 0 {
		var err error
		numbers, err = readLines(io)
		if err != nil {
			return fmt.Errorf("failed to read numbers: %w", err)
		}
	}
	if len(numbers) == 0 {
		return fmt.Errorf("no numbers to validate")
	}

	results := make([]validateResult, 0, len(numbers))
	invalid := 0
	for _, number := range numbers {
		res, err := cardUseCase.Validate(ctx, number)
		if err != nil {
			return fmt.Errorf("failed to validate %q: %w", number, err)
		}
		if !res.Valid {
			invalid++
		}
		results = append(results, validateResult{
			Number:             res.Number,
			Valid:              res.Valid,
			Length:             res.Length,
			ExpectedCheckDigit: res.ExpectedCheckDigit,
		})
	}

	logger.Info("validation completed",
		slog.Int("total", len(results)),
		slog.Int("invalid", invalid),
	)

	if format == "json" {
		if err := writeJSON(io.Writer, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			status := "valid"
			if !r.Valid {
				status = fmt.Sprintf("invalid (expected check digit %d)", r.ExpectedCheckDigit)
			}
			if _, err := fmt.Fprintf(io.Writer, "%s: %s\n", r.Number, status); err != nil {
				return err
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d number(s) failed the checksum", invalid, len(results))
	}
	return nil
}

func readLines(io IOTuple) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(io.Reader)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
