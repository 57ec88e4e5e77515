package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/allisson/cardgen/internal/cardgen/domain"
	"github.com/allisson/cardgen/internal/cardgen/service"
	cardgenUseCase "github.com/allisson/cardgen/internal/cardgen/usecase"
	apperrors "github.com/allisson/cardgen/internal/errors"
)

// GenerateOptions holds the arguments of the generate command.
type GenerateOptions struct {
	Input      domain.GenerateInput
	OutputPath string
	Format     string
	// BucketURL, when set, uploads the export under the base name of OutputPath.
	BucketURL string
	// Progress, when set, receives a line per progress report.
	Progress io.Writer
}

type generateResult struct {
	BatchID   string `json:"batch_id"`
	Count     int    `json:"count"`
	Attempts  int    `json:"attempts"`
	Budget    int    `json:"budget"`
	Output    string `json:"output"`
	Bucket    string `json:"bucket,omitempty"`
	FirstCard string `json:"first_card"`
}

// RunGenerate generates a batch and writes its export file to opts.OutputPath,
// or to the bucket at opts.BucketURL when set. A local file is written to a
// temporary sibling and renamed into place, so an existing export is never left
// half-written. A shortfall writes nothing and returns an error.
func RunGenerate(
	ctx context.Context,
	cardUseCase cardgenUseCase.CardUseCase,
	exporter service.BucketExporter,
	logger *slog.Logger,
	writer io.Writer,
	opts GenerateOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	if opts.OutputPath == "" {
		opts.OutputPath = domain.DefaultOutputFilename
	}

	logger.Info("generating card numbers",
		slog.Int("quantity", opts.Input.Quantity),
		slog.String("prefix", opts.Input.Prefix),
		slog.String("output", opts.OutputPath),
	)

	var progress domain.ProgressFunc
	if opts.Progress != nil {
		progress = func(p domain.Progress) {
			_, _ = fmt.Fprintf(opts.Progress, "Progress: %d%% (%d/%d, %d attempts)\n",
				p.Percent, p.Generated, p.Requested, p.Attempts)
		}
	}

	output, err := cardUseCase.Generate(ctx, opts.Input, progress)
	if err != nil {
		var shortfall *domain.ShortfallError
		if apperrors.As(err, &shortfall) {
			logger.Warn("generation fell short",
				slog.Int("achieved", shortfall.Achieved),
				slog.Int("requested", shortfall.Requested),
				slog.Int("attempts", shortfall.Attempts),
			)
		}
		return fmt.Errorf("failed to generate card numbers: %w", err)
	}

	result := generateResult{
		BatchID:  output.Batch.ID.String(),
		Count:    output.Batch.Len(),
		Attempts: output.Batch.Attempts,
		Budget:   output.Batch.Budget,
		Output:   opts.OutputPath,
	}

	if opts.BucketURL != "" {
		result.Output = filepath.Base(opts.OutputPath)
		result.Bucket = opts.BucketURL
		if err := exporter.Upload(ctx, opts.BucketURL, result.Output, output.Content); err != nil {
			return fmt.Errorf("failed to export batch: %w", err)
		}
	} else if err := writeFileAtomic(opts.OutputPath, output.Content); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.OutputPath, err)
	}

	if result.Count > 0 {
		result.FirstCard = service.MaskNumber(output.Batch.Numbers[0])
	}

	logger.Info("generation completed",
		slog.String("batch_id", result.BatchID),
		slog.Int("count", result.Count),
		slog.Int("attempts", result.Attempts),
	)

	if opts.Format == "json" {
		return writeJSON(writer, result)
	}

	_, err = fmt.Fprintf(writer,
		"Generated %d card number(s) to %s\nBatch ID: %s\nAttempts: %d of %d\n",
		result.Count, result.Output, result.BatchID, result.Attempts, result.Budget)
	return err
}

// writeFileAtomic writes data to a temporary file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
