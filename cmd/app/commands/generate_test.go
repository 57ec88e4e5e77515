package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardgen/internal/cardgen/domain"
	"github.com/allisson/cardgen/internal/cardgen/service"
	"github.com/allisson/cardgen/internal/cardgen/usecase"
	"github.com/allisson/cardgen/internal/cardgen/usecase/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultInput(quantity int) domain.GenerateInput {
	return domain.GenerateInput{
		Quantity:    quantity,
		Prefix:      domain.DefaultPrefix,
		ExpiryMonth: domain.DefaultExpiryMonth,
		ExpiryYear:  domain.DefaultExpiryYear,
		CVV:         domain.DefaultCVV,
	}
}

func TestRunGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_TextOutput", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		output := &domain.GenerateOutput{
			Batch: &domain.Batch{
				ID:        uuid.Must(uuid.NewV7()),
				Prefix:    "465861",
				Numbers:   []string{"4658610000000003"},
				Attempts:  1,
				Budget:    10,
				CreatedAt: time.Now().UTC(),
			},
			Content: []byte("0000001|4658610000000003|12|2030|123"),
		}
		mockUseCase.EXPECT().Generate(mock.Anything, defaultInput(1), mock.Anything).Return(output, nil).Once()

		path := filepath.Join(t.TempDir(), "cards.txt")
		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, service.NewBucketExporter(), discardLogger(), &out, GenerateOptions{
			Input: defaultInput(1), OutputPath: path, Format: "text",
		})
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "0000001|4658610000000003|12|2030|123", string(content))
		assert.Contains(t, out.String(), "Generated 1 card number(s) to "+path)
		assert.Contains(t, out.String(), "Attempts: 1 of 10")
	})

	t.Run("Success_JSONOutputWithRealGenerator", func(t *testing.T) {
		gen := service.NewGenerator(service.WithSource(service.NewSeededDigitSource(3)))
		cardUseCase := usecase.NewCardUseCase(gen, 16, 1000)

		path := filepath.Join(t.TempDir(), "cards.txt")
		var out bytes.Buffer
		err := RunGenerate(ctx, cardUseCase, service.NewBucketExporter(), discardLogger(), &out, GenerateOptions{
			Input: defaultInput(5), OutputPath: path, Format: "json",
		})
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, float64(5), result["count"])
		assert.Equal(t, path, result["output"])
		assert.Contains(t, result["first_card"], "******")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := bytes.Split(content, []byte("\n"))
		require.Len(t, lines, 5)
		for i, line := range lines {
			fields := bytes.Split(line, []byte("|"))
			require.Len(t, fields, 5)
			assert.Equal(t, []byte{'0', '0', '0', '0', '0', '0', byte('1' + i)}, fields[0])
			assert.True(t, service.Validate(string(fields[1])))
		}
	})

	t.Run("Success_ProgressLines", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		output := &domain.GenerateOutput{
			Batch:   &domain.Batch{ID: uuid.Must(uuid.NewV7()), Numbers: []string{"4658610000000003"}},
			Content: []byte("0000001|4658610000000003|12|2030|123"),
		}
		mockUseCase.EXPECT().
			Generate(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, _ domain.GenerateInput, progress domain.ProgressFunc) {
				require.NotNil(t, progress)
				progress(domain.Progress{Generated: 1, Requested: 2, Attempts: 5, Budget: 20, Percent: 50})
				progress(domain.Progress{Generated: 2, Requested: 2, Attempts: 9, Budget: 20, Percent: 100})
			}).
			Return(output, nil).
			Once()

		var out, progressOut bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, service.NewBucketExporter(), discardLogger(), &out, GenerateOptions{
			Input:      defaultInput(2),
			OutputPath: filepath.Join(t.TempDir(), "cards.txt"),
			Format:     "text",
			Progress:   &progressOut,
		})
		require.NoError(t, err)
		assert.Equal(t,
			"Progress: 50% (1/2, 5 attempts)\nProgress: 100% (2/2, 9 attempts)\n",
			progressOut.String())
	})

	t.Run("Error_ShortfallWritesNoFile", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		shortfall := &domain.ShortfallError{Requested: 20, Achieved: 1, Attempts: 200, Budget: 200}
		mockUseCase.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(nil, shortfall).Once()

		path := filepath.Join(t.TempDir(), "cards.txt")
		err := RunGenerate(ctx, mockUseCase, service.NewBucketExporter(), discardLogger(), &bytes.Buffer{}, GenerateOptions{
			Input: defaultInput(20), OutputPath: path, Format: "text",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrShortfall)
		assert.NoFileExists(t, path)
	})

	t.Run("Error_ShortfallKeepsExistingFile", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		shortfall := &domain.ShortfallError{Requested: 20, Achieved: 1, Attempts: 200, Budget: 200}
		mockUseCase.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(nil, shortfall).Once()

		path := filepath.Join(t.TempDir(), "cards.txt")
		require.NoError(t, os.WriteFile(path, []byte("previous"), 0o600))

		err := RunGenerate(ctx, mockUseCase, service.NewBucketExporter(), discardLogger(), &bytes.Buffer{}, GenerateOptions{
			Input: defaultInput(20), OutputPath: path, Format: "text",
		})
		require.Error(t, err)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "previous", string(content))
	})

	t.Run("Error_InvalidFormat", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)

		err := RunGenerate(ctx, mockUseCase, service.NewBucketExporter(), discardLogger(), &bytes.Buffer{}, GenerateOptions{
			Input: defaultInput(1), Format: "xml",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("Error_MissingDirectory", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		output := &domain.GenerateOutput{
			Batch:   &domain.Batch{ID: uuid.Must(uuid.NewV7()), Numbers: []string{"4658610000000003"}},
			Content: []byte("0000001|4658610000000003|12|2030|123"),
		}
		mockUseCase.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(output, nil).Once()

		path := filepath.Join(t.TempDir(), "missing", "cards.txt")
		err := RunGenerate(ctx, mockUseCase, service.NewBucketExporter(), discardLogger(), &bytes.Buffer{}, GenerateOptions{
			Input: defaultInput(1), OutputPath: path, Format: "text",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write")
	})
}

func TestRunGenerate_Bucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_UploadsUnderBaseName", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		output := &domain.GenerateOutput{
			Batch:   &domain.Batch{ID: uuid.Must(uuid.NewV7()), Numbers: []string{"4658610000000003"}},
			Content: []byte("0000001|4658610000000003|12|2030|123"),
		}
		mockUseCase.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(output, nil).Once()

		bucketDir := t.TempDir()
		localDir := t.TempDir()
		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, service.NewBucketExporter(), discardLogger(), &out, GenerateOptions{
			Input:      defaultInput(1),
			OutputPath: filepath.Join(localDir, "cards.txt"),
			BucketURL:  "file://" + bucketDir,
			Format:     "json",
		})
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(bucketDir, "cards.txt"))
		require.NoError(t, err)
		assert.Equal(t, string(output.Content), string(content))
		assert.NoFileExists(t, filepath.Join(localDir, "cards.txt"))
		assert.Contains(t, out.String(), `"bucket": "file://`+bucketDir+`"`)
		assert.Contains(t, out.String(), `"output": "cards.txt"`)
	})

	t.Run("Error_UnknownBucketScheme", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		output := &domain.GenerateOutput{
			Batch:   &domain.Batch{ID: uuid.Must(uuid.NewV7()), Numbers: []string{"4658610000000003"}},
			Content: []byte("0000001|4658610000000003|12|2030|123"),
		}
		mockUseCase.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(output, nil).Once()

		err := RunGenerate(ctx, mockUseCase, service.NewBucketExporter(), discardLogger(), &bytes.Buffer{}, GenerateOptions{
			Input:      defaultInput(1),
			OutputPath: "cards.txt",
			BucketURL:  "invalid://bucket",
			Format:     "text",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to export batch")
	})
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.txt")

	require.NoError(t, writeFileAtomic(path, []byte("first")))
	require.NoError(t, writeFileAtomic(path, []byte("second")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
