package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardgen/internal/cardgen/domain"
	"github.com/allisson/cardgen/internal/cardgen/service"
	cardgenMocks "github.com/allisson/cardgen/internal/cardgen/usecase/mocks"
	apperrors "github.com/allisson/cardgen/internal/errors"
)

func validInput() domain.GenerateInput {
	return domain.GenerateInput{
		Quantity:    2,
		Prefix:      "465861",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
	}
}

func TestCardUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RendersExport", func(t *testing.T) {
		mockGenerator := cardgenMocks.NewMockBatchGenerator(t)
		batch := &domain.Batch{
			ID:        uuid.Must(uuid.NewV7()),
			Prefix:    "465861",
			Numbers:   []string{"4658610000000003", "4658611234567897"},
			Attempts:  2,
			Budget:    20,
			CreatedAt: time.Now().UTC(),
		}

		mockGenerator.EXPECT().
			Generate(mock.Anything, domain.GenerationRequest{Quantity: 2, Prefix: "465861", TargetLength: 16}, mock.Anything).
			Return(batch, nil).
			Once()

		uc := NewCardUseCase(mockGenerator, 16, 100)
		output, err := uc.Generate(ctx, validInput(), nil)

		require.NoError(t, err)
		assert.Equal(t, batch, output.Batch)
		assert.Equal(t, domain.DefaultOutputFilename, output.Filename)
		assert.Equal(t, domain.CardMetadata{ExpiryMonth: "12", ExpiryYear: "2030", CVV: "123"}, output.Metadata)
		assert.Equal(t,
			"0000001|4658610000000003|12|2030|123\n0000002|4658611234567897|12|2030|123",
			string(output.Content),
		)
	})

	t.Run("Success_ForwardsProgress", func(t *testing.T) {
		mockGenerator := cardgenMocks.NewMockBatchGenerator(t)
		mockGenerator.EXPECT().
			Generate(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, _ domain.GenerationRequest, progress domain.ProgressFunc) {
				progress(domain.Progress{Generated: 1, Requested: 1, Percent: 100})
			}).
			Return(&domain.Batch{Numbers: []string{"4658610000000003"}}, nil).
			Once()

		var got []int
		uc := NewCardUseCase(mockGenerator, 16, 100)
		input := validInput()
		input.Quantity = 1

		_, err := uc.Generate(ctx, input, func(p domain.Progress) { got = append(got, p.Percent) })
		require.NoError(t, err)
		assert.Equal(t, []int{100}, got)
	})

	t.Run("Error_InvalidInputSkipsGeneration", func(t *testing.T) {
		mockGenerator := cardgenMocks.NewMockBatchGenerator(t)

		uc := NewCardUseCase(mockGenerator, 16, 100)
		input := validInput()
		input.Quantity = 101

		output, err := uc.Generate(ctx, input, nil)

		assert.Nil(t, output)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockGenerator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_ShortfallProducesNoOutput", func(t *testing.T) {
		mockGenerator := cardgenMocks.NewMockBatchGenerator(t)
		shortfall := &domain.ShortfallError{Requested: 2, Achieved: 1, Attempts: 20, Budget: 20}
		mockGenerator.EXPECT().
			Generate(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, shortfall).
			Once()

		uc := NewCardUseCase(mockGenerator, 16, 100)
		output, err := uc.Generate(ctx, validInput(), nil)

		assert.Nil(t, output)
		assert.ErrorIs(t, err, domain.ErrShortfall)
		assert.Contains(t, err.Error(), "could only generate 1 of 2")
	})
}

func TestCardUseCase_Generate_EndToEnd(t *testing.T) {
	generator := service.NewGenerator(service.WithSource(service.NewSeededDigitSource(21)))
	uc := NewCardUseCase(generator, 0, 0)

	input := validInput()
	input.Quantity = 5

	output, err := uc.Generate(context.Background(), input, nil)
	require.NoError(t, err)

	lines := strings.Split(string(output.Content), "\n")
	require.Len(t, lines, 5)
	for i, line := range lines {
		fields := strings.Split(line, "|")
		require.Len(t, fields, 5)
		assert.Equal(t, output.Batch.Numbers[i], fields[1])
		assert.True(t, strings.HasPrefix(fields[1], "465861"))
		assert.True(t, service.Validate(fields[1]))
		assert.Equal(t, []string{"12", "2030", "123"}, fields[2:])
	}
	assert.Equal(t, "0000001", strings.Split(lines[0], "|")[0])
	assert.Equal(t, "0000005", strings.Split(lines[4], "|")[0])
}

func TestCardUseCase_Validate(t *testing.T) {
	uc := NewCardUseCase(cardgenMocks.NewMockBatchGenerator(t), 16, 100)

	tests := []struct {
		name        string
		number      string
		expected    *domain.ValidationResult
		expectedErr error
	}{
		{
			name:   "Success_Valid",
			number: "79927398713",
			expected: &domain.ValidationResult{
				Number: "79927398713", Valid: true, Length: 11, ExpectedCheckDigit: 3,
			},
		},
		{
			name:   "Success_InvalidChecksum",
			number: "4111111111111112",
			expected: &domain.ValidationResult{
				Number: "4111111111111112", Valid: false, Length: 16, ExpectedCheckDigit: 1,
			},
		},
		{
			name:   "Success_SingleDigit",
			number: "0",
			expected: &domain.ValidationResult{
				Number: "0", Valid: true, Length: 1, ExpectedCheckDigit: 0,
			},
		},
		{name: "Error_Empty", number: "", expectedErr: domain.ErrEmptySequence},
		{name: "Error_NonDigit", number: "4111 1111", expectedErr: domain.ErrNonDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Validate(context.Background(), tt.number)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCardUseCase_CheckDigit(t *testing.T) {
	uc := NewCardUseCase(cardgenMocks.NewMockBatchGenerator(t), 16, 100)

	digit, err := uc.CheckDigit(context.Background(), "7992739871")
	require.NoError(t, err)
	assert.Equal(t, 3, digit)

	_, err = uc.CheckDigit(context.Background(), "")
	assert.True(t, errors.Is(err, domain.ErrEmptySequence))
}
