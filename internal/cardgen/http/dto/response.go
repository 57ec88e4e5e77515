package dto

import (
	"time"

	"github.com/allisson/cardgen/internal/cardgen/domain"
)

// GenerateResponse is the JSON form of a generated batch, served when the
// client prefers application/json over the text export.
type GenerateResponse struct {
	BatchID     string    `json:"batch_id"`
	Filename    string    `json:"filename"`
	Count       int       `json:"count"`
	Attempts    int       `json:"attempts"`
	Budget      int       `json:"budget"`
	ExpiryMonth string    `json:"expiry_month"`
	ExpiryYear  string    `json:"expiry_year"`
	CVV         string    `json:"cvv"`
	Numbers     []string  `json:"numbers"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapGenerateOutputToResponse converts a use case output to a JSON response.
func MapGenerateOutputToResponse(output *domain.GenerateOutput) GenerateResponse {
	return GenerateResponse{
		BatchID:     output.Batch.ID.String(),
		Filename:    output.Filename,
		Count:       output.Batch.Len(),
		Attempts:    output.Batch.Attempts,
		Budget:      output.Batch.Budget,
		ExpiryMonth: output.Metadata.ExpiryMonth,
		ExpiryYear:  output.Metadata.ExpiryYear,
		CVV:         output.Metadata.CVV,
		Numbers:     output.Batch.Numbers,
		CreatedAt:   output.Batch.CreatedAt,
	}
}

// ValidateNumberResponse reports a checksum verification.
type ValidateNumberResponse struct {
	Number             string `json:"number"`
	Valid              bool   `json:"valid"`
	Length             int    `json:"length"`
	ExpectedCheckDigit int    `json:"expected_check_digit"`
}

// MapValidationResultToResponse converts a validation result to a JSON response.
func MapValidationResultToResponse(result *domain.ValidationResult) ValidateNumberResponse {
	return ValidateNumberResponse{
		Number:             result.Number,
		Valid:              result.Valid,
		Length:             result.Length,
		ExpectedCheckDigit: result.ExpectedCheckDigit,
	}
}

// CheckDigitResponse reports the check digit of a partial and the completed number.
type CheckDigitResponse struct {
	Partial    string `json:"partial"`
	CheckDigit int    `json:"check_digit"`
	Number     string `json:"number"`
}
