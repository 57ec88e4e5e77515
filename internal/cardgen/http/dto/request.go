// Package dto provides data transfer objects for the card HTTP endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/cardgen/internal/cardgen/domain"
	customValidation "github.com/allisson/cardgen/internal/validation"
)

// GenerateRequest contains the parameters of a batch generation. Omitted fields
// take the form defaults (quantity 1, prefix 465861, expiry 12/2030, CVV 123).
type GenerateRequest struct {
	Quantity    *int   `json:"quantity,omitempty"`
	Prefix      string `json:"prefix,omitempty"`
	ExpiryMonth string `json:"expiry_month,omitempty"`
	ExpiryYear  string `json:"expiry_year,omitempty"`
	CVV         string `json:"cvv,omitempty"`
}

// Validate checks the shape of the request. Range checks that depend on
// configuration happen in the use case.
func (r *GenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Quantity, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&r.Prefix, customValidation.Digits(domain.PrefixLength)),
		validation.Field(&r.ExpiryMonth, customValidation.MonthString),
		validation.Field(&r.ExpiryYear, customValidation.Digits(4)),
		validation.Field(&r.CVV, customValidation.Digits(3)),
	)
}

// ToInput applies defaults and converts the request to a use case input.
func (r *GenerateRequest) ToInput() domain.GenerateInput {
	input := domain.GenerateInput{
		Quantity:    domain.DefaultQuantity,
		Prefix:      defaultString(r.Prefix, domain.DefaultPrefix),
		ExpiryMonth: defaultString(r.ExpiryMonth, domain.DefaultExpiryMonth),
		ExpiryYear:  defaultString(r.ExpiryYear, domain.DefaultExpiryYear),
		CVV:         defaultString(r.CVV, domain.DefaultCVV),
	}
	if r.Quantity != nil {
		input.Quantity = *r.Quantity
	}
	return input
}

// ValidateNumberRequest contains a complete number to verify.
type ValidateNumberRequest struct {
	Number string `json:"number"`
}

// Validate checks that a number was supplied and fits the supported length.
func (r *ValidateNumberRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, domain.MaxTargetLength),
		),
	)
}

// CheckDigitQuery is bound from the query string of the check digit endpoint.
type CheckDigitQuery struct {
	Partial string `form:"partial" json:"partial"`
}

// Validate checks that the partial is present and numeric.
func (q *CheckDigitQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Partial,
			validation.Required,
			customValidation.Numeric,
			validation.Length(1, domain.MaxTargetLength-1),
		),
	)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
