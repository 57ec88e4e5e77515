// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cardgen/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// IsDigits reports whether s is non-empty and made only of ASCII decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Digits validates that a string consists of exactly n decimal digits.
// Empty strings pass so that validation.Required decides about presence.
func Digits(n int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return len(s) == n && IsDigits(s)
		},
		validation.NewError(
			"validation_digits",
			fmt.Sprintf("must be exactly %d digits", n),
		),
	)
}

// Numeric validates that a string contains only decimal digits.
var Numeric = validation.NewStringRuleWithError(
	IsDigits,
	validation.NewError("validation_numeric", "must contain only digits"),
)

// MonthString validates a two digit month between 01 and 12.
var MonthString = validation.NewStringRuleWithError(
	func(s string) bool {
		if len(s) != 2 || !IsDigits(s) {
			return false
		}
		m, err := strconv.Atoi(s)
		return err == nil && m >= 1 && m <= 12
	},
	validation.NewError("validation_month", "must be between 01 and 12"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
