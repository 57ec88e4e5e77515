package service

import (
	"github.com/allisson/cardgen/internal/cardgen/domain"
)

// luhnSum walks the sequence from its last digit to its first, doubling every
// other digit with a 9-subtraction fold. doubleRightmost selects whether the
// rightmost digit is the first doubled one.
func luhnSum(sequence string, doubleRightmost bool) (int, error) {
	if sequence == "" {
		return 0, domain.ErrEmptySequence
	}

	sum := 0
	double := doubleRightmost
	for i := len(sequence) - 1; i >= 0; i-- {
		c := sequence[i]
		if c < '0' || c > '9' {
			return 0, domain.ErrNonDigit
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum, nil
}

// ComputeCheckDigit returns the mod-10 check digit completing partial.
// The rightmost digit of partial is the first one doubled.
func ComputeCheckDigit(partial string) (int, error) {
	sum, err := luhnSum(partial, true)
	if err != nil {
		return 0, err
	}
	return (10 - sum%10) % 10, nil
}

// AppendCheckDigit returns partial followed by its check digit.
func AppendCheckDigit(partial string) (string, error) {
	check, err := ComputeCheckDigit(partial)
	if err != nil {
		return "", err
	}
	return partial + string(rune('0'+check)), nil
}

// Validate reports whether sequence, check digit included, passes the mod-10
// checksum. Empty sequences and non-digit characters never validate.
func Validate(sequence string) bool {
	sum, err := luhnSum(sequence, false)
	if err != nil {
		return false
	}
	return sum%10 == 0
}
