// Package domain defines the card number generation domain: generation requests,
// batches, shortfall errors, and the export record metadata.
package domain

import "math"

// Card number format constants.
const (
	// PrefixLength is the number of leading digits every exported card number shares.
	PrefixLength = 6

	// CardNumberLength is the length of an exported card number, check digit included.
	CardNumberLength = 16

	// MinTargetLength is the shortest sequence the generator produces:
	// one payload digit plus the check digit.
	MinTargetLength = 2

	// MaxTargetLength bounds the generator's target length.
	MaxTargetLength = 255

	// MaxQuantity is the largest batch a single generation call accepts.
	MaxQuantity = 1_000_000

	// DefaultAttemptMultiplier sizes the attempt budget as quantity times this value.
	DefaultAttemptMultiplier = 10

	// DefaultProgressInterval is the number of attempts between progress reports.
	DefaultProgressInterval = 10_000
)

// Export record constants.
const (
	// LineNumberWidth is the zero-padded width of the record line number.
	LineNumberWidth = 7

	// FieldSeparator separates the fields of an export record.
	FieldSeparator = "|"

	// DefaultOutputFilename is the name used for the exported batch file.
	DefaultOutputFilename = "generated_cards.txt"
)

// Defaults offered when the caller does not supply a value.
const (
	DefaultPrefix      = "465861"
	DefaultExpiryMonth = "12"
	DefaultExpiryYear  = "2030"
	DefaultCVV         = "123"
	DefaultQuantity    = 1
)

// FillerDigits returns how many random digits sit between the prefix and the check digit.
func FillerDigits(prefixLength, targetLength int) int {
	k := targetLength - prefixLength - 1
	if k < 0 {
		return 0
	}
	return k
}

// CandidateSpace returns how many distinct complete sequences share one prefix when
// k filler digits are random: 10^k, since the check digit is fixed by the filler.
// The result saturates at math.MaxUint64.
func CandidateSpace(fillerDigits int) uint64 {
	if fillerDigits > 19 {
		return math.MaxUint64
	}
	space := uint64(1)
	for i := 0; i < fillerDigits; i++ {
		space *= 10
	}
	return space
}
