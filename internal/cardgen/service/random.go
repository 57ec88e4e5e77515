package service

import (
	"math/rand/v2"
)

// NewDigitSource returns a PCG-backed source seeded from the runtime.
//
// The source is fast and statistically uniform but NOT cryptographically secure:
// generated numbers are test data and must never be treated as secrets.
func NewDigitSource() DigitSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededDigitSource returns a deterministic source. The same seed always
// yields the same digit stream.
func NewSeededDigitSource(seed uint64) DigitSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
