package domain

import (
	"time"

	"github.com/google/uuid"
)

// Batch is a successfully generated set of unique, checksum-valid numbers.
// Numbers are kept in first-insertion order, which drives export line numbering.
type Batch struct {
	ID        uuid.UUID
	Prefix    string
	Numbers   []string
	Attempts  int
	Budget    int
	CreatedAt time.Time
}

// Len returns the number of generated numbers.
func (b *Batch) Len() int {
	return len(b.Numbers)
}

// Progress is an advisory snapshot of a running generation.
type Progress struct {
	Generated int
	Requested int
	Attempts  int
	Budget    int
	Percent   int
}

// ProgressFunc receives progress snapshots at a bounded cadence.
type ProgressFunc func(Progress)

// PercentComplete returns floor(100*generated/requested), clamped to 99 unless
// done is true, in which case it is 100.
func PercentComplete(generated, requested int, done bool) int {
	if done {
		return 100
	}
	if requested <= 0 {
		return 0
	}
	pct := generated * 100 / requested
	if pct > 99 {
		return 99
	}
	return pct
}

// GenerateOutput is what a completed generation hands back to transports.
type GenerateOutput struct {
	Batch    *Batch
	Metadata CardMetadata
	Filename string
	Content  []byte
}

// ValidationResult describes a checksum verification of one number.
type ValidationResult struct {
	Number             string
	Valid              bool
	Length             int
	ExpectedCheckDigit int
}
