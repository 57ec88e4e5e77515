// Package service implements the card number engine: the mod-10 checksum, the
// deduplicating batch generator and the pipe-delimited record export.
package service

import "context"

// DigitSource supplies uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type DigitSource interface {
	IntN(n int) int
}

// BucketExporter uploads rendered export files to blob storage.
type BucketExporter interface {
	// Upload writes content under key in the bucket at bucketURL. The object only
	// becomes visible once the whole content is written.
	Upload(ctx context.Context, bucketURL, key string, content []byte) error
}
