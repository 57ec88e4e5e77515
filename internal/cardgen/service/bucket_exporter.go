package service

import (
	"context"
	"fmt"

	"gocloud.dev/blob"

	// Register the blob drivers export destinations can use
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const exportContentType = "text/plain; charset=utf-8"

// bucketExporter implements BucketExporter using gocloud.dev/blob.
type bucketExporter struct{}

// NewBucketExporter creates a BucketExporter. Supported URLs: file:///dir, mem://.
func NewBucketExporter() BucketExporter {
	return &bucketExporter{}
}

func (b *bucketExporter) Upload(ctx context.Context, bucketURL, key string, content []byte) (err error) {
	if key == "" {
		return fmt.Errorf("empty export key")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return fmt.Errorf("failed to open export bucket: %w", err)
	}
	defer func() {
		if closeErr := bucket.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close export bucket: %w", closeErr)
		}
	}()

	if err := bucket.WriteAll(ctx, key, content, &blob.WriterOptions{ContentType: exportContentType}); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
