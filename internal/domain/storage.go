package domain

import (
	"context"
	"io"
	"time"
)

// Result of storing a binary blob (S3/MinIO).
type BlobPutResult struct {
	StorageKey string
	Size       int64
}

type BlobStorage interface {
	// Put stores a new file under key (unit/category scoped path built by the caller).
	Put(ctx context.Context, key string, r io.Reader, size int64, mime string) (BlobPutResult, error)
	// SignedURL issues a time-bounded read URL for an object key.
	SignedURL(ctx context.Context, storageKey string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, storageKey string) error
	Ping(ctx context.Context) error
}
