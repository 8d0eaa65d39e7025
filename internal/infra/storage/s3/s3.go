package s3

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

type Storage struct {
	cl     *minio.Client
	bucket string
	logger *log.Logger
}

func New(ctx context.Context, cfg Config, logger *log.Logger) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, logger: logger}, nil
}

var _ domain.BlobStorage = (*Storage)(nil)

// Put stores an uploaded document under a caller-built key
// ("<unit>/<kategori>/<unixms>_<name>"). Size is known up front from
// the multipart header, so no streaming tricks are needed.
func (s *Storage) Put(ctx context.Context, key string, r io.Reader, size int64, mime string) (domain.BlobPutResult, error) {
	start := time.Now()
	info, err := s.cl.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: mime,
	})
	if err != nil {
		s.logger.Printf("PUT %q failed after %s: %v", key, time.Since(start), err)
		return domain.BlobPutResult{}, err
	}
	s.logger.Printf("PUT %q ok in %s size=%d", key, time.Since(start), info.Size)
	return domain.BlobPutResult{StorageKey: key, Size: info.Size}, nil
}

// SignedURL issues a presigned GET for an object key.
func (s *Storage) SignedURL(ctx context.Context, storageKey string, ttl time.Duration) (string, error) {
	reqParams := make(url.Values)
	u, err := s.cl.PresignedGetObject(ctx, s.bucket, storageKey, ttl, reqParams)
	if err != nil {
		s.logger.Printf("PRESIGN %q failed: %v", storageKey, err)
		return "", err
	}
	s.logger.Printf("PRESIGN %q ok (ttl=%s)", storageKey, ttl)
	return u.String(), nil
}

func (s *Storage) Delete(ctx context.Context, storageKey string) error {
	err := s.cl.RemoveObject(ctx, s.bucket, storageKey, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.Printf("DELETE %q failed: %v", storageKey, err)
		return err
	}
	s.logger.Printf("DELETE %q ok", storageKey)
	return nil
}

// Ping verifies the bucket is reachable (used by readiness).
func (s *Storage) Ping(ctx context.Context) error {
	ok, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}
