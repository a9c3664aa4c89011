// Package evidence stores supporting documents in a blob bucket. The
// bucket URL decides the backend: file:// for local development,
// gs:// in deployment, mem:// in tests.
package evidence

import (
	"context"
	"log/slog"

	"mirathi/config"
	"mirathi/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // driver for file:// URLs
	_ "gocloud.dev/blob/gcsblob"  // driver for gs:// URLs
	_ "gocloud.dev/blob/memblob"  // driver for mem:// URLs
)

// blobStorage implements service.EvidenceStorage over a gocloud bucket.
type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured evidence bucket.
func New(params Params) (service.EvidenceStorage, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Evidence.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open evidence bucket %s", params.Config.Evidence.BucketURL)
	}

	params.Logger.Info("Evidence bucket opened",
		slog.String("bucket_url", params.Config.Evidence.BucketURL),
	)

	storage := &blobStorage{bucket: bucket, logger: params.Logger}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// NewWithBucket wraps an already opened bucket. Used by tests with a
// mem:// bucket.
func NewWithBucket(bucket *blob.Bucket, logger *slog.Logger) service.EvidenceStorage {
	return &blobStorage{bucket: bucket, logger: logger}
}

// Save writes a document under the given key, replacing any existing
// content.
func (s *blobStorage) Save(ctx context.Context, key string, contentType string, data []byte) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write evidence %s", key)
	}

	return nil
}

// Load reads a document back by key.
func (s *blobStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read evidence %s", key)
	}

	return data, nil
}

// Exists reports whether a document is stored under the key.
func (s *blobStorage) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check evidence %s", key)
	}

	return exists, nil
}

// Close releases the bucket handle.
func (s *blobStorage) Close() error {
	return s.bucket.Close()
}
