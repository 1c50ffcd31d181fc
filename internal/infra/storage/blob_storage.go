// Package storage implements the image blob store on top of gocloud.dev,
// so local disk and cloud buckets share one code path.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver, used in tests
)

// Params holds dependencies for the ImageStorage, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// blobImageStorage implements ImageStorage over a gocloud.dev bucket.
type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewImageStorage opens the configured bucket and manages its lifecycle.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Blob
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("blob bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := bucket.IsAccessible(ctx); err != nil {
				return errors.Wrap(err, "failed to check bucket accessibility")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Image blob storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// NewImageStorageWithBucket wraps an already opened bucket. Tests use this
// with a mem:// bucket.
func NewImageStorageWithBucket(bucket *blob.Bucket, publicBaseURL string) service.ImageStorage {
	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload writes the image bytes under the given key and returns the public
// URL of the stored object.
func (s *blobImageStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key must not be empty")
	}

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object stored under the given key. Deleting a missing
// object is not an error: the caller only cares that it is gone.
func (s *blobImageStorage) Delete(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrapf(err, "failed to check blob %s", key)
	}
	if !exists {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}
