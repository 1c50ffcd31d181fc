package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) (*blob.Bucket, context.Context) {
	t.Helper()
	ctx := context.Background()

	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	return bucket, ctx
}

func TestBlobImageStorage_UploadReturnsPublicURL(t *testing.T) {
	bucket, ctx := newMemStorage(t)
	storage := NewImageStorageWithBucket(bucket, "https://cdn.example.com/images/")

	url, err := storage.Upload(ctx, "products/p1.png", []byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/products/p1.png", url)

	data, err := bucket.ReadAll(ctx, "products/p1.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data)
}

func TestBlobImageStorage_UploadEmptyKey(t *testing.T) {
	bucket, ctx := newMemStorage(t)
	storage := NewImageStorageWithBucket(bucket, "https://cdn.example.com")

	_, err := storage.Upload(ctx, "", []byte("data"), "image/png")
	assert.Error(t, err)
}

func TestBlobImageStorage_Delete(t *testing.T) {
	bucket, ctx := newMemStorage(t)
	storage := NewImageStorageWithBucket(bucket, "https://cdn.example.com")

	_, err := storage.Upload(ctx, "products/p1.png", []byte("data"), "image/png")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, "products/p1.png"))

	exists, err := bucket.Exists(ctx, "products/p1.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobImageStorage_DeleteMissingKeyIsNoop(t *testing.T) {
	bucket, ctx := newMemStorage(t)
	storage := NewImageStorageWithBucket(bucket, "https://cdn.example.com")

	assert.NoError(t, storage.Delete(ctx, "does/not/exist.png"))
}
