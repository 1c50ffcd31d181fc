package service

import "context"

// ImageStorage abstracts the blob store holding product and profile images.
type ImageStorage interface {
	// Upload writes the image bytes under the given key and returns the
	// public URL of the stored object.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object stored under the given key.
	Delete(ctx context.Context, key string) error
}
