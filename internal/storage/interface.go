package storage

import (
	"context"
	"io"
)

// ObjectStorage defines the interface for uploaded-image storage.
type ObjectStorage interface {
	// Upload stores an object under key
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Download opens an object for reading
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// GetURL returns the URL or path for accessing an object
	GetURL(key string) string

	// Delete deletes an object; absence is not an error
	Delete(ctx context.Context, key string) error

	// Exists checks if an object exists
	Exists(ctx context.Context, key string) (bool, error)
}
