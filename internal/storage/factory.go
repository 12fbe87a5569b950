package storage

import (
	"fmt"

	"github.com/tomoki/kanjilens/internal/config"
)

// NewStorage creates an ObjectStorage instance from the configuration.
// The local backend writes into the upload directory; the s3 backend
// targets an S3-compatible bucket.
func NewStorage(cfg *config.StorageConfig, uploadDir string) (ObjectStorage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(uploadDir)
	case "s3":
		return NewS3Storage(&S3Config{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			PublicURL: cfg.PublicURL,
		})
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
