package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"elgrace_backend/internal/config"
)

// Storage abstracts where uploaded media lives. Paths are relative keys;
// backends map them to disk or object storage.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for a stored file.
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary URL for private files. Backends
	// without signing return the public URL.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
