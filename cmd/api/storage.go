package main

import (
	"context"
	"fmt"
	"io"

	"roomdesign/internal/infra"
	"roomdesign/internal/storage"
)

// objectStore pairs the configured backend with its cleanup hook and, for
// the filesystem driver, the directory served under /static.
type objectStore struct {
	storage.ObjectStore
	staticDir string
	closer    io.Closer
}

func (s objectStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func newObjectStore(ctx context.Context, cfg *infra.Config) (objectStore, error) {
	switch cfg.StorageDriver {
	case infra.StorageDriverGCS:
		gcs, err := storage.NewGCSStore(ctx, cfg.GCSCredentialsFile, cfg.StoragePublicBaseURL)
		if err != nil {
			return objectStore{}, err
		}
		return objectStore{ObjectStore: gcs, closer: gcs}, nil
	case infra.StorageDriverS3:
		s3, err := storage.NewS3Store(ctx, storage.S3Options{
			Endpoint:      cfg.S3Endpoint,
			Region:        cfg.S3Region,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.StoragePublicBaseURL,
		})
		if err != nil {
			return objectStore{}, err
		}
		return objectStore{ObjectStore: s3}, nil
	case infra.StorageDriverFS, "":
		fs, err := storage.NewFileStore(cfg.StoragePath, cfg.StoragePublicBaseURL)
		if err != nil {
			return objectStore{}, err
		}
		return objectStore{ObjectStore: fs, staticDir: fs.BasePath()}, nil
	default:
		return objectStore{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
