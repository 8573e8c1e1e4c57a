package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"learntrack_backend/internal/config"
)

// StorageProvider persists uploaded files and returns a URL clients can
// fetch them from.
type StorageProvider interface {
	Save(ctx context.Context, name string, contentType string, size int64, r io.Reader) (string, error)
}

// NewStorageProvider picks the provider from configuration: "minio" for the
// object store, anything else falls back to local disk.
func NewStorageProvider(cfg *config.Config) (StorageProvider, error) {
	if cfg.Storage.Type == "minio" {
		return NewMinioStorageProvider(cfg)
	}
	return &LocalStorageProvider{Dir: cfg.Storage.LocalPath}, nil
}

// LocalStorageProvider writes uploads under a directory served as static
// files at /uploads.
type LocalStorageProvider struct {
	Dir string
}

func (p *LocalStorageProvider) Save(_ context.Context, name string, _ string, _ int64, r io.Reader) (string, error) {
	path := filepath.Join(p.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// MinioStorageProvider stores uploads in a MinIO (or S3-compatible) bucket.
type MinioStorageProvider struct {
	Client   *minio.Client
	Bucket   string
	Endpoint string
}

func NewMinioStorageProvider(cfg *config.Config) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
		Creds: credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Storage.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Storage.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioStorageProvider{
		Client:   client,
		Bucket:   cfg.Storage.MinioBucket,
		Endpoint: cfg.Storage.MinioEndpoint,
	}, nil
}

func (p *MinioStorageProvider) Save(ctx context.Context, name string, contentType string, size int64, r io.Reader) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://%s/%s/%s", p.Endpoint, p.Bucket, name), nil
}
