package baseline

import (
	"context"
	"fmt"
	"io"
	"os"

	"menu-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source fetches the baseline document.
type Source interface {
	Fetch(ctx context.Context) (*Document, error)
}

// StorageSource reads the baseline from an object in the storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	object string
}

// NewStorageSource creates a StorageSource.
func NewStorageSource(client storage.Client, bucket, object string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, object: object}
}

// Fetch downloads and parses the baseline object.
func (s *StorageSource) Fetch(ctx context.Context) (*Document, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", s.bucket, s.object, err)
	}

	return ParseDocument(data)
}

// FileSource reads the baseline from a local file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file path of the baseline.
func (s *FileSource) Path() string {
	return s.path
}

// Fetch reads and parses the baseline file.
func (s *FileSource) Fetch(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", s.path)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", s.path, err)
	}

	return ParseDocument(data)
}

// NewSource creates the Source selected by cfg.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case KindStorage:
		if client == nil {
			return nil, fmt.Errorf("storage source requires a storage client")
		}
		return NewStorageSource(client, bucket, cfg.Object), nil
	case KindFile:
		return NewFileSource(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown baseline source: %s", cfg.Source)
	}
}
