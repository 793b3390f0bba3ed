package baseline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"menu-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Exporter publishes an updated baseline document for the operator.
type Exporter interface {
	// Export publishes doc and returns where it can be found.
	Export(ctx context.Context, doc *Document) (string, error)
}

// StorageExporter uploads export documents to the storage bucket.
type StorageExporter struct {
	client storage.Client
	bucket string
	object string
}

// NewStorageExporter creates a StorageExporter.
func NewStorageExporter(client storage.Client, bucket, object string) *StorageExporter {
	return &StorageExporter{client: client, bucket: bucket, object: object}
}

func (e *StorageExporter) Export(ctx context.Context, doc *Document) (string, error) {
	data, err := doc.Encode()
	if err != nil {
		return "", err
	}

	_, err = e.client.PutObject(ctx, e.bucket, e.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export %s/%s: %w", e.bucket, e.object, err)
	}

	return e.bucket + "/" + e.object, nil
}

// FileExporter writes export documents to a local file.
type FileExporter struct {
	path string
}

// NewFileExporter creates a FileExporter.
func NewFileExporter(path string) *FileExporter {
	return &FileExporter{path: path}
}

func (e *FileExporter) Export(_ context.Context, doc *Document) (string, error) {
	data, err := doc.Encode()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(e.path), 0750); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	// Write to a temporary file first so readers never see a partial document.
	tempPath := e.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write temporary export file: %w", err)
	}
	if err := os.Rename(tempPath, e.path); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("failed to rename export file: %w", err)
	}

	return e.path, nil
}

// NopExporter only hands the document back to the caller.
type NopExporter struct{}

func (NopExporter) Export(context.Context, *Document) (string, error) {
	return "", nil
}

// NewExporter creates the Exporter selected by cfg.
// Exports never target the baseline itself.
func NewExporter(cfg Config, client storage.Client, bucket string) (Exporter, error) {
	switch cfg.Exporter {
	case KindStorage:
		if client == nil {
			return nil, fmt.Errorf("storage exporter requires a storage client")
		}
		if cfg.Source == KindStorage && cfg.ExportObject == cfg.Object {
			return nil, fmt.Errorf("export object must differ from baseline object %s", cfg.Object)
		}
		return NewStorageExporter(client, bucket, cfg.ExportObject), nil
	case KindFile:
		if cfg.Source == KindFile && filepath.Clean(cfg.ExportPath) == filepath.Clean(cfg.Path) {
			return nil, fmt.Errorf("export path must differ from baseline path %s", cfg.Path)
		}
		return NewFileExporter(cfg.ExportPath), nil
	case KindNone, "":
		return NopExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown baseline exporter: %s", cfg.Exporter)
	}
}
