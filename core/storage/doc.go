// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the baseline menu document can live in AWS S3 or a
// self-hosted MinIO bucket. The Client interface is mocked in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks for the integrity feature.
//   - GetObject / StatObject: read the baseline document.
//   - PutObject: upload export documents for the operator.
//   - RemoveObject: discard stale exports.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	rc, err := client.GetObject(ctx, "menu", "menu-data.json", minio.GetObjectOptions{})
package storage
