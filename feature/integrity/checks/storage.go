package checks

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"menu-manager/core/baseline"
	"menu-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport is the result of a storage check.
type StorageReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Missing      []string `json:"missing"`
}

// CheckStorage verifies that the bucket exists and holds the required objects.
func CheckStorage(ctx context.Context, client storage.Client, bucket string, objects []string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Missing = append(report.Missing, objects...)
		return report, nil
	}

	for _, object := range objects {
		_, err := client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
		if err == nil {
			continue
		}
		if !storage.IsNotFound(err) {
			return nil, fmt.Errorf("failed to stat %s/%s: %w", bucket, object, err)
		}
		report.Missing = append(report.Missing, object)
	}

	return report, nil
}

// FixStorage creates the bucket if needed and seeds missing objects with an empty menu document.
func FixStorage(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, report *StorageReport) error {
	if !report.BucketExists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
			return err
		}
		logger.Info("Created missing bucket", zap.String("bucket", bucket))
	}

	data, err := baseline.NewDocument(nil, time.Now()).Encode()
	if err != nil {
		return err
	}

	for _, object := range report.Missing {
		_, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		if err != nil {
			logger.Error("Failed to seed object", zap.String("object", object), zap.Error(err))
			return err
		}
		logger.Info("Seeded missing object", zap.String("object", object))
	}
	return nil
}
