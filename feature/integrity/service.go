package integrity

import (
	"context"
	"fmt"

	"menu-manager/core/storage"
	"menu-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	objects []string
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service.
// objects are the keys that must exist in the bucket. client and db may be nil
// when the corresponding backend is not configured.
func NewService(client storage.Client, bucket string, objects []string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		objects: objects,
		db:      db,
		logger:  logger,
	}
}

// CheckStorage returns the storage report.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.objects)
}

// FixStorage creates what the report lists as missing.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	return checks.FixStorage(ctx, s.client, s.bucket, s.logger, report)
}

// CheckDatabase returns the staging schema report.
func (s *Service) CheckDatabase() (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(s.db)
}
