package audit

import (
	"context"
	"errors"

	"skinfolio/core/storage"
	"skinfolio/feature/audit/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrArchiveDisabled is returned by archive checks when no storage client is
// configured.
var ErrArchiveDisabled = errors.New("archive storage is not configured")

// Service runs consistency checks over synced inventory data. The storage
// client may be nil; archive checks are then unavailable.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new audit service.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// CheckSnapshots returns findings where snapshot rows and item rows disagree.
func (s *Service) CheckSnapshots(ctx context.Context) ([]string, error) {
	return checks.CheckSnapshots(ctx, s.db)
}

// CheckCatalogCoverage reports which owned item names the catalog is missing.
func (s *Service) CheckCatalogCoverage(ctx context.Context) (*checks.CoverageReport, error) {
	return checks.CheckCatalogCoverage(ctx, s.db)
}

// CheckArchive returns steam ids of synced users missing an archived payload.
func (s *Service) CheckArchive(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrArchiveDisabled
	}
	return checks.CheckArchive(ctx, s.db, s.client, s.bucket)
}
