package health

import (
	"context"
	"fmt"

	"attendance-manager/core/storage"
	"attendance-manager/core/syncer"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// requiredTables are the tables a fully-provisioned deployment carries: the
// HR master data pair plus the ledger itself.
var requiredTables = []string{"employees", "shifts", "attendance_records"}

// DatabaseReport is the result of a database health check.
type DatabaseReport struct {
	Configured    bool     `json:"configured"`
	MissingTables []string `json:"missing_tables"`
}

// StorageReport is the result of an object storage health check.
type StorageReport struct {
	Configured   bool   `json:"configured"`
	Bucket       string `json:"bucket"`
	BucketExists bool   `json:"bucket_exists"`
}

// Service runs deployment health checks.
type Service struct {
	db       *gorm.DB
	client   storage.Client
	bucket   string
	registry *syncer.Registry
	logger   *zap.Logger
}

// NewService creates the health service. Both db and client may be nil; the
// corresponding checks then report the dependency as not configured.
func NewService(db *gorm.DB, client storage.Client, bucket string, registry *syncer.Registry, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		client:   client,
		bucket:   bucket,
		registry: registry,
		logger:   logger,
	}
}

// CheckDatabase verifies that the HR and ledger tables exist.
func (s *Service) CheckDatabase(ctx context.Context) (*DatabaseReport, error) {
	report := &DatabaseReport{MissingTables: []string{}}
	if s.db == nil {
		return report, nil
	}
	report.Configured = true

	migrator := s.db.WithContext(ctx).Migrator()
	for _, table := range requiredTables {
		if !migrator.HasTable(table) {
			report.MissingTables = append(report.MissingTables, table)
		}
	}
	return report, nil
}

// CheckStorage verifies that the punch dump bucket is reachable.
func (s *Service) CheckStorage(ctx context.Context) (*StorageReport, error) {
	report := &StorageReport{Bucket: s.bucket}
	if s.client == nil {
		return report, nil
	}
	report.Configured = true

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	report.BucketExists = exists
	return report, nil
}

// Terminals returns the registered terminal ids in registration order.
func (s *Service) Terminals() []string {
	sources := s.registry.ListAvailable()
	ids := make([]string, 0, len(sources))
	for _, src := range sources {
		ids = append(ids, src.ID())
	}
	return ids
}
