package attendance

import (
	"context"
	"errors"
	"fmt"

	core "attendance-manager/core/attendance"
	"attendance-manager/core/ledger"
	"attendance-manager/core/syncer"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Service errors surfaced to the handler layer.
var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrUnknownTerminal = errors.New("unknown terminal")
)

// Service owns the engine-facing operations: ledger queries, sync
// orchestration, manual deletes and imports.
type Service struct {
	store    ledger.Store
	writer   *ledger.Writer
	syncer   *syncer.Syncer
	registry *syncer.Registry
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates the attendance service. The writer must be the same
// instance the syncer applies through; imports and deletes serialize with
// merge applies behind it.
func NewService(store ledger.Store, writer *ledger.Writer, sync *syncer.Syncer, registry *syncer.Registry, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		writer:   writer,
		syncer:   sync,
		registry: registry,
		logger:   logger,
		validate: newValidator(),
	}
}

// Query returns the ledger records for an exact date, narrowed by the
// optional filter.
func (s *Service) Query(ctx context.Context, date string, filter ledger.Filter) ([]core.Record, error) {
	if !core.ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return s.store.Query(ctx, date, filter)
}

// SyncAll runs a full sync across every registered terminal.
func (s *Service) SyncAll(ctx context.Context, date string) (*syncer.Report, error) {
	return s.syncer.Sync(ctx, date, s.registry.ListAvailable())
}

// SyncOne runs a quick sync restricted to a single terminal.
func (s *Service) SyncOne(ctx context.Context, date, terminalID string) (*syncer.Report, error) {
	src, ok := s.registry.Lookup(terminalID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTerminal, terminalID)
	}
	return s.syncer.QuickSync(ctx, date, src)
}

// ListTerminals returns the ids of all registered terminals in registration
// order.
func (s *Service) ListTerminals() []string {
	sources := s.registry.ListAvailable()
	ids := make([]string, 0, len(sources))
	for _, src := range sources {
		ids = append(ids, src.ID())
	}
	return ids
}

// DeleteRecord removes exactly one ledger record. Unknown ids are a no-op;
// the operation is irreversible and confirmation belongs upstream.
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	if err := s.writer.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Deleted attendance record", zap.String("id", id))
	return nil
}

// DeleteAllForDate removes every ledger record for a date and returns the
// count removed.
func (s *Service) DeleteAllForDate(ctx context.Context, date string) (int, error) {
	if !core.ValidDate(date) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	removed, err := s.writer.DeleteByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Deleted attendance records for date",
		zap.String("date", date),
		zap.Int("removed", removed),
	)
	return removed, nil
}

// ImportRecords overlays already-finalized records onto the ledger,
// replacing any existing record for the same (employee, date) key. Rows are
// validated but never re-classified. The load-overlay-apply runs atomically
// through the shared writer, so a concurrent sync can neither be erased by
// the import nor erase it. Returns the number of imported rows.
func (s *Service) ImportRecords(ctx context.Context, rows []ImportRow) (int, error) {
	for i, row := range rows {
		if err := s.validate.Struct(row); err != nil {
			return 0, fmt.Errorf("invalid import row %d: %w", i, err)
		}
	}

	err := s.writer.Update(ctx, func(existing []core.Record) ([]core.Record, error) {
		merged := make(map[string]core.Record, len(existing)+len(rows))
		for _, rec := range existing {
			merged[rec.Key()] = rec
		}
		for _, row := range rows {
			rec := row.toRecord()
			merged[rec.Key()] = rec
		}

		snapshot := make([]core.Record, 0, len(merged))
		for _, rec := range merged {
			snapshot = append(snapshot, rec)
		}
		return snapshot, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to apply import: %w", err)
	}

	s.logger.Info("Imported attendance records", zap.Int("rows", len(rows)))
	return len(rows), nil
}
