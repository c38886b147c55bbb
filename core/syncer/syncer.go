package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"attendance-manager/core/attendance"
	"attendance-manager/core/ledger"
	"attendance-manager/core/masterdata"
	"attendance-manager/core/metrics"

	"go.uber.org/zap"
)

// ErrInvalidDate is returned when a sync is requested for a malformed date.
var ErrInvalidDate = errors.New("invalid sync date")

// SourceReport is the per-terminal outcome of one sync run.
type SourceReport struct {
	SourceID   string `json:"id"`
	Success    bool   `json:"success"`
	EventCount int    `json:"event_count"`
	Error      string `json:"error,omitempty"`
}

// Report is the operator-facing summary of one sync orchestration run.
type Report struct {
	Date              string         `json:"date"`
	PerSource         []SourceReport `json:"per_source"`
	TotalMergedEvents int            `json:"total_merged_events"`
	DroppedEvents     int            `json:"dropped_events"`
	LedgerRecords     int            `json:"ledger_records"`
}

// Syncer orchestrates multi-terminal sync runs: concurrent fetches, one
// merge over the concatenated batches, one atomic apply through the shared
// ledger writer.
type Syncer struct {
	writer   *ledger.Writer
	provider masterdata.Provider
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// New creates a sync orchestrator. The writer must be the same instance
// every other mutation path uses, so merge applies serialize with imports
// and deletes. The metrics handle may be nil when instrumentation is not
// wired (CLI one-shot runs).
func New(writer *ledger.Writer, provider masterdata.Provider, m *metrics.Metrics, logger *zap.Logger) *Syncer {
	return &Syncer{writer: writer, provider: provider, metrics: m, logger: logger}
}

// fetchOutcome carries one source's batch, slotted by registration index so
// the concatenation order stays stable regardless of goroutine completion
// order.
type fetchOutcome struct {
	events []attendance.PunchEvent
	err    error
}

// Sync fetches every source's batch for the date concurrently, merges all
// successful batches in a single engine pass, and applies the result to the
// ledger store as one atomic snapshot replacement.
//
// Source failures are collected into the report and never abort the run; the
// merge proceeds with whatever batches succeeded. A cancelled context aborts
// before anything is applied and surfaces as an error, never as a silent
// partial success.
func (s *Syncer) Sync(ctx context.Context, date string, sources []Source) (*Report, error) {
	if !attendance.ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	outcomes := make([]fetchOutcome, len(sources))

	var wg sync.WaitGroup
	wg.Add(len(sources))
	for i, src := range sources {
		go func(i int, src Source) {
			defer wg.Done()
			events, err := src.Fetch(ctx, date)
			outcomes[i] = fetchOutcome{events: events, err: err}
		}(i, src)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sync cancelled before apply: %w", err)
	}

	report := &Report{Date: date, PerSource: make([]SourceReport, 0, len(sources))}

	var batch []attendance.PunchEvent
	for i, src := range sources {
		outcome := outcomes[i]
		if outcome.err != nil {
			if s.metrics != nil {
				s.metrics.SourceFailures.WithLabelValues(src.ID()).Inc()
			}
			s.logger.Warn("Punch source fetch failed",
				zap.String("source", src.ID()),
				zap.String("date", date),
				zap.Error(outcome.err),
			)
			report.PerSource = append(report.PerSource, SourceReport{
				SourceID: src.ID(),
				Error:    outcome.err.Error(),
			})
			continue
		}

		for j := range outcome.events {
			if outcome.events[j].DeviceID == "" {
				outcome.events[j].DeviceID = src.ID()
			}
		}
		batch = append(batch, outcome.events...)
		report.PerSource = append(report.PerSource, SourceReport{
			SourceID:   src.ID(),
			Success:    true,
			EventCount: len(outcome.events),
		})
	}

	roster, err := s.provider.Snapshot(ctx)
	if err != nil {
		// Without master data every punch would be mislabeled as
		// unregistered, so the run aborts before any mutation.
		return nil, fmt.Errorf("failed to load master data: %w", err)
	}

	var result attendance.MergeResult
	err = s.writer.Update(ctx, func(existing []attendance.Record) ([]attendance.Record, error) {
		result = attendance.Merge(existing, batch, roster)
		return result.Records, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply merge result: %w", err)
	}

	report.TotalMergedEvents = result.Applied
	report.DroppedEvents = result.Dropped
	report.LedgerRecords = len(result.Records)

	if s.metrics != nil {
		s.metrics.SyncRuns.Inc()
		s.metrics.EventsMerged.Add(float64(result.Applied))
		s.metrics.EventsDropped.Add(float64(result.Dropped))
		s.metrics.LedgerRecords.Set(float64(len(result.Records)))
	}

	s.logger.Info("Sync run applied",
		zap.String("date", date),
		zap.Int("sources", len(sources)),
		zap.Int("merged_events", result.Applied),
		zap.Int("dropped_events", result.Dropped),
		zap.Int("ledger_records", len(result.Records)),
	)

	return report, nil
}

// QuickSync runs the same orchestration restricted to a single source.
func (s *Syncer) QuickSync(ctx context.Context, date string, src Source) (*Report, error) {
	return s.Sync(ctx, date, []Source{src})
}
