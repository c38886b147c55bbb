package ledger

import (
	"context"
	"fmt"
	"sync"

	"attendance-manager/core/attendance"
)

// Writer is the single mutation point for a ledger Store. Every path that
// changes the ledger (merge applies, imports, deletes) must go through one
// shared Writer so a full-snapshot replacement never interleaves with
// another mutation's read-modify-write. Reads go straight to the Store.
type Writer struct {
	store Store
	mu    sync.Mutex
}

// NewWriter wraps a store in a serialized writer. Create exactly one per
// store.
func NewWriter(store Store) *Writer {
	return &Writer{store: store}
}

// Update runs an atomic read-modify-write: it loads the current snapshot,
// applies fn, and replaces the snapshot with fn's result. No other mutation
// runs between the load and the replacement. A context cancelled before the
// replacement aborts without mutating; fn errors abort the same way.
func (w *Writer) Update(ctx context.Context, fn func(existing []attendance.Record) ([]attendance.Record, error)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	existing, err := w.store.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	records, err := fn(existing)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return w.store.UpsertAll(ctx, records)
}

// DeleteByID removes exactly one record, serialized with snapshot
// replacements so an in-flight apply cannot resurrect it.
func (w *Writer) DeleteByID(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.DeleteByID(ctx, id)
}

// DeleteByDate removes every record for the date and returns the count,
// serialized the same way as DeleteByID.
func (w *Writer) DeleteByDate(ctx context.Context, date string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.DeleteByDate(ctx, date)
}
