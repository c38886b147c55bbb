package ledger

import (
	"context"
	"sort"
	"strings"
	"sync"

	"attendance-manager/core/attendance"
)

// Filter narrows a ledger query within a date. Zero-value fields are
// ignored. Code and Name match as case-insensitive substrings; CheckIn,
// CheckOut and Status match exactly.
type Filter struct {
	Code     string
	Name     string
	CheckIn  string
	CheckOut string
	Status   attendance.Status
}

// Matches reports whether a record satisfies every set field of the filter.
func (f Filter) Matches(rec attendance.Record) bool {
	if f.Code != "" && !strings.Contains(strings.ToLower(rec.EmployeeCode), strings.ToLower(f.Code)) {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(rec.EmployeeName), strings.ToLower(f.Name)) {
		return false
	}
	if f.CheckIn != "" && rec.CheckIn != f.CheckIn {
		return false
	}
	if f.CheckOut != "" && rec.CheckOut != f.CheckOut {
		return false
	}
	if f.Status != "" && rec.Status != f.Status {
		return false
	}
	return true
}

// Store holds the current set of attendance records. It is owned exclusively
// by the reconciliation engine; consumers read through Query and mutate only
// through the explicit operations here.
type Store interface {
	// All returns the complete current snapshot.
	All(ctx context.Context) ([]attendance.Record, error)

	// UpsertAll replaces the full snapshot with the given records. This is
	// the single mutation point for merge results and imports.
	UpsertAll(ctx context.Context, records []attendance.Record) error

	// DeleteByID removes exactly one record. Absent ids are a no-op.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByDate removes every record with the given date and returns the
	// count removed.
	DeleteByDate(ctx context.Context, date string) (int, error)

	// Query returns records matching an exact date and the optional filter.
	Query(ctx context.Context, date string, filter Filter) ([]attendance.Record, error)
}

// MemoryStore is an in-process Store guarded by a read-write mutex. It backs
// deployments without a ledger database and all engine tests. Reads always
// see the latest fully-applied snapshot; no record is ever locked for the
// duration of a consumer read.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]attendance.Record // keyed by (employeeCode, date)
}

// NewMemoryStore creates an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]attendance.Record)}
}

// All returns the complete snapshot sorted by date then employee code.
func (s *MemoryStore) All(ctx context.Context) ([]attendance.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]attendance.Record, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	sortRecords(records)
	return records, nil
}

// UpsertAll replaces the snapshot wholesale.
func (s *MemoryStore) UpsertAll(ctx context.Context, records []attendance.Record) error {
	next := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		next[rec.Key()] = rec
	}

	s.mu.Lock()
	s.records = next
	s.mu.Unlock()
	return nil
}

// DeleteByID removes the record with the given id, if present.
func (s *MemoryStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, rec := range s.records {
		if rec.ID == id {
			delete(s.records, key)
			return nil
		}
	}
	return nil
}

// DeleteByDate removes every record for the date and returns the count.
func (s *MemoryStore) DeleteByDate(ctx context.Context, date string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, rec := range s.records {
		if rec.Date == date {
			delete(s.records, key)
			removed++
		}
	}
	return removed, nil
}

// Query returns the records for a date that satisfy the filter.
func (s *MemoryStore) Query(ctx context.Context, date string, filter Filter) ([]attendance.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []attendance.Record
	for _, rec := range s.records {
		if rec.Date == date && filter.Matches(rec) {
			records = append(records, rec)
		}
	}
	sortRecords(records)
	return records, nil
}

func sortRecords(records []attendance.Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].EmployeeCode < records[j].EmployeeCode
	})
}
