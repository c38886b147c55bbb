package masterdata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Provider supplies master-data snapshots to the reconciliation engine.
type Provider interface {
	// Snapshot returns the current roster and shift catalog.
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// StaticProvider serves a fixed snapshot. Used by tests and by deployments
// without a master-data database.
type StaticProvider struct {
	snap *Snapshot
}

// NewStaticProvider wraps a snapshot in a Provider. A nil snapshot behaves
// like an empty roster.
func NewStaticProvider(snap *Snapshot) *StaticProvider {
	if snap == nil {
		snap = EmptySnapshot()
	}
	return &StaticProvider{snap: snap}
}

// Snapshot returns the fixed snapshot.
func (p *StaticProvider) Snapshot(ctx context.Context) (*Snapshot, error) {
	return p.snap, nil
}

// GormProvider loads the roster and shift catalog from the HR database and
// caches the snapshot for a TTL. Rebuilds are deduplicated with singleflight
// so concurrent syncs never stampede the database.
type GormProvider struct {
	db  *gorm.DB
	ttl time.Duration

	mu    sync.RWMutex
	snap  *Snapshot
	built time.Time
	sf    singleflight.Group
}

// NewGormProvider creates a database-backed provider. A zero ttl disables
// caching and every Snapshot call hits the database.
func NewGormProvider(db *gorm.DB, ttl time.Duration) *GormProvider {
	return &GormProvider{db: db, ttl: ttl}
}

// Snapshot returns the cached snapshot if fresh, otherwise rebuilds it from
// the employees and shifts tables.
func (p *GormProvider) Snapshot(ctx context.Context) (*Snapshot, error) {
	p.mu.RLock()
	snap, built := p.snap, p.built
	p.mu.RUnlock()

	if snap != nil && p.ttl > 0 && time.Since(built) <= p.ttl {
		return snap, nil
	}

	result, err, _ := p.sf.Do("masterdata", func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot.
		p.mu.RLock()
		snap, built := p.snap, p.built
		p.mu.RUnlock()
		if snap != nil && p.ttl > 0 && time.Since(built) <= p.ttl {
			return snap, nil
		}

		fresh, err := p.load(ctx)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.snap = fresh
		p.built = time.Now()
		p.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Invalidate drops the cached snapshot so the next call rebuilds it.
func (p *GormProvider) Invalidate() {
	p.mu.Lock()
	p.snap = nil
	p.mu.Unlock()
}

func (p *GormProvider) load(ctx context.Context) (*Snapshot, error) {
	var employees []Employee
	if err := p.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	var shifts []Shift
	if err := p.db.WithContext(ctx).Find(&shifts).Error; err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	snap := &Snapshot{
		Employees: make(map[string]Employee, len(employees)),
		Shifts:    make(map[string]Shift, len(shifts)),
	}
	for _, emp := range employees {
		snap.Employees[emp.Code] = emp
	}
	for _, shift := range shifts {
		snap.Shifts[shift.ID] = shift
	}
	return snap, nil
}
