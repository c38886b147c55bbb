package syncer

import (
	"context"
	"sync"

	"attendance-manager/core/attendance"
)

// Source is a capability-typed punch event source: one per biometric
// terminal (or terminal collector). How events physically leave the hardware
// is the source's concern; the orchestrator only sees batches per date.
type Source interface {
	// ID identifies the terminal, used in sync reports and device tags.
	ID() string

	// Fetch returns the punch events recorded for the given date, or an
	// error when the terminal is unreachable or the payload is unusable.
	Fetch(ctx context.Context, date string) ([]attendance.PunchEvent, error)
}

// Registry holds the currently-configured punch sources in registration
// order. Registration order is load-bearing: it defines the batch
// concatenation order for the merge, so repeated syncs see events in a
// stable order.
type Registry struct {
	mu      sync.RWMutex
	sources []Source
	byID    map[string]Source
}

// NewRegistry creates an empty source registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Source)}
}

// Register adds a source. Re-registering an id replaces the previous source
// but keeps its position.
func (r *Registry) Register(src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[src.ID()]; exists {
		for i, existing := range r.sources {
			if existing.ID() == src.ID() {
				r.sources[i] = src
				break
			}
		}
	} else {
		r.sources = append(r.sources, src)
	}
	r.byID[src.ID()] = src
}

// ListAvailable returns all registered sources in registration order.
func (r *Registry) ListAvailable() []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Lookup returns the source with the given id.
func (r *Registry) Lookup(id string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.byID[id]
	return src, ok
}
