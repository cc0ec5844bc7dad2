package slot

import (
	"sync"

	"github.com/wippyai/ffi-bridge/internal/gls"
)

// Registry holds one pending-error slot per goroutine. Entries exist only
// while an error is pending, so the map stays proportional to unreported
// failures, not to goroutine count.
type Registry struct {
	mu    sync.Mutex
	slots map[uint64]error
}

// NewRegistry creates an empty slot registry.
func NewRegistry() *Registry {
	return &Registry{
		slots: make(map[uint64]error),
	}
}

// Store records err as the calling goroutine's pending error, replacing and
// discarding any previously stored value. Storing nil clears the slot.
func (r *Registry) Store(err error) {
	id := gls.ID()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err == nil {
		delete(r.slots, id)
		return
	}
	r.slots[id] = err
}

// Take removes and returns the calling goroutine's pending error, leaving
// the slot empty. It returns nil when nothing is pending. Two consecutive
// calls without an intervening Store yield the error once, then nil.
func (r *Registry) Take() error {
	id := gls.ID()

	r.mu.Lock()
	defer r.mu.Unlock()

	err, ok := r.slots[id]
	if !ok {
		return nil
	}
	delete(r.slots, id)
	return err
}

// Release drops the calling goroutine's slot entry, pending error included.
// Worker goroutines that may have stored an error should call this before
// retiring.
func (r *Registry) Release() {
	id := gls.ID()

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, id)
}

// Pending returns the number of goroutines with an unreported error.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

var defaultRegistry = NewRegistry()

// Store records err in the process-wide registry for the calling goroutine.
func Store(err error) {
	defaultRegistry.Store(err)
}

// Take drains the calling goroutine's pending error from the process-wide
// registry.
func Take() error {
	return defaultRegistry.Take()
}

// Release drops the calling goroutine's entry from the process-wide registry.
func Release() {
	defaultRegistry.Release()
}

// Pending returns the number of unreported errors in the process-wide
// registry.
func Pending() int {
	return defaultRegistry.Pending()
}
