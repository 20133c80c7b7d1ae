package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// viewTTL is how long an untouched view survives. Browsers that navigate
// away never say goodbye; stale views are pruned when new ones are created.
const viewTTL = time.Hour

// Registry holds the live views, one per dashboard page load.
type Registry struct {
	mu      sync.Mutex
	fetcher Fetcher
	views   map[string]*View
	now     func() time.Time
}

func NewRegistry(f Fetcher) *Registry {
	return &Registry{
		fetcher: f,
		views:   make(map[string]*View),
		now:     time.Now,
	}
}

// Create registers a fresh view and returns its ID.
func (r *Registry) Create() (string, *View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked()

	id := uuid.NewString()
	v := NewView(r.fetcher)
	v.lastSeen = r.now()
	r.views[id] = v
	return id, v
}

// Get returns the view for id and refreshes its expiry.
func (r *Registry) Get(id string) (*View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.views[id]
	if ok {
		v.mu.Lock()
		v.lastSeen = r.now()
		v.mu.Unlock()
	}
	return v, ok
}

// Len reports the number of live views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func (r *Registry) pruneLocked() {
	cutoff := r.now().Add(-viewTTL)
	for id, v := range r.views {
		v.mu.Lock()
		stale := v.lastSeen.Before(cutoff)
		v.mu.Unlock()
		if stale {
			v.renderer.Detach()
			delete(r.views, id)
		}
	}
}
