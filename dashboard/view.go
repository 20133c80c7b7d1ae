package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"tracedash/maprender"
	"tracedash/models"
)

// Fetcher is the read side of the trace store as the controller sees it.
type Fetcher interface {
	FetchByUser(ctx context.Context, userID string) ([]models.LocationPoint, error)
	FetchByFilter(ctx context.Context, c models.FilterCriteria) ([]models.LocationPoint, error)
	DisplayName(ctx context.Context, userID string) string
}

// queryFailedMessage is the transient banner shown for a failed store read.
const queryFailedMessage = "Failed to load location data"

// Snapshot is the observable state of a view, polled by the dashboard page.
type Snapshot struct {
	State       string             `json:"state"`
	Mode        string             `json:"mode"`
	Error       string             `json:"error,omitempty"`
	DisplayName string             `json:"display_name,omitempty"`
	PointCount  int                `json:"point_count"`
	Updated     string             `json:"updated,omitempty"`
	Map         maprender.Snapshot `json:"map"`
}

// View is one dashboard client's selection controller. It owns the current
// mode and selection value, serializes selection changes against in-flight
// queries with a generation counter, and drives the renderer with resolved
// results. Only the latest selection's result is ever applied; stale
// results are discarded silently.
type View struct {
	mu       sync.Mutex
	fetcher  Fetcher
	renderer *maprender.Renderer
	doc      *maprender.Document

	mode     string
	userID   string
	criteria models.FilterCriteria

	// gen identifies the current selection. Every dispatch bumps it; a
	// resolving query compares its own token against it and discards
	// itself on mismatch.
	gen uint64

	loading    bool
	errMsg     string
	display    string
	pointCount int
	updatedAt  time.Time
	lastSeen   time.Time
}

func NewView(f Fetcher) *View {
	v := &View{
		fetcher:  f,
		renderer: maprender.New(),
		doc:      maprender.NewDocument(),
		mode:     models.ModeUser,
		lastSeen: time.Now(),
	}
	// Attach cannot fail on a fresh renderer.
	if err := v.renderer.Attach(v.doc); err != nil {
		slog.Error("failed to attach renderer", "error", err)
	}
	return v
}

// MarkReady signals that the browser's map surface finished loading.
func (v *View) MarkReady() {
	v.renderer.Ready()
}

// SelectUser switches the view to a user trace. An empty ID is a cleared
// dropdown: no query, trace removed.
func (v *View) SelectUser(userID string) {
	v.mu.Lock()
	v.mode = models.ModeUser
	v.userID = userID
	v.criteria = models.FilterCriteria{}

	if userID == "" {
		v.clearLocked()
		v.mu.Unlock()
		return
	}

	gen := v.dispatchLocked()
	v.mu.Unlock()

	go v.resolve(gen, func(ctx context.Context) ([]models.LocationPoint, string, error) {
		name := v.fetcher.DisplayName(ctx, userID)
		points, err := v.fetcher.FetchByUser(ctx, userID)
		return points, name, err
	})
}

// SelectFilter switches the view to an aggregate trace. A filter with no
// criteria set issues no query and clears the rendered trace immediately.
func (v *View) SelectFilter(c models.FilterCriteria) {
	v.mu.Lock()
	v.mode = models.ModeFilter
	v.userID = ""
	v.criteria = c

	if c.Empty() {
		v.clearLocked()
		v.mu.Unlock()
		return
	}

	gen := v.dispatchLocked()
	v.mu.Unlock()

	go v.resolve(gen, func(ctx context.Context) ([]models.LocationPoint, string, error) {
		points, err := v.fetcher.FetchByFilter(ctx, c)
		return points, "", err
	})
}

// SetMode clears the other mode's parameters and the rendered trace. It
// never issues a query by itself.
func (v *View) SetMode(mode string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.mode = mode
	v.userID = ""
	v.criteria = models.FilterCriteria{}
	v.clearLocked()
}

// Snapshot returns the current observable state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		Mode:        v.mode,
		DisplayName: v.display,
		PointCount:  v.pointCount,
		Map:         v.doc.Snapshot(),
	}
	if !v.updatedAt.IsZero() {
		snap.Updated = humanize.Time(v.updatedAt)
	}

	switch {
	case v.errMsg != "":
		snap.State = models.StateError
		snap.Error = v.errMsg
	case v.loading:
		snap.State = models.StateLoading
	case !v.hasSelectionLocked():
		snap.State = models.StateNoSelection
	case v.pointCount == 0:
		snap.State = models.StateNoData
	default:
		snap.State = models.StateReady
	}
	return snap
}

// dispatchLocked starts a new generation: the previous one, resolved or
// not, is superseded from this moment on.
func (v *View) dispatchLocked() uint64 {
	v.gen++
	v.loading = true
	v.errMsg = ""
	return v.gen
}

// clearLocked resets the view to no-selection. Bumping the generation
// orphans any in-flight query so its resolution cannot touch the cleared
// surface or flip the loading flag.
func (v *View) clearLocked() {
	v.gen++
	v.loading = false
	v.errMsg = ""
	v.display = ""
	v.pointCount = 0
	v.updatedAt = time.Time{}
	v.renderer.Update(nil)
}

func (v *View) hasSelectionLocked() bool {
	if v.mode == models.ModeFilter {
		return !v.criteria.Empty()
	}
	return v.userID != ""
}

// resolve runs one query and applies its result only if its generation is
// still current. Stale results, including stale failures, are dropped
// without side effects.
func (v *View) resolve(gen uint64, fetch func(ctx context.Context) ([]models.LocationPoint, string, error)) {
	points, name, err := fetch(context.Background())

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		return
	}

	v.loading = false
	v.updatedAt = time.Now()
	if err != nil {
		slog.Error("trace query failed", "error", err)
		v.errMsg = queryFailedMessage
		v.display = ""
		v.pointCount = 0
		// A failed query must not leave a stale trace rendered.
		v.renderer.Update(nil)
		return
	}

	v.errMsg = ""
	v.display = name
	v.pointCount = len(points)
	v.renderer.Update(points)
}
