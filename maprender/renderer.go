package maprender

import (
	"fmt"
	"log/slog"
	"sync"

	"tracedash/models"
)

const (
	routeSourceID = "route"
	routeLayerID  = "route-line"

	// Visual margin around the framed trace, in pixels.
	boundsPadding = 50

	markerTimeFormat = "Jan 2 2006 15:04:05"
)

// renderState is the two-state lifecycle of the drawing surface.
type renderState int

const (
	stateEmpty renderState = iota
	stateRouted
)

// Renderer owns the lifecycle of a drawing surface. It is attached once,
// replaces all route artifacts wholesale on every update, and guarantees
// the surface never holds more than one route line and its marker set.
//
// Updates arriving before the surface reports readiness are queued
// latest-wins and applied exactly once when Ready is called.
type Renderer struct {
	mu         sync.Mutex
	surface    Surface
	state      renderState
	ready      bool
	pending    []models.LocationPoint
	hasPending bool
}

func New() *Renderer {
	return &Renderer{}
}

// Attach binds the renderer to a surface. Called once per surface lifetime.
func (r *Renderer) Attach(s Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.surface != nil {
		return fmt.Errorf("renderer already attached")
	}
	r.surface = s
	return nil
}

// Ready signals that the surface can accept drawing operations. The most
// recent queued update, if any, is applied now; superseded intermediate
// updates were already dropped.
func (r *Renderer) Ready() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ready {
		return
	}
	r.ready = true
	if r.hasPending {
		points := r.pending
		r.pending = nil
		r.hasPending = false
		r.apply(points)
	}
}

// Update replaces all prior artifacts with the given trace. Idempotent: the
// same points applied twice leave the same surface. An empty trace returns
// the surface to its base state.
func (r *Renderer) Update(points []models.LocationPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.surface == nil {
		return
	}
	if !r.ready {
		r.pending = points
		r.hasPending = true
		return
	}
	r.apply(points)
}

// Detach releases the surface. Further updates are dropped.
func (r *Renderer) Detach() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.surface = nil
	r.state = stateEmpty
	r.ready = false
	r.pending = nil
	r.hasPending = false
}

// apply performs the teardown-before-attach cycle. Caller holds the lock.
// The state machine makes the ordering rules unconditional: markers first,
// then layer, then source on the way out; source, layer, markers, viewport
// on the way in.
func (r *Renderer) apply(points []models.LocationPoint) {
	if r.state == stateRouted {
		r.surface.ClearMarkers()
		r.must(r.surface.RemoveLayer(routeLayerID))
		r.must(r.surface.RemoveSource(routeSourceID))
		r.state = stateEmpty
	}

	if len(points) == 0 {
		return
	}

	coords := make([]Coordinate, len(points))
	for i, p := range points {
		coords[i] = Coordinate{p.Longitude, p.Latitude}
	}

	r.must(r.surface.AddSource(routeSourceID, Source{
		Type: "geojson",
		Data: Feature{
			Type:       "Feature",
			Properties: map[string]any{},
			Geometry: LineString{
				Type:        "LineString",
				Coordinates: coords,
			},
		},
	}))
	r.must(r.surface.AddLayer(Layer{
		ID:     routeLayerID,
		Type:   "line",
		Source: routeSourceID,
		Layout: map[string]any{
			"line-join": "round",
			"line-cap":  "round",
		},
		Paint: map[string]any{
			"line-color":   "#3b82f6",
			"line-width":   2,
			"line-opacity": 0.8,
		},
	}))

	for _, p := range points {
		r.surface.AddMarker(Marker{
			Longitude: p.Longitude,
			Latitude:  p.Latitude,
			Time:      p.CreatedAt.Local().Format(markerTimeFormat),
			Speed:     fmt.Sprintf("%.1f km/h", p.Speed),
		})
	}

	bounds := Bounds{West: coords[0][0], South: coords[0][1], East: coords[0][0], North: coords[0][1]}
	for _, c := range coords[1:] {
		bounds.Extend(c)
	}
	r.surface.FitBounds(Viewport{Bounds: bounds, Padding: boundsPadding})

	r.state = stateRouted
}

// must absorbs surface errors: the state machine prevents misordered
// operations, so an error here is a renderer bug and must not reach the
// caller mid-update.
func (r *Renderer) must(err error) {
	if err != nil {
		slog.Error("surface rejected operation", "error", err)
	}
}
