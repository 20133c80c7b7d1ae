package maprender

// Coordinate is a [longitude, latitude] pair in GeoJSON axis order.
type Coordinate [2]float64

// LineString is the GeoJSON geometry of a route.
type LineString struct {
	Type        string       `json:"type"`
	Coordinates []Coordinate `json:"coordinates"`
}

// Feature wraps a geometry into a GeoJSON feature.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   LineString     `json:"geometry"`
}

// Source is a named GeoJSON data source on the surface.
type Source struct {
	Type string  `json:"type"`
	Data Feature `json:"data"`
}

// Layer draws a source. Layout and Paint carry the styling verbatim to the
// map SDK.
type Layer struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Source string         `json:"source"`
	Layout map[string]any `json:"layout,omitempty"`
	Paint  map[string]any `json:"paint,omitempty"`
}

// Marker is one point marker with its popup payload.
type Marker struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Time      string  `json:"time"`
	Speed     string  `json:"speed"`
}

// Bounds is a minimal bounding region over a set of coordinates.
type Bounds struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// Extend grows the bounds to include c.
func (b *Bounds) Extend(c Coordinate) {
	if c[0] < b.West {
		b.West = c[0]
	}
	if c[0] > b.East {
		b.East = c[0]
	}
	if c[1] < b.South {
		b.South = c[1]
	}
	if c[1] > b.North {
		b.North = c[1]
	}
}

// Viewport is a framing request: bounds plus a visual margin in pixels.
type Viewport struct {
	Bounds  Bounds `json:"bounds"`
	Padding int    `json:"padding"`
}

// Surface is the drawing capability the renderer mutates. Implementations
// must reject out-of-order operations (removing a layer whose source is
// already gone, adding a layer for a missing source) with an error; the
// renderer owns the ordering discipline and never surfaces those errors to
// its callers.
type Surface interface {
	AddSource(id string, src Source) error
	AddLayer(l Layer) error
	RemoveLayer(id string) error
	RemoveSource(id string) error
	AddMarker(m Marker)
	ClearMarkers()
	FitBounds(v Viewport)
}
