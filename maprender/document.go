package maprender

import (
	"fmt"
	"sync"
)

// Document is the serializable Surface implementation: the map document the
// browser fetches and applies to the actual map SDK. It enforces the
// source/layer pairing rules a real SDK would throw on, so a misordered
// mutation fails loudly in tests instead of silently corrupting state.
type Document struct {
	mu       sync.Mutex
	sources  map[string]Source
	layers   []Layer
	markers  []Marker
	viewport *Viewport
}

func NewDocument() *Document {
	return &Document{sources: make(map[string]Source)}
}

func (d *Document) AddSource(id string, src Source) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.sources[id]; ok {
		return fmt.Errorf("source %q already exists", id)
	}
	d.sources[id] = src
	return nil
}

func (d *Document) AddLayer(l Layer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.sources[l.Source]; !ok {
		return fmt.Errorf("layer %q references missing source %q", l.ID, l.Source)
	}
	for _, existing := range d.layers {
		if existing.ID == l.ID {
			return fmt.Errorf("layer %q already exists", l.ID)
		}
	}
	d.layers = append(d.layers, l)
	return nil
}

func (d *Document) RemoveLayer(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, l := range d.layers {
		if l.ID == id {
			d.layers = append(d.layers[:i], d.layers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("layer %q does not exist", id)
}

func (d *Document) RemoveSource(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.sources[id]; !ok {
		return fmt.Errorf("source %q does not exist", id)
	}
	for _, l := range d.layers {
		if l.Source == id {
			return fmt.Errorf("source %q is still used by layer %q", id, l.ID)
		}
	}
	delete(d.sources, id)
	return nil
}

func (d *Document) AddMarker(m Marker) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.markers = append(d.markers, m)
}

func (d *Document) ClearMarkers() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.markers = nil
}

func (d *Document) FitBounds(v Viewport) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewport = &v
}

// Snapshot is a copy of the document safe to serialize while the renderer
// keeps mutating the original.
type Snapshot struct {
	Sources  map[string]Source `json:"sources"`
	Layers   []Layer           `json:"layers"`
	Markers  []Marker          `json:"markers"`
	Viewport *Viewport         `json:"viewport,omitempty"`
}

func (d *Document) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := Snapshot{
		Sources: make(map[string]Source, len(d.sources)),
		Layers:  make([]Layer, len(d.layers)),
		Markers: make([]Marker, len(d.markers)),
	}
	for id, src := range d.sources {
		snap.Sources[id] = src
	}
	copy(snap.Layers, d.layers)
	copy(snap.Markers, d.markers)
	if d.viewport != nil {
		v := *d.viewport
		snap.Viewport = &v
	}
	return snap
}
