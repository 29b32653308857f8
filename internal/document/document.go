// Package document holds the layered polygon model traced over an image.
//
// All operations work by value. A Document returned from a mutator shares
// unchanged slices with its predecessor but never writes into them, which is
// what lets the history keep snapshots by reference.
package document

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// DefaultPalette is the color cycle used for new layers
var DefaultPalette = []string{"#2196F3", "#4CAF50", "#FF9800", "#9C27B0", "#F44336", "#00BCD4"}

// Document is the ordered set of layers plus the active layer selection
type Document struct {
	Layers        []Layer `json:"layers" yaml:"layers"`
	ActiveLayerID int     `json:"activeLayerId" yaml:"activeLayerId"`
}

// New creates a document with a single empty, visible layer
func New(palette []string) Document {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return Document{
		Layers: []Layer{{
			ID:      1,
			Name:    layerName(1),
			Color:   palette[0],
			Visible: true,
		}},
		ActiveLayerID: 1,
	}
}

// Layer returns the layer with the given id
func (d Document) Layer(id int) (Layer, bool) {
	return lo.Find(d.Layers, func(l Layer) bool { return l.ID == id })
}

// ActiveLayer returns the layer that currently accepts edits
func (d Document) ActiveLayer() (Layer, bool) {
	return d.Layer(d.ActiveLayerID)
}

// HasLayer reports whether a layer with the given id exists
func (d Document) HasLayer(id int) bool {
	return lo.ContainsBy(d.Layers, func(l Layer) bool { return l.ID == id })
}

// AddLayer appends a new layer with the next unused id and makes it active.
// The layer color cycles through palette by id.
func (d Document) AddLayer(palette []string) (Document, int) {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	id := 1
	if len(d.Layers) > 0 {
		id = lo.Max(lo.Map(d.Layers, func(l Layer, _ int) int { return l.ID })) + 1
	}

	d.Layers = append(slices.Clip(d.Layers), Layer{
		ID:      id,
		Name:    layerName(id),
		Color:   palette[id%len(palette)],
		Visible: true,
	})
	d.ActiveLayerID = id
	return d, id
}

// RemoveLayer deletes a layer. Removing the only layer or an unknown id is a
// no-op. When the active layer is removed the first remaining layer becomes
// active.
func (d Document) RemoveLayer(id int) (Document, bool) {
	if len(d.Layers) <= 1 || !d.HasLayer(id) {
		return d, false
	}

	d.Layers = lo.Filter(d.Layers, func(l Layer, _ int) bool { return l.ID != id })
	if d.ActiveLayerID == id {
		d.ActiveLayerID = d.Layers[0].ID
	}
	return d, true
}

// SetActiveLayer selects the layer that accepts edits
func (d Document) SetActiveLayer(id int) (Document, bool) {
	if !d.HasLayer(id) {
		return d, false
	}
	d.ActiveLayerID = id
	return d, true
}

// ToggleVisibility flips a layer's visible flag
func (d Document) ToggleVisibility(id int) (Document, bool) {
	return d.UpdateLayer(id, func(l Layer) (Layer, bool) {
		l.Visible = !l.Visible
		return l, true
	})
}

// RenameLayer changes a layer's display name
func (d Document) RenameLayer(id int, name string) (Document, bool) {
	return d.UpdateLayer(id, func(l Layer) (Layer, bool) {
		if l.Name == name {
			return l, false
		}
		l.Name = name
		return l, true
	})
}

// UpdateLayer replaces the layer with the given id by fn's result.
// The document is returned unchanged when the layer is missing or fn
// reports no change.
func (d Document) UpdateLayer(id int, fn func(Layer) (Layer, bool)) (Document, bool) {
	idx := slices.IndexFunc(d.Layers, func(l Layer) bool { return l.ID == id })
	if idx < 0 {
		return d, false
	}

	updated, ok := fn(d.Layers[idx])
	if !ok {
		return d, false
	}

	layers := slices.Clone(d.Layers)
	layers[idx] = updated
	d.Layers = layers
	return d, true
}

// UpdateActiveLayer is UpdateLayer applied to the active layer
func (d Document) UpdateActiveLayer(fn func(Layer) (Layer, bool)) (Document, bool) {
	return d.UpdateLayer(d.ActiveLayerID, fn)
}

// Clone returns a deep copy that shares no slices with d
func (d Document) Clone() Document {
	if d.Layers == nil {
		return d
	}
	d.Layers = lo.Map(d.Layers, func(l Layer, _ int) Layer { return l.Clone() })
	return d
}

// PolygonCount returns the number of finished polygons across all layers
func (d Document) PolygonCount() int {
	return lo.SumBy(d.Layers, func(l Layer) int { return len(l.Polygons) })
}

func layerName(id int) string {
	return fmt.Sprintf("Layer %d", id)
}
