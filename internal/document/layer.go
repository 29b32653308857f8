package document

import (
	"slices"

	"github.com/philipparndt/plotarea/pkg/geometry"
	"github.com/samber/lo"
)

// Polygon is a closed, labelled ring of at least 3 vertices
type Polygon struct {
	ID       int              `json:"id" yaml:"id"`
	Label    string           `json:"label" yaml:"label"`
	Vertices []geometry.Point `json:"vertices" yaml:"vertices"`
}

// Layer owns an in-progress vertex chain and a set of finished polygons.
//
// Layer values are never modified in place: every mutator returns a new Layer
// and leaves the receiver's slices untouched, so older values stay valid as
// history snapshots.
type Layer struct {
	ID       int              `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name"`
	Color    string           `json:"color" yaml:"color"`
	Visible  bool             `json:"visible" yaml:"visible"`
	Vertices []geometry.Point `json:"vertices" yaml:"vertices"`
	Polygons []Polygon        `json:"polygons" yaml:"polygons"`
}

// Polygon returns the polygon with the given id
func (l Layer) Polygon(id int) (Polygon, bool) {
	return lo.Find(l.Polygons, func(p Polygon) bool { return p.ID == id })
}

// AppendVertex adds a vertex to the end of the in-progress chain
func (l Layer) AppendVertex(p geometry.Point) Layer {
	l.Vertices = append(slices.Clone(l.Vertices), p)
	return l
}

// InsertVertex splices a vertex into the in-progress chain before index.
// index may equal the chain length to append.
func (l Layer) InsertVertex(index int, p geometry.Point) (Layer, bool) {
	vertices, ok := insertAt(l.Vertices, index, p)
	if !ok {
		return l, false
	}
	l.Vertices = vertices
	return l, true
}

// MoveVertex replaces the in-progress vertex at index
func (l Layer) MoveVertex(index int, p geometry.Point) (Layer, bool) {
	vertices, ok := replaceAt(l.Vertices, index, p)
	if !ok {
		return l, false
	}
	l.Vertices = vertices
	return l, true
}

// InsertPolygonVertex splices a vertex into a polygon's ring before index
func (l Layer) InsertPolygonVertex(polygonID, index int, p geometry.Point) (Layer, bool) {
	return l.updatePolygon(polygonID, func(poly Polygon) (Polygon, bool) {
		vertices, ok := insertAt(poly.Vertices, index, p)
		poly.Vertices = vertices
		return poly, ok
	})
}

// MovePolygonVertex replaces the vertex at index in a polygon's ring
func (l Layer) MovePolygonVertex(polygonID, index int, p geometry.Point) (Layer, bool) {
	return l.updatePolygon(polygonID, func(poly Polygon) (Polygon, bool) {
		vertices, ok := replaceAt(poly.Vertices, index, p)
		poly.Vertices = vertices
		return poly, ok
	})
}

// ClearVertices drops the in-progress chain
func (l Layer) ClearVertices() Layer {
	l.Vertices = nil
	return l
}

// ReplacePolygons swaps in a new polygon set
func (l Layer) ReplacePolygons(polygons []Polygon) Layer {
	l.Polygons = slices.Clone(polygons)
	return l
}

// ReplacePolygon removes the polygon with the given id and appends parts in
// its place. parts may be empty, which simply deletes the polygon.
func (l Layer) ReplacePolygon(id int, parts []Polygon) (Layer, bool) {
	if _, ok := l.Polygon(id); !ok {
		return l, false
	}
	kept := lo.Filter(l.Polygons, func(p Polygon, _ int) bool { return p.ID != id })
	l.Polygons = append(kept, parts...)
	return l, true
}

// ClosePolygon promotes the in-progress chain to a new polygon.
// Chains with fewer than 3 vertices are not closed.
func (l Layer) ClosePolygon(id int, label string) (Layer, Polygon, bool) {
	if len(l.Vertices) < 3 {
		return l, Polygon{}, false
	}

	poly := Polygon{
		ID:       id,
		Label:    label,
		Vertices: slices.Clone(l.Vertices),
	}
	l.Polygons = append(slices.Clone(l.Polygons), poly)
	l.Vertices = nil
	return l, poly, true
}

// Clone returns a deep copy of the layer
func (l Layer) Clone() Layer {
	l.Vertices = slices.Clone(l.Vertices)
	if l.Polygons == nil {
		return l
	}
	l.Polygons = lo.Map(l.Polygons, func(p Polygon, _ int) Polygon {
		p.Vertices = slices.Clone(p.Vertices)
		return p
	})
	return l
}

func (l Layer) updatePolygon(id int, fn func(Polygon) (Polygon, bool)) (Layer, bool) {
	idx := slices.IndexFunc(l.Polygons, func(p Polygon) bool { return p.ID == id })
	if idx < 0 {
		return l, false
	}

	updated, ok := fn(l.Polygons[idx])
	if !ok {
		return l, false
	}

	polygons := slices.Clone(l.Polygons)
	polygons[idx] = updated
	l.Polygons = polygons
	return l, true
}

func insertAt(vertices []geometry.Point, index int, p geometry.Point) ([]geometry.Point, bool) {
	if index < 0 || index > len(vertices) {
		return vertices, false
	}
	return slices.Insert(slices.Clone(vertices), index, p), true
}

func replaceAt(vertices []geometry.Point, index int, p geometry.Point) ([]geometry.Point, bool) {
	if index < 0 || index >= len(vertices) {
		return vertices, false
	}
	out := slices.Clone(vertices)
	out[index] = p
	return out, true
}
