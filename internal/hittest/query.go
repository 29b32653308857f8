// Package hittest finds the vertex or edge of a layer under the pointer.
//
// Both queries are first-match: the scan visits the in-progress chain first,
// then each polygon in layer order, and returns the first candidate strictly
// inside the threshold. It does not search for the closest candidate.
package hittest

import (
	"github.com/philipparndt/plotarea/internal/document"
	"github.com/philipparndt/plotarea/pkg/geometry"
)

// Source identifies which part of a layer a hit belongs to
type Source int

const (
	// InProgress is the layer's open vertex chain
	InProgress Source = iota
	// Polygon is a finished polygon of the layer
	Polygon
)

func (s Source) String() string {
	if s == Polygon {
		return "polygon"
	}
	return "in-progress"
}

// MarshalText encodes the source by name
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// VertexHit locates a vertex. PolygonID is only meaningful for Polygon hits.
type VertexHit struct {
	Source    Source
	PolygonID int
	Index     int
}

// EdgeHit locates an edge. InsertionIndex is the index after the edge's
// start vertex, where a new vertex on that edge would be spliced in.
type EdgeHit struct {
	Source         Source
	PolygonID      int
	InsertionIndex int
}

// Threshold converts a device-pixel radius to image space for the given zoom
func Threshold(devicePx, zoom float64) float64 {
	if zoom <= 0 {
		return devicePx
	}
	return devicePx / zoom
}

// NearestVertex returns the first vertex of the layer within threshold
// (image-space) of p.
func NearestVertex(layer document.Layer, p geometry.Point, threshold float64) (VertexHit, bool) {
	for i, v := range layer.Vertices {
		if p.Distance(v) < threshold {
			return VertexHit{Source: InProgress, Index: i}, true
		}
	}
	return NearestPolygonVertex(layer, p, threshold)
}

// NearestPolygonVertex is NearestVertex restricted to finished polygons
func NearestPolygonVertex(layer document.Layer, p geometry.Point, threshold float64) (VertexHit, bool) {
	for _, poly := range layer.Polygons {
		for i, v := range poly.Vertices {
			if p.Distance(v) < threshold {
				return VertexHit{Source: Polygon, PolygonID: poly.ID, Index: i}, true
			}
		}
	}
	return VertexHit{}, false
}

// NearestEdge returns the first edge of the layer within threshold
// (image-space) of p. The in-progress chain is open; polygon rings wrap from
// the last vertex back to the first.
func NearestEdge(layer document.Layer, p geometry.Point, threshold float64) (EdgeHit, bool) {
	for i := 0; i+1 < len(layer.Vertices); i++ {
		if geometry.PointToSegmentDistance(p, layer.Vertices[i], layer.Vertices[i+1]) < threshold {
			return EdgeHit{Source: InProgress, InsertionIndex: i + 1}, true
		}
	}

	for _, poly := range layer.Polygons {
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			a := poly.Vertices[i]
			b := poly.Vertices[(i+1)%n]
			if geometry.PointToSegmentDistance(p, a, b) < threshold {
				return EdgeHit{Source: Polygon, PolygonID: poly.ID, InsertionIndex: i + 1}, true
			}
		}
	}
	return EdgeHit{}, false
}
