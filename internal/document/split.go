package document

import (
	"fmt"

	"github.com/philipparndt/plotarea/pkg/geometry"
)

// SplitPolygon cuts poly along the chord between two of its vertices.
//
// It returns up to two polygons with fresh ids drawn from nextID and labels
// derived from poly's label. Parts with fewer than 3 vertices are dropped.
// ok is false when the indices are equal or out of range.
func SplitPolygon(poly Polygon, indexA, indexB int, nextID func() int) ([]Polygon, bool) {
	arcA, arcB, ok := geometry.SplitRing(poly.Vertices, indexA, indexB)
	if !ok {
		return nil, false
	}

	parts := make([]Polygon, 0, 2)
	if arcA != nil {
		parts = append(parts, Polygon{
			ID:       nextID(),
			Label:    partLabel(poly.Label, "A"),
			Vertices: arcA,
		})
	}
	if arcB != nil {
		parts = append(parts, Polygon{
			ID:       nextID(),
			Label:    partLabel(poly.Label, "B"),
			Vertices: arcB,
		})
	}
	return parts, true
}

func partLabel(label, part string) string {
	return fmt.Sprintf("%s - Part %s", label, part)
}

