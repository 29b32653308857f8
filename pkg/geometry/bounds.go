package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox creates a new, empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Point) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether no point has been added yet
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Point {
	if b.Empty() {
		return Point{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
	}
}
