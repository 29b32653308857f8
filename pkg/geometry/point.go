package geometry

import "math"

// Point represents a 2D point in image pixel space
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Div divides the point by a scalar
func (p Point) Div(scalar float64) Point {
	return Point{X: p.X / scalar, Y: p.Y / scalar}
}

// Dot returns the dot product of two vectors
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the z component of the cross product
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - other.X*p.Y
}

// Length returns the magnitude of the vector
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Min returns a point with the minimum components of two points
func (p Point) Min(other Point) Point {
	return Point{X: math.Min(p.X, other.X), Y: math.Min(p.Y, other.Y)}
}

// Max returns a point with the maximum components of two points
func (p Point) Max(other Point) Point {
	return Point{X: math.Max(p.X, other.X), Y: math.Max(p.Y, other.Y)}
}
