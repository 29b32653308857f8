package geometry

// Distance returns the Euclidean distance between two points
func Distance(p1, p2 Point) float64 {
	return p1.Distance(p2)
}

// Area returns the unsigned area of a polygon using the shoelace formula.
// The vertex sequence is treated as closed (last wraps to first).
// Fewer than 3 vertices have no area.
func Area(vertices []Point) float64 {
	if len(vertices) < 3 {
		return 0
	}

	sum := 0.0
	for i := range vertices {
		j := (i + 1) % len(vertices)
		sum += vertices[i].X * vertices[j].Y
		sum -= vertices[j].X * vertices[i].Y
	}

	if sum < 0 {
		sum = -sum
	}
	return sum / 2.0
}

// Perimeter returns the sum of edge lengths of the closed vertex sequence
func Perimeter(vertices []Point) float64 {
	if len(vertices) < 2 {
		return 0
	}

	total := 0.0
	for i := range vertices {
		j := (i + 1) % len(vertices)
		total += vertices[i].Distance(vertices[j])
	}
	return total
}

// EdgeLengths returns the length of every edge of the closed vertex sequence.
// Edge i runs from vertex i to vertex i+1 (wrapping).
func EdgeLengths(vertices []Point) []float64 {
	if len(vertices) < 2 {
		return nil
	}

	lengths := make([]float64, len(vertices))
	for i := range vertices {
		lengths[i] = vertices[i].Distance(vertices[(i+1)%len(vertices)])
	}
	return lengths
}

// PointToSegmentDistance returns the distance from p to the segment [a, b].
// The projection is clamped to the segment, so points beyond either end
// measure to the nearest endpoint.
func PointToSegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)

	// Degenerate segment: fall back to the start vertex
	if lenSq == 0 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// Centroid returns the average of the vertices, used as a label anchor
func Centroid(vertices []Point) Point {
	if len(vertices) == 0 {
		return Point{}
	}

	var sum Point
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Div(float64(len(vertices)))
}
