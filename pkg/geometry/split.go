package geometry

// SplitRing cuts a closed vertex ring along the chord between indexA and indexB.
//
// With lo = min(indexA, indexB) and hi = max(indexA, indexB), the first arc is
// vertices[lo..hi] and the second is vertices[hi..end] followed by
// vertices[0..lo]. Both arcs include both cut vertices. An arc with fewer than
// 3 vertices is returned as nil. ok is false when the indices are equal or out
// of range, in which case both arcs are nil.
func SplitRing(vertices []Point, indexA, indexB int) (partA, partB []Point, ok bool) {
	n := len(vertices)
	if indexA == indexB || indexA < 0 || indexB < 0 || indexA >= n || indexB >= n {
		return nil, nil, false
	}

	lo, hi := indexA, indexB
	if lo > hi {
		lo, hi = hi, lo
	}

	arcA := make([]Point, 0, hi-lo+1)
	arcA = append(arcA, vertices[lo:hi+1]...)

	arcB := make([]Point, 0, n-hi+lo+1)
	arcB = append(arcB, vertices[hi:]...)
	arcB = append(arcB, vertices[:lo+1]...)

	if len(arcA) >= 3 {
		partA = arcA
	}
	if len(arcB) >= 3 {
		partB = arcB
	}
	return partA, partB, true
}
