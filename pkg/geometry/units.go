package geometry

// Scale converts pixel measurements into real-world units.
// The zero value is uncalibrated and passes pixel values through unchanged.
type Scale struct {
	PixelsPerUnit float64
}

// NewScale creates a scale from a pixels-per-unit factor
func NewScale(pixelsPerUnit float64) Scale {
	return Scale{PixelsPerUnit: pixelsPerUnit}
}

// ScaleFromReference derives a scale from two reference points that are
// known to be distance units apart. ok is false when distance is not positive
// or the points coincide.
func ScaleFromReference(p0, p1 Point, distance float64) (Scale, bool) {
	if !(distance > 0) {
		return Scale{}, false
	}
	pixels := p0.Distance(p1)
	if pixels == 0 {
		return Scale{}, false
	}
	return Scale{PixelsPerUnit: pixels / distance}, true
}

// Calibrated reports whether a pixels-per-unit factor is set
func (s Scale) Calibrated() bool {
	return s.PixelsPerUnit > 0
}

// PixelsToUnits converts a linear pixel measurement to units
func (s Scale) PixelsToUnits(pixels float64) float64 {
	if !s.Calibrated() {
		return pixels
	}
	return pixels / s.PixelsPerUnit
}

// UnitsToPixels is the inverse of PixelsToUnits
func (s Scale) UnitsToPixels(units float64) float64 {
	if !s.Calibrated() {
		return units
	}
	return units * s.PixelsPerUnit
}

// AreaToUnits converts a pixel area to square units by applying the
// linear conversion once per dimension.
func (s Scale) AreaToUnits(pixelArea float64) float64 {
	return s.PixelsToUnits(s.PixelsToUnits(pixelArea))
}

// AreaToPixels is the inverse of AreaToUnits
func (s Scale) AreaToPixels(unitArea float64) float64 {
	return s.UnitsToPixels(s.UnitsToPixels(unitArea))
}
