package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/plotarea/pkg/geometry"
)

// parsePoints reads a whitespace separated list of "x,y" pairs
func parsePoints(s string) ([]geometry.Point, error) {
	fields := strings.Fields(s)
	points := make([]geometry.Point, 0, len(fields))

	for i, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("point %d: expected x,y but got %q", i+1, field)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %d: invalid x: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %d: invalid y: %w", i+1, err)
		}
		points = append(points, geometry.NewPoint(x, y))
	}

	return points, nil
}
