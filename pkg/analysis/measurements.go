package analysis

import (
	"fmt"

	"github.com/philipparndt/plotarea/internal/document"
	"github.com/philipparndt/plotarea/pkg/geometry"
)

// Metrics holds the derived measurements of a closed vertex ring.
// Area and Perimeter are in units when the scale is calibrated, otherwise
// they equal the pixel values.
type Metrics struct {
	Vertices        int     `json:"vertices" yaml:"vertices"`
	AreaPixels      float64 `json:"areaPixels" yaml:"areaPixels"`
	PerimeterPixels float64 `json:"perimeterPixels" yaml:"perimeterPixels"`
	Area            float64 `json:"area" yaml:"area"`
	Perimeter       float64 `json:"perimeter" yaml:"perimeter"`
}

// ChainStats holds the running measurements of an in-progress chain
type ChainStats struct {
	LastSegment float64 `json:"lastSegment" yaml:"lastSegment"`
	Area        float64 `json:"area" yaml:"area"`
	Perimeter   float64 `json:"perimeter" yaml:"perimeter"`
}

// PolygonReport is one polygon's entry in a document report
type PolygonReport struct {
	ID       int            `json:"id" yaml:"id"`
	Label    string         `json:"label" yaml:"label"`
	Centroid geometry.Point `json:"centroid" yaml:"centroid"`
	Metrics  Metrics        `json:"metrics" yaml:"metrics"`
	Edges    []float64      `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// LayerReport is one layer's entry in a document report
type LayerReport struct {
	ID        int             `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	Visible   bool            `json:"visible" yaml:"visible"`
	Active    bool            `json:"active" yaml:"active"`
	Polygons  []PolygonReport `json:"polygons" yaml:"polygons"`
	Chain     ChainStats      `json:"chain" yaml:"chain"`
	TotalArea float64         `json:"totalArea" yaml:"totalArea"`
}

// DocumentReport summarizes every layer of a document
type DocumentReport struct {
	Unit          string        `json:"unit" yaml:"unit"`
	PixelsPerUnit float64       `json:"pixelsPerUnit,omitempty" yaml:"pixelsPerUnit,omitempty"`
	Layers        []LayerReport `json:"layers" yaml:"layers"`
	TotalArea     float64       `json:"totalArea" yaml:"totalArea"`
}

// MeasurePolygon computes area and perimeter of a closed ring
func MeasurePolygon(vertices []geometry.Point, scale geometry.Scale) Metrics {
	areaPx := geometry.Area(vertices)
	perimeterPx := geometry.Perimeter(vertices)

	return Metrics{
		Vertices:        len(vertices),
		AreaPixels:      areaPx,
		PerimeterPixels: perimeterPx,
		Area:            scale.AreaToUnits(areaPx),
		Perimeter:       scale.PixelsToUnits(perimeterPx),
	}
}

// MeasureChain computes running stats for an open chain.
// Chains with fewer than 2 vertices report zeros.
func MeasureChain(vertices []geometry.Point, scale geometry.Scale) ChainStats {
	if len(vertices) < 2 {
		return ChainStats{}
	}

	last := vertices[len(vertices)-2].Distance(vertices[len(vertices)-1])
	return ChainStats{
		LastSegment: scale.PixelsToUnits(last),
		Area:        scale.AreaToUnits(geometry.Area(vertices)),
		Perimeter:   scale.PixelsToUnits(geometry.Perimeter(vertices)),
	}
}

// AnalyzeDocument measures every polygon and chain in the document
func AnalyzeDocument(doc document.Document, scale geometry.Scale, unit string) *DocumentReport {
	report := &DocumentReport{
		Unit:          unitName(scale, unit),
		PixelsPerUnit: scale.PixelsPerUnit,
		Layers:        make([]LayerReport, 0, len(doc.Layers)),
	}

	for _, layer := range doc.Layers {
		lr := LayerReport{
			ID:       layer.ID,
			Name:     layer.Name,
			Visible:  layer.Visible,
			Active:   layer.ID == doc.ActiveLayerID,
			Polygons: make([]PolygonReport, 0, len(layer.Polygons)),
			Chain:    MeasureChain(layer.Vertices, scale),
		}

		for _, poly := range layer.Polygons {
			edges := geometry.EdgeLengths(poly.Vertices)
			for i := range edges {
				edges[i] = scale.PixelsToUnits(edges[i])
			}

			pr := PolygonReport{
				ID:       poly.ID,
				Label:    poly.Label,
				Centroid: geometry.Centroid(poly.Vertices),
				Metrics:  MeasurePolygon(poly.Vertices, scale),
				Edges:    edges,
			}
			lr.TotalArea += pr.Metrics.Area
			lr.Polygons = append(lr.Polygons, pr)
		}

		report.TotalArea += lr.TotalArea
		report.Layers = append(report.Layers, lr)
	}

	return report
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatArea formats an area with a square unit suffix
func FormatArea(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.2f sq %s", value, unit)
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

func unitName(scale geometry.Scale, unit string) string {
	if !scale.Calibrated() {
		return "px"
	}
	return unit
}
