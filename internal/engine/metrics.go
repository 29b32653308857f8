package engine

import (
	"github.com/philipparndt/plotarea/pkg/analysis"
	"github.com/samber/lo"
)

// PolygonMetrics measures the polygon with the given id in any layer.
// Values are in units when calibrated, pixels otherwise.
func (e *Engine) PolygonMetrics(id int) (analysis.Metrics, bool) {
	for _, layer := range e.doc.Layers {
		if poly, ok := layer.Polygon(id); ok {
			return analysis.MeasurePolygon(poly.Vertices, e.calibration.scale), true
		}
	}
	return analysis.Metrics{}, false
}

// CurrentStats measures the active layer's in-progress chain
func (e *Engine) CurrentStats() analysis.ChainStats {
	return analysis.MeasureChain(e.activeLayer().Vertices, e.calibration.scale)
}

// Report measures every polygon in the document
func (e *Engine) Report() *analysis.DocumentReport {
	return analysis.AnalyzeDocument(e.doc, e.calibration.scale, e.cfg.Units.Name)
}

// TotalArea sums the area of every polygon in visible layers
func (e *Engine) TotalArea() float64 {
	visible := lo.Filter(e.Report().Layers, func(l analysis.LayerReport, _ int) bool { return l.Visible })
	return lo.SumBy(visible, func(l analysis.LayerReport) float64 { return l.TotalArea })
}
