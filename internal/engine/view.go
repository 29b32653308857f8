package engine

import (
	"math"

	"github.com/philipparndt/plotarea/pkg/geometry"
)

// View maps image space to device space: device = image * Zoom + Pan
type View struct {
	Zoom float64        `json:"zoom" yaml:"zoom"`
	Pan  geometry.Point `json:"pan" yaml:"pan"`
}

// DefaultView is the identity transform
func DefaultView() View {
	return View{Zoom: 1}
}

// DeviceToImage inverts the view transform
func (v View) DeviceToImage(device geometry.Point) geometry.Point {
	return device.Sub(v.Pan).Div(v.Zoom)
}

// ImageToDevice applies the view transform
func (v View) ImageToDevice(image geometry.Point) geometry.Point {
	return image.Mul(v.Zoom).Add(v.Pan)
}

// zoomBy scales the zoom factor, clamped to [minZoom, maxZoom]
func (v View) zoomBy(factor, minZoom, maxZoom float64) View {
	v.Zoom = math.Max(minZoom, math.Min(maxZoom, v.Zoom*factor))
	return v
}

// resetView resets the view to the default transform
func (e *Engine) resetView() {
	e.view = DefaultView()
}

// doPan moves the view so the pan origin follows the cursor
func (e *Engine) doPan(device geometry.Point) {
	e.view.Pan = device.Sub(e.pointer.panOrigin)
}

// doZoom applies one wheel notch. Positive deltas zoom out.
func (e *Engine) doZoom(delta float64) {
	switch {
	case delta > 0:
		e.view = e.view.zoomBy(e.cfg.View.ZoomOut, e.cfg.View.MinZoom, e.cfg.View.MaxZoom)
	case delta < 0:
		e.view = e.view.zoomBy(e.cfg.View.ZoomIn, e.cfg.View.MinZoom, e.cfg.View.MaxZoom)
	}
}
