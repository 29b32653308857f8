package engine

import (
	"github.com/philipparndt/plotarea/internal/document"
	"github.com/philipparndt/plotarea/internal/hittest"
	"github.com/philipparndt/plotarea/pkg/geometry"
	"github.com/sirupsen/logrus"
)

// PointerDown starts a press at a device position
func (e *Engine) PointerDown(device geometry.Point) {
	e.endGesture()

	e.pointer.down = true
	e.pointer.downDevice = device

	switch e.mode {
	case ModeNavigate:
		e.pointer.panning = true
		e.pointer.panOrigin = device.Sub(e.view.Pan)
	case ModeEdit:
		// Pressing on a vertex starts a drag
		threshold := hittest.Threshold(e.cfg.Hit.VertexThreshold, e.view.Zoom)
		if hit, ok := hittest.NearestVertex(e.activeLayer(), e.view.DeviceToImage(device), threshold); ok {
			e.pointer.drag = &DragTarget{Source: hit.Source, PolygonID: hit.PolygonID, Index: hit.Index}
		}
	}
}

// PointerMove tracks the pointer. While pressed it pans in navigate mode and
// moves the dragged vertex in edit mode.
func (e *Engine) PointerMove(device geometry.Point) {
	if !e.pointer.down {
		return
	}

	if e.pointer.panning {
		e.doPan(device)
		return
	}

	if e.pointer.drag != nil {
		// Vertex follows the pointer; history is recorded on release
		if e.moveDragTarget(*e.pointer.drag, e.view.DeviceToImage(device)) {
			e.pointer.dragged = true
		}
	}
}

// PointerUp ends a press. A release within the click tolerance of the press,
// without a vertex drag, is a click in the current mode.
func (e *Engine) PointerUp(device geometry.Point) {
	if !e.pointer.down {
		return
	}
	gesture := e.pointer
	e.pointer = pointerState{}

	switch {
	case gesture.panning:
		return
	case gesture.drag != nil:
		// Releasing an unmoved vertex is a click on it, which is ignored
		if gesture.dragged {
			e.commit("drag")
		}
		return
	}

	if device.Distance(gesture.downDevice) <= e.cfg.Hit.ClickTolerance {
		e.click(e.view.DeviceToImage(device))
	}
}

// Wheel zooms the view in navigate mode, one step per call.
// Positive deltas zoom out, negative deltas zoom in.
func (e *Engine) Wheel(delta float64) {
	if e.mode != ModeNavigate {
		return
	}
	e.doZoom(delta)
}

// click interprets a click at an image position under the current mode
func (e *Engine) click(p geometry.Point) {
	switch e.mode {
	case ModeEdit:
		e.editClick(p)
	case ModeCalibrate:
		e.calibrateClick(p)
	case ModeSplit:
		e.splitClick(p)
	}
}

func (e *Engine) editClick(p geometry.Point) {
	layer := e.activeLayer()

	// Clicking an existing vertex must not duplicate it
	if _, ok := hittest.NearestVertex(layer, p, hittest.Threshold(e.cfg.Hit.VertexThreshold, e.view.Zoom)); ok {
		return
	}

	if hit, ok := hittest.NearestEdge(layer, p, hittest.Threshold(e.cfg.Hit.EdgeThreshold, e.view.Zoom)); ok {
		doc, changed := e.doc.UpdateActiveLayer(func(l document.Layer) (document.Layer, bool) {
			if hit.Source == hittest.InProgress {
				return l.InsertVertex(hit.InsertionIndex, p)
			}
			return l.InsertPolygonVertex(hit.PolygonID, hit.InsertionIndex, p)
		})
		if changed {
			e.doc = doc
			e.commit("insert vertex")
		}
		return
	}

	doc, changed := e.doc.UpdateActiveLayer(func(l document.Layer) (document.Layer, bool) {
		return l.AppendVertex(p), true
	})
	if changed {
		e.doc = doc
		e.commit("append vertex")
	}
}

func (e *Engine) calibrateClick(p geometry.Point) {
	// A third point starts a new pair
	if len(e.calibration.points) >= 2 {
		e.calibration.points = nil
	}
	e.calibration.points = append(e.calibration.points, p)
	e.finishCalibration()
}

// finishCalibration sets the scale once two points and a positive target
// distance are present, then returns to edit mode. Otherwise the points stay
// buffered.
func (e *Engine) finishCalibration() {
	if len(e.calibration.points) != 2 {
		return
	}

	p0, p1 := e.calibration.points[0], e.calibration.points[1]
	scale, ok := geometry.ScaleFromReference(p0, p1, e.calibration.distance)
	if !ok {
		return
	}

	e.calibration.scale = scale
	e.calibration.points = nil
	e.log.WithFields(logrus.Fields{
		"pixels":        p0.Distance(p1),
		"distance":      e.calibration.distance,
		"pixelsPerUnit": scale.PixelsPerUnit,
	}).Debug("calibrated")
	e.setMode(ModeEdit)
}

func (e *Engine) splitClick(p geometry.Point) {
	threshold := hittest.Threshold(e.cfg.Hit.SplitThreshold, e.view.Zoom)
	hit, ok := hittest.NearestPolygonVertex(e.activeLayer(), p, threshold)
	if !ok {
		return
	}

	anchor := e.split
	if anchor == nil || anchor.PolygonID != hit.PolygonID || anchor.Index == hit.Index {
		e.split = &SplitSelection{PolygonID: hit.PolygonID, Index: hit.Index}
		return
	}

	poly, ok := e.activeLayer().Polygon(anchor.PolygonID)
	if !ok {
		e.split = nil
		return
	}

	parts, ok := document.SplitPolygon(poly, anchor.Index, hit.Index, e.nextPolygonID)
	if !ok {
		e.split = &SplitSelection{PolygonID: hit.PolygonID, Index: hit.Index}
		return
	}

	doc, changed := e.doc.UpdateActiveLayer(func(l document.Layer) (document.Layer, bool) {
		return l.ReplacePolygon(poly.ID, parts)
	})
	if !changed {
		return
	}

	e.doc = doc
	e.commit("split")
	e.log.WithFields(logrus.Fields{
		"polygon": poly.ID,
		"a":       anchor.Index,
		"b":       hit.Index,
		"parts":   len(parts),
	}).Debug("split polygon")
	e.split = nil
	e.setMode(ModeEdit)
}

// moveDragTarget places the dragged vertex at p. It reports whether the
// document changed.
func (e *Engine) moveDragTarget(target DragTarget, p geometry.Point) bool {
	doc, changed := e.doc.UpdateActiveLayer(func(l document.Layer) (document.Layer, bool) {
		var current geometry.Point
		if target.Source == hittest.InProgress {
			if target.Index >= len(l.Vertices) {
				return l, false
			}
			current = l.Vertices[target.Index]
		} else {
			poly, ok := l.Polygon(target.PolygonID)
			if !ok || target.Index >= len(poly.Vertices) {
				return l, false
			}
			current = poly.Vertices[target.Index]
		}
		if current == p {
			return l, false
		}

		if target.Source == hittest.InProgress {
			return l.MoveVertex(target.Index, p)
		}
		return l.MovePolygonVertex(target.PolygonID, target.Index, p)
	})
	if changed {
		e.doc = doc
	}
	return changed
}
