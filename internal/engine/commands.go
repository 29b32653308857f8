package engine

import (
	"fmt"

	"github.com/philipparndt/plotarea/internal/document"
	"github.com/sirupsen/logrus"
)

// SetMode switches the interaction mode. The calibration buffer and the
// split anchor are cleared on every switch.
func (e *Engine) SetMode(mode Mode) {
	e.endGesture()
	e.setMode(mode)
}

// CancelMode abandons a calibration or split in progress and returns to edit
func (e *Engine) CancelMode() {
	e.SetMode(ModeEdit)
}

func (e *Engine) setMode(mode Mode) {
	if mode < ModeNavigate || mode > ModeSplit {
		return
	}
	previous := e.mode
	e.mode = mode
	e.calibration.points = nil
	e.split = nil
	e.log.WithFields(logrus.Fields{"from": previous, "to": mode}).Debug("mode changed")
}

// SetCalibrationDistance sets the real-world length between the two
// calibration points. When both points are already buffered in calibrate mode
// the scale is computed immediately.
func (e *Engine) SetCalibrationDistance(distance float64) {
	e.endGesture()
	e.calibration.distance = distance
	if e.mode == ModeCalibrate {
		e.finishCalibration()
	}
}

// SetPolygonLabel sets the label used by the next ClosePolygon
func (e *Engine) SetPolygonLabel(label string) {
	e.label = label
}

// SetShowLabels toggles polygon label display
func (e *Engine) SetShowLabels(show bool) {
	e.showLabels = show
}

// ClosePolygon promotes the active layer's in-progress chain to a polygon.
// The label is taken from the argument, then the pending label, then
// defaults to "Plot N". Chains with fewer than 3 vertices are left alone.
func (e *Engine) ClosePolygon(label string) (document.Polygon, bool) {
	e.endGesture()

	layer := e.activeLayer()
	if len(layer.Vertices) < 3 {
		return document.Polygon{}, false
	}

	if label == "" {
		label = e.label
	}
	if label == "" {
		label = fmt.Sprintf("Plot %d", len(layer.Polygons)+1)
	}

	var poly document.Polygon
	doc, changed := e.doc.UpdateActiveLayer(func(l document.Layer) (document.Layer, bool) {
		var ok bool
		l, poly, ok = l.ClosePolygon(e.nextPolygonID(), label)
		return l, ok
	})
	if !changed {
		return document.Polygon{}, false
	}

	e.doc = doc
	e.label = ""
	e.commit("close polygon")
	return poly, true
}

// ClearCurrent drops the active layer's in-progress chain
func (e *Engine) ClearCurrent() bool {
	e.endGesture()
	return e.updateActiveLayer("clear", func(l document.Layer) (document.Layer, bool) {
		if len(l.Vertices) == 0 {
			return l, false
		}
		return l.ClearVertices(), true
	})
}

// AddLayer appends a new layer, makes it active and returns its id
func (e *Engine) AddLayer() int {
	e.endGesture()
	doc, id := e.doc.AddLayer(e.cfg.Layers.Palette)
	e.doc = doc
	e.split = nil
	e.commit("add layer")
	return id
}

// RemoveLayer deletes a layer. The last remaining layer cannot be removed.
func (e *Engine) RemoveLayer(id int) bool {
	e.endGesture()
	doc, ok := e.doc.RemoveLayer(id)
	if !ok {
		return false
	}
	e.doc = doc
	e.split = nil
	e.commit("remove layer")
	return true
}

// SetActiveLayer selects the layer that accepts edits
func (e *Engine) SetActiveLayer(id int) bool {
	e.endGesture()
	doc, ok := e.doc.SetActiveLayer(id)
	if !ok {
		return false
	}
	e.doc = doc
	e.split = nil
	return true
}

// RenameLayer changes a layer's display name
func (e *Engine) RenameLayer(id int, name string) bool {
	e.endGesture()
	return e.update("rename layer", func(d document.Document) (document.Document, bool) {
		return d.RenameLayer(id, name)
	})
}

// ToggleLayerVisibility shows or hides a layer
func (e *Engine) ToggleLayerVisibility(id int) bool {
	e.endGesture()
	return e.update("toggle visibility", func(d document.Document) (document.Document, bool) {
		return d.ToggleVisibility(id)
	})
}

// Undo restores the previous history entry. The active layer selection is
// view state and is not recorded in history: it is kept when that layer
// exists in the restored document.
func (e *Engine) Undo() bool {
	e.endGesture()
	doc, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.restore(doc)
	e.log.WithField("cursor", e.history.Cursor()).Debug("undo")
	return true
}

// Redo re-applies the next history entry
func (e *Engine) Redo() bool {
	e.endGesture()
	doc, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.restore(doc)
	e.log.WithField("cursor", e.history.Cursor()).Debug("redo")
	return true
}

func (e *Engine) restore(doc document.Document) {
	if doc.HasLayer(e.doc.ActiveLayerID) {
		doc.ActiveLayerID = e.doc.ActiveLayerID
	}
	e.doc = doc
	e.split = nil
}

// update applies fn to the document and commits when it reports a change
func (e *Engine) update(action string, fn func(document.Document) (document.Document, bool)) bool {
	doc, changed := fn(e.doc)
	if !changed {
		return false
	}
	e.doc = doc
	e.commit(action)
	return true
}

func (e *Engine) updateActiveLayer(action string, fn func(document.Layer) (document.Layer, bool)) bool {
	return e.update(action, func(d document.Document) (document.Document, bool) {
		return d.UpdateActiveLayer(fn)
	})
}
