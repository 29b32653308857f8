// Package engine is the interactive polygon tracing engine.
//
// An Engine owns the document, the view transform, the interaction mode and
// the undo history. Callers feed it device-space pointer events and commands
// one at a time; every read returns a copy, so nothing outside the engine can
// reach its state.
package engine

import (
	"io"

	"github.com/google/uuid"
	"github.com/philipparndt/plotarea/internal/config"
	"github.com/philipparndt/plotarea/internal/document"
	"github.com/philipparndt/plotarea/internal/history"
	"github.com/philipparndt/plotarea/pkg/geometry"
	"github.com/sirupsen/logrus"
)

// Engine is one independent editor instance
type Engine struct {
	cfg     config.Config
	log     logrus.FieldLogger
	session string

	doc     document.Document
	history *history.History
	nextID  int // Next polygon id, never reused within a session

	view        View
	mode        Mode
	showLabels  bool
	label       string // Pending label for the next ClosePolygon
	calibration calibrationState
	split       *SplitSelection
	pointer     pointerState
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger. Entries carry a session field.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithSession overrides the generated session id
func WithSession(id string) Option {
	return func(e *Engine) {
		e.session = id
	}
}

// New creates an engine holding a fresh single-layer document
func New(cfg config.Config, opts ...Option) *Engine {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := &Engine{
		cfg:        cfg,
		log:        discard,
		session:    uuid.NewString(),
		showLabels: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithField("session", e.session)

	if err := cfg.Validate(); err != nil {
		e.log.WithError(err).Warn("invalid config, using defaults")
		e.cfg = config.Default()
	}

	e.reset()
	return e
}

// Reset discards the document, history, calibration and view, as when a new
// image is loaded.
func (e *Engine) Reset() {
	e.reset()
	e.log.Info("engine reset")
}

func (e *Engine) reset() {
	e.doc = document.New(e.cfg.Layers.Palette)
	e.history = history.New(e.doc)
	e.nextID = 1
	e.resetView()
	e.mode = ModeNavigate
	e.label = ""
	e.calibration = calibrationState{}
	e.split = nil
	e.pointer = pointerState{}
}

// Session returns the id that tags this engine's log entries
func (e *Engine) Session() string {
	return e.session
}

// Document returns a copy of the live document
func (e *Engine) Document() document.Document {
	return e.doc.Clone()
}

// View returns the current view transform
func (e *Engine) View() View {
	return e.view
}

// Mode returns the current interaction mode
func (e *Engine) Mode() Mode {
	return e.mode
}

// ShowLabels reports whether polygon labels should be drawn
func (e *Engine) ShowLabels() bool {
	return e.showLabels
}

// PendingLabel returns the label the next ClosePolygon will use
func (e *Engine) PendingLabel() string {
	return e.label
}

// Calibration returns the calibration buffer and scale
func (e *Engine) Calibration() Calibration {
	return e.calibration.snapshot()
}

// Scale returns the current pixels-per-unit scale
func (e *Engine) Scale() geometry.Scale {
	return e.calibration.scale
}

// SplitSelection returns the pending split anchor, if any
func (e *Engine) SplitSelection() (SplitSelection, bool) {
	if e.split == nil {
		return SplitSelection{}, false
	}
	return *e.split, true
}

// Dragging returns the vertex being dragged, if any
func (e *Engine) Dragging() (DragTarget, bool) {
	if e.pointer.drag == nil {
		return DragTarget{}, false
	}
	return *e.pointer.drag, true
}

// CanUndo reports whether Undo would restore an earlier document
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would restore a later document
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// DeviceToImage maps a device position into image space
func (e *Engine) DeviceToImage(device geometry.Point) geometry.Point {
	return e.view.DeviceToImage(device)
}

// ImageToDevice maps an image position into device space
func (e *Engine) ImageToDevice(image geometry.Point) geometry.Point {
	return e.view.ImageToDevice(image)
}

// State returns a consistent copy of the published engine state
func (e *Engine) State() State {
	s := State{
		Document:    e.Document(),
		View:        e.view,
		Mode:        e.mode,
		ShowLabels:  e.showLabels,
		Calibration: e.Calibration(),
	}
	if sel, ok := e.SplitSelection(); ok {
		s.Split = &sel
	}
	if drag, ok := e.Dragging(); ok {
		s.Drag = &drag
	}
	return s
}

// commit records the live document as a new history entry
func (e *Engine) commit(action string) {
	e.history.Commit(e.doc)
	e.log.WithFields(logrus.Fields{
		"action": action,
		"cursor": e.history.Cursor(),
	}).Debug("history commit")
}

// nextPolygonID hands out document-unique polygon ids
func (e *Engine) nextPolygonID() int {
	id := e.nextID
	e.nextID++
	return id
}

// activeLayer returns the layer that accepts edits
func (e *Engine) activeLayer() document.Layer {
	layer, _ := e.doc.ActiveLayer()
	return layer
}

// endGesture finishes any press in progress. A drag that moved a vertex is
// committed so that commands never run with an uncommitted edit.
func (e *Engine) endGesture() {
	if e.pointer.drag != nil && e.pointer.dragged {
		e.commit("drag")
	}
	e.pointer = pointerState{}
}
