// Package script records engine input as a YAML event list and replays it.
//
// A script is the headless stand-in for a UI shell: each event is one pointer
// event or command, applied to an engine in order.
//
//	calibration_distance: 10
//	events:
//	  - {op: mode, mode: edit}
//	  - {op: click, x: 0, y: 0}
//	  - {op: close, label: "North field"}
//
// JSON documents are accepted as well, since they are valid YAML.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/philipparndt/plotarea/internal/engine"
	"github.com/philipparndt/plotarea/pkg/geometry"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Event is one recorded input. Which fields are read depends on Op.
type Event struct {
	Op    string  `yaml:"op" json:"op"`
	X     float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Delta float64 `yaml:"delta,omitempty" json:"delta,omitempty"` // Wheel notches, positive zooms out
	Mode  string  `yaml:"mode,omitempty" json:"mode,omitempty"`
	Label string  `yaml:"label,omitempty" json:"label,omitempty"`
	Layer int     `yaml:"layer,omitempty" json:"layer,omitempty"`
	Name  string  `yaml:"name,omitempty" json:"name,omitempty"`
	Value float64 `yaml:"value,omitempty" json:"value,omitempty"` // Calibration distance
	Show  *bool   `yaml:"show,omitempty" json:"show,omitempty"`
}

// Point returns the event's device position
func (ev Event) Point() geometry.Point {
	return geometry.NewPoint(ev.X, ev.Y)
}

// Script is a list of events plus an optional calibration distance that is
// set before the first event.
type Script struct {
	CalibrationDistance *float64 `yaml:"calibration_distance,omitempty" json:"calibration_distance,omitempty"`
	Events              []Event  `yaml:"events" json:"events"`
}

type handler func(e *engine.Engine, ev Event)

var handlers = map[string]handler{
	"down":   func(e *engine.Engine, ev Event) { e.PointerDown(ev.Point()) },
	"move":   func(e *engine.Engine, ev Event) { e.PointerMove(ev.Point()) },
	"up":     func(e *engine.Engine, ev Event) { e.PointerUp(ev.Point()) },
	"wheel":  func(e *engine.Engine, ev Event) { e.Wheel(ev.Delta) },
	"cancel": func(e *engine.Engine, _ Event) { e.CancelMode() },
	"click": func(e *engine.Engine, ev Event) {
		e.PointerDown(ev.Point())
		e.PointerUp(ev.Point())
	},
	"mode": func(e *engine.Engine, ev Event) {
		// Checked by Validate
		mode, _ := engine.ParseMode(ev.Mode)
		e.SetMode(mode)
	},
	"calibrate": func(e *engine.Engine, ev Event) { e.SetCalibrationDistance(ev.Value) },
	"label":     func(e *engine.Engine, ev Event) { e.SetPolygonLabel(ev.Label) },
	"close":     func(e *engine.Engine, ev Event) { e.ClosePolygon(ev.Label) },
	"clear":     func(e *engine.Engine, _ Event) { e.ClearCurrent() },
	"add-layer": func(e *engine.Engine, ev Event) {
		id := e.AddLayer()
		if ev.Name != "" {
			e.RenameLayer(id, ev.Name)
		}
	},
	"remove-layer": func(e *engine.Engine, ev Event) { e.RemoveLayer(ev.Layer) },
	"select-layer": func(e *engine.Engine, ev Event) { e.SetActiveLayer(ev.Layer) },
	"rename-layer": func(e *engine.Engine, ev Event) { e.RenameLayer(ev.Layer, ev.Name) },
	"toggle-layer": func(e *engine.Engine, ev Event) { e.ToggleLayerVisibility(ev.Layer) },
	"undo":         func(e *engine.Engine, _ Event) { e.Undo() },
	"redo":         func(e *engine.Engine, _ Event) { e.Redo() },
	"reset":        func(e *engine.Engine, _ Event) { e.Reset() },
	"labels": func(e *engine.Engine, ev Event) {
		e.SetShowLabels(ev.Show == nil || *ev.Show)
	},
}

// Ops returns the supported op names in sorted order
func Ops() []string {
	ops := lo.Keys(handlers)
	slices.Sort(ops)
	return ops
}

// Parse decodes and validates a script
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every event's op and mode
func (s *Script) Validate() error {
	for i, ev := range s.Events {
		if _, ok := handlers[ev.Op]; !ok {
			return fmt.Errorf("event %d: unknown op %q (expected one of %s)", i, ev.Op, strings.Join(Ops(), ", "))
		}
		if ev.Op == "mode" {
			if _, err := engine.ParseMode(ev.Mode); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		}
	}
	return nil
}

// Replay applies the script to e in order
func (s *Script) Replay(e *engine.Engine) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if s.CalibrationDistance != nil {
		e.SetCalibrationDistance(*s.CalibrationDistance)
	}
	for _, ev := range s.Events {
		handlers[ev.Op](e, ev)
	}
	return nil
}

// Encode writes the script as YAML
func (s *Script) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode script: %w", err)
	}
	return enc.Close()
}
