package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/philipparndt/plotarea/internal/document"
	"github.com/philipparndt/plotarea/internal/hittest"
	"github.com/philipparndt/plotarea/pkg/geometry"
)

// Mode selects how pointer input is interpreted
type Mode int

const (
	// ModeNavigate pans and zooms the view
	ModeNavigate Mode = iota
	// ModeEdit appends, inserts and drags vertices
	ModeEdit
	// ModeCalibrate captures two reference points for the scale
	ModeCalibrate
	// ModeSplit selects two vertices of one polygon to cut it
	ModeSplit
)

var modeNames = []string{"navigate", "edit", "calibrate", "split"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode converts a mode name to a Mode
func ParseMode(name string) (Mode, error) {
	idx := slices.Index(modeNames, strings.ToLower(strings.TrimSpace(name)))
	if idx < 0 {
		return ModeNavigate, fmt.Errorf("unknown mode %q (expected one of %s)", name, strings.Join(modeNames, ", "))
	}
	return Mode(idx), nil
}

// MarshalText encodes the mode by name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// DragTarget identifies the vertex being dragged
type DragTarget struct {
	Source    hittest.Source `json:"source" yaml:"source"`
	PolygonID int            `json:"polygonId,omitempty" yaml:"polygonId,omitempty"`
	Index     int            `json:"index" yaml:"index"`
}

// Calibration holds the buffered reference points and the resulting scale
type Calibration struct {
	Points   []geometry.Point `json:"points,omitempty" yaml:"points,omitempty"`
	Distance float64          `json:"distance,omitempty" yaml:"distance,omitempty"` // Target distance in units
	Scale    geometry.Scale   `json:"scale" yaml:"scale"`
}

// SplitSelection is the first vertex picked in split mode
type SplitSelection struct {
	PolygonID int `json:"polygonId" yaml:"polygonId"`
	Index     int `json:"index" yaml:"index"`
}

// State is a consistent copy of everything a renderer needs
type State struct {
	Document    document.Document `json:"document" yaml:"document"`
	View        View              `json:"view" yaml:"view"`
	Mode        Mode              `json:"mode" yaml:"mode"`
	ShowLabels  bool              `json:"showLabels" yaml:"showLabels"`
	Calibration Calibration       `json:"calibration" yaml:"calibration"`
	Split       *SplitSelection   `json:"split,omitempty" yaml:"split,omitempty"`
	Drag        *DragTarget       `json:"drag,omitempty" yaml:"drag,omitempty"`
}

// pointerState tracks a press/release gesture
type pointerState struct {
	down       bool
	downDevice geometry.Point // Device position of the press
	panOrigin  geometry.Point // Press position minus pan at press time
	panning    bool
	drag       *DragTarget
	dragged    bool // Whether the drag target actually moved
}

// calibrationState is the engine-owned calibration buffer
type calibrationState struct {
	points   []geometry.Point
	distance float64
	scale    geometry.Scale
}

func (c calibrationState) snapshot() Calibration {
	return Calibration{
		Points:   slices.Clone(c.points),
		Distance: c.distance,
		Scale:    c.scale,
	}
}
