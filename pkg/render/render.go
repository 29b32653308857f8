// Package render paints an engine state onto a raster image.
//
// It only reads the published state: polygons are drawn in device space using
// the state's view transform, on top of an optional background image that
// lives in image space.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/plotarea/internal/document"
	"github.com/philipparndt/plotarea/internal/engine"
	"github.com/philipparndt/plotarea/pkg/analysis"
	"github.com/philipparndt/plotarea/pkg/geometry"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DefaultMaxSize bounds each side of the output when Options.MaxSize is 0
const DefaultMaxSize = 8192

// ErrCanvasTooLarge is returned when the output would exceed the size limit
var ErrCanvasTooLarge = errors.New("canvas too large")

const (
	fillAlpha    = 0x40
	strokeWidth  = 2.0
	vertexRadius = 4.0
	anchorRadius = 7.0
)

var (
	canvasColor      = color.RGBA{0xF5, 0xF5, 0xF5, 0xFF}
	calibrationColor = color.RGBA{0xE9, 0x1E, 0x63, 0xFF}
	labelColor       = color.RGBA{0x21, 0x21, 0x21, 0xFF}
)

// Options controls the output image
type Options struct {
	Width      int         // Output width in device px, 0 fits the content
	Height     int         // Output height in device px, 0 fits the content
	Background image.Image // Drawn in image space under the polygons
	Unit       string      // Unit name used in labels
	MaxSize    int         // Largest allowed side in px, 0 uses DefaultMaxSize
}

// Render draws the state into a new RGBA image. It fails with
// ErrCanvasTooLarge instead of allocating an oversized image.
func Render(state engine.State, opts Options) (*image.RGBA, error) {
	view := state.View
	width, height, err := canvasSize(state, opts)
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(canvasColor), image.Point{}, draw.Src)

	if opts.Background != nil {
		src := opts.Background.Bounds()
		topLeft := view.ImageToDevice(geometry.NewPoint(float64(src.Min.X), float64(src.Min.Y)))
		bottomRight := view.ImageToDevice(geometry.NewPoint(float64(src.Max.X), float64(src.Max.Y)))
		target := image.Rect(
			int(math.Round(topLeft.X)), int(math.Round(topLeft.Y)),
			int(math.Round(bottomRight.X)), int(math.Round(bottomRight.Y)),
		)
		draw.CatmullRom.Scale(dst, target, opts.Background, src, draw.Over, nil)
	}

	for _, layer := range state.Document.Layers {
		if !layer.Visible {
			continue
		}
		drawLayer(dst, view, layer, layer.ID == state.Document.ActiveLayerID)
	}

	if state.Split != nil {
		drawSplitAnchor(dst, view, state)
	}
	for _, p := range state.Calibration.Points {
		fillCircle(dst, view.ImageToDevice(p), vertexRadius, calibrationColor)
	}
	if len(state.Calibration.Points) == 2 {
		strokePath(dst, devicePath(view, state.Calibration.Points), false, calibrationColor)
	}

	if state.ShowLabels {
		for _, layer := range state.Document.Layers {
			if layer.Visible {
				drawLabels(dst, view, layer, state.Calibration.Scale, opts.Unit)
			}
		}
	}

	return dst, nil
}

func drawLayer(dst *image.RGBA, view engine.View, layer document.Layer, active bool) {
	col := ParseColor(layer.Color)
	fill := col
	fill.A = fillAlpha

	for _, poly := range layer.Polygons {
		path := devicePath(view, poly.Vertices)
		fillPath(dst, path, premultiply(fill))
		strokePath(dst, path, true, col)
		if active {
			for _, p := range path {
				fillCircle(dst, p, vertexRadius, col)
			}
		}
	}

	chain := devicePath(view, layer.Vertices)
	strokePath(dst, chain, false, col)
	for _, p := range chain {
		fillCircle(dst, p, vertexRadius, col)
	}
}

func drawSplitAnchor(dst *image.RGBA, view engine.View, state engine.State) {
	layer, ok := state.Document.ActiveLayer()
	if !ok {
		return
	}
	poly, ok := layer.Polygon(state.Split.PolygonID)
	if !ok || state.Split.Index >= len(poly.Vertices) {
		return
	}
	fillCircle(dst, view.ImageToDevice(poly.Vertices[state.Split.Index]), anchorRadius, calibrationColor)
}

func drawLabels(dst *image.RGBA, view engine.View, layer document.Layer, scale geometry.Scale, unit string) {
	if !scale.Calibrated() {
		unit = "px"
	}
	for _, poly := range layer.Polygons {
		metrics := analysis.MeasurePolygon(poly.Vertices, scale)
		anchor := view.ImageToDevice(geometry.Centroid(poly.Vertices))
		drawText(dst, anchor, 0, poly.Label)
		drawText(dst, anchor, 1, analysis.FormatArea(metrics.Area, unit))
	}
}

// drawText centers one line of text on anchor; line offsets it downward
func drawText(dst *image.RGBA, anchor geometry.Point, line int, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(labelColor), Face: face}
	width := d.MeasureString(text).Round()
	d.Dot = fixed.P(int(anchor.X)-width/2, int(anchor.Y)+line*face.Height)
	d.DrawString(text)
}

func devicePath(view engine.View, vertices []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(vertices))
	for i, v := range vertices {
		out[i] = view.ImageToDevice(v)
	}
	return out
}

func fillPath(dst *image.RGBA, path []geometry.Point, col color.Color) {
	if len(path) < 3 {
		return
	}
	r := newRasterizer(dst)
	r.MoveTo(float32(path[0].X), float32(path[0].Y))
	for _, p := range path[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// strokePath draws each segment as a quad of strokeWidth
func strokePath(dst *image.RGBA, path []geometry.Point, closed bool, col color.Color) {
	if len(path) < 2 {
		return
	}
	r := newRasterizer(dst)
	segments := len(path) - 1
	if closed {
		segments = len(path)
	}
	for i := 0; i < segments; i++ {
		a, b := path[i], path[(i+1)%len(path)]
		dir := b.Sub(a)
		length := dir.Length()
		if length == 0 {
			continue
		}
		n := geometry.NewPoint(-dir.Y, dir.X).Mul(strokeWidth / 2 / length)
		quad := []geometry.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
		r.MoveTo(float32(quad[0].X), float32(quad[0].Y))
		for _, p := range quad[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// fillCircle approximates a disc with a 16-gon
func fillCircle(dst *image.RGBA, center geometry.Point, radius float64, col color.Color) {
	const steps = 16
	r := newRasterizer(dst)
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / steps
		x := float32(center.X + radius*math.Cos(angle))
		y := float32(center.Y + radius*math.Sin(angle))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

func newRasterizer(dst *image.RGBA) *vector.Rasterizer {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return r
}

// canvasSize picks explicit dimensions, else the background's device size,
// else the bounding box of all vertices plus a margin. Sizes above the limit
// are rejected before anything is allocated.
func canvasSize(state engine.State, opts Options) (int, int, error) {
	const margin = 20
	limit := opts.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}

	width, height := float64(opts.Width), float64(opts.Height)
	if opts.Width <= 0 || opts.Height <= 0 {
		box := geometry.NewBoundingBox()
		if opts.Background != nil {
			b := opts.Background.Bounds()
			box.Extend(geometry.NewPoint(float64(b.Max.X), float64(b.Max.Y)))
		}
		for _, layer := range state.Document.Layers {
			for _, v := range layer.Vertices {
				box.Extend(v)
			}
			for _, poly := range layer.Polygons {
				for _, v := range poly.Vertices {
					box.Extend(v)
				}
			}
		}

		corner := geometry.Point{X: -margin, Y: -margin}
		if !box.Empty() {
			corner = state.View.ImageToDevice(box.Max)
		}
		if opts.Width <= 0 {
			width = math.Max(math.Ceil(corner.X)+margin, 1)
		}
		if opts.Height <= 0 {
			height = math.Max(math.Ceil(corner.Y)+margin, 1)
		}
	}

	// NaN fails both comparisons
	if !(width <= float64(limit)) || !(height <= float64(limit)) {
		return 0, 0, fmt.Errorf("%w: %.0fx%.0f px exceeds %d px per side", ErrCanvasTooLarge, width, height, limit)
	}
	return int(width), int(height), nil
}

// ParseColor converts "#RRGGBB" or "#RRGGBBAA" to a color. Invalid input
// yields opaque gray.
func ParseColor(hex string) color.RGBA {
	fallback := color.RGBA{0x80, 0x80, 0x80, 0xFF}
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return fallback
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// premultiply converts a straight-alpha color for use as an image.Uniform
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 0xFF),
		G: uint8(uint16(c.G) * a / 0xFF),
		B: uint8(uint16(c.B) * a / 0xFF),
		A: c.A,
	}
}
