package engine

import (
	"math"
	"testing"

	"github.com/philipparndt/plotarea/internal/config"
	"github.com/philipparndt/plotarea/internal/document"
	"github.com/philipparndt/plotarea/internal/hittest"
	"github.com/philipparndt/plotarea/pkg/geometry"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) geometry.Point { return geometry.NewPoint(x, y) }

func newEditEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(config.Default())
	e.SetMode(ModeEdit)
	return e
}

func click(e *Engine, x, y float64) {
	e.PointerDown(pt(x, y))
	e.PointerUp(pt(x, y))
}

func drag(e *Engine, from, to geometry.Point) {
	e.PointerDown(from)
	e.PointerMove(from.Add(to).Div(2))
	e.PointerMove(to)
	e.PointerUp(to)
}

// drawSquare closes a 100px square on the active layer and returns it
func drawSquare(t *testing.T, e *Engine) document.Polygon {
	t.Helper()
	click(e, 0, 0)
	click(e, 100, 0)
	click(e, 100, 100)
	click(e, 0, 100)
	poly, ok := e.ClosePolygon("")
	require.True(t, ok)
	return poly
}

func activeLayer(t *testing.T, e *Engine) document.Layer {
	t.Helper()
	layer, ok := e.Document().ActiveLayer()
	require.True(t, ok)
	return layer
}

func TestNewEngineStartsInNavigate(t *testing.T) {
	e := New(config.Default())

	assert.Equal(t, ModeNavigate, e.Mode())
	assert.Equal(t, DefaultView(), e.View())
	assert.False(t, e.CanUndo())
	assert.False(t, e.CanRedo())
	assert.False(t, e.Scale().Calibrated())

	doc := e.Document()
	require.Len(t, doc.Layers, 1)
	assert.Equal(t, "Layer 1", doc.Layers[0].Name)
	assert.Equal(t, "#2196F3", doc.Layers[0].Color)
	assert.Equal(t, 1, doc.ActiveLayerID)
}

func TestEditClickAppendsAndCommits(t *testing.T) {
	e := newEditEngine(t)

	click(e, 0, 0)
	click(e, 50, 0)
	click(e, 50, 50)

	assert.Equal(t, []geometry.Point{pt(0, 0), pt(50, 0), pt(50, 50)}, activeLayer(t, e).Vertices)
	assert.Equal(t, 4, e.history.Len())

	require.True(t, e.Undo())
	assert.Len(t, activeLayer(t, e).Vertices, 2)
}

func TestEditClickOnVertexIsIgnored(t *testing.T) {
	e := newEditEngine(t)
	click(e, 0, 0)

	click(e, 3, 3)

	assert.Len(t, activeLayer(t, e).Vertices, 1)
	assert.Equal(t, 2, e.history.Len())
}

func TestEditClickOnEdgeInsertsVertex(t *testing.T) {
	e := newEditEngine(t)
	poly := drawSquare(t, e)

	click(e, 50, 2)

	got, ok := activeLayer(t, e).Polygon(poly.ID)
	require.True(t, ok)
	assert.Equal(t, []geometry.Point{pt(0, 0), pt(50, 2), pt(100, 0), pt(100, 100), pt(0, 100)}, got.Vertices)
	assert.Empty(t, activeLayer(t, e).Vertices, "insert must not touch the in-progress chain")
}

func TestEditClickOnChainEdgeInsertsIntoChain(t *testing.T) {
	e := newEditEngine(t)
	click(e, 0, 0)
	click(e, 100, 0)

	click(e, 50, 3)

	assert.Equal(t, []geometry.Point{pt(0, 0), pt(50, 3), pt(100, 0)}, activeLayer(t, e).Vertices)
}

func TestReleaseBeyondClickToleranceIsNotAClick(t *testing.T) {
	e := newEditEngine(t)

	e.PointerDown(pt(0, 0))
	e.PointerUp(pt(40, 0))

	assert.Empty(t, activeLayer(t, e).Vertices)
	assert.False(t, e.CanUndo())
}

func TestDragCommitsOnceOnRelease(t *testing.T) {
	e := newEditEngine(t)
	poly := drawSquare(t, e)
	before := e.history.Len()

	e.PointerDown(pt(100, 100))
	target, ok := e.Dragging()
	require.True(t, ok)
	assert.Equal(t, DragTarget{Source: hittest.Polygon, PolygonID: poly.ID, Index: 2}, target)

	e.PointerMove(pt(110, 110))
	e.PointerMove(pt(120, 120))
	assert.Equal(t, before, e.history.Len(), "no history while dragging")

	live, _ := activeLayer(t, e).Polygon(poly.ID)
	assert.Equal(t, pt(120, 120), live.Vertices[2], "vertex follows the pointer")

	e.PointerUp(pt(120, 120))
	assert.Equal(t, before+1, e.history.Len())
	_, dragging := e.Dragging()
	assert.False(t, dragging)

	require.True(t, e.Undo())
	restored, _ := activeLayer(t, e).Polygon(poly.ID)
	assert.Equal(t, pt(100, 100), restored.Vertices[2])
}

func TestDragChainVertex(t *testing.T) {
	e := newEditEngine(t)
	click(e, 0, 0)
	click(e, 100, 0)

	drag(e, pt(100, 0), pt(100, 60))

	assert.Equal(t, []geometry.Point{pt(0, 0), pt(100, 60)}, activeLayer(t, e).Vertices)
	assert.Equal(t, 4, e.history.Len())
}

func TestPressAndReleaseOnVertexChangesNothing(t *testing.T) {
	e := newEditEngine(t)
	drawSquare(t, e)
	before := e.history.Len()

	click(e, 100, 100)

	assert.Equal(t, before, e.history.Len())
}

func TestCommandDuringDragCommitsTheDrag(t *testing.T) {
	e := newEditEngine(t)
	click(e, 0, 0)
	before := e.history.Len()

	e.PointerDown(pt(0, 0))
	e.PointerMove(pt(20, 20))
	e.SetMode(ModeNavigate)

	assert.Equal(t, before+1, e.history.Len())
	assert.Equal(t, []geometry.Point{pt(20, 20)}, activeLayer(t, e).Vertices)
	_, dragging := e.Dragging()
	assert.False(t, dragging)
}

func TestNavigatePanAndZoomSkipHistory(t *testing.T) {
	e := New(config.Default())

	e.PointerDown(pt(10, 10))
	e.PointerMove(pt(30, 50))
	e.PointerUp(pt(30, 50))
	assert.Equal(t, pt(20, 40), e.View().Pan)

	// A second drag continues from the current pan
	e.PointerDown(pt(0, 0))
	e.PointerMove(pt(5, 5))
	e.PointerUp(pt(5, 5))
	assert.Equal(t, pt(25, 45), e.View().Pan)

	e.Wheel(-1)
	assert.InDelta(t, 1.1, e.View().Zoom, 1e-12)
	e.Wheel(1)
	assert.InDelta(t, 0.99, e.View().Zoom, 1e-12)
	e.Wheel(0)
	assert.InDelta(t, 0.99, e.View().Zoom, 1e-12)

	assert.False(t, e.CanUndo())
	assert.Empty(t, activeLayer(t, e).Vertices, "navigate clicks never draw")
}

func TestWheelClampsZoom(t *testing.T) {
	e := New(config.Default())

	for i := 0; i < 100; i++ {
		e.Wheel(1)
	}
	assert.InDelta(t, 0.1, e.View().Zoom, 1e-12)

	for i := 0; i < 100; i++ {
		e.Wheel(-1)
	}
	assert.InDelta(t, 5.0, e.View().Zoom, 1e-12)
}

func TestWheelIgnoredOutsideNavigate(t *testing.T) {
	e := newEditEngine(t)
	e.Wheel(-1)
	assert.Equal(t, 1.0, e.View().Zoom)
}

func TestClicksAreMappedThroughTheView(t *testing.T) {
	e := New(config.Default())
	e.PointerDown(pt(0, 0))
	e.PointerMove(pt(100, 0))
	e.PointerUp(pt(100, 0))
	e.Wheel(-1)

	e.SetMode(ModeEdit)
	click(e, 155, 55)

	require.Len(t, activeLayer(t, e).Vertices, 1)
	got := activeLayer(t, e).Vertices[0]
	assert.InDelta(t, 50, got.X, 1e-9)
	assert.InDelta(t, 50, got.Y, 1e-9)

	device := e.ImageToDevice(got)
	assert.InDelta(t, 155, device.X, 1e-9)
	assert.InDelta(t, 55, device.Y, 1e-9)
}

func TestHitThresholdShrinksWhenZoomedIn(t *testing.T) {
	e := New(config.Default())
	for i := 0; i < 20; i++ {
		e.Wheel(-1)
	}
	require.InDelta(t, 5.0, e.View().Zoom, 1e-12)

	e.SetMode(ModeEdit)
	click(e, 0, 0)
	// 9 device px is 1.8 image px apart, but the vertex radius is 10/5 = 2
	// image px, so this is a hit and is ignored
	click(e, 9, 0)
	assert.Len(t, activeLayer(t, e).Vertices, 1)

	// 15 device px is outside the radius
	click(e, 15, 0)
	assert.Len(t, activeLayer(t, e).Vertices, 2)
}

func TestCalibrationScenario(t *testing.T) {
	e := New(config.Default())
	e.SetMode(ModeCalibrate)
	e.SetCalibrationDistance(10)

	click(e, 0, 0)
	click(e, 50, 0)

	cal := e.Calibration()
	assert.InDelta(t, 5, cal.Scale.PixelsPerUnit, 1e-12)
	assert.Empty(t, cal.Points)
	assert.Equal(t, ModeEdit, e.Mode())
	assert.InDelta(t, 20, e.Scale().PixelsToUnits(100), 1e-12)

	poly := drawSquare(t, e)
	m, ok := e.PolygonMetrics(poly.ID)
	require.True(t, ok)
	assert.InDelta(t, 10000, m.AreaPixels, 1e-9)
	assert.InDelta(t, 400, m.Area, 1e-9)
	assert.InDelta(t, 80, m.Perimeter, 1e-9)
}

func TestCalibrationWaitsForValidDistance(t *testing.T) {
	e := New(config.Default())
	e.SetMode(ModeCalibrate)

	click(e, 0, 0)
	click(e, 50, 0)
	assert.Len(t, e.Calibration().Points, 2)
	assert.False(t, e.Scale().Calibrated())
	assert.Equal(t, ModeCalibrate, e.Mode())

	e.SetCalibrationDistance(-3)
	assert.False(t, e.Scale().Calibrated())
	assert.Len(t, e.Calibration().Points, 2)

	e.SetCalibrationDistance(25)
	assert.InDelta(t, 2, e.Scale().PixelsPerUnit, 1e-12)
	assert.Equal(t, ModeEdit, e.Mode())
}

func TestCalibrationIgnoresCoincidentPoints(t *testing.T) {
	e := New(config.Default())
	e.SetMode(ModeCalibrate)
	e.SetCalibrationDistance(10)

	click(e, 30, 30)
	click(e, 30, 30)

	assert.Len(t, e.Calibration().Points, 2)
	assert.False(t, e.Scale().Calibrated())
	assert.Equal(t, ModeCalibrate, e.Mode())

	// A fresh pair replaces the degenerate one
	click(e, 0, 0)
	click(e, 20, 0)
	assert.InDelta(t, 2, e.Scale().PixelsPerUnit, 1e-12)
	assert.Equal(t, ModeEdit, e.Mode())
}

func TestCalibrationThirdClickStartsNewPair(t *testing.T) {
	e := New(config.Default())
	e.SetMode(ModeCalibrate)

	click(e, 0, 0)
	click(e, 50, 0)
	click(e, 200, 200)

	assert.Equal(t, []geometry.Point{pt(200, 200)}, e.Calibration().Points)
}

func TestCalibrationIsNotUndone(t *testing.T) {
	e := New(config.Default())
	e.SetMode(ModeCalibrate)
	e.SetCalibrationDistance(10)
	click(e, 0, 0)
	click(e, 50, 0)

	assert.False(t, e.CanUndo(), "calibration never commits")

	click(e, 300, 300)
	require.True(t, e.Undo())
	assert.InDelta(t, 5, e.Scale().PixelsPerUnit, 1e-12)
}

func TestLeavingCalibrateClearsBuffer(t *testing.T) {
	e := New(config.Default())
	e.SetMode(ModeCalibrate)
	click(e, 0, 0)

	e.CancelMode()

	assert.Equal(t, ModeEdit, e.Mode())
	assert.Empty(t, e.Calibration().Points)
	assert.False(t, e.CanUndo())
}

func TestSplitSquareAlongDiagonal(t *testing.T) {
	e := newEditEngine(t)
	poly := drawSquare(t, e)
	before := e.history.Len()

	e.SetMode(ModeSplit)
	click(e, 0, 0)
	sel, ok := e.SplitSelection()
	require.True(t, ok)
	assert.Equal(t, SplitSelection{PolygonID: poly.ID, Index: 0}, sel)

	click(e, 100, 100)

	layer := activeLayer(t, e)
	require.Len(t, layer.Polygons, 2)
	a, b := layer.Polygons[0], layer.Polygons[1]
	assert.Equal(t, []geometry.Point{pt(0, 0), pt(100, 0), pt(100, 100)}, a.Vertices)
	assert.Equal(t, []geometry.Point{pt(100, 100), pt(0, 100), pt(0, 0)}, b.Vertices)
	assert.Equal(t, "Plot 1 - Part A", a.Label)
	assert.Equal(t, "Plot 1 - Part B", b.Label)
	assert.NotEqual(t, poly.ID, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	assert.Equal(t, ModeEdit, e.Mode())
	_, ok = e.SplitSelection()
	assert.False(t, ok)
	assert.Equal(t, before+1, e.history.Len())

	require.True(t, e.Undo())
	layer = activeLayer(t, e)
	require.Len(t, layer.Polygons, 1)
	assert.Equal(t, poly, layer.Polygons[0])
}

func TestSplitAdjacentVerticesKeepsOnePart(t *testing.T) {
	e := newEditEngine(t)
	drawSquare(t, e)

	e.SetMode(ModeSplit)
	click(e, 0, 0)
	click(e, 100, 0)

	layer := activeLayer(t, e)
	require.Len(t, layer.Polygons, 1)
	assert.Equal(t, "Plot 1 - Part B", layer.Polygons[0].Label)
	assert.Len(t, layer.Polygons[0].Vertices, 4)
}

func TestSplitReanchorsInsteadOfFailing(t *testing.T) {
	e := newEditEngine(t)
	first := drawSquare(t, e)
	click(e, 200, 0)
	click(e, 300, 0)
	click(e, 300, 100)
	second, ok := e.ClosePolygon("")
	require.True(t, ok)

	e.SetMode(ModeSplit)

	// Empty space is ignored before and after an anchor
	click(e, 50, 50)
	_, ok = e.SplitSelection()
	assert.False(t, ok)

	click(e, 0, 0)
	click(e, 50, 50)
	sel, _ := e.SplitSelection()
	assert.Equal(t, SplitSelection{PolygonID: first.ID, Index: 0}, sel)

	// Same vertex again
	click(e, 0, 0)
	sel, _ = e.SplitSelection()
	assert.Equal(t, SplitSelection{PolygonID: first.ID, Index: 0}, sel)

	// Vertex of another polygon becomes the new anchor
	click(e, 300, 100)
	sel, _ = e.SplitSelection()
	assert.Equal(t, SplitSelection{PolygonID: second.ID, Index: 2}, sel)

	assert.Equal(t, ModeSplit, e.Mode())
	assert.Len(t, activeLayer(t, e).Polygons, 2)
}

func TestSplitIgnoresInProgressChain(t *testing.T) {
	e := newEditEngine(t)
	click(e, 0, 0)

	e.SetMode(ModeSplit)
	click(e, 0, 0)

	_, ok := e.SplitSelection()
	assert.False(t, ok)
}

func TestClosePolygonLabels(t *testing.T) {
	e := newEditEngine(t)

	first := drawSquare(t, e)
	assert.Equal(t, "Plot 1", first.Label)

	e.SetPolygonLabel("North field")
	click(e, 200, 0)
	click(e, 300, 0)
	click(e, 300, 100)
	second, ok := e.ClosePolygon("")
	require.True(t, ok)
	assert.Equal(t, "North field", second.Label)
	assert.Empty(t, e.PendingLabel())

	click(e, 500, 0)
	click(e, 600, 0)
	click(e, 600, 100)
	third, ok := e.ClosePolygon("Pond")
	require.True(t, ok)
	assert.Equal(t, "Pond", third.Label)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, second.ID, third.ID)
}

func TestClosePolygonNeedsThreeVertices(t *testing.T) {
	e := newEditEngine(t)
	click(e, 0, 0)
	click(e, 100, 0)
	before := e.history.Len()

	_, ok := e.ClosePolygon("")

	assert.False(t, ok)
	assert.Len(t, activeLayer(t, e).Vertices, 2)
	assert.Equal(t, before, e.history.Len())
}

func TestClearCurrent(t *testing.T) {
	e := newEditEngine(t)
	assert.False(t, e.ClearCurrent(), "nothing to clear")

	click(e, 0, 0)
	click(e, 100, 0)
	require.True(t, e.ClearCurrent())
	assert.Empty(t, activeLayer(t, e).Vertices)

	require.True(t, e.Undo())
	assert.Len(t, activeLayer(t, e).Vertices, 2)
}

func TestCurrentStats(t *testing.T) {
	e := newEditEngine(t)
	click(e, 0, 0)
	assert.Zero(t, e.CurrentStats())

	click(e, 30, 40)
	stats := e.CurrentStats()
	assert.InDelta(t, 50, stats.LastSegment, 1e-12)
	assert.InDelta(t, 100, stats.Perimeter, 1e-12)
	assert.InDelta(t, 0, stats.Area, 1e-12)
}

func TestLayerCommands(t *testing.T) {
	e := newEditEngine(t)

	id := e.AddLayer()
	assert.Equal(t, 2, id)
	assert.Equal(t, 2, e.Document().ActiveLayerID)
	assert.Equal(t, "#FF9800", activeLayer(t, e).Color)

	assert.True(t, e.RenameLayer(id, "Buildings"))
	assert.False(t, e.RenameLayer(id, "Buildings"))
	assert.True(t, e.ToggleLayerVisibility(id))
	assert.False(t, activeLayer(t, e).Visible)
	assert.False(t, e.ToggleLayerVisibility(99))

	assert.True(t, e.SetActiveLayer(1))
	assert.False(t, e.SetActiveLayer(99))

	assert.True(t, e.RemoveLayer(1))
	assert.Equal(t, id, e.Document().ActiveLayerID)
	assert.False(t, e.RemoveLayer(id), "the last layer stays")
	assert.Len(t, e.Document().Layers, 1)
}

func TestSetActiveLayerIsNotHistory(t *testing.T) {
	e := newEditEngine(t)
	e.AddLayer()
	before := e.history.Len()

	e.SetActiveLayer(1)

	assert.Equal(t, before, e.history.Len())
}

func TestEditsOnlyTouchActiveLayer(t *testing.T) {
	e := newEditEngine(t)
	e.AddLayer()
	click(e, 10, 10)

	doc := e.Document()
	assert.Empty(t, doc.Layers[0].Vertices)
	assert.Len(t, doc.Layers[1].Vertices, 1)
}

func TestUndoKeepsLiveActiveLayer(t *testing.T) {
	e := newEditEngine(t)
	second := e.AddLayer()
	click(e, 10, 10)
	e.SetActiveLayer(1)

	require.True(t, e.Undo())
	doc := e.Document()
	assert.Equal(t, 1, doc.ActiveLayerID)
	layer, _ := doc.Layer(second)
	assert.Empty(t, layer.Vertices)

	e.SetActiveLayer(second)
	require.True(t, e.Undo())
	doc = e.Document()
	assert.Len(t, doc.Layers, 1)
	assert.Equal(t, 1, doc.ActiveLayerID, "falls back when the live layer is gone")
}

func TestHistoryProperties(t *testing.T) {
	e := newEditEngine(t)
	click(e, 0, 0)
	click(e, 100, 0)
	b := e.Document()

	require.True(t, e.Undo())
	require.True(t, e.Redo())
	assert.Equal(t, b, e.Document())
	assert.False(t, e.Redo(), "redo at the top is a no-op")

	require.True(t, e.Undo())
	click(e, 0, 200)
	assert.False(t, e.CanRedo())
	assert.False(t, e.Redo())

	for e.CanUndo() {
		e.Undo()
	}
	assert.False(t, e.Undo(), "undo at the bottom is a no-op")
	assert.Empty(t, activeLayer(t, e).Vertices)
}

func TestReadsAreCopies(t *testing.T) {
	e := newEditEngine(t)
	drawSquare(t, e)

	doc := e.Document()
	doc.Layers[0].Polygons[0].Vertices[0] = pt(-1, -1)
	doc.Layers[0].Name = "changed"

	layer := activeLayer(t, e)
	assert.Equal(t, pt(0, 0), layer.Polygons[0].Vertices[0])
	assert.Equal(t, "Layer 1", layer.Name)
}

func TestReset(t *testing.T) {
	e := newEditEngine(t)
	drawSquare(t, e)
	e.AddLayer()
	e.SetCalibrationDistance(10)
	e.SetShowLabels(false)

	e.Reset()

	assert.Equal(t, ModeNavigate, e.Mode())
	assert.False(t, e.CanUndo())
	assert.False(t, e.CanRedo())
	assert.False(t, e.Scale().Calibrated())
	assert.Equal(t, document.New(nil), e.Document())
	assert.Equal(t, DefaultView(), e.View())
}

func TestStateSnapshot(t *testing.T) {
	e := newEditEngine(t)
	drawSquare(t, e)
	e.SetMode(ModeSplit)
	click(e, 0, 0)

	s := e.State()
	assert.Equal(t, ModeSplit, s.Mode)
	require.NotNil(t, s.Split)
	assert.Equal(t, 0, s.Split.Index)
	assert.Nil(t, s.Drag)
	assert.True(t, s.ShowLabels)
}

func TestLoggerCarriesSession(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	e := New(config.Default(), WithLogger(logger), WithSession("abc"))
	e.SetMode(ModeEdit)
	click(e, 0, 0)

	require.NotEmpty(t, hook.AllEntries())
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, "abc", entry.Data["session"])
	}
	assert.Equal(t, "history commit", hook.LastEntry().Message)
	assert.Equal(t, "append vertex", hook.LastEntry().Data["action"])
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{ModeNavigate, ModeEdit, ModeCalibrate, ModeSplit} {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	parsed, err := ParseMode(" Split ")
	require.NoError(t, err)
	assert.Equal(t, ModeSplit, parsed)

	_, err = ParseMode("draw")
	assert.Error(t, err)
}

func TestTotalAreaSkipsHiddenLayers(t *testing.T) {
	e := newEditEngine(t)
	drawSquare(t, e)
	hidden := e.AddLayer()
	drawSquare(t, e)
	assert.InDelta(t, 20000, e.TotalArea(), 1e-9)

	e.ToggleLayerVisibility(hidden)
	assert.InDelta(t, 10000, e.TotalArea(), 1e-9)
	assert.InDelta(t, 20000, e.Report().TotalArea, 1e-9)
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	logger, hook := test.NewNullLogger()

	e := New(config.Config{}, WithLogger(logger))

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "invalid config, using defaults", hook.LastEntry().Message)

	e.Wheel(-1)
	assert.InDelta(t, 1.1, e.View().Zoom, 1e-12)
	e.Wheel(1)
	e.Wheel(1)
	assert.InDelta(t, 1.1*0.9*0.9, e.View().Zoom, 1e-12)

	p := e.DeviceToImage(pt(50, 50))
	assert.False(t, math.IsNaN(p.X) || math.IsInf(p.X, 0))

	// Default thresholds make a nearby click select the vertex
	e.SetMode(ModeEdit)
	click(e, 0, 0)
	click(e, 100, 0)
	e.PointerDown(pt(3, 3))
	_, dragging := e.Dragging()
	assert.True(t, dragging)
}
