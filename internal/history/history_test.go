package history

import (
	"testing"

	"github.com/philipparndt/plotarea/internal/document"
	"github.com/philipparndt/plotarea/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVertex(doc document.Document, x, y float64) document.Document {
	doc, _ = doc.UpdateActiveLayer(func(l document.Layer) (document.Layer, bool) {
		return l.AppendVertex(geometry.NewPoint(x, y)), true
	})
	return doc
}

func TestNewHistoryHasNothingToUndo(t *testing.T) {
	h := New(document.New(nil))

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, 1, h.Len())

	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Cursor())
}

func TestUndoRedoReturnsCommittedDocument(t *testing.T) {
	initial := document.New(nil)
	a := withVertex(initial, 1, 1)
	b := withVertex(a, 2, 2)

	h := New(initial)
	h.Commit(a)
	h.Commit(b)

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, a, got)

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, b, got)
	assert.False(t, h.CanRedo())
}

func TestCommitDiscardsRedoBranch(t *testing.T) {
	initial := document.New(nil)
	a := withVertex(initial, 1, 1)
	c := withVertex(initial, 3, 3)

	h := New(initial)
	h.Commit(a)
	_, ok := h.Undo()
	require.True(t, ok)
	h.Commit(c)

	assert.False(t, h.CanRedo())
	_, ok = h.Redo()
	assert.False(t, ok, "redo after a new commit is a no-op")
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, c, h.Current())
}

func TestSnapshotsAreIndependent(t *testing.T) {
	initial := document.New(nil)
	a := withVertex(initial, 1, 1)

	h := New(initial)
	h.Commit(a)

	// Writing into the committed value must not reach the stored snapshot
	a.Layers[0].Vertices[0] = geometry.NewPoint(99, 99)
	a.Layers[0].Name = "changed"

	stored := h.Current()
	assert.Equal(t, geometry.NewPoint(1, 1), stored.Layers[0].Vertices[0])
	assert.Equal(t, "Layer 1", stored.Layers[0].Name)

	// Nor must writing into a restored value
	undone, ok := h.Undo()
	require.True(t, ok)
	undone.Layers[0].Name = "changed"

	redone, ok := h.Redo()
	require.True(t, ok)
	assert.Equal(t, geometry.NewPoint(1, 1), redone.Layers[0].Vertices[0])

	again, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "Layer 1", again.Layers[0].Name)
}
