// Package history implements a linear undo/redo stack of document snapshots.
package history

import "github.com/philipparndt/plotarea/internal/document"

// History is a linear stack of document snapshots with a cursor.
// Documents are deep-copied on the way in and on the way out, so no caller
// holds a reference into stored state.
type History struct {
	entries []document.Document
	cursor  int
}

// New creates a history whose only entry is initial
func New(initial document.Document) *History {
	return &History{
		entries: []document.Document{initial.Clone()},
		cursor:  0,
	}
}

// Commit discards any redo branch after the cursor and appends doc
func (h *History) Commit(doc document.Document) {
	h.entries = append(h.entries[:h.cursor+1:h.cursor+1], doc.Clone())
	h.cursor = len(h.entries) - 1
}

// Undo moves the cursor back one entry and returns that snapshot.
// ok is false at the bottom of the stack.
func (h *History) Undo() (document.Document, bool) {
	if !h.CanUndo() {
		return document.Document{}, false
	}
	h.cursor--
	return h.entries[h.cursor].Clone(), true
}

// Redo moves the cursor forward one entry and returns that snapshot.
// ok is false at the top of the stack.
func (h *History) Redo() (document.Document, bool) {
	if !h.CanRedo() {
		return document.Document{}, false
	}
	h.cursor++
	return h.entries[h.cursor].Clone(), true
}

// CanUndo reports whether Undo would move the cursor
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would move the cursor
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of stored snapshots
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the current snapshot
func (h *History) Cursor() int {
	return h.cursor
}

// Current returns a copy of the snapshot at the cursor
func (h *History) Current() document.Document {
	return h.entries[h.cursor].Clone()
}
