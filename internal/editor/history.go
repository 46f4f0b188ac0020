package editor

import "github.com/philipparndt/goplan/pkg/plan"

// History owns the wall set of record and its undo/redo snapshot stacks.
// Every committed mutation pushes exactly one undo entry and clears the
// redo stack; undo and redo only swap stored snapshots around, they never
// re-run topology operations.
type History struct {
	current plan.WallSet
	undo    []plan.WallSet // Past states, most recent last
	redo    []plan.WallSet // Future states, most recent first
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Walls returns the wall set of record
func (h *History) Walls() plan.WallSet {
	return h.current
}

// Commit records newWalls as the new state of record, keeping the
// previous state undoable
func (h *History) Commit(newWalls plan.WallSet) {
	h.undo = append(h.undo, h.current)
	h.redo = nil
	h.current = newWalls
}

// Undo restores the previous state. Returns false if there is nothing
// to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	last := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append([]plan.WallSet{h.current}, h.redo...)
	h.current = last
	return true
}

// Redo reapplies the most recently undone state. Returns false if there
// is nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	next := h.redo[0]
	h.redo = h.redo[1:]
	h.undo = append(h.undo, h.current)
	h.current = next
	return true
}

// CanUndo reports whether an undo step is available
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo step is available
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}
