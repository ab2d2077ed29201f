package history

// DefaultCapacity is the number of undo entries kept when no capacity is
// configured.
const DefaultCapacity = 1000

// History manages bounded undo and redo stacks of operations.
type History struct {
	undoStack []Operation
	redoStack []Operation
	capacity  int
}

// New creates a history holding at most capacity undo entries.
// A non-positive capacity selects DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Push adds an operation to the undo stack and clears the redo stack.
// When the stack exceeds capacity the oldest entry is evicted.
func (h *History) Push(op Operation) {
	h.undoStack = append(h.undoStack, op)
	h.redoStack = h.redoStack[:0]
	h.trim()
}

// PopUndo removes the newest undo entry, pushes its inverse onto the redo
// stack and returns the entry as recorded.
func (h *History) PopUndo() (Operation, bool) {
	if len(h.undoStack) == 0 {
		return Operation{}, false
	}
	op := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, op.Invert())
	return op, true
}

// PopRedo removes the newest redo entry, pushes its inverse onto the undo
// stack and returns the entry as stored. Reverting it redoes the edit.
func (h *History) PopRedo() (Operation, bool) {
	if len(h.redoStack) == 0 {
		return Operation{}, false
	}
	op := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, op.Invert())
	h.trim()
	return op, true
}

// PeekUndo returns the newest undo entry without removing it.
func (h *History) PeekUndo() (Operation, bool) {
	if len(h.undoStack) == 0 {
		return Operation{}, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo entries.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo entries.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Capacity returns the maximum number of undo entries.
func (h *History) Capacity() int {
	return h.capacity
}

// SetCapacity changes the capacity, evicting the oldest entries if needed.
func (h *History) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	h.capacity = capacity
	h.trim()
}

// Clear removes all undo and redo entries.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// UndoInfo returns summaries of the undo entries, oldest first.
func (h *History) UndoInfo() []Info {
	out := make([]Info, len(h.undoStack))
	for i, op := range h.undoStack {
		out[i] = op.Info()
	}
	return out
}

func (h *History) trim() {
	if excess := len(h.undoStack) - h.capacity; excess > 0 {
		clear(h.undoStack[:excess])
		h.undoStack = append(h.undoStack[:0], h.undoStack[excess:]...)
	}
}
