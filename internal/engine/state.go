package engine

import (
	"strings"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/constraint"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/history"
)

// State is the editable state of one text surface: a buffer, its cursors
// and selections, the constraints of the context it serves and its edit
// history.
//
// The cursor and selection lists are index-aligned, never empty, sorted
// by cursor position and free of duplicate positions after every call
// that changes them.
//
// State is not safe for concurrent use.
type State[B buffer.Buffer] struct {
	buf         B
	cursors     *cursor.Set
	active      int
	constraints constraint.Constraints
	history     *history.History
	settings    settings
	revision    uint64

	// added holds selections created by AddCursorAtNextOccurrence, most
	// recent last.
	added []cursor.Selection
}

// New creates a state over buf with one cursor at (0:0).
func New[B buffer.Buffer](buf B, c constraint.Constraints, opts ...Option) *State[B] {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &State[B]{
		buf:         buf,
		cursors:     cursor.NewSet(cursor.New(0, 0)),
		constraints: c,
		history:     history.New(cfg.historyCapacity),
		settings:    cfg,
	}
}

// Buffer returns the underlying buffer. Mutating it directly bypasses
// history; use SetContent or Clear instead.
func (s *State[B]) Buffer() B {
	return s.buf
}

// Text returns the buffer content.
func (s *State[B]) Text() string {
	return s.buf.Content()
}

// SelectedText returns the text of every non-empty selection in cursor
// order, joined by newlines.
func (s *State[B]) SelectedText() string {
	s.clamp()
	var parts []string
	for _, sel := range s.cursors.Selections() {
		if sel.IsEmpty() {
			continue
		}
		parts = append(parts, s.buf.Slice(sel.Range(s.buf)))
	}
	return strings.Join(parts, "\n")
}

// HasSelection returns true if any selection is non-empty.
func (s *State[B]) HasSelection() bool {
	s.clamp()
	return s.cursors.HasSelection()
}

// Cursor returns the active cursor.
func (s *State[B]) Cursor() cursor.Cursor {
	s.clamp()
	return s.cursors.Cursor(s.active)
}

// Selection returns the active cursor's selection.
func (s *State[B]) Selection() cursor.Selection {
	s.clamp()
	return s.cursors.Selection(s.active)
}

// Cursors returns a copy of all cursors in position order.
func (s *State[B]) Cursors() []cursor.Cursor {
	s.clamp()
	return s.cursors.Cursors()
}

// Selections returns a copy of all selections, aligned with Cursors.
func (s *State[B]) Selections() []cursor.Selection {
	s.clamp()
	return s.cursors.Selections()
}

// ActiveIndex returns the index of the active cursor.
func (s *State[B]) ActiveIndex() int {
	return s.active
}

// CursorCount returns the number of cursors.
func (s *State[B]) CursorCount() int {
	return s.cursors.Len()
}

// Constraints returns the constraints the state enforces.
func (s *State[B]) Constraints() constraint.Constraints {
	return s.constraints
}

// CanUndo returns true if undo is enabled and there is an edit to undo.
func (s *State[B]) CanUndo() bool {
	return s.constraints.EnableUndo && s.history.CanUndo()
}

// CanRedo returns true if undo is enabled and there is an edit to redo.
func (s *State[B]) CanRedo() bool {
	return s.constraints.EnableUndo && s.history.CanRedo()
}

// UndoCount returns the number of undoable edits.
func (s *State[B]) UndoCount() int {
	return s.history.UndoCount()
}

// RedoCount returns the number of redoable edits.
func (s *State[B]) RedoCount() int {
	return s.history.RedoCount()
}

// History returns display summaries of the undo stack, oldest first.
func (s *State[B]) History() []history.Info {
	return s.history.UndoInfo()
}

// Revision returns a counter that increases with every text change,
// including undo and redo.
func (s *State[B]) Revision() uint64 {
	return s.revision
}

// SetContent replaces the whole text, places a single cursor at the end
// and clears history.
func (s *State[B]) SetContent(text string) {
	s.buf.SetContent(text)
	s.cursors = cursor.NewSet(cursor.At(cursor.DocumentEnd(s.buf)))
	s.active = 0
	s.added = nil
	s.history.Clear()
	s.revision++
}

// Select replaces every cursor with a single one whose selection runs
// from anchor to head, both clamped to the buffer. Without selection
// support the cursor is placed at head. History is untouched.
func (s *State[B]) Select(anchor, head cursor.Position) {
	head = cursor.At(head).Clamp(s.buf).Position
	anchor = cursor.At(anchor).Clamp(s.buf).Position
	if !s.constraints.AllowSelection {
		anchor = head
	}
	s.cursors = cursor.NewSetFrom([]cursor.Cursor{cursor.At(head)}, []cursor.Selection{cursor.NewSelection(anchor, head)})
	s.active = 0
	s.added = nil
}

// GoTo collapses to a single cursor at pos, clamped to the buffer.
func (s *State[B]) GoTo(pos cursor.Position) {
	s.Select(pos, pos)
}

// Clear removes all text as one undoable edit and leaves a single cursor
// at (0:0).
func (s *State[B]) Clear() {
	if s.buf.LenBytes() == 0 {
		return
	}
	s.clamp()
	before, beforeSel := s.cursors.Cursors(), s.cursors.Selections()
	deleted := s.buf.Content()
	s.buf.Clear()
	s.cursors = cursor.NewSet(cursor.New(0, 0))
	s.active = 0
	s.added = nil
	s.record(history.NewOperation(0, deleted, "").
		WithCursors(before, s.cursors.Cursors()).
		WithSelections(beforeSel, s.cursors.Selections()))
	s.revision++
}

// clamp pulls every cursor and selection back inside the buffer.
func (s *State[B]) clamp() {
	for i := 0; i < s.cursors.Len(); i++ {
		s.cursors.Set(i, s.cursors.Cursor(i).Clamp(s.buf), s.cursors.Selection(i).Clamp(s.buf))
	}
	s.active = max(0, min(s.active, s.cursors.Len()-1))
}

// normalize sorts and dedups the cursor set, keeping the active index on
// the cursor it pointed at.
func (s *State[B]) normalize() {
	remap := s.cursors.Normalize()
	s.active = remap[max(0, min(s.active, len(remap)-1))]
}

// merge normalizes and then fuses overlapping selections.
func (s *State[B]) merge() {
	s.normalize()
	remap := s.cursors.MergeOverlapping()
	s.active = remap[s.active]
}

// record pushes op onto history unless undo is disabled.
func (s *State[B]) record(op history.Operation) {
	if !s.constraints.EnableUndo || op.IsNoop() {
		return
	}
	s.history.Push(op)
}
