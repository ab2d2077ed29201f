package engine

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/constraint"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/history"
)

// caret places cursor index after an edit. Anchor and head are byte
// offsets relative to the start of the edit's new text.
type caret struct {
	index  int
	anchor int
	head   int
}

// plan is one replacement of a multi-cursor edit and the cursors it
// places. Cursors not placed by any plan keep their position, shifted by
// the edits before them.
type plan struct {
	edit   cursor.Edit
	carets []caret
}

// collapsedPlan replaces r with text and leaves cursor i after it.
func collapsedPlan(i int, r buffer.Range, text string) plan {
	return plan{
		edit:   cursor.Edit{Range: r, NewText: text},
		carets: []caret{{index: i, anchor: len(text), head: len(text)}},
	}
}

// applyPlans performs every plan as one history entry.
//
// Edits run in descending offset order, so each edit's own coordinates
// are still valid when it is applied. Overlapping ranges are clipped.
// The recorded operation spans from the lowest edit start to the highest
// edit end. It returns false when the text did not change.
func (s *State[B]) applyPlans(plans []plan) bool {
	if len(plans) == 0 {
		return false
	}
	edits := make([]cursor.Edit, len(plans))
	for i, p := range plans {
		edits[i] = p.edit
	}
	order := cursor.ReverseOrder(edits)
	sorted := make([]cursor.Edit, len(order))
	for i, idx := range order {
		sorted[i] = edits[idx]
	}
	cursor.ClipOverlaps(sorted)

	changed := false
	for _, e := range sorted {
		if !e.Range.IsEmpty() || e.NewText != "" {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}

	span := buffer.Range{Start: sorted[len(sorted)-1].Range.Start, End: sorted[0].Range.End}
	deleted := s.buf.Slice(span)
	cursorsBefore, selectionsBefore := s.cursors.Cursors(), s.cursors.Selections()

	n := s.cursors.Len()
	anchors := make([]int, n)
	heads := make([]int, n)
	live := make([]bool, n)
	owned := make([]bool, n)
	for _, p := range plans {
		for _, c := range p.carets {
			owned[c.index] = true
		}
	}
	for i := 0; i < n; i++ {
		if !owned[i] {
			sel := s.cursors.Selection(i)
			anchors[i] = s.buf.PositionToOffset(sel.Anchor)
			heads[i] = s.buf.PositionToOffset(sel.Head)
			live[i] = true
		}
	}

	delta := 0
	for k, e := range sorted {
		s.buf.Replace(e.Range, e.NewText)
		delta += e.Delta()
		for i := range live {
			if live[i] {
				anchors[i] = cursor.TransformOffset(anchors[i], e)
				heads[i] = cursor.TransformOffset(heads[i], e)
			}
		}
		for _, c := range plans[order[k]].carets {
			anchors[c.index] = e.Range.Start + c.anchor
			heads[c.index] = e.Range.Start + c.head
			live[c.index] = true
		}
	}
	inserted := s.buf.Slice(buffer.Range{Start: span.Start, End: span.End + delta})

	for i := 0; i < n; i++ {
		anchor := s.buf.OffsetToPosition(anchors[i])
		head := s.buf.OffsetToPosition(heads[i])
		s.cursors.Set(i, cursor.At(head), cursor.NewSelection(anchor, head))
	}
	s.normalize()
	if inserted == deleted {
		return false
	}

	s.record(history.NewOperation(span.Start, deleted, inserted).
		WithCursors(cursorsBefore, s.cursors.Cursors()).
		WithSelections(selectionsBefore, s.cursors.Selections()))
	s.revision++
	return true
}

// editRange returns the range an insertion at cursor i replaces: its
// selection, or the empty range at the cursor.
func (s *State[B]) editRange(i int) buffer.Range {
	if sel := s.cursors.Selection(i); !sel.IsEmpty() {
		return sel.Range(s.buf)
	}
	off := s.cursors.Cursor(i).Offset(s.buf)
	return buffer.Range{Start: off, End: off}
}

// selectedChars counts the characters covered by all selections.
func (s *State[B]) selectedChars() int {
	n := 0
	for _, sel := range s.cursors.Selections() {
		if !sel.IsEmpty() {
			n += utf8.RuneCountInString(s.buf.Slice(sel.Range(s.buf)))
		}
	}
	return n
}

// insertEach inserts texts[i] at cursor i, replacing its selection.
// Texts are sanitized against the constraints and truncated so the
// result fits MaxLength, the budget split evenly across cursors.
func (s *State[B]) insertEach(texts []string) {
	budget := s.constraints.Remaining(s.buf.LenChars() - s.selectedChars())
	if budget != math.MaxInt {
		budget /= len(texts)
	}
	empty := true
	for i, t := range texts {
		texts[i] = constraint.Truncate(s.constraints.Sanitize(t), budget)
		if texts[i] != "" {
			empty = false
		}
	}
	if empty {
		return
	}
	plans := make([]plan, len(texts))
	for i, t := range texts {
		plans[i] = collapsedPlan(i, s.editRange(i), t)
	}
	s.applyPlans(plans)
}

// insertChar inserts ch at every cursor. Unlike text insertion it is
// all-or-nothing against MaxLength.
func (s *State[B]) insertChar(ch rune) {
	if !s.constraints.IsCharAllowed(ch) {
		return
	}
	n := s.cursors.Len()
	if s.constraints.WouldExceedMaxLength(s.buf.LenChars()-s.selectedChars(), n) {
		return
	}
	plans := make([]plan, n)
	for i := range plans {
		plans[i] = collapsedPlan(i, s.editRange(i), string(ch))
	}
	s.applyPlans(plans)
}

// insertText inserts text at every cursor. A paste whose line count
// matches the cursor count gives each cursor its own line.
func (s *State[B]) insertText(text string, paste bool) {
	if text == "" {
		return
	}
	text = buffer.NormalizeLineEndings(text)
	n := s.cursors.Len()
	texts := make([]string, n)
	lines := strings.Split(text, "\n")
	for i := range texts {
		if paste && n > 1 && len(lines) == n {
			texts[i] = lines[i]
		} else {
			texts[i] = text
		}
	}
	s.insertEach(texts)
}

// insertNewline breaks the line at every cursor, carrying over the
// leading whitespace before the cursor.
func (s *State[B]) insertNewline() {
	n := s.cursors.Len()
	texts := make([]string, n)
	for i := range texts {
		r := s.editRange(i)
		pos := s.buf.OffsetToPosition(r.Start)
		indent := min(pos.Column, s.buf.FirstNonWhitespaceColumn(pos.Line))
		line := s.buf.Line(pos.Line)
		texts[i] = "\n" + line[:byteOfColumn(line, indent)]
	}
	s.insertEach(texts)
}

// deleteEach removes, per cursor, its selection or the range between
// the cursor and the position step returns.
func (s *State[B]) deleteEach(step func(buffer.Reader, cursor.Position) cursor.Position) {
	plans := make([]plan, s.cursors.Len())
	for i := range plans {
		r := s.editRange(i)
		if r.IsEmpty() {
			c := s.cursors.Cursor(i)
			r = buffer.NewRange(r.Start, s.buf.PositionToOffset(step(s.buf, c.Position)))
		}
		plans[i] = collapsedPlan(i, r, "")
	}
	s.applyPlans(plans)
}

func (s *State[B]) deleteBackward()     { s.deleteEach(cursor.Left) }
func (s *State[B]) deleteForward()      { s.deleteEach(cursor.Right) }
func (s *State[B]) deleteWordBackward() { s.deleteEach(cursor.WordLeft) }
func (s *State[B]) deleteWordForward()  { s.deleteEach(cursor.WordRight) }

// undo reverts the newest history entry and restores the cursors it
// recorded.
func (s *State[B]) undo() {
	op, ok := s.history.PopUndo()
	if !ok {
		return
	}
	op.Revert(s.buf)
	s.restore(op)
}

// redo re-applies the newest undone entry. The redo stack holds
// inverses, so reverting the popped entry performs the original edit.
func (s *State[B]) redo() {
	op, ok := s.history.PopRedo()
	if !ok {
		return
	}
	op.Revert(s.buf)
	s.restore(op)
}

func (s *State[B]) restore(op history.Operation) {
	s.cursors.Replace(op.CursorsBefore, op.SelectionsBefore)
	s.active = min(s.active, s.cursors.Len()-1)
	s.clamp()
	s.normalize()
	s.revision++
}

// byteOfColumn returns the byte index of column col in s.
func byteOfColumn(s string, col int) int {
	n := 0
	for i := range s {
		if n == col {
			return i
		}
		n++
	}
	return len(s)
}
