package engine

import (
	"strings"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// addCursorVertical adds, for every cursor, a cursor one line above
// (dir < 0) or below (dir > 0) at the same column, clamped to the line.
func (s *State[B]) addCursorVertical(dir int) {
	n := s.cursors.Len()
	for i := 0; i < n; i++ {
		c := s.cursors.Cursor(i)
		var next cursor.Cursor
		if dir < 0 {
			next = cursor.Up(s.buf, c, 1)
		} else {
			next = cursor.Down(s.buf, c, 1)
		}
		if next.Line == c.Line {
			continue
		}
		s.cursors.Add(next, cursor.Collapsed(next.Position))
	}
	s.normalize()
}

// primaryNeedle returns the range searched for by the occurrence
// commands: the active selection, or the word under the active cursor.
// The second result is false when there is nothing to search for.
func (s *State[B]) primaryNeedle() (cursor.Selection, bool) {
	sel := s.cursors.Selection(s.active)
	if sel.IsEmpty() {
		start, end := cursor.WordAt(s.buf, s.cursors.Cursor(s.active).Position)
		sel = cursor.NewSelection(start, end)
	}
	return sel, !sel.IsEmpty()
}

// addNextOccurrence extends the cursor set by the next match of the
// active selection. With an empty active selection it selects the word
// under the cursor instead.
func (s *State[B]) addNextOccurrence() {
	if s.cursors.Selection(s.active).IsEmpty() {
		sel, ok := s.primaryNeedle()
		if !ok {
			return
		}
		s.cursors.Set(s.active, cursor.At(sel.Head), sel)
		s.normalize()
		return
	}

	primary := s.cursors.Selection(s.active)
	r := primary.Range(s.buf)
	needle := s.buf.Slice(r)
	from := r.End
	if k := len(s.added); k > 0 {
		from = s.buf.PositionToOffset(s.added[k-1].End())
	}
	at, ok := s.findOccurrence(s.buf.Content(), needle, from)
	if !ok {
		return
	}
	sel := s.selectionOf(at, at+len(needle))
	s.cursors.Add(cursor.At(sel.Head), sel)
	s.added = append(s.added, sel)
	s.normalize()
}

// findOccurrence returns the first match of needle at or after from,
// wrapping once at the end of text. Matches already selected are skipped.
func (s *State[B]) findOccurrence(text, needle string, from int) (int, bool) {
	if needle == "" {
		return 0, false
	}
	from = min(from, len(text))
	pos, wrapped := from, false
	for {
		i := strings.Index(text[pos:], needle)
		if i < 0 {
			if wrapped {
				return 0, false
			}
			pos, wrapped = 0, true
			continue
		}
		at := pos + i
		if wrapped && at >= from {
			return 0, false
		}
		if s.cursors.IndexOfSelection(s.selectionOf(at, at+len(needle))) < 0 {
			return at, true
		}
		pos = at + len(needle)
	}
}

func (s *State[B]) selectionOf(start, end buffer.ByteOffset) cursor.Selection {
	return cursor.NewSelection(s.buf.OffsetToPosition(start), s.buf.OffsetToPosition(end))
}

// unselectOccurrence removes the most recently added occurrence that is
// still selected. The active cursor is never removed.
func (s *State[B]) unselectOccurrence() {
	for len(s.added) > 0 {
		sel := s.added[len(s.added)-1]
		s.added = s.added[:len(s.added)-1]
		i := s.cursors.IndexOfSelection(sel)
		if i < 0 || i == s.active {
			continue
		}
		s.cursors.RemoveAt(i)
		if i < s.active {
			s.active--
		}
		return
	}
}

// addAllOccurrences replaces the cursor set with a selection on every
// non-overlapping match of the active selection or word.
func (s *State[B]) addAllOccurrences() {
	primary, ok := s.primaryNeedle()
	if !ok {
		return
	}
	r := primary.Range(s.buf)
	needle := s.buf.Slice(r)
	text := s.buf.Content()

	var cursors []cursor.Cursor
	var selections []cursor.Selection
	active := 0
	for pos := 0; ; {
		i := strings.Index(text[pos:], needle)
		if i < 0 {
			break
		}
		at := pos + i
		if at == r.Start {
			active = len(cursors)
		}
		sel := s.selectionOf(at, at+len(needle))
		cursors = append(cursors, cursor.At(sel.Head))
		selections = append(selections, sel)
		pos = at + len(needle)
	}
	if len(cursors) == 0 {
		return
	}
	s.cursors.Replace(cursors, selections)
	s.active = active
	s.added = nil
	s.normalize()
}

// collapseCursors drops every cursor but the active one.
func (s *State[B]) collapseCursors() {
	c, sel := s.cursors.Cursor(s.active), s.cursors.Selection(s.active)
	s.cursors.Replace([]cursor.Cursor{c}, []cursor.Selection{sel})
	s.active = 0
	s.added = nil
}
