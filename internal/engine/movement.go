package engine

import (
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/message"
)

// move moves every cursor to target. With extend the anchor of each
// selection stays put; otherwise selections collapse onto the cursor.
func (s *State[B]) move(target message.Target, extend bool) {
	for i := 0; i < s.cursors.Len(); i++ {
		c, sel := s.cursors.Cursor(i), s.cursors.Selection(i)

		// Plain Left/Right on a selection lands on its edge instead of
		// stepping past it.
		if !extend && !sel.IsEmpty() {
			switch target {
			case message.Left:
				pos := sel.Start()
				s.cursors.Set(i, cursor.At(pos), cursor.Collapsed(pos))
				continue
			case message.Right:
				pos := sel.End()
				s.cursors.Set(i, cursor.At(pos), cursor.Collapsed(pos))
				continue
			}
		}

		next := s.target(c, target)
		if extend {
			if sel.IsEmpty() {
				sel = cursor.Collapsed(c.Position)
			}
			sel = sel.Extend(next.Position)
		} else {
			sel = cursor.Collapsed(next.Position)
		}
		s.cursors.Set(i, next, sel)
	}
	if extend {
		s.merge()
	} else {
		s.normalize()
	}
}

// target computes where c lands when moved to t.
func (s *State[B]) target(c cursor.Cursor, t message.Target) cursor.Cursor {
	b := s.buf
	switch t {
	case message.Up:
		return cursor.Up(b, c, 1)
	case message.Down:
		return cursor.Down(b, c, 1)
	case message.PageUp:
		return cursor.Up(b, c, s.settings.pageSize)
	case message.PageDown:
		return cursor.Down(b, c, s.settings.pageSize)
	}

	var pos cursor.Position
	switch t {
	case message.Left:
		pos = cursor.Left(b, c.Position)
	case message.Right:
		pos = cursor.Right(b, c.Position)
	case message.LineStart:
		pos = cursor.LineStart(b, c.Position)
	case message.LineEnd:
		pos = cursor.LineEnd(b, c.Position)
	case message.LineStartSmart:
		pos = cursor.SmartLineStart(b, c.Position)
	case message.WordLeft:
		pos = cursor.WordLeft(b, c.Position)
	case message.WordRight:
		pos = cursor.WordRight(b, c.Position)
	case message.DocumentStart:
		pos = cursor.DocumentStart()
	case message.DocumentEnd:
		pos = cursor.DocumentEnd(b)
	default:
		return c
	}
	return cursor.At(pos)
}

// selectAll replaces every cursor with one selection spanning the buffer.
func (s *State[B]) selectAll() {
	end := cursor.DocumentEnd(s.buf)
	s.cursors.Replace(
		[]cursor.Cursor{cursor.At(end)},
		[]cursor.Selection{cursor.NewSelection(cursor.DocumentStart(), end)},
	)
	s.active = 0
}

// selectWord selects the same-class run under every cursor.
func (s *State[B]) selectWord() {
	for i := 0; i < s.cursors.Len(); i++ {
		start, end := cursor.WordAt(s.buf, s.cursors.Cursor(i).Position)
		s.cursors.Set(i, cursor.At(end), cursor.NewSelection(start, end))
	}
	s.merge()
}

// selectLine selects each cursor's whole line including its newline. In
// single-line surfaces it selects everything.
func (s *State[B]) selectLine() {
	if !s.constraints.AllowMultiline {
		s.selectAll()
		return
	}
	last := s.buf.LineCount() - 1
	for i := 0; i < s.cursors.Len(); i++ {
		line := s.cursors.Cursor(i).Line
		start := cursor.Position{Line: line}
		end := cursor.Position{Line: line + 1}
		if line == last {
			end = cursor.LineEnd(s.buf, start)
		}
		s.cursors.Set(i, cursor.At(end), cursor.NewSelection(start, end))
	}
	s.merge()
}
