package cursor

import (
	"unicode/utf8"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Motion helpers compute target positions. Every helper clamps its input
// position to the buffer first, so stale positions are safe to pass.

// Left returns the position one character to the left, wrapping to the
// end of the previous line.
func Left(r buffer.Reader, pos Position) Position {
	pos = ClampPosition(r, pos)
	switch {
	case pos.Column > 0:
		pos.Column--
	case pos.Line > 0:
		pos.Line--
		pos.Column = r.LineLength(pos.Line)
	}
	return pos
}

// Right returns the position one character to the right, wrapping to the
// start of the next line.
func Right(r buffer.Reader, pos Position) Position {
	pos = ClampPosition(r, pos)
	switch {
	case pos.Column < r.LineLength(pos.Line):
		pos.Column++
	case pos.Line+1 < r.LineCount():
		pos.Line++
		pos.Column = 0
	}
	return pos
}

// Up moves c up by n lines, aiming for its desired column. A cursor on
// the first line does not move.
func Up(r buffer.Reader, c Cursor, n int) Cursor {
	c = c.Clamp(r)
	if c.Line == 0 || n <= 0 {
		return c
	}
	return vertical(r, c, max(0, c.Line-n))
}

// Down moves c down by n lines, aiming for its desired column. A cursor
// on the last line does not move.
func Down(r buffer.Reader, c Cursor, n int) Cursor {
	c = c.Clamp(r)
	last := r.LineCount() - 1
	if c.Line >= last || n <= 0 {
		return c
	}
	return vertical(r, c, min(last, c.Line+n))
}

func vertical(r buffer.Reader, c Cursor, line int) Cursor {
	c = c.WithDesired()
	c.Line = line
	c.Column = min(c.DesiredColumn, r.LineLength(line))
	return c
}

// LineStart returns column 0 of the position's line.
func LineStart(r buffer.Reader, pos Position) Position {
	pos = ClampPosition(r, pos)
	return Position{Line: pos.Line}
}

// LineEnd returns the end of the position's line.
func LineEnd(r buffer.Reader, pos Position) Position {
	pos = ClampPosition(r, pos)
	return Position{Line: pos.Line, Column: r.LineLength(pos.Line)}
}

// SmartLineStart toggles between column 0 and the first non-whitespace
// column. From any other column it goes to the first non-whitespace
// column.
func SmartLineStart(r buffer.Reader, pos Position) Position {
	pos = ClampPosition(r, pos)
	first := r.FirstNonWhitespaceColumn(pos.Line)
	if pos.Column == first {
		return Position{Line: pos.Line}
	}
	return Position{Line: pos.Line, Column: first}
}

// DocumentStart returns (0:0).
func DocumentStart() Position {
	return Position{}
}

// DocumentEnd returns the end of the last line.
func DocumentEnd(r buffer.Reader) Position {
	last := r.LineCount() - 1
	return Position{Line: last, Column: r.LineLength(last)}
}

// WordLeft moves to the start of the previous word. It skips whitespace,
// then the run of same-class characters before it. At column 0 it moves
// to the end of the previous line.
func WordLeft(r buffer.Reader, pos Position) Position {
	pos = ClampPosition(r, pos)
	if pos.Column == 0 {
		return Left(r, pos)
	}
	text := r.Line(pos.Line)
	i := byteOfColumn(text, pos.Column)
	col := pos.Column

	prev := func() (buffer.CharClass, int) {
		ch, size := utf8.DecodeLastRuneInString(text[:i])
		return buffer.ClassOf(ch), size
	}
	for i > 0 {
		class, size := prev()
		if class != buffer.ClassWhitespace {
			break
		}
		i -= size
		col--
	}
	if i > 0 {
		run, _ := prev()
		for i > 0 {
			class, size := prev()
			if class != run {
				break
			}
			i -= size
			col--
		}
	}
	return Position{Line: pos.Line, Column: col}
}

// WordRight moves past the run of same-class characters at the cursor
// and any whitespace after it. At the end of a line it moves to the start
// of the next line.
func WordRight(r buffer.Reader, pos Position) Position {
	pos = ClampPosition(r, pos)
	text := r.Line(pos.Line)
	i := byteOfColumn(text, pos.Column)
	if i >= len(text) {
		return Right(r, pos)
	}
	col := pos.Column

	first, _ := utf8.DecodeRuneInString(text[i:])
	run := buffer.ClassOf(first)
	for i < len(text) {
		ch, size := utf8.DecodeRuneInString(text[i:])
		if buffer.ClassOf(ch) != run {
			break
		}
		i += size
		col++
	}
	for i < len(text) {
		ch, size := utf8.DecodeRuneInString(text[i:])
		if buffer.ClassOf(ch) != buffer.ClassWhitespace {
			break
		}
		i += size
		col++
	}
	return Position{Line: pos.Line, Column: col}
}

// WordAt returns the bounds of the same-class run under pos. At the end
// of a non-empty line it uses the last character. On an empty line both
// bounds equal pos.
func WordAt(r buffer.Reader, pos Position) (Position, Position) {
	pos = ClampPosition(r, pos)
	text := r.Line(pos.Line)
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return pos, pos
	}
	runes := []rune(text)
	col := min(pos.Column, n-1)
	class := buffer.ClassOf(runes[col])
	start, end := col, col
	for start > 0 && buffer.ClassOf(runes[start-1]) == class {
		start--
	}
	for end < n && buffer.ClassOf(runes[end]) == class {
		end++
	}
	return Position{Line: pos.Line, Column: start}, Position{Line: pos.Line, Column: end}
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
