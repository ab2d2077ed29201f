package buffer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// StringBuffer is a Buffer backed by one contiguous string.
//
// Edits rebuild the string, so each costs O(n). Line starts are cached
// and recomputed lazily after an edit.
type StringBuffer struct {
	text       string
	lineStarts []int
}

// NewStringBuffer creates a buffer holding text with line endings
// normalized to LF.
func NewStringBuffer(text string) *StringBuffer {
	return &StringBuffer{text: NormalizeLineEndings(text)}
}

func (b *StringBuffer) starts() []int {
	if b.lineStarts == nil {
		starts := make([]int, 1, strings.Count(b.text, "\n")+1)
		for i := 0; i < len(b.text); i++ {
			if b.text[i] == '\n' {
				starts = append(starts, i+1)
			}
		}
		b.lineStarts = starts
	}
	return b.lineStarts
}

func (b *StringBuffer) invalidate() {
	b.lineStarts = nil
}

// lineBounds returns the byte bounds of line, excluding its newline.
func (b *StringBuffer) lineBounds(line int) (int, int) {
	starts := b.starts()
	line = clampLine(line, len(starts))
	end := len(b.text)
	if line+1 < len(starts) {
		end = starts[line+1] - 1
	}
	return starts[line], end
}

// LineCount returns the number of lines.
func (b *StringBuffer) LineCount() int {
	return len(b.starts())
}

// LineLength returns the number of characters in line.
func (b *StringBuffer) LineLength(line int) int {
	return utf8.RuneCountInString(b.Line(line))
}

// LenChars returns the number of characters in the buffer.
func (b *StringBuffer) LenChars() int {
	return utf8.RuneCountInString(b.text)
}

// LenBytes returns the number of bytes in the buffer.
func (b *StringBuffer) LenBytes() int {
	return len(b.text)
}

// CharAt returns the character at (line, col).
func (b *StringBuffer) CharAt(line, col int) (rune, bool) {
	if line < 0 || line >= b.LineCount() || col < 0 {
		return 0, false
	}
	n := 0
	for _, r := range b.Line(line) {
		if n == col {
			return r, true
		}
		n++
	}
	return 0, false
}

// Line returns line without its newline. The result shares the buffer's
// storage.
func (b *StringBuffer) Line(line int) string {
	start, end := b.lineBounds(line)
	return b.text[start:end]
}

// PositionToOffset converts pos to a byte offset, clamping both fields.
func (b *StringBuffer) PositionToOffset(pos Position) ByteOffset {
	start, end := b.lineBounds(pos.Line)
	if pos.Line < 0 {
		return 0
	}
	return start + columnToByte(b.text[start:end], pos.Column)
}

// OffsetToPosition converts a byte offset to a position.
func (b *StringBuffer) OffsetToPosition(offset ByteOffset) Position {
	offset = runeFloor(b.text, offset)
	starts := b.starts()
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(b.text[starts[line]:offset]),
	}
}

// Slice returns the text in r.
func (b *StringBuffer) Slice(r Range) string {
	start, end := runeFloor(b.text, r.Start), runeFloor(b.text, r.End)
	if start >= end {
		return ""
	}
	return b.text[start:end]
}

// Content returns the whole text.
func (b *StringBuffer) Content() string {
	return b.text
}

// FirstNonWhitespaceColumn returns the first non-whitespace column of line.
func (b *StringBuffer) FirstNonWhitespaceColumn(line int) int {
	return leadingSpace(b.Line(line))
}

// LastNonWhitespaceColumn returns the column after the last
// non-whitespace character of line.
func (b *StringBuffer) LastNonWhitespaceColumn(line int) int {
	return trimmedLength(b.Line(line))
}

// Insert inserts text at offset.
func (b *StringBuffer) Insert(offset ByteOffset, text string) {
	if text == "" {
		return
	}
	offset = runeFloor(b.text, offset)
	b.text = b.text[:offset] + text + b.text[offset:]
	b.invalidate()
}

// InsertChar inserts ch at offset.
func (b *StringBuffer) InsertChar(offset ByteOffset, ch rune) {
	b.Insert(offset, string(ch))
}

// Remove deletes the text in r.
func (b *StringBuffer) Remove(r Range) {
	start, end := runeFloor(b.text, r.Start), runeFloor(b.text, r.End)
	if start >= end {
		return
	}
	b.text = b.text[:start] + b.text[end:]
	b.invalidate()
}

// Replace removes r and inserts text at its start.
func (b *StringBuffer) Replace(r Range, text string) {
	start := runeFloor(b.text, r.Start)
	b.Remove(r)
	b.Insert(start, text)
}

// Clear removes all text.
func (b *StringBuffer) Clear() {
	b.text = ""
	b.invalidate()
}

// SetContent replaces all text. Line endings are normalized to LF.
func (b *StringBuffer) SetContent(text string) {
	b.text = NormalizeLineEndings(text)
	b.invalidate()
}

var _ Buffer = (*StringBuffer)(nil)
