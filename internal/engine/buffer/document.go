package buffer

import (
	"unicode"

	"github.com/dshills/quill/internal/engine/rope"
)

// DocumentBuffer is a Buffer backed by a rope.
//
// Line, character and offset lookups descend the rope's summary tree, so
// they cost O(log n) regardless of document size. Edits produce a new
// rope that shares unchanged subtrees with the old one.
type DocumentBuffer struct {
	rope       rope.Rope
	lineEnding LineEnding
}

// NewDocumentBuffer creates a document buffer holding text.
// Line endings are normalized to LF; the detected style is kept for Export.
func NewDocumentBuffer(text string, opts ...Option) *DocumentBuffer {
	o := newOptions(text, opts)
	return &DocumentBuffer{
		rope:       rope.FromString(NormalizeLineEndings(text)),
		lineEnding: o.lineEnding,
	}
}

// Rope returns the current rope. Ropes are immutable, so the result is a
// stable snapshot.
func (b *DocumentBuffer) Rope() rope.Rope {
	return b.rope
}

// LineEnding returns the line ending style used by Export.
func (b *DocumentBuffer) LineEnding() LineEnding {
	return b.lineEnding
}

// Export returns the content with the buffer's line ending style applied.
func (b *DocumentBuffer) Export() string {
	return b.lineEnding.Apply(b.rope.String())
}

// LineCount returns the number of lines.
func (b *DocumentBuffer) LineCount() int {
	return b.rope.LineCount()
}

// lineBounds returns the byte bounds of line, excluding its newline.
func (b *DocumentBuffer) lineBounds(line int) (int, int) {
	line = clampLine(line, b.rope.LineCount())
	return b.rope.LineStart(line), b.rope.LineEnd(line)
}

// LineLength returns the number of characters in line.
func (b *DocumentBuffer) LineLength(line int) int {
	start, end := b.lineBounds(line)
	return b.rope.CharIndex(end) - b.rope.CharIndex(start)
}

// LenChars returns the number of characters in the buffer.
func (b *DocumentBuffer) LenChars() int {
	return b.rope.LenChars()
}

// LenBytes returns the number of bytes in the buffer.
func (b *DocumentBuffer) LenBytes() int {
	return b.rope.Len()
}

// CharAt returns the character at (line, col).
func (b *DocumentBuffer) CharAt(line, col int) (rune, bool) {
	if line < 0 || line >= b.rope.LineCount() || col < 0 {
		return 0, false
	}
	start, end := b.lineBounds(line)
	first := b.rope.CharIndex(start)
	if first+col >= b.rope.CharIndex(end) {
		return 0, false
	}
	return b.rope.RuneAt(b.rope.OffsetOfChar(first + col))
}

// Line returns line without its newline. When the line lies inside one
// rope chunk the result shares the chunk's storage.
func (b *DocumentBuffer) Line(line int) string {
	text, _ := b.rope.LineText(clampLine(line, b.rope.LineCount()))
	return text
}

// PositionToOffset converts pos to a byte offset, clamping both fields.
func (b *DocumentBuffer) PositionToOffset(pos Position) ByteOffset {
	if pos.Line < 0 {
		return 0
	}
	start, end := b.lineBounds(pos.Line)
	if pos.Column <= 0 {
		return start
	}
	first, last := b.rope.CharIndex(start), b.rope.CharIndex(end)
	return b.rope.OffsetOfChar(min(first+pos.Column, last))
}

// OffsetToPosition converts a byte offset to a position.
func (b *DocumentBuffer) OffsetToPosition(offset ByteOffset) Position {
	offset = b.rope.Floor(offset)
	line := b.rope.LineOf(offset)
	return Position{
		Line:   line,
		Column: b.rope.CharIndex(offset) - b.rope.CharIndex(b.rope.LineStart(line)),
	}
}

// Slice returns the text in r.
func (b *DocumentBuffer) Slice(r Range) string {
	return b.rope.Slice(b.rope.Floor(r.Start), b.rope.Floor(r.End))
}

// Content returns the whole text.
func (b *DocumentBuffer) Content() string {
	return b.rope.String()
}

// FirstNonWhitespaceColumn returns the first non-whitespace column of line.
func (b *DocumentBuffer) FirstNonWhitespaceColumn(line int) int {
	start, end := b.lineBounds(line)
	col := 0
	it := b.rope.RunesFrom(start)
	for it.Next() && it.Offset() < end {
		if !unicode.IsSpace(it.Rune()) {
			break
		}
		col++
	}
	return col
}

// LastNonWhitespaceColumn returns the column after the last
// non-whitespace character of line.
func (b *DocumentBuffer) LastNonWhitespaceColumn(line int) int {
	return trimmedLength(b.Line(line))
}

// Insert inserts text at offset.
func (b *DocumentBuffer) Insert(offset ByteOffset, text string) {
	b.rope = b.rope.Insert(offset, text)
}

// InsertChar inserts ch at offset.
func (b *DocumentBuffer) InsertChar(offset ByteOffset, ch rune) {
	b.rope = b.rope.Insert(offset, string(ch))
}

// Remove deletes the text in r.
func (b *DocumentBuffer) Remove(r Range) {
	b.rope = b.rope.Delete(r.Start, r.End)
}

// Replace removes r and inserts text at its start.
func (b *DocumentBuffer) Replace(r Range, text string) {
	b.rope = b.rope.Replace(r.Start, r.End, text)
}

// Clear removes all text.
func (b *DocumentBuffer) Clear() {
	b.rope = rope.New()
}

// SetContent replaces all text. Line endings are normalized to LF.
func (b *DocumentBuffer) SetContent(text string) {
	b.rope = rope.FromString(NormalizeLineEndings(text))
}

var _ Buffer = (*DocumentBuffer)(nil)
