package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reader is the read side of the buffer contract.
type Reader interface {
	// LineCount returns the number of lines; it is at least 1.
	LineCount() int

	// LineLength returns the length of line in characters, excluding the
	// line terminator.
	LineLength(line int) int

	// LenChars returns the total number of characters.
	LenChars() int

	// LenBytes returns the total number of bytes.
	LenBytes() int

	// CharAt returns the character at line and column, or false when the
	// location is out of range.
	CharAt(line, col int) (rune, bool)

	// Line returns the text of line without its terminator. The result
	// may share storage with the buffer.
	Line(line int) string

	// PositionToOffset converts a position to a byte offset.
	PositionToOffset(pos Position) ByteOffset

	// OffsetToPosition converts a byte offset to a position.
	OffsetToPosition(offset ByteOffset) Position

	// Slice returns the text in r.
	Slice(r Range) string

	// Content returns the whole text.
	Content() string

	// FirstNonWhitespaceColumn returns the column of the first
	// non-whitespace character of line, or the line length when the line
	// is blank.
	FirstNonWhitespaceColumn(line int) int

	// LastNonWhitespaceColumn returns the column just past the last
	// non-whitespace character of line.
	LastNonWhitespaceColumn(line int) int
}

// Buffer is the full read/write buffer contract.
type Buffer interface {
	Reader

	// Insert inserts text at offset.
	Insert(offset ByteOffset, text string)

	// InsertChar inserts a single character at offset.
	InsertChar(offset ByteOffset, ch rune)

	// Remove deletes the text in r.
	Remove(r Range)

	// Replace removes r and inserts text at its start. It is not
	// transactional; both backends guarantee the insert cannot fail once
	// the remove has happened.
	Replace(r Range, text string)

	// Clear removes all text.
	Clear()

	// SetContent replaces all text.
	SetContent(text string)
}

// clampLine bounds line to the buffer's valid line indexes.
func clampLine(line, count int) int {
	return max(0, min(line, count-1))
}

// leadingSpace counts the whitespace characters at the start of s.
func leadingSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// trimmedLength returns the character count of s without trailing
// whitespace.
func trimmedLength(s string) int {
	return utf8.RuneCountInString(strings.TrimRightFunc(s, unicode.IsSpace))
}

// columnToByte returns the byte index of column col in s, clamped to len(s).
func columnToByte(s string, col int) int {
	if col <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == col {
			return i
		}
		n++
	}
	return len(s)
}

// runeFloor rounds offset into [0, len(s)] and down to a rune boundary.
func runeFloor(s string, offset int) int {
	offset = max(0, min(offset, len(s)))
	for offset > 0 && offset < len(s) && !utf8.RuneStart(s[offset]) {
		offset--
	}
	return offset
}
