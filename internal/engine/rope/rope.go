package rope

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Rope is an immutable rope. Operations return new Rope values and never
// modify the receiver, so a Rope can be shared freely.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode(nil)}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return buildFromChunks(splitIntoChunks(s))
}

// FromReader creates a rope from an io.Reader.
func FromReader(r io.Reader) (Rope, error) {
	var b Builder
	if _, err := io.Copy(&b, r); err != nil {
		return Rope{}, err
	}
	return b.Build(), nil
}

// buildFromChunks builds a balanced tree bottom-up.
func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	var nodes []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leaf := make([]Chunk, end-i)
		copy(leaf, chunks[i:end])
		nodes = append(nodes, newLeafNode(leaf))
	}
	for len(nodes) > 1 {
		var parents []*Node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := min(i+MaxChildren, len(nodes))
			children := make([]*Node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}
	return Rope{root: nodes[0]}
}

// Len returns the total byte length.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// LenChars returns the number of runes.
func (r Rope) LenChars() int {
	return r.Summary().Chars
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	return r.Summary().Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{Flags: FlagASCII}
	}
	return r.root.summary
}

// String returns the full text. Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.Len())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the byte range [start, end).
func (r Rope) Slice(start, end int) string {
	start, end = r.clamp(start), r.clamp(end)
	if r.root == nil || start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// clamp bounds offset to [0, Len()].
func (r Rope) clamp(offset int) int {
	return max(0, min(offset, r.Len()))
}

// Floor clamps offset to [0, Len()] and rounds it down to a rune boundary.
func (r Rope) Floor(offset int) int {
	offset = r.clamp(offset)
	if offset == 0 || offset == r.Len() {
		return offset
	}
	chunk, before := r.root.seek(func(s TextSummary) bool { return offset >= s.Bytes })
	return before.Bytes + floorBoundary(chunk.data, offset-before.Bytes)
}

// RuneAt returns the rune starting at the rune boundary at or before offset.
func (r Rope) RuneAt(offset int) (rune, bool) {
	offset = r.Floor(offset)
	if offset >= r.Len() {
		return 0, false
	}
	chunk, before := r.root.seek(func(s TextSummary) bool { return offset >= s.Bytes })
	ch, _ := utf8.DecodeRuneInString(chunk.data[offset-before.Bytes:])
	return ch, true
}

// LineStart returns the byte offset of the first byte of line.
// Lines past the end resolve to Len().
func (r Rope) LineStart(line int) int {
	if line <= 0 || r.root == nil {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}
	chunk, before := r.root.seek(func(s TextSummary) bool { return s.Lines < line })
	return before.Bytes + nthNewline(chunk.data, line-before.Lines) + 1
}

// LineEnd returns the byte offset just before the newline ending line, or
// Len() for the last line.
func (r Rope) LineEnd(line int) int {
	if line < 0 {
		line = 0
	}
	if line >= r.LineCount()-1 {
		return r.Len()
	}
	return r.LineStart(line+1) - 1
}

// LineOf returns the line containing a byte offset.
func (r Rope) LineOf(offset int) int {
	offset = r.clamp(offset)
	if offset == 0 || r.root == nil {
		return 0
	}
	chunk, before := r.root.seek(func(s TextSummary) bool { return offset >= s.Bytes })
	return before.Lines + strings.Count(chunk.data[:offset-before.Bytes], "\n")
}

// CharIndex returns the number of runes before a byte offset.
// The offset is rounded down to a rune boundary first.
func (r Rope) CharIndex(offset int) int {
	offset = r.Floor(offset)
	if offset == 0 {
		return 0
	}
	if offset == r.Len() {
		return r.LenChars()
	}
	chunk, before := r.root.seek(func(s TextSummary) bool { return offset >= s.Bytes })
	rel := offset - before.Bytes
	if chunk.IsASCII() {
		return before.Chars + rel
	}
	return before.Chars + utf8.RuneCountInString(chunk.data[:rel])
}

// OffsetOfChar returns the byte offset of the rune with the given index.
// Indexes past the end resolve to Len().
func (r Rope) OffsetOfChar(index int) int {
	if index <= 0 || r.root == nil {
		return 0
	}
	if index >= r.LenChars() {
		return r.Len()
	}
	chunk, before := r.root.seek(func(s TextSummary) bool { return index >= s.Chars })
	return before.Bytes + charToByte(chunk.data, index-before.Chars, chunk.IsASCII())
}

// LineText returns the text of line without its newline. When the line lies
// inside a single chunk the result shares the chunk's storage and borrowed
// is true; otherwise the line is copied out of the tree.
func (r Rope) LineText(line int) (text string, borrowed bool) {
	start, end := r.LineStart(line), r.LineEnd(line)
	if r.root == nil || start >= end {
		return "", true
	}
	chunk, before := r.root.seek(func(s TextSummary) bool { return start >= s.Bytes })
	if end-before.Bytes <= chunk.Len() {
		return chunk.data[start-before.Bytes : end-before.Bytes], true
	}
	return r.Slice(start, end), false
}

// Height returns the height of the tree.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// ChunkCount returns the total number of chunks.
func (r Rope) ChunkCount() int {
	count := 0
	it := r.Chunks()
	for it.Next() {
		count++
	}
	return count
}

// Equals reports whether two ropes hold the same text.
func (r Rope) Equals(other Rope) bool {
	if r.Len() != other.Len() {
		return false
	}
	return r.String() == other.String()
}
