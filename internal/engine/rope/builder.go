package rope

import "strings"

// Builder constructs a rope incrementally. Writes are buffered and cut
// into chunks on rune boundaries; Build assembles the tree once.
type Builder struct {
	chunks  []Chunk
	pending strings.Builder
}

// WriteString appends s.
func (b *Builder) WriteString(s string) (int, error) {
	b.pending.WriteString(s)
	if b.pending.Len() >= MaxChunkSize*4 {
		b.flush(false)
	}
	return len(s), nil
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	return b.WriteString(string(p))
}

// flush moves complete chunks out of the pending buffer. Unless final is
// set, a tail that may end inside a UTF-8 sequence stays pending.
func (b *Builder) flush(final bool) {
	s := b.pending.String()
	b.pending.Reset()
	if !final {
		cut := floorBoundary(s, len(s)-MaxChunkSize)
		b.pending.WriteString(s[cut:])
		s = s[:cut]
	}
	b.chunks = append(b.chunks, splitIntoChunks(s)...)
}

// Build returns the rope holding everything written so far.
func (b *Builder) Build() Rope {
	b.flush(true)
	return buildFromChunks(b.chunks)
}
