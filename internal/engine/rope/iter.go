package rope

import "unicode/utf8"

// chunkIterFrame is one level of the traversal stack.
type chunkIterFrame struct {
	node *Node
	next int
}

// ChunkIterator walks the chunks of a rope in order.
type ChunkIterator struct {
	stack  []chunkIterFrame
	chunk  Chunk
	offset int
	width  int
}

// Chunks returns an iterator over all chunks in the rope.
func (r Rope) Chunks() *ChunkIterator {
	it := &ChunkIterator{stack: make([]chunkIterFrame, 0, 8)}
	if r.root != nil {
		it.stack = append(it.stack, chunkIterFrame{node: r.root})
	}
	return it
}

// Next advances to the next chunk, returning false when iteration is done.
func (it *ChunkIterator) Next() bool {
	it.offset += it.width
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n := top.node
		if n.IsLeaf() {
			if top.next < len(n.chunks) {
				it.chunk = n.chunks[top.next]
				it.width = it.chunk.Len()
				top.next++
				return true
			}
		} else if top.next < len(n.children) {
			child := n.children[top.next]
			top.next++
			it.stack = append(it.stack, chunkIterFrame{node: child})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.width = 0
	return false
}

// Chunk returns the current chunk.
func (it *ChunkIterator) Chunk() Chunk {
	return it.chunk
}

// Offset returns the byte offset of the start of the current chunk.
func (it *ChunkIterator) Offset() int {
	return it.offset
}

// RuneIterator walks runes forward from a byte offset.
type RuneIterator struct {
	chunks *ChunkIterator
	data   string
	pos    int
	offset int
	r      rune
	size   int
}

// RunesFrom returns an iterator over the runes at and after offset.
func (r Rope) RunesFrom(offset int) *RuneIterator {
	offset = r.Floor(offset)
	it := &RuneIterator{chunks: r.Chunks()}
	for it.chunks.Next() {
		c := it.chunks.Chunk()
		if it.chunks.Offset()+c.Len() > offset {
			it.data = c.data
			it.pos = offset - it.chunks.Offset()
			break
		}
	}
	return it
}

// Next advances to the next rune.
func (it *RuneIterator) Next() bool {
	for it.pos >= len(it.data) {
		if !it.chunks.Next() {
			return false
		}
		it.data = it.chunks.Chunk().data
		it.pos = 0
	}
	it.r, it.size = utf8.DecodeRuneInString(it.data[it.pos:])
	it.offset = it.chunks.Offset() + it.pos
	it.pos += it.size
	return true
}

// Rune returns the current rune.
func (it *RuneIterator) Rune() rune {
	return it.r
}

// Offset returns the byte offset of the current rune.
func (it *RuneIterator) Offset() int {
	return it.offset
}
