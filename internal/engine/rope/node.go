package rope

import "strings"

// Tree shape constants.
const (
	// MaxChildren is the maximum children per internal node.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node of the rope tree.
// Leaves (height 0) hold chunks; internal nodes hold children.
type Node struct {
	height   uint8
	summary  TextSummary
	children []*Node
	chunks   []Chunk
}

func newLeafNode(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	for _, c := range chunks {
		n.summary = n.summary.Add(c.Summary())
	}
	return n
}

func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode(nil)
	}
	n := &Node{
		height:   children[0].height + 1,
		children: children,
	}
	for _, child := range children {
		n.summary = n.summary.Add(child.summary)
	}
	return n
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of text in this subtree.
func (n *Node) Len() int {
	return n.summary.Bytes
}

// appendTo writes the subtree's text to sb.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.data)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange writes the text in [start, end) of this subtree to sb.
func (n *Node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}
	offset := 0
	if n.IsLeaf() {
		for _, c := range n.chunks {
			cEnd := offset + c.Len()
			if cEnd > start && offset < end {
				sb.WriteString(c.data[max(start-offset, 0):min(end, cEnd)-offset])
			}
			if cEnd >= end {
				return
			}
			offset = cEnd
		}
		return
	}
	for _, child := range n.children {
		cEnd := offset + child.Len()
		if cEnd > start && offset < end {
			child.appendRange(sb, max(start-offset, 0), min(end, cEnd)-offset)
		}
		if cEnd >= end {
			return
		}
		offset = cEnd
	}
}

// fanout returns the number of chunks of a leaf or children of an
// internal node.
func (n *Node) fanout() int {
	if n.IsLeaf() {
		return len(n.chunks)
	}
	return len(n.children)
}

// capacity returns the fanout limit for n's level.
func (n *Node) capacity() int {
	if n.IsLeaf() {
		return MaxChunksPerLeaf
	}
	return MaxChildren
}

// seek descends to the chunk at which a position query resolves. past
// reports whether the target lies beyond a prefix of the text described by
// its summary. seek returns the chunk together with the summary of all
// text preceding it.
func (n *Node) seek(past func(TextSummary) bool) (Chunk, TextSummary) {
	var before TextSummary
	node := n
	for !node.IsLeaf() {
		idx := len(node.children) - 1
		for i, child := range node.children[:idx] {
			next := before.Add(child.summary)
			if !past(next) {
				idx = i
				break
			}
			before = next
		}
		node = node.children[idx]
	}

	if len(node.chunks) == 0 {
		return Chunk{}, before
	}
	idx := len(node.chunks) - 1
	for i, c := range node.chunks[:idx] {
		next := before.Add(c.Summary())
		if !past(next) {
			idx = i
			break
		}
		before = next
	}
	return node.chunks[idx], before
}
