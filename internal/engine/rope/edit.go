package rope

// Insert inserts text at a byte offset.
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	offset = r.Floor(offset)
	return r.splice(offset, offset, text)
}

// Delete removes the text in the byte range [start, end).
func (r Rope) Delete(start, end int) Rope {
	start, end = r.Floor(start), r.Floor(end)
	if start >= end {
		return r
	}
	return r.splice(start, end, "")
}

// Replace replaces the text in [start, end) with text. A reversed range
// inserts at start.
func (r Rope) Replace(start, end int, text string) Rope {
	start, end = r.Floor(start), r.Floor(end)
	end = max(start, end)
	if start == end && text == "" {
		return r
	}
	return r.splice(start, end, text)
}

// splice rebuilds only the paths from the root to the chunks covering
// [start, end). Text lands inside the chunk at start, so typing grows an
// existing chunk instead of adding one.
func (r Rope) splice(start, end int, text string) Rope {
	if r.IsEmpty() {
		return FromString(text)
	}
	return Rope{root: rootOf(r.root.splice(start, end, text))}
}

// splice replaces [start, end) of the subtree with text. It returns nodes
// of n's height: none when the subtree emptied, more than one when it
// overflowed.
func (n *Node) splice(start, end int, text string) []*Node {
	if n.IsLeaf() {
		return n.spliceLeaf(start, end, text)
	}
	first, last, pos := locate(len(n.children), func(i int) int { return n.children[i].Len() }, start, end)

	var mid []*Node
	for i := first; i <= last; i++ {
		child := n.children[i]
		s, e := max(start-pos, 0), min(end-pos, child.Len())
		pos += child.Len()
		t := ""
		if i == first {
			t = text
		}
		if s == 0 && e == child.Len() && t == "" {
			continue
		}
		mid = append(mid, child.splice(s, e, t)...)
	}

	children := make([]*Node, 0, len(n.children)+len(mid))
	children = append(children, n.children[:first]...)
	children = append(children, mid...)
	children = append(children, n.children[last+1:]...)
	return groupNodes(mergeUnderfull(children))
}

func (n *Node) spliceLeaf(start, end int, text string) []*Node {
	chunks := n.chunks
	if len(chunks) == 0 {
		return leavesOf(splitIntoChunks(text))
	}
	first, last, pos := locate(len(chunks), func(i int) int { return chunks[i].Len() }, start, end)
	lastPos := pos
	for i := first; i < last; i++ {
		lastPos += chunks[i].Len()
	}

	s := chunks[first].data[:start-pos] + text + chunks[last].data[end-lastPos:]
	lo, hi := first, last+1
	if s != "" && len(s) < MinChunkSize {
		switch {
		case hi < len(chunks):
			s += chunks[hi].data
			hi++
		case lo > 0:
			lo--
			s = chunks[lo].data + s
		}
	}

	out := make([]Chunk, 0, len(chunks)+len(s)/TargetChunkSize+1)
	out = append(out, chunks[:lo]...)
	out = append(out, splitIntoChunks(s)...)
	out = append(out, chunks[hi:]...)
	return leavesOf(out)
}

// locate finds the first and last of n consecutive spans that an edit of
// [start, end) touches, and the offset at which the first begins. An
// insertion belongs to the span starting at its offset, or to the last
// span at the very end.
func locate(n int, size func(int) int, start, end int) (first, last, firstPos int) {
	pos := 0
	for first = 0; first < n-1; first++ {
		if start < pos+size(first) {
			break
		}
		pos += size(first)
	}
	firstPos = pos

	pos += size(first)
	for last = first; last+1 < n && pos < end; last++ {
		pos += size(last + 1)
	}
	return first, last, firstPos
}

// partition cuts n items into the fewest runs of at most limit items, sized
// as evenly as possible.
func partition(n, limit int) [][2]int {
	if n == 0 {
		return nil
	}
	k := (n + limit - 1) / limit
	runs := make([][2]int, k)
	for i := range runs {
		runs[i] = [2]int{i * n / k, (i + 1) * n / k}
	}
	return runs
}

func leavesOf(chunks []Chunk) []*Node {
	runs := partition(len(chunks), MaxChunksPerLeaf)
	out := make([]*Node, len(runs))
	for i, run := range runs {
		out[i] = newLeafNode(chunks[run[0]:run[1]:run[1]])
	}
	return out
}

func groupNodes(children []*Node) []*Node {
	runs := partition(len(children), MaxChildren)
	out := make([]*Node, len(runs))
	for i, run := range runs {
		out[i] = newInternalNode(children[run[0]:run[1]:run[1]])
	}
	return out
}

// mergeUnderfull joins each node that is less than half full with its left
// neighbour when both fit in one node. After it runs, every underfull node
// sits next to a sibling more than half full, which bounds the height.
func mergeUnderfull(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Len() == 0 {
			continue
		}
		if k := len(out) - 1; k >= 0 && canMerge(out[k], n) {
			out[k] = join(out[k], n)
			continue
		}
		out = append(out, n)
	}
	return out
}

func canMerge(a, b *Node) bool {
	limit := a.capacity()
	if a.fanout()+b.fanout() > limit {
		return false
	}
	return a.fanout() < limit/2 || b.fanout() < limit/2
}

// join combines two siblings of equal height. Small chunks meeting at the
// seam are fused.
func join(a, b *Node) *Node {
	if !a.IsLeaf() {
		children := make([]*Node, 0, len(a.children)+len(b.children))
		children = append(children, a.children...)
		children = append(children, b.children...)
		return newInternalNode(mergeUnderfull(children))
	}

	chunks := make([]Chunk, 0, len(a.chunks)+len(b.chunks))
	chunks = append(chunks, a.chunks...)
	if k := len(chunks) - 1; k >= 0 && len(b.chunks) > 0 {
		l, r := chunks[k], b.chunks[0]
		if (l.Len() < MinChunkSize || r.Len() < MinChunkSize) && l.Len()+r.Len() <= MaxChunkSize {
			chunks[k] = NewChunk(l.data + r.data)
			return newLeafNode(append(chunks, b.chunks[1:]...))
		}
	}
	return newLeafNode(append(chunks, b.chunks...))
}

// rootOf stacks the nodes a root splice produced under new roots until one
// remains, then drops single-child levels.
func rootOf(nodes []*Node) *Node {
	nodes = mergeUnderfull(nodes)
	if len(nodes) == 0 {
		return newLeafNode(nil)
	}
	for len(nodes) > 1 {
		nodes = groupNodes(nodes)
	}
	root := nodes[0]
	for !root.IsLeaf() && len(root.children) == 1 {
		root = root.children[0]
	}
	return root
}
