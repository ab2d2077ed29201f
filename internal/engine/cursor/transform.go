package cursor

import (
	"sort"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Edit describes one replacement: the byte range it removed and the text
// it inserted in its place.
type Edit struct {
	Range   buffer.Range
	NewText string
}

// Delta returns the change in document length caused by the edit.
func (e Edit) Delta() int {
	return len(e.NewText) - e.Range.Len()
}

// TransformOffset updates an offset after an edit.
//
// Transformation rules:
//   - If edit is entirely before offset: adjust offset by the edit's delta
//   - If edit starts at or after offset: offset unchanged
//   - If edit spans offset: move offset to end of new text
func TransformOffset(offset ByteOffset, edit Edit) ByteOffset {
	if edit.Range.End <= offset {
		return offset + edit.Delta()
	}
	if edit.Range.Start >= offset {
		return offset
	}
	return edit.Range.Start + len(edit.NewText)
}

// TransformOffsets applies TransformOffset to every offset in place.
func TransformOffsets(offsets []ByteOffset, edit Edit) {
	for i, off := range offsets {
		offsets[i] = TransformOffset(off, edit)
	}
}

// ReverseOrder returns the indexes of edits in the order multi-cursor
// edits are applied: descending start, wider edit first on a tie. Applying
// in this order means an edit never shifts the offsets of edits still to
// come.
func ReverseOrder(edits []Edit) []int {
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := edits[order[i]].Range, edits[order[j]].Range
		if a.Start != b.Start {
			return a.Start > b.Start
		}
		return a.End > b.End
	})
	return order
}

// SortEditsReverse sorts edits into application order.
func SortEditsReverse(edits []Edit) {
	order := ReverseOrder(edits)
	sorted := make([]Edit, len(edits))
	for i, idx := range order {
		sorted[i] = edits[idx]
	}
	copy(edits, sorted)
}

// ClipOverlaps trims edits sorted in descending order so that no edit's
// range extends past the start of the edit before it in the slice.
func ClipOverlaps(edits []Edit) {
	for i := 1; i < len(edits); i++ {
		limit := edits[i-1].Range.Start
		if edits[i].Range.End > limit {
			edits[i].Range.End = max(edits[i].Range.Start, limit)
		}
	}
}
