package cursor

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position // Where selection started
	Head   Position // Current cursor position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// Collapsed creates an empty selection at pos.
func Collapsed(pos Position) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	if s.Head.Before(s.Anchor) {
		return s.Head
	}
	return s.Anchor
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	if s.Head.Before(s.Anchor) {
		return s.Anchor
	}
	return s.Head
}

// IsReversed returns true if the head is before the anchor.
func (s Selection) IsReversed() bool {
	return s.Head.Before(s.Anchor)
}

// Contains reports whether pos lies in [Start, End).
// An empty selection contains nothing.
func (s Selection) Contains(pos Position) bool {
	return !pos.Before(s.Start()) && pos.Before(s.End())
}

// Extend returns a selection with the same anchor and a new head.
func (s Selection) Extend(head Position) Selection {
	return Selection{Anchor: s.Anchor, Head: head}
}

// Collapse collapses the selection to its head.
func (s Selection) Collapse() Selection {
	return Collapsed(s.Head)
}

// CollapseToStart collapses the selection to its start position.
func (s Selection) CollapseToStart() Selection {
	return Collapsed(s.Start())
}

// CollapseToEnd collapses the selection to its end position.
func (s Selection) CollapseToEnd() Selection {
	return Collapsed(s.End())
}

// Flip returns a selection with anchor and head swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Head, Head: s.Anchor}
}

// Overlaps returns true if the selections share at least one position.
func (s Selection) Overlaps(other Selection) bool {
	return s.Start().Before(other.End()) && other.Start().Before(s.End())
}

// Merge returns a selection covering both selections. The result is
// reversed only when both inputs are.
func (s Selection) Merge(other Selection) Selection {
	start, end := s.Start(), s.End()
	if other.Start().Before(start) {
		start = other.Start()
	}
	if other.End().After(end) {
		end = other.End()
	}
	if s.IsReversed() && other.IsReversed() {
		return Selection{Anchor: end, Head: start}
	}
	return Selection{Anchor: start, Head: end}
}

// Range returns the selection's byte range in r.
func (s Selection) Range(r buffer.Reader) buffer.Range {
	return buffer.Range{
		Start: r.PositionToOffset(s.Start()),
		End:   r.PositionToOffset(s.End()),
	}
}

// Clamp returns the selection with both ends clamped to r.
func (s Selection) Clamp(r buffer.Reader) Selection {
	return Selection{Anchor: ClampPosition(r, s.Anchor), Head: ClampPosition(r, s.Head)}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Selection%v", s.Head)
	}
	dir := "→"
	if s.IsReversed() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%v%s%v)", s.Anchor, dir, s.Head)
}
