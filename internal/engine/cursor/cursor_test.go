package cursor

import (
	"testing"

	"github.com/dshills/quill/internal/engine/buffer"
)

func pos(line, col int) Position {
	return buffer.Pos(line, col)
}

// Cursor Tests

func TestNewCursorClampsNegative(t *testing.T) {
	c := New(-1, -5)
	if c.Pos() != pos(0, 0) {
		t.Errorf("New(-1, -5) = %v, want (0:0)", c.Pos())
	}
}

func TestCursorDesiredColumn(t *testing.T) {
	c := New(2, 7)
	if c.HasDesired {
		t.Fatal("new cursor should not have a desired column")
	}
	c = c.WithDesired()
	if !c.HasDesired || c.DesiredColumn != 7 {
		t.Fatalf("WithDesired() = %v, want desired 7", c)
	}
	c.Column = 3
	c = c.WithDesired()
	if c.DesiredColumn != 7 {
		t.Errorf("second WithDesired() overwrote desired column: %d", c.DesiredColumn)
	}
	if c.EffectiveColumn() != 7 {
		t.Errorf("EffectiveColumn() = %d, want 7", c.EffectiveColumn())
	}
	c = c.ClearDesired()
	if c.HasDesired || c.EffectiveColumn() != 3 {
		t.Errorf("ClearDesired() = %v", c)
	}
	if c.MoveTo(pos(1, 1)).HasDesired {
		t.Error("MoveTo should clear the desired column")
	}
}

func TestCursorClamp(t *testing.T) {
	b := buffer.NewStringBuffer("abc\nde")
	tests := []struct {
		in, want Position
	}{
		{pos(0, 2), pos(0, 2)},
		{pos(0, 9), pos(0, 3)},
		{pos(5, 9), pos(1, 2)},
	}
	for _, tt := range tests {
		if got := At(tt.in).Clamp(b).Pos(); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Selection Tests

func TestSelectionBounds(t *testing.T) {
	fwd := NewSelection(pos(0, 2), pos(1, 1))
	if fwd.Start() != pos(0, 2) || fwd.End() != pos(1, 1) || fwd.IsReversed() {
		t.Errorf("forward selection bounds wrong: %v", fwd)
	}
	rev := fwd.Flip()
	if rev.Start() != pos(0, 2) || rev.End() != pos(1, 1) || !rev.IsReversed() {
		t.Errorf("reversed selection bounds wrong: %v", rev)
	}
	if !Collapsed(pos(3, 3)).IsEmpty() || fwd.IsEmpty() {
		t.Error("IsEmpty wrong")
	}
}

func TestSelectionContainsIsHalfOpen(t *testing.T) {
	sel := NewSelection(pos(0, 2), pos(0, 8))
	tests := []struct {
		p    Position
		want bool
	}{
		{pos(0, 1), false},
		{pos(0, 2), true},
		{pos(0, 5), true},
		{pos(0, 8), false},
		{pos(1, 0), false},
	}
	for _, tt := range tests {
		if got := sel.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
		if got := sel.Flip().Contains(tt.p); got != tt.want {
			t.Errorf("reversed Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if Collapsed(pos(0, 2)).Contains(pos(0, 2)) {
		t.Error("empty selection should contain nothing")
	}
}

func TestSelectionCollapse(t *testing.T) {
	sel := NewSelection(pos(0, 8), pos(0, 2))
	if got := sel.Collapse(); got != Collapsed(pos(0, 2)) {
		t.Errorf("Collapse() = %v", got)
	}
	if got := sel.CollapseToStart(); got != Collapsed(pos(0, 2)) {
		t.Errorf("CollapseToStart() = %v", got)
	}
	if got := sel.CollapseToEnd(); got != Collapsed(pos(0, 8)) {
		t.Errorf("CollapseToEnd() = %v", got)
	}
	if got := sel.Extend(pos(1, 0)); got.Anchor != pos(0, 8) || got.Head != pos(1, 0) {
		t.Errorf("Extend() = %v", got)
	}
}

func TestSelectionOverlapsAndMerge(t *testing.T) {
	a := NewSelection(pos(0, 0), pos(0, 5))
	b := NewSelection(pos(0, 3), pos(0, 9))
	c := NewSelection(pos(0, 5), pos(0, 7))
	if !a.Overlaps(b) {
		t.Error("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Error("adjacent selections should not overlap")
	}
	if got := a.Merge(b); got != NewSelection(pos(0, 0), pos(0, 9)) {
		t.Errorf("Merge() = %v", got)
	}
	if got := a.Flip().Merge(b.Flip()); got != NewSelection(pos(0, 9), pos(0, 0)) {
		t.Errorf("reversed Merge() = %v", got)
	}
}

func TestSelectionRange(t *testing.T) {
	b := buffer.NewDocumentBuffer("héllo\nworld")
	sel := NewSelection(pos(1, 2), pos(0, 1))
	if got := sel.Range(b); got != (buffer.Range{Start: 1, End: 9}) {
		t.Errorf("Range() = %v, want [1:9)", got)
	}
}

// Set Tests

func TestNewSetFromAlignsLengths(t *testing.T) {
	s := NewSetFrom([]Cursor{New(0, 1), New(0, 3)}, []Selection{NewSelection(pos(0, 0), pos(0, 1))})
	if s.Len() != 2 || len(s.Selections()) != 2 {
		t.Fatalf("Len() = %d, selections = %d", s.Len(), len(s.Selections()))
	}
	if s.Selection(1) != Collapsed(pos(0, 3)) {
		t.Errorf("missing selection filled as %v", s.Selection(1))
	}

	empty := NewSetFrom(nil, nil)
	if empty.Len() != 1 || empty.Cursor(0).Pos() != pos(0, 0) {
		t.Errorf("empty NewSetFrom = %v", empty.Positions())
	}
}

func TestSetNormalizeSortsAndDedups(t *testing.T) {
	s := NewSetFrom(
		[]Cursor{New(1, 0), New(0, 4), New(1, 0), New(0, 1)},
		[]Selection{
			Collapsed(pos(1, 0)),
			NewSelection(pos(0, 2), pos(0, 4)),
			NewSelection(pos(0, 9), pos(1, 0)),
			Collapsed(pos(0, 1)),
		},
	)
	remap := s.Normalize()

	want := []Position{pos(0, 1), pos(0, 4), pos(1, 0)}
	got := s.Positions()
	if len(got) != len(want) {
		t.Fatalf("Positions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Selection(1) != NewSelection(pos(0, 2), pos(0, 4)) {
		t.Errorf("selection not kept aligned: %v", s.Selection(1))
	}
	if s.Selection(2) != Collapsed(pos(1, 0)) {
		t.Errorf("dedup should keep the first pair, got %v", s.Selection(2))
	}
	wantRemap := []int{2, 1, 2, 0}
	for i := range wantRemap {
		if remap[i] != wantRemap[i] {
			t.Errorf("remap[%d] = %d, want %d", i, remap[i], wantRemap[i])
		}
	}
}

func TestSetMergeOverlapping(t *testing.T) {
	s := NewSetFrom(
		[]Cursor{New(0, 4), New(0, 6), New(0, 9)},
		[]Selection{
			NewSelection(pos(0, 0), pos(0, 4)),
			NewSelection(pos(0, 2), pos(0, 6)),
			Collapsed(pos(0, 9)),
		},
	)
	s.MergeOverlapping()
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Selection(0) != NewSelection(pos(0, 0), pos(0, 6)) || s.Cursor(0).Pos() != pos(0, 6) {
		t.Errorf("merged pair = %v / %v", s.Cursor(0), s.Selection(0))
	}
}

func TestSetAddRemoveTruncate(t *testing.T) {
	s := NewSet(New(0, 0))
	s.Add(New(1, 0), Collapsed(pos(1, 0)))
	s.Add(New(2, 0), Collapsed(pos(2, 0)))
	s.RemoveAt(1)
	if s.Len() != 2 || s.Cursor(1).Line != 2 {
		t.Errorf("RemoveAt(1) left %v", s.Positions())
	}
	s.Truncate(0)
	if s.Len() != 1 {
		t.Errorf("Truncate(0) left %d cursors, want 1", s.Len())
	}
	s.RemoveAt(0)
	if s.Len() != 1 {
		t.Error("RemoveAt must not remove the last cursor")
	}
}

func TestSetCloneIsIndependent(t *testing.T) {
	s := NewSet(New(0, 1))
	c := s.Clone()
	c.Set(0, New(0, 5), Collapsed(pos(0, 5)))
	if s.Cursor(0).Pos() != pos(0, 1) {
		t.Error("clone shares storage with original")
	}
	if s.Equal(c) || !s.Equal(s.Clone()) {
		t.Error("Equal disagrees with contents")
	}
}

func TestSetIndexOfSelection(t *testing.T) {
	s := NewSetFrom(
		[]Cursor{New(0, 3), New(0, 9)},
		[]Selection{NewSelection(pos(0, 0), pos(0, 3)), NewSelection(pos(0, 6), pos(0, 9))},
	)
	if got := s.IndexOfSelection(NewSelection(pos(0, 9), pos(0, 6))); got != 1 {
		t.Errorf("IndexOfSelection = %d, want 1", got)
	}
	if got := s.Index(pos(0, 3)); got != 0 {
		t.Errorf("Index = %d, want 0", got)
	}
}

// Transform Tests

func TestTransformOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		edit   Edit
		want   int
	}{
		{"insert before", 10, Edit{buffer.Range{Start: 5, End: 5}, "abc"}, 13},
		{"insert after", 10, Edit{buffer.Range{Start: 15, End: 15}, "abc"}, 10},
		{"insert at offset", 10, Edit{buffer.Range{Start: 10, End: 10}, "abc"}, 13},
		{"delete before", 10, Edit{buffer.Range{Start: 2, End: 5}, ""}, 7},
		{"delete spanning", 10, Edit{buffer.Range{Start: 8, End: 12}, "x"}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransformOffset(tt.offset, tt.edit); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSortAndClipEdits(t *testing.T) {
	edits := []Edit{
		{Range: buffer.Range{Start: 0, End: 4}},
		{Range: buffer.Range{Start: 6, End: 8}},
		{Range: buffer.Range{Start: 2, End: 7}},
	}
	SortEditsReverse(edits)
	if edits[0].Range.Start != 6 || edits[1].Range.Start != 2 || edits[2].Range.Start != 0 {
		t.Fatalf("SortEditsReverse order wrong: %v", edits)
	}
	ClipOverlaps(edits)
	if edits[1].Range != (buffer.Range{Start: 2, End: 6}) {
		t.Errorf("edits[1] = %v, want [2:6)", edits[1].Range)
	}
	if edits[2].Range != (buffer.Range{Start: 0, End: 2}) {
		t.Errorf("edits[2] = %v, want [0:2)", edits[2].Range)
	}
}

func TestReverseOrderPrefersWiderEditOnTie(t *testing.T) {
	edits := []Edit{
		{Range: buffer.Range{Start: 2, End: 2}, NewText: "X"},
		{Range: buffer.Range{Start: 2, End: 5}},
		{Range: buffer.Range{Start: 7, End: 7}},
	}
	got := ReverseOrder(edits)
	want := []int{2, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReverseOrder = %v, want %v", got, want)
		}
	}
}

func TestTransformOffsets(t *testing.T) {
	offsets := []int{1, 5, 9}
	TransformOffsets(offsets, Edit{Range: buffer.Range{Start: 3, End: 3}, NewText: "XY"})
	want := []int{1, 7, 11}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offsets[%d] = %d, want %d", i, offsets[i], want[i])
		}
	}
}
