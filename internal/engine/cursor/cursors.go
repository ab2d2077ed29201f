package cursor

import (
	"slices"
	"sort"
)

// Set holds index-aligned cursors and selections.
// Both lists always have the same length, which is at least one.
type Set struct {
	cursors    []Cursor
	selections []Selection
}

// NewSet creates a set with one cursor and an empty selection at it.
func NewSet(c Cursor) *Set {
	return &Set{
		cursors:    []Cursor{c},
		selections: []Selection{c.ToSelection()},
	}
}

// NewSetFrom creates a set from parallel lists. Missing selections are
// filled in as empty selections at their cursor; surplus selections are
// dropped. An empty cursor list yields a single cursor at (0:0).
func NewSetFrom(cursors []Cursor, selections []Selection) *Set {
	s := &Set{}
	s.Replace(cursors, selections)
	return s
}

// Len returns the number of cursors.
func (s *Set) Len() int {
	return len(s.cursors)
}

// IsMulti returns true if there is more than one cursor.
func (s *Set) IsMulti() bool {
	return len(s.cursors) > 1
}

// Cursor returns the cursor at index i, clamped to the valid range.
func (s *Set) Cursor(i int) Cursor {
	return s.cursors[s.clampIndex(i)]
}

// Selection returns the selection at index i, clamped to the valid range.
func (s *Set) Selection(i int) Selection {
	return s.selections[s.clampIndex(i)]
}

// Cursors returns a copy of the cursor list.
func (s *Set) Cursors() []Cursor {
	return slices.Clone(s.cursors)
}

// Selections returns a copy of the selection list.
func (s *Set) Selections() []Selection {
	return slices.Clone(s.selections)
}

// Positions returns the cursor positions in order.
func (s *Set) Positions() []Position {
	out := make([]Position, len(s.cursors))
	for i, c := range s.cursors {
		out[i] = c.Position
	}
	return out
}

// Set replaces the pair at index i.
func (s *Set) Set(i int, c Cursor, sel Selection) {
	if i < 0 || i >= len(s.cursors) {
		return
	}
	s.cursors[i] = c
	s.selections[i] = sel
}

// Add appends a cursor and its selection.
func (s *Set) Add(c Cursor, sel Selection) {
	s.cursors = append(s.cursors, c)
	s.selections = append(s.selections, sel)
}

// RemoveAt removes the pair at index i. The last pair is never removed.
func (s *Set) RemoveAt(i int) {
	if i < 0 || i >= len(s.cursors) || len(s.cursors) == 1 {
		return
	}
	s.cursors = slices.Delete(s.cursors, i, i+1)
	s.selections = slices.Delete(s.selections, i, i+1)
}

// Truncate keeps the first n pairs, and at least one.
func (s *Set) Truncate(n int) {
	n = max(1, n)
	if n < len(s.cursors) {
		s.cursors = s.cursors[:n]
		s.selections = s.selections[:n]
	}
}

// Replace replaces both lists. See NewSetFrom for how mismatched lengths
// are handled.
func (s *Set) Replace(cursors []Cursor, selections []Selection) {
	if len(cursors) == 0 {
		s.cursors = []Cursor{{}}
		s.selections = []Selection{{}}
		return
	}
	s.cursors = slices.Clone(cursors)
	s.selections = make([]Selection, len(cursors))
	for i, c := range s.cursors {
		if i < len(selections) {
			s.selections[i] = selections[i]
		} else {
			s.selections[i] = c.ToSelection()
		}
	}
}

// Index returns the index of the first cursor at pos, or -1.
func (s *Set) Index(pos Position) int {
	for i, c := range s.cursors {
		if c.Position == pos {
			return i
		}
	}
	return -1
}

// IndexOfSelection returns the index of the first pair whose selection
// covers the same span as sel, or -1.
func (s *Set) IndexOfSelection(sel Selection) int {
	for i, other := range s.selections {
		if other.Start() == sel.Start() && other.End() == sel.End() {
			return i
		}
	}
	return -1
}

// HasSelection returns true if any selection is non-empty.
func (s *Set) HasSelection() bool {
	for _, sel := range s.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}

// CollapseAll collapses every selection to its cursor.
func (s *Set) CollapseAll() {
	for i, c := range s.cursors {
		s.selections[i] = c.ToSelection()
	}
}

// Normalize sorts the pairs by cursor position and drops every pair whose
// cursor duplicates an earlier one. The sort is stable, so the first of
// two equal cursors survives. It returns, for each original index, the
// index of the surviving pair now holding that cursor's position.
func (s *Set) Normalize() []int {
	n := len(s.cursors)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.cursors[order[a]].Before(s.cursors[order[b]].Position)
	})

	remap := make([]int, n)
	cursors := make([]Cursor, 0, n)
	selections := make([]Selection, 0, n)
	for _, old := range order {
		c := s.cursors[old]
		if k := len(cursors); k > 0 && cursors[k-1].Position == c.Position {
			remap[old] = k - 1
			continue
		}
		remap[old] = len(cursors)
		cursors = append(cursors, c)
		selections = append(selections, s.selections[old])
	}
	s.cursors, s.selections = cursors, selections
	return remap
}

// MergeOverlapping fuses pairs whose selections overlap. The merged
// cursor sits at the merged selection's head. The set must be normalized
// first. It returns the same kind of index map as Normalize.
func (s *Set) MergeOverlapping() []int {
	n := len(s.cursors)
	remap := make([]int, n)
	cursors := s.cursors[:1]
	selections := s.selections[:1]
	for i := 1; i < n; i++ {
		last := len(selections) - 1
		sel := s.selections[i]
		if !sel.IsEmpty() && !selections[last].IsEmpty() && selections[last].Overlaps(sel) {
			merged := selections[last].Merge(sel)
			selections[last] = merged
			cursors[last] = At(merged.Head)
			remap[i] = last
			continue
		}
		remap[i] = len(cursors)
		cursors = append(cursors, s.cursors[i])
		selections = append(selections, sel)
	}
	s.cursors, s.selections = cursors, selections
	return remap
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		cursors:    slices.Clone(s.cursors),
		selections: slices.Clone(s.selections),
	}
}

// Equal returns true if both sets hold the same pairs.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return false
	}
	return slices.Equal(s.cursors, other.cursors) && slices.Equal(s.selections, other.selections)
}

func (s *Set) clampIndex(i int) int {
	return max(0, min(i, len(s.cursors)-1))
}
