package engine

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// block is a run of whole lines touched by one or more cursors.
type block struct {
	first   int
	last    int
	members []int
}

func (b block) size() int {
	return b.last - b.first + 1
}

// lineSpan returns the lines covered by cursor i. A selection ending at
// column 0 does not include that line.
func (s *State[B]) lineSpan(i int) (int, int) {
	sel := s.cursors.Selection(i)
	if sel.IsEmpty() {
		line := s.cursors.Cursor(i).Line
		return line, line
	}
	start, end := sel.Start(), sel.End()
	if end.Column == 0 && end.Line > start.Line {
		return start.Line, end.Line - 1
	}
	return start.Line, end.Line
}

// lineBlocks groups cursors whose line spans overlap or touch. Blocks are
// returned in line order, separated by at least one untouched line.
func (s *State[B]) lineBlocks() []block {
	type span struct{ first, last, index int }
	spans := make([]span, s.cursors.Len())
	for i := range spans {
		first, last := s.lineSpan(i)
		spans[i] = span{first, last, i}
	}
	sort.SliceStable(spans, func(a, b int) bool { return spans[a].first < spans[b].first })

	var blocks []block
	for _, sp := range spans {
		if k := len(blocks) - 1; k >= 0 && sp.first <= blocks[k].last+1 {
			blocks[k].last = max(blocks[k].last, sp.last)
			blocks[k].members = append(blocks[k].members, sp.index)
			continue
		}
		blocks = append(blocks, block{first: sp.first, last: sp.last, members: []int{sp.index}})
	}
	return blocks
}

// lines returns the text of lines first through last.
func (s *State[B]) lines(first, last int) []string {
	out := make([]string, 0, last-first+1)
	for l := first; l <= last; l++ {
		out = append(out, s.buf.Line(l))
	}
	return out
}

// linePlan replaces lines first through last, newlines between them
// included, with lines. place maps a member's old position to its new
// position, with the line counted from first.
func (s *State[B]) linePlan(first, last int, lines []string, members []int, place func(cursor.Position) cursor.Position) plan {
	text := strings.Join(lines, "\n")
	p := plan{
		edit: cursor.Edit{
			Range: buffer.Range{
				Start: s.buf.PositionToOffset(cursor.Position{Line: first}),
				End:   s.buf.PositionToOffset(cursor.LineEnd(s.buf, cursor.Position{Line: last})),
			},
			NewText: text,
		},
	}
	for _, i := range members {
		sel := s.cursors.Selection(i)
		p.carets = append(p.carets, caret{
			index:  i,
			anchor: textOffset(text, place(sel.Anchor)),
			head:   textOffset(text, place(sel.Head)),
		})
	}
	return p
}

// textOffset returns the byte offset of pos within text. A line past the
// end of text maps to the start of the line that follows it.
func textOffset(text string, pos cursor.Position) int {
	start := 0
	for line := pos.Line; line > 0; line-- {
		i := strings.IndexByte(text[start:], '\n')
		if i < 0 {
			return len(text) + 1
		}
		start += i + 1
	}
	end := strings.IndexByte(text[start:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += start
	}
	return start + byteOfColumn(text[start:end], pos.Column)
}

// indent adds one indent unit to every line touched by a cursor. Blank
// lines inside a multi-line block are left alone.
func (s *State[B]) indent() {
	if !s.constraints.AllowMultiline {
		return
	}
	unit := s.settings.indentUnit()
	width := utf8.RuneCountInString(unit)
	var plans []plan
	for _, b := range s.lineBlocks() {
		lines := s.lines(b.first, b.last)
		added := make([]int, len(lines))
		for i, l := range lines {
			if l == "" && b.size() > 1 {
				continue
			}
			lines[i] = unit + l
			added[i] = width
		}
		plans = append(plans, s.linePlan(b.first, b.last, lines, b.members, func(p cursor.Position) cursor.Position {
			rel := p.Line - b.first
			if rel < len(added) {
				p.Column += added[rel]
			}
			p.Line = rel
			return p
		}))
	}
	s.applyPlans(plans)
}

// unindent removes up to one indent unit of leading whitespace from every
// line touched by a cursor. A tab counts as a full unit.
func (s *State[B]) unindent() {
	if !s.constraints.AllowMultiline {
		return
	}
	width := s.settings.indentWidth
	var plans []plan
	for _, b := range s.lineBlocks() {
		lines := s.lines(b.first, b.last)
		removed := make([]int, len(lines))
		for i, l := range lines {
			n, cols := 0, 0
			for _, r := range l {
				if cols >= width || (r != ' ' && r != '\t') {
					break
				}
				if r == '\t' {
					cols = width
				} else {
					cols++
				}
				n++
			}
			lines[i] = l[n:]
			removed[i] = n
		}
		plans = append(plans, s.linePlan(b.first, b.last, lines, b.members, func(p cursor.Position) cursor.Position {
			rel := p.Line - b.first
			if rel < len(removed) {
				p.Column = max(0, p.Column-removed[rel])
			}
			p.Line = rel
			return p
		}))
	}
	s.applyPlans(plans)
}

// deleteLine removes every line touched by a cursor.
func (s *State[B]) deleteLine() {
	if !s.constraints.AllowMultiline {
		return
	}
	lastLine := s.buf.LineCount() - 1
	var plans []plan
	for _, b := range s.lineBlocks() {
		var r buffer.Range
		var caretAt func(i int) int
		switch {
		case b.last < lastLine:
			r = buffer.Range{
				Start: s.buf.PositionToOffset(cursor.Position{Line: b.first}),
				End:   s.buf.PositionToOffset(cursor.Position{Line: b.last + 1}),
			}
			// The following line slides up; keep each cursor's column on it.
			next := s.buf.Line(b.last + 1)
			caretAt = func(i int) int {
				return byteOfColumn(next, s.cursors.Cursor(i).EffectiveColumn())
			}
		case b.first > 0:
			r = buffer.Range{
				Start: s.buf.PositionToOffset(cursor.LineEnd(s.buf, cursor.Position{Line: b.first - 1})),
				End:   s.buf.LenBytes(),
			}
			caretAt = func(int) int { return 0 }
		default:
			r = buffer.Range{Start: 0, End: s.buf.LenBytes()}
			caretAt = func(int) int { return 0 }
		}
		p := plan{edit: cursor.Edit{Range: r}}
		for _, i := range b.members {
			off := caretAt(i)
			p.carets = append(p.carets, caret{index: i, anchor: off, head: off})
		}
		plans = append(plans, p)
	}
	s.applyPlans(plans)
}

// duplicate copies each selection after itself and selects the copy.
// Without any selection it copies the touched lines below themselves and
// moves the cursors onto the copy.
func (s *State[B]) duplicate() {
	if s.cursors.HasSelection() {
		var plans []plan
		for i := 0; i < s.cursors.Len(); i++ {
			sel := s.cursors.Selection(i)
			if sel.IsEmpty() {
				continue
			}
			r := sel.Range(s.buf)
			text := s.buf.Slice(r)
			c := caret{index: i, anchor: 0, head: len(text)}
			if sel.IsReversed() {
				c.anchor, c.head = c.head, c.anchor
			}
			plans = append(plans, plan{
				edit:   cursor.Edit{Range: buffer.Range{Start: r.End, End: r.End}, NewText: text},
				carets: []caret{c},
			})
		}
		s.applyPlans(plans)
		return
	}
	if !s.constraints.AllowMultiline {
		return
	}
	var plans []plan
	for _, b := range s.lineBlocks() {
		lines := s.lines(b.first, b.last)
		n := len(lines)
		plans = append(plans, s.linePlan(b.first, b.last, append(lines, lines...), b.members, func(p cursor.Position) cursor.Position {
			p.Line = p.Line - b.first + n
			return p
		}))
	}
	s.applyPlans(plans)
}

// moveLines swaps every block of touched lines with the line above
// (dir < 0) or below (dir > 0). Blocks at the document edge stay put.
func (s *State[B]) moveLines(dir int) {
	lastLine := s.buf.LineCount() - 1
	var plans []plan
	for _, b := range s.lineBlocks() {
		lines := s.lines(b.first, b.last)
		if dir < 0 {
			if b.first == 0 {
				continue
			}
			moved := append(lines, s.buf.Line(b.first-1))
			plans = append(plans, s.linePlan(b.first-1, b.last, moved, b.members, func(p cursor.Position) cursor.Position {
				p.Line -= b.first
				return p
			}))
			continue
		}
		if b.last >= lastLine {
			continue
		}
		moved := append([]string{s.buf.Line(b.last + 1)}, lines...)
		plans = append(plans, s.linePlan(b.first, b.last+1, moved, b.members, func(p cursor.Position) cursor.Position {
			p.Line = p.Line - b.first + 1
			return p
		}))
	}
	s.applyPlans(plans)
}
