package cursor

import (
	"testing"

	"github.com/dshills/quill/internal/engine/buffer"
)

func TestHorizontalMotion(t *testing.T) {
	b := buffer.NewStringBuffer("ab\ncd")
	tests := []struct {
		name string
		fn   func(buffer.Reader, Position) Position
		in   Position
		want Position
	}{
		{"left", Left, pos(0, 2), pos(0, 1)},
		{"left wraps", Left, pos(1, 0), pos(0, 2)},
		{"left at start", Left, pos(0, 0), pos(0, 0)},
		{"right", Right, pos(0, 0), pos(0, 1)},
		{"right wraps", Right, pos(0, 2), pos(1, 0)},
		{"right at end", Right, pos(1, 2), pos(1, 2)},
		{"right clamps stale position", Right, pos(9, 9), pos(1, 2)},
		{"line start", LineStart, pos(1, 2), pos(1, 0)},
		{"line end", LineEnd, pos(0, 0), pos(0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(b, tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerticalMotionRemembersColumn(t *testing.T) {
	b := buffer.NewDocumentBuffer("a long line\nab\nanother long line")
	c := New(0, 8)

	c = Down(b, c, 1)
	if c.Pos() != pos(1, 2) || !c.HasDesired || c.DesiredColumn != 8 {
		t.Fatalf("first Down = %v, want (1:2) with desired 8", c)
	}
	c = Down(b, c, 1)
	if c.Pos() != pos(2, 8) {
		t.Errorf("second Down = %v, want (2:8)", c.Pos())
	}
	c = Up(b, c, 5)
	if c.Pos() != pos(0, 8) {
		t.Errorf("Up(5) = %v, want (0:8)", c.Pos())
	}
	if got := Up(b, c, 1); got.Pos() != pos(0, 8) {
		t.Errorf("Up on first line moved to %v", got.Pos())
	}
	if got := Down(b, New(2, 3), 1); got.Pos() != pos(2, 3) || got.HasDesired {
		t.Errorf("Down on last line = %v", got)
	}
}

func TestSmartLineStart(t *testing.T) {
	b := buffer.NewStringBuffer("    code\nflat")
	tests := []struct {
		in, want Position
	}{
		{pos(0, 6), pos(0, 4)},
		{pos(0, 4), pos(0, 0)},
		{pos(0, 0), pos(0, 4)},
		{pos(1, 3), pos(1, 0)},
		{pos(1, 0), pos(1, 0)},
	}
	for _, tt := range tests {
		if got := SmartLineStart(b, tt.in); got != tt.want {
			t.Errorf("SmartLineStart(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWordMotionStopsAtClassTransitions(t *testing.T) {
	b := buffer.NewStringBuffer("foo.bar(baz)  qux\nnext")
	right := []Position{pos(0, 3), pos(0, 4), pos(0, 7), pos(0, 8), pos(0, 11), pos(0, 14), pos(0, 17), pos(1, 0)}
	p := pos(0, 0)
	for i, want := range right {
		p = WordRight(b, p)
		if p != want {
			t.Fatalf("WordRight step %d = %v, want %v", i, p, want)
		}
	}

	left := []Position{pos(0, 17), pos(0, 14), pos(0, 11), pos(0, 8), pos(0, 7), pos(0, 4), pos(0, 3), pos(0, 0)}
	p = pos(1, 0)
	for i, want := range left {
		p = WordLeft(b, p)
		if p != want {
			t.Fatalf("WordLeft step %d = %v, want %v", i, p, want)
		}
	}
}

func TestWordMotionMultibyte(t *testing.T) {
	b := buffer.NewDocumentBuffer("héllo wörld")
	if got := WordRight(b, pos(0, 0)); got != pos(0, 6) {
		t.Errorf("WordRight = %v, want (0:6)", got)
	}
	if got := WordLeft(b, pos(0, 11)); got != pos(0, 6) {
		t.Errorf("WordLeft = %v, want (0:6)", got)
	}
}

func TestWordAt(t *testing.T) {
	b := buffer.NewStringBuffer("hello, world\n")
	tests := []struct {
		name       string
		in         Position
		start, end Position
	}{
		{"middle of word", pos(0, 2), pos(0, 0), pos(0, 5)},
		{"on punctuation", pos(0, 5), pos(0, 5), pos(0, 6)},
		{"on space", pos(0, 6), pos(0, 6), pos(0, 7)},
		{"end of line uses last char", pos(0, 12), pos(0, 7), pos(0, 12)},
		{"empty line", pos(1, 0), pos(1, 0), pos(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WordAt(b, tt.in)
			if start != tt.start || end != tt.end {
				t.Errorf("WordAt(%v) = %v, %v; want %v, %v", tt.in, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestDocumentBounds(t *testing.T) {
	b := buffer.NewStringBuffer("one\ntwo\nthree")
	if DocumentStart() != pos(0, 0) {
		t.Error("DocumentStart should be (0:0)")
	}
	if got := DocumentEnd(b); got != pos(2, 5) {
		t.Errorf("DocumentEnd = %v, want (2:5)", got)
	}
}
