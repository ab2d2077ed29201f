package constraint

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Constraints is the capability set of one editing context.
type Constraints struct {
	AllowMultiline   bool
	AllowMultiCursor bool
	AllowSelection   bool
	EnableUndo       bool

	// MaxLength is the maximum text length in characters; 0 means
	// unlimited.
	MaxLength int

	// Filter restricts insertable characters; nil allows everything.
	Filter CharFilter
}

// IsCharAllowed reports whether r passes the character filter.
func (c Constraints) IsCharAllowed(r rune) bool {
	return c.Filter == nil || c.Filter.Allow(r)
}

// WouldExceedMaxLength reports whether inserting insert characters into
// text of current characters would pass MaxLength.
func (c Constraints) WouldExceedMaxLength(current, insert int) bool {
	return c.MaxLength > 0 && current+insert > c.MaxLength
}

// Remaining returns how many characters may still be inserted into text
// of current characters.
func (c Constraints) Remaining(current int) int {
	if c.MaxLength <= 0 {
		return math.MaxInt
	}
	return max(0, c.MaxLength-current)
}

// Sanitize drops every character the constraints would reject from text:
// filtered characters and, without multiline, line breaks.
func (c Constraints) Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if (r == '\n' || r == '\r') && !c.AllowMultiline {
			return -1
		}
		if r != '\n' && !c.IsCharAllowed(r) {
			return -1
		}
		return r
	}, text)
}

// Truncate cuts text to at most n characters.
func Truncate(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}

// Override adjusts a preset with configured values.
type Override struct {
	// MaxLength replaces the preset's limit when non-nil.
	MaxLength *int
	// Allowed replaces the preset's filter with a RuneSet when non-empty.
	Allowed string
}

// With returns a copy of c with o applied.
func (c Constraints) With(o Override) Constraints {
	if o.MaxLength != nil {
		c.MaxLength = max(0, *o.MaxLength)
	}
	if o.Allowed != "" {
		c.Filter = RuneSet(o.Allowed)
	}
	return c
}

// Editor returns the full-capability preset of the main document editor.
func Editor() Constraints {
	return Constraints{
		AllowMultiline:   true,
		AllowMultiCursor: true,
		AllowSelection:   true,
		EnableUndo:       true,
	}
}

// SingleLine returns the preset for a generic one-line field.
func SingleLine() Constraints {
	return Constraints{
		AllowSelection: true,
		EnableUndo:     true,
	}
}

// Numeric returns a single-line preset accepting up to 10 ASCII digits.
func Numeric() Constraints {
	c := SingleLine()
	c.MaxLength = 10
	c.Filter = Digits
	return c
}

// GotoLine returns a single-line preset accepting up to 20 characters of
// digits and ':' for line:column input.
func GotoLine() Constraints {
	c := SingleLine()
	c.MaxLength = 20
	c.Filter = DigitsAnd(":")
	return c
}

// FindQuery returns the preset of the find field.
func FindQuery() Constraints {
	return SingleLine()
}

// ReplaceQuery returns the preset of the replace field.
func ReplaceQuery() Constraints {
	return SingleLine()
}

// CsvCell returns the preset of a spreadsheet cell editor.
func CsvCell() Constraints {
	return SingleLine()
}
