package constraint

import "strings"

// CharFilter decides whether a character may be inserted.
type CharFilter interface {
	Allow(r rune) bool
}

// FilterFunc adapts an ordinary function to CharFilter.
type FilterFunc func(r rune) bool

// Allow calls f(r).
func (f FilterFunc) Allow(r rune) bool {
	return f(r)
}

// RuneSet is a CharFilter allowing exactly the runes it contains.
type RuneSet string

// Allow reports whether r is in the set.
func (s RuneSet) Allow(r rune) bool {
	return strings.ContainsRune(string(s), r)
}

// Digits is the set of ASCII digits.
const Digits RuneSet = "0123456789"

// DigitsAnd returns the ASCII digits plus extra.
func DigitsAnd(extra string) RuneSet {
	return Digits + RuneSet(extra)
}
