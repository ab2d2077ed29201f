package buffer

import "unicode"

// CharClass groups characters for word navigation and selection.
type CharClass uint8

// Character classes. Word motions stop at every transition between them.
const (
	ClassWhitespace CharClass = iota
	ClassWord
	ClassPunctuation
)

// String returns the class name.
func (c CharClass) String() string {
	switch c {
	case ClassWhitespace:
		return "whitespace"
	case ClassWord:
		return "word"
	case ClassPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// ClassOf returns the class of r. Letters, digits and underscore are word
// characters; every other non-space character is punctuation.
func ClassOf(r rune) CharClass {
	switch {
	case unicode.IsSpace(r):
		return ClassWhitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsNumber(r):
		return ClassWord
	default:
		return ClassPunctuation
	}
}

// IsWordChar reports whether r is a word character.
func IsWordChar(r rune) bool {
	return ClassOf(r) == ClassWord
}
