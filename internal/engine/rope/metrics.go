package rope

import (
	"strings"
	"unicode/utf8"
)

// TextSummary holds aggregated metrics for a text span.
// Summaries form a monoid under Add, which is what lets internal nodes
// answer position queries without visiting their leaves.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the number of runes.
	Chars int

	// Lines is the number of newline characters.
	Lines int

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates all characters are ASCII (< 128).
	FlagASCII TextFlags = 1 << iota

	// FlagHasNewlines indicates the text contains newline characters.
	FlagHasNewlines
)

// Add combines two summaries.
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}

	result := TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
		Flags: s.Flags & other.Flags & FlagASCII,
	}
	if (s.Flags|other.Flags)&FlagHasNewlines != 0 {
		result.Flags |= FlagHasNewlines
	}
	return result
}

// IsZero returns true if this is the identity summary.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	if len(s) == 0 {
		return TextSummary{Flags: FlagASCII}
	}

	sum := TextSummary{
		Bytes: len(s),
		Lines: strings.Count(s, "\n"),
		Flags: FlagASCII,
	}
	if sum.Lines > 0 {
		sum.Flags |= FlagHasNewlines
	}

	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			sum.Flags &^= FlagASCII
			break
		}
	}
	if sum.Flags&FlagASCII != 0 {
		sum.Chars = len(s)
	} else {
		sum.Chars = utf8.RuneCountInString(s)
	}

	return sum
}

// nthNewline returns the byte index of the nth newline (1-indexed) in s,
// or -1 if s holds fewer than n newlines.
func nthNewline(s string, n int) int {
	if n <= 0 {
		return -1
	}
	pos := 0
	for {
		i := strings.IndexByte(s[pos:], '\n')
		if i < 0 {
			return -1
		}
		n--
		if n == 0 {
			return pos + i
		}
		pos += i + 1
	}
}

// charToByte returns the byte index of the nth rune in s, or len(s) when
// s holds n runes or fewer.
func charToByte(s string, n int, ascii bool) int {
	if n <= 0 {
		return 0
	}
	if ascii {
		return min(n, len(s))
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
