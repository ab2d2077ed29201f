package buffer

import "strings"

// LineEnding is a line terminator style.
// Buffers always store LF internally; the style is applied on Export.
type LineEnding uint8

// Line ending styles.
const (
	LineEndingLF   LineEnding = iota // Unix (\n)
	LineEndingCRLF                   // Windows (\r\n)
	LineEndingCR                     // classic Mac (\r)
)

// String returns the style's conventional name.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "CRLF"
	case LineEndingCR:
		return "CR"
	default:
		return "LF"
	}
}

// Sequence returns the terminator bytes.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Apply converts LF-terminated text to this style.
func (le LineEnding) Apply(text string) string {
	if le == LineEndingLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", le.Sequence())
}

// NormalizeLineEndings converts CRLF and lone CR terminators to LF.
func NormalizeLineEndings(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// DetectLineEnding returns the most common line ending in text, or LF when
// the text has none.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf, cr int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		case '\n':
			lf++
		}
	}
	switch {
	case crlf > lf && crlf >= cr:
		return LineEndingCRLF
	case cr > lf && cr > crlf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

type options struct {
	lineEnding LineEnding
	detect     bool
}

// Option configures a document buffer at construction.
type Option func(*options)

// WithDetectedLineEnding uses the dominant style of the initial text.
func WithDetectedLineEnding() Option {
	return func(o *options) {
		o.detect = true
	}
}

func newOptions(text string, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.detect {
		o.lineEnding = DetectLineEnding(text)
	}
	return o
}
