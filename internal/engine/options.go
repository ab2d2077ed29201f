package engine

import (
	"strings"

	"github.com/dshills/quill/internal/engine/history"
)

// Default configuration values.
const (
	DefaultPageSize    = 20
	DefaultIndentWidth = 4
)

type settings struct {
	historyCapacity int
	pageSize        int
	indentWidth     int
	useTabs         bool
}

func defaultSettings() settings {
	return settings{
		historyCapacity: history.DefaultCapacity,
		pageSize:        DefaultPageSize,
		indentWidth:     DefaultIndentWidth,
	}
}

// Option configures a State during creation.
type Option func(*settings)

// WithHistoryCapacity sets the maximum number of undo entries.
func WithHistoryCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.historyCapacity = n
		}
	}
}

// WithPageSize sets the number of lines moved by PageUp and PageDown.
func WithPageSize(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithIndent sets the indent unit used by Indent and Unindent.
// When useTabs is set one tab is inserted per level; width still decides
// how many leading spaces Unindent removes.
func WithIndent(width int, useTabs bool) Option {
	return func(s *settings) {
		if width > 0 {
			s.indentWidth = width
		}
		s.useTabs = useTabs
	}
}

// indentUnit returns the text inserted for one indent level.
func (s settings) indentUnit() string {
	if s.useTabs {
		return "\t"
	}
	return strings.Repeat(" ", s.indentWidth)
}

