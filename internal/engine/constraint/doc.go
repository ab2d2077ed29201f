// Package constraint defines per-context editing capabilities.
//
// A Constraints value says what an editing state may do: span lines, hold
// several cursors, select, record undo, how long its text may grow and
// which characters it accepts. It is plain data, rebuilt each time a
// context is entered, and never produces an error; the engine simply skips
// whatever the constraints forbid.
//
// Context identifies the input surface a message targets. Every Context
// maps to exactly one preset:
//
//	Editor          Editor()        multi-line, multi-cursor, unlimited
//	CommandPalette  SingleLine()
//	GotoLine        GotoLine()      digits and ':', at most 20 characters
//	FindQuery       FindQuery()
//	ReplaceQuery    ReplaceQuery()
//	CsvCell         CsvCell()
//
// Numeric() (digits only, at most 10 characters) is available for fields
// that accept a bare number.
package constraint
