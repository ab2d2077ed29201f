package constraint

import "fmt"

// Kind enumerates the input surfaces.
type Kind uint8

// Input surfaces.
const (
	KindEditor Kind = iota
	KindCommandPalette
	KindGotoLine
	KindFindQuery
	KindReplaceQuery
	KindCsvCell
)

var kindNames = [...]string{
	KindEditor:         "editor",
	KindCommandPalette: "command_palette",
	KindGotoLine:       "goto_line",
	KindFindQuery:      "find_query",
	KindReplaceQuery:   "replace_query",
	KindCsvCell:        "csv_cell",
}

// String returns the kind's configuration name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind returns the kind with the given configuration name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Context identifies which input surface a message targets.
// Row and Col are meaningful only for KindCsvCell.
type Context struct {
	Kind Kind
	Row  int
	Col  int
}

// Contexts without payload.
var (
	ContextEditor         = Context{Kind: KindEditor}
	ContextCommandPalette = Context{Kind: KindCommandPalette}
	ContextGotoLine       = Context{Kind: KindGotoLine}
	ContextFindQuery      = Context{Kind: KindFindQuery}
	ContextReplaceQuery   = Context{Kind: KindReplaceQuery}
)

// ContextCsvCell returns the context of the cell at (row, col).
func ContextCsvCell(row, col int) Context {
	return Context{Kind: KindCsvCell, Row: row, Col: col}
}

// Constraints returns the context's preset.
func (c Context) Constraints() Constraints {
	return c.Kind.Constraints()
}

// Constraints returns the preset for the kind.
func (k Kind) Constraints() Constraints {
	switch k {
	case KindEditor:
		return Editor()
	case KindCommandPalette:
		return SingleLine()
	case KindGotoLine:
		return GotoLine()
	case KindFindQuery:
		return FindQuery()
	case KindReplaceQuery:
		return ReplaceQuery()
	case KindCsvCell:
		return CsvCell()
	default:
		return SingleLine()
	}
}

// IsEditor reports whether c is the main document editor.
func (c Context) IsEditor() bool {
	return c.Kind == KindEditor
}

// IsModal reports whether c is a modal prompt.
func (c Context) IsModal() bool {
	switch c.Kind {
	case KindCommandPalette, KindGotoLine, KindFindQuery, KindReplaceQuery:
		return true
	}
	return false
}

// IsCsvCell reports whether c is a spreadsheet cell.
func (c Context) IsCsvCell() bool {
	return c.Kind == KindCsvCell
}

// String returns a readable form of the context.
func (c Context) String() string {
	if c.Kind == KindCsvCell {
		return fmt.Sprintf("csv_cell(%d,%d)", c.Row, c.Col)
	}
	return c.Kind.String()
}
