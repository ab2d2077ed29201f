package cursor

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Cursor is an insertion point with an optional desired column.
// Cursor is an immutable value type.
type Cursor struct {
	Position

	// DesiredColumn is the column vertical movement aims for.
	// It is meaningful only when HasDesired is set.
	DesiredColumn int
	HasDesired    bool
}

// New creates a cursor at (line, col).
func New(line, col int) Cursor {
	return Cursor{Position: Position{Line: max(0, line), Column: max(0, col)}}
}

// At creates a cursor at pos.
func At(pos Position) Cursor {
	return New(pos.Line, pos.Column)
}

// Pos returns the cursor's position.
func (c Cursor) Pos() Position {
	return c.Position
}

// MoveTo returns a cursor at pos with the desired column cleared.
func (c Cursor) MoveTo(pos Position) Cursor {
	return At(pos)
}

// WithDesired returns c with its desired column recorded, if it does not
// already have one.
func (c Cursor) WithDesired() Cursor {
	if !c.HasDesired {
		c.DesiredColumn = c.Column
		c.HasDesired = true
	}
	return c
}

// ClearDesired returns c without a desired column.
func (c Cursor) ClearDesired() Cursor {
	c.DesiredColumn = 0
	c.HasDesired = false
	return c
}

// EffectiveColumn returns the desired column if set, else the column.
func (c Cursor) EffectiveColumn() int {
	if c.HasDesired {
		return c.DesiredColumn
	}
	return c.Column
}

// Clamp returns c with its position clamped to the buffer's extent.
// The desired column is kept.
func (c Cursor) Clamp(r buffer.Reader) Cursor {
	c.Position = ClampPosition(r, c.Position)
	return c
}

// ClampPosition clamps pos to a valid location in r.
func ClampPosition(r buffer.Reader, pos Position) Position {
	line := max(0, min(pos.Line, r.LineCount()-1))
	col := max(0, min(pos.Column, r.LineLength(line)))
	return Position{Line: line, Column: col}
}

// Offset returns the cursor's byte offset in r.
func (c Cursor) Offset(r buffer.Reader) ByteOffset {
	return r.PositionToOffset(c.Position)
}

// Equal reports whether both cursors have the same position and desired
// column.
func (c Cursor) Equal(other Cursor) bool {
	return c == other
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.HasDesired {
		return fmt.Sprintf("Cursor%v~%d", c.Position, c.DesiredColumn)
	}
	return fmt.Sprintf("Cursor%v", c.Position)
}

// ToSelection converts this cursor to an empty selection.
func (c Cursor) ToSelection() Selection {
	return Collapsed(c.Position)
}
