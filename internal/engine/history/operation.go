package history

import (
	"slices"
	"time"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Operation represents a single undoable edit.
// The span [Offset, Offset+len(Deleted)) held Deleted before the edit and
// [Offset, Offset+len(Inserted)) holds Inserted after it.
type Operation struct {
	Offset   ByteOffset
	Deleted  string
	Inserted string

	CursorsBefore    []cursor.Cursor
	CursorsAfter     []cursor.Cursor
	SelectionsBefore []cursor.Selection
	SelectionsAfter  []cursor.Selection

	// Timestamp records when the edit happened.
	Timestamp time.Time
}

// NewOperation creates an operation replacing deleted with inserted at
// offset.
func NewOperation(offset ByteOffset, deleted, inserted string) Operation {
	return Operation{
		Offset:    offset,
		Deleted:   deleted,
		Inserted:  inserted,
		Timestamp: time.Now(),
	}
}

// WithCursors sets the cursor vectors and returns the operation for chaining.
func (op Operation) WithCursors(before, after []cursor.Cursor) Operation {
	op.CursorsBefore = before
	op.CursorsAfter = after
	return op
}

// WithSelections sets the selection vectors and returns the operation for
// chaining.
func (op Operation) WithSelections(before, after []cursor.Selection) Operation {
	op.SelectionsBefore = before
	op.SelectionsAfter = after
	return op
}

// IsInsert returns true if this operation is a pure insertion.
func (op Operation) IsInsert() bool {
	return op.Deleted == "" && op.Inserted != ""
}

// IsDelete returns true if this operation is a pure deletion.
func (op Operation) IsDelete() bool {
	return op.Deleted != "" && op.Inserted == ""
}

// IsNoop returns true if the operation changes no text.
func (op Operation) IsNoop() bool {
	return op.Deleted == op.Inserted
}

// BytesDelta returns the change in document length.
func (op Operation) BytesDelta() int {
	return len(op.Inserted) - len(op.Deleted)
}

// Invert returns an operation that undoes this one.
func (op Operation) Invert() Operation {
	return Operation{
		Offset:           op.Offset,
		Deleted:          op.Inserted,
		Inserted:         op.Deleted,
		CursorsBefore:    op.CursorsAfter,
		CursorsAfter:     op.CursorsBefore,
		SelectionsBefore: op.SelectionsAfter,
		SelectionsAfter:  op.SelectionsBefore,
		Timestamp:        op.Timestamp,
	}
}

// Apply performs the operation on b.
func (op Operation) Apply(b buffer.Buffer) {
	b.Replace(buffer.Range{Start: op.Offset, End: op.Offset + len(op.Deleted)}, op.Inserted)
}

// Revert undoes the operation on b.
func (op Operation) Revert(b buffer.Buffer) {
	op.Invert().Apply(b)
}

// Clone creates a deep copy of the operation.
func (op Operation) Clone() Operation {
	op.CursorsBefore = slices.Clone(op.CursorsBefore)
	op.CursorsAfter = slices.Clone(op.CursorsAfter)
	op.SelectionsBefore = slices.Clone(op.SelectionsBefore)
	op.SelectionsAfter = slices.Clone(op.SelectionsAfter)
	return op
}

// Equal reports whether two operations are structurally identical.
// Timestamps are ignored.
func (op Operation) Equal(other Operation) bool {
	return op.Offset == other.Offset &&
		op.Deleted == other.Deleted &&
		op.Inserted == other.Inserted &&
		slices.Equal(op.CursorsBefore, other.CursorsBefore) &&
		slices.Equal(op.CursorsAfter, other.CursorsAfter) &&
		slices.Equal(op.SelectionsBefore, other.SelectionsBefore) &&
		slices.Equal(op.SelectionsAfter, other.SelectionsAfter)
}

// Info summarizes an operation for display.
type Info struct {
	Timestamp  time.Time
	BytesDelta int
	Cursors    int
}

// Info returns a display summary of the operation.
func (op Operation) Info() Info {
	return Info{
		Timestamp:  op.Timestamp,
		BytesDelta: op.BytesDelta(),
		Cursors:    len(op.CursorsAfter),
	}
}
