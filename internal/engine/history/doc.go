// Package history provides undo/redo for the editing engine.
//
// # Operations
//
// An Operation records one atomic edit as a single replacement:
//   - Offset: where the replaced span starts
//   - Deleted: the text that span held before
//   - Inserted: the text it holds after
//   - Cursor and selection vectors before and after the edit
//
// A multi-cursor edit is recorded as one Operation whose span runs from the
// lowest edit to the highest, so undo restores the whole arrangement at
// once. Invert swaps the texts and the before/after vectors; inverting
// twice yields the original.
//
// # History Stack
//
// History keeps two bounded stacks:
//
//	h := history.New(1000)
//	h.Push(op)          // clears redo, evicts the oldest entry past capacity
//	op, ok := h.PopUndo()
//	op.Revert(buf)      // restore op.CursorsBefore / op.SelectionsBefore
//	op, ok = h.PopRedo()
//	op.Revert(buf)      // same call: redo entries are stored inverted
//
// PopUndo returns the original operation and moves its inverse to the redo
// stack. PopRedo returns that stored inverse and moves the original back
// to the undo stack. The caller reverts whatever it receives.
//
// History is not safe for concurrent use; each editing state owns one.
package history
