// Package cursor provides cursor and selection primitives for the editing
// engine.
//
// The cursor package handles:
//
//   - Cursor positioning with a remembered column for vertical movement
//   - Text selections with the anchor/head model via Selection
//   - Index-aligned cursor and selection lists via Set
//   - Offset transformation across multi-cursor edits
//   - Motion targets computed against a buffer.Reader
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head the selection is empty. Start and End return the
// ordered bounds, and Contains is half-open: a selection from (0:2) to
// (0:8) contains (0:2) but not (0:8).
//
// Desired Column:
//
// The first vertical step records the cursor's column as its desired
// column. Later vertical steps aim for that column, clamped to each line,
// so a cursor passing through short lines returns to its original column
// on a long one. Horizontal moves and edits clear it.
//
// Multi-Cursor Support:
//
// Set keeps cursors and selections index-aligned. Normalize sorts the
// pairs by cursor position and drops pairs whose cursor duplicates an
// earlier one; MergeOverlapping fuses pairs whose selections overlap.
//
// Thread Safety:
//
// Cursor and Selection are immutable value types. Set is not thread-safe.
package cursor
