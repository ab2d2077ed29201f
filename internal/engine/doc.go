// Package engine provides the editable-text state shared by every text
// surface of the editor: the main document, single-line prompts and
// spreadsheet cells.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - rope: B+ tree rope backing large documents (O(log n) operations)
//   - buffer: the storage contract and its string and rope backends
//   - cursor: cursors, selections, the cursor set and motion helpers
//   - constraint: per-context capabilities and character filters
//   - history: invertible operations and the bounded undo/redo stacks
//   - message: the closed vocabulary of editing messages
//
// A State is generic over its buffer so the same code drives a
// StringBuffer for a go-to-line prompt and a DocumentBuffer for a large
// file, with no interface dispatch on the hot path.
//
// # Basic Usage
//
//	st := engine.New(buffer.NewStringBuffer("hello world"), constraint.Editor())
//	st.Apply(message.Move(message.DocumentEnd))
//	st.Apply(message.InsertChar('!'))
//	st.Text() // "hello world!"
//	st.Apply(message.Undo)
//
// # Multi-Cursor Editing
//
// Editing messages fan out over every cursor. Edits are applied from the
// highest offset down, so an edit never invalidates the offsets of the
// ones still to come, and the whole fan-out is recorded as a single
// history entry. After every change the cursors are sorted and
// duplicates dropped, keeping selections aligned.
//
// # Constraints
//
// Apply never returns an error. Messages a context does not allow are
// no-ops, reported through Result.Suppressed. A newline in a single-line
// context is reported as Result.Confirm instead of being inserted.
//
// # Thread Safety
//
// A State is owned by one goroutine. It has no locks.
package engine
