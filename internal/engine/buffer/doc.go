// Package buffer defines the text storage contract used by the editing
// engine and its two implementations.
//
// The contract is split in two interfaces:
//
//   - Reader: line, character and offset queries
//   - Buffer: Reader plus mutation (insert, remove, replace, clear, set)
//
// Two backends implement Buffer:
//
//   - StringBuffer keeps the text in one contiguous string. Every edit
//     costs O(n), which is negligible for the short input fields of modal
//     prompts and spreadsheet cells.
//   - DocumentBuffer keeps the text in a rope. Line lookup, offset and
//     position conversion, and edits resolve by tree descent in O(log n),
//     and Line returns a view of rope storage rather than a copy whenever
//     the line lies inside a single chunk.
//
// Position Types:
//
//   - ByteOffset: byte index into the UTF-8 text
//   - Position: zero-indexed line and column, column counted in characters
//   - Range: half-open byte range [Start, End)
//
// Clamping:
//
// No method returns an error or panics on out-of-range input. Lines,
// columns and offsets are clamped to the nearest valid value, and a byte
// offset that falls inside a multi-byte sequence is rounded down to the
// start of that sequence. Callers routinely probe one-past-the-end
// positions while placing cursors, so this is part of the contract.
//
// Neither backend is safe for concurrent mutation; a buffer belongs to
// exactly one editing state.
package buffer
