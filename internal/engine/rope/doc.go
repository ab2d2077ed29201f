// Package rope provides the immutable rope that backs large documents.
//
// A rope is a balanced tree whose leaves hold bounded text chunks and whose
// internal nodes cache aggregated metrics (bytes, characters, newlines) for
// their subtree. Every lookup the editor performs on a document is resolved
// by descending those metrics, so the cost of locating a line, converting a
// byte offset to a character index, or splicing an edit grows with the
// height of the tree rather than the size of the text.
//
// Key features:
//   - O(log n) insertion, deletion, line lookup and offset conversion
//   - Immutable operations return new ropes; originals are never modified
//   - Chunks never split a UTF-8 sequence
//   - LineText returns a substring of chunk storage when the line does not
//     cross a chunk boundary
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	r = r.Delete(0, 7)             // "world"
//	start := r.LineStart(0)        // 0
//
// Offsets are byte offsets. Methods clamp offsets outside [0, Len()] and
// round offsets that fall inside a multi-byte sequence down to the start
// of that sequence.
package rope
