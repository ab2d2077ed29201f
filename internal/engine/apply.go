package engine

import "github.com/dshills/quill/internal/engine/message"

// Result reports what Apply did.
type Result struct {
	// TextChanged is set when the buffer content changed.
	TextChanged bool

	// CursorsChanged is set when any cursor or selection changed.
	CursorsChanged bool

	// Confirm is set when a single-line surface received a newline. The
	// owner decides what confirming means.
	Confirm bool

	// Clipboard holds the text produced by Copy or Cut when HasClipboard
	// is set.
	Clipboard    string
	HasClipboard bool

	// Suppressed is set when the constraints turned the message into a
	// no-op before it was looked at.
	Suppressed bool
}

// Modified reports whether the message had any visible effect.
func (r Result) Modified() bool {
	return r.TextChanged || r.CursorsChanged
}

// Apply performs msg against the state. It never fails: messages the
// constraints forbid, and messages with nothing to act on, are no-ops.
func (s *State[B]) Apply(msg message.Message) Result {
	if msg.Kind == message.KindInsertChar && (msg.Char == '\n' || msg.Char == '\r') {
		msg = message.InsertNewline
	}
	if res, gated := s.gate(msg); gated {
		return res
	}

	s.clamp()
	rev := s.revision
	before := s.cursors.Clone()

	var res Result
	switch msg.Kind {
	case message.KindMove:
		s.move(msg.Target, false)
	case message.KindMoveWithSelection:
		s.move(msg.Target, true)
	case message.KindInsertChar:
		s.insertChar(msg.Char)
	case message.KindInsertText:
		s.insertText(msg.Text, false)
	case message.KindPaste:
		s.insertText(msg.Text, true)
	case message.KindInsertNewline:
		s.insertNewline()
	case message.KindDeleteBackward:
		s.deleteBackward()
	case message.KindDeleteForward:
		s.deleteForward()
	case message.KindDeleteWordBackward:
		s.deleteWordBackward()
	case message.KindDeleteWordForward:
		s.deleteWordForward()
	case message.KindDeleteLine:
		s.deleteLine()
	case message.KindSelectAll:
		s.selectAll()
	case message.KindSelectWord:
		s.selectWord()
	case message.KindSelectLine:
		s.selectLine()
	case message.KindCollapseSelection:
		s.cursors.CollapseAll()
	case message.KindAddCursorAbove:
		s.addCursorVertical(-1)
	case message.KindAddCursorBelow:
		s.addCursorVertical(1)
	case message.KindAddCursorAtNextOccurrence:
		s.addNextOccurrence()
	case message.KindUnselectOccurrence:
		s.unselectOccurrence()
	case message.KindAddCursorsAtAllOccurrences:
		s.addAllOccurrences()
	case message.KindCollapseCursors:
		s.collapseCursors()
	case message.KindCopy:
		res.Clipboard, res.HasClipboard = s.copySelections()
	case message.KindCut:
		res.Clipboard, res.HasClipboard = s.cut()
	case message.KindUndo:
		s.undo()
	case message.KindRedo:
		s.redo()
	case message.KindIndent:
		s.indent()
	case message.KindUnindent:
		s.unindent()
	case message.KindDuplicate:
		s.duplicate()
	case message.KindMoveLineUp:
		s.moveLines(-1)
	case message.KindMoveLineDown:
		s.moveLines(1)
	}

	res.TextChanged = s.revision != rev
	res.CursorsChanged = !s.cursors.Equal(before)
	if res.TextChanged || msg.IsMovement() {
		s.added = s.added[:0]
	}
	return res
}

// gate applies the context rules that turn whole messages into no-ops.
func (s *State[B]) gate(msg message.Message) (Result, bool) {
	c := s.constraints
	switch {
	case msg.RequiresMultiline() && !c.AllowMultiline:
		return Result{Confirm: msg.Kind == message.KindInsertNewline, Suppressed: true}, true
	case msg.RequiresMultiCursor() && !c.AllowMultiCursor:
		return Result{Suppressed: true}, true
	case msg.IsSelection() && !c.AllowSelection:
		return Result{Suppressed: true}, true
	case (msg.Kind == message.KindUndo || msg.Kind == message.KindRedo) && !c.EnableUndo:
		return Result{Suppressed: true}, true
	}
	return Result{}, false
}
