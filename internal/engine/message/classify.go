package message

// IsEditing reports whether the message changes text.
func (m Message) IsEditing() bool {
	switch m.Kind {
	case KindInsertChar, KindInsertText, KindInsertNewline,
		KindDeleteBackward, KindDeleteForward,
		KindDeleteWordBackward, KindDeleteWordForward, KindDeleteLine,
		KindCut, KindPaste, KindUndo, KindRedo,
		KindIndent, KindUnindent, KindDuplicate,
		KindMoveLineUp, KindMoveLineDown:
		return true
	}
	return false
}

// IsMovement reports whether the message moves cursors.
func (m Message) IsMovement() bool {
	return m.Kind == KindMove || m.Kind == KindMoveWithSelection
}

// IsSelection reports whether the message creates or extends selections.
func (m Message) IsSelection() bool {
	switch m.Kind {
	case KindMoveWithSelection, KindSelectAll, KindSelectWord, KindSelectLine:
		return true
	}
	return false
}

// RequiresMultiCursor reports whether the message adds or removes
// secondary cursors.
func (m Message) RequiresMultiCursor() bool {
	switch m.Kind {
	case KindAddCursorAbove, KindAddCursorBelow,
		KindAddCursorAtNextOccurrence, KindUnselectOccurrence,
		KindAddCursorsAtAllOccurrences:
		return true
	}
	return false
}

// RequiresMultiline reports whether the message only makes sense in a
// multi-line buffer.
func (m Message) RequiresMultiline() bool {
	switch m.Kind {
	case KindInsertNewline, KindAddCursorAbove, KindAddCursorBelow,
		KindMoveLineUp, KindMoveLineDown:
		return true
	case KindMove, KindMoveWithSelection:
		return m.Target.CrossesLines()
	}
	return false
}

// IsCopy reports whether the message produces clipboard text.
func (m Message) IsCopy() bool {
	return m.Kind == KindCopy || m.Kind == KindCut
}
