package message

import "testing"

func TestClassification(t *testing.T) {
	tests := []struct {
		msg                                     Message
		editing, movement, selection, multi, ml bool
	}{
		{Move(Left), false, true, false, false, false},
		{Move(Up), false, true, false, false, true},
		{Move(PageDown), false, true, false, false, true},
		{Move(DocumentEnd), false, true, false, false, true},
		{MoveWithSelection(WordRight), false, true, true, false, false},
		{MoveWithSelection(Down), false, true, true, false, true},
		{InsertChar('x'), true, false, false, false, false},
		{InsertText("ab"), true, false, false, false, false},
		{InsertNewline, true, false, false, false, true},
		{DeleteWordBackward, true, false, false, false, false},
		{DeleteLine, true, false, false, false, false},
		{SelectAll, false, false, true, false, false},
		{SelectWord, false, false, true, false, false},
		{SelectLine, false, false, true, false, false},
		{AddCursorAbove, false, false, false, true, true},
		{AddCursorBelow, false, false, false, true, true},
		{AddCursorAtNextOccurrence, false, false, false, true, false},
		{UnselectOccurrence, false, false, false, true, false},
		{AddCursorsAtAllOccurrences, false, false, false, true, false},
		{CollapseCursors, false, false, false, false, false},
		{Copy, false, false, false, false, false},
		{Cut, true, false, false, false, false},
		{Paste("p"), true, false, false, false, false},
		{Undo, true, false, false, false, false},
		{Redo, true, false, false, false, false},
		{Indent, true, false, false, false, false},
		{Duplicate, true, false, false, false, false},
		{MoveLineUp, true, false, false, false, true},
		{MoveLineDown, true, false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := tt.msg.IsEditing(); got != tt.editing {
				t.Errorf("IsEditing() = %v, want %v", got, tt.editing)
			}
			if got := tt.msg.IsMovement(); got != tt.movement {
				t.Errorf("IsMovement() = %v, want %v", got, tt.movement)
			}
			if got := tt.msg.IsSelection(); got != tt.selection {
				t.Errorf("IsSelection() = %v, want %v", got, tt.selection)
			}
			if got := tt.msg.RequiresMultiCursor(); got != tt.multi {
				t.Errorf("RequiresMultiCursor() = %v, want %v", got, tt.multi)
			}
			if got := tt.msg.RequiresMultiline(); got != tt.ml {
				t.Errorf("RequiresMultiline() = %v, want %v", got, tt.ml)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		msg  Message
		want string
	}{
		{Move(LineStartSmart), "Move(LineStartSmart)"},
		{InsertChar('é'), "InsertChar('é')"},
		{Paste("a\nb"), `Paste("a\nb")`},
		{Undo, "Undo"},
		{Message{Kind: Kind(200)}, "Kind(200)"},
	}
	for _, tt := range tests {
		if got := tt.msg.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTargetProperties(t *testing.T) {
	for _, tgt := range []Target{Up, Down, PageUp, PageDown} {
		if !tgt.IsVertical() {
			t.Errorf("%v should be vertical", tgt)
		}
	}
	for _, tgt := range []Target{Left, Right, LineEnd, WordLeft, DocumentStart} {
		if tgt.IsVertical() {
			t.Errorf("%v should not be vertical", tgt)
		}
	}
}
