package message

import (
	"fmt"
	"strconv"
)

// Kind enumerates message types.
type Kind uint8

// Message kinds.
const (
	KindMove Kind = iota
	KindMoveWithSelection
	KindInsertChar
	KindInsertText
	KindInsertNewline
	KindDeleteBackward
	KindDeleteForward
	KindDeleteWordBackward
	KindDeleteWordForward
	KindDeleteLine
	KindSelectAll
	KindSelectWord
	KindSelectLine
	KindCollapseSelection
	KindAddCursorAbove
	KindAddCursorBelow
	KindAddCursorAtNextOccurrence
	KindUnselectOccurrence
	KindAddCursorsAtAllOccurrences
	KindCollapseCursors
	KindCopy
	KindCut
	KindPaste
	KindUndo
	KindRedo
	KindIndent
	KindUnindent
	KindDuplicate
	KindMoveLineUp
	KindMoveLineDown
)

var kindNames = [...]string{
	KindMove:                       "Move",
	KindMoveWithSelection:          "MoveWithSelection",
	KindInsertChar:                 "InsertChar",
	KindInsertText:                 "InsertText",
	KindInsertNewline:              "InsertNewline",
	KindDeleteBackward:             "DeleteBackward",
	KindDeleteForward:              "DeleteForward",
	KindDeleteWordBackward:         "DeleteWordBackward",
	KindDeleteWordForward:          "DeleteWordForward",
	KindDeleteLine:                 "DeleteLine",
	KindSelectAll:                  "SelectAll",
	KindSelectWord:                 "SelectWord",
	KindSelectLine:                 "SelectLine",
	KindCollapseSelection:          "CollapseSelection",
	KindAddCursorAbove:             "AddCursorAbove",
	KindAddCursorBelow:             "AddCursorBelow",
	KindAddCursorAtNextOccurrence:  "AddCursorAtNextOccurrence",
	KindUnselectOccurrence:         "UnselectOccurrence",
	KindAddCursorsAtAllOccurrences: "AddCursorsAtAllOccurrences",
	KindCollapseCursors:            "CollapseCursors",
	KindCopy:                       "Copy",
	KindCut:                        "Cut",
	KindPaste:                      "Paste",
	KindUndo:                       "Undo",
	KindRedo:                       "Redo",
	KindIndent:                     "Indent",
	KindUnindent:                   "Unindent",
	KindDuplicate:                  "Duplicate",
	KindMoveLineUp:                 "MoveLineUp",
	KindMoveLineDown:               "MoveLineDown",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Target is the destination of a motion.
type Target uint8

// Motion targets.
const (
	Left Target = iota
	Right
	Up
	Down
	LineStart
	LineEnd
	LineStartSmart
	WordLeft
	WordRight
	DocumentStart
	DocumentEnd
	PageUp
	PageDown
)

var targetNames = [...]string{
	Left:           "Left",
	Right:          "Right",
	Up:             "Up",
	Down:           "Down",
	LineStart:      "LineStart",
	LineEnd:        "LineEnd",
	LineStartSmart: "LineStartSmart",
	WordLeft:       "WordLeft",
	WordRight:      "WordRight",
	DocumentStart:  "DocumentStart",
	DocumentEnd:    "DocumentEnd",
	PageUp:         "PageUp",
	PageDown:       "PageDown",
}

// String returns the target name.
func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "Target(" + strconv.Itoa(int(t)) + ")"
}

// IsVertical reports whether the target moves between lines while keeping
// a column.
func (t Target) IsVertical() bool {
	switch t {
	case Up, Down, PageUp, PageDown:
		return true
	}
	return false
}

// CrossesLines reports whether the target can only be reached in a
// multi-line buffer.
func (t Target) CrossesLines() bool {
	switch t {
	case Up, Down, PageUp, PageDown, DocumentStart, DocumentEnd:
		return true
	}
	return false
}

// Message is one editing command.
type Message struct {
	Kind   Kind
	Target Target // KindMove, KindMoveWithSelection
	Char   rune   // KindInsertChar
	Text   string // KindInsertText, KindPaste
}

// String returns a readable form of the message.
func (m Message) String() string {
	switch m.Kind {
	case KindMove, KindMoveWithSelection:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Target)
	case KindInsertChar:
		return fmt.Sprintf("%s(%q)", m.Kind, m.Char)
	case KindInsertText, KindPaste:
		return fmt.Sprintf("%s(%q)", m.Kind, m.Text)
	}
	return m.Kind.String()
}

// Move moves every cursor to target, collapsing selections.
func Move(t Target) Message { return Message{Kind: KindMove, Target: t} }

// MoveWithSelection moves every selection head to target.
func MoveWithSelection(t Target) Message { return Message{Kind: KindMoveWithSelection, Target: t} }

// InsertChar inserts r at every cursor.
func InsertChar(r rune) Message { return Message{Kind: KindInsertChar, Char: r} }

// InsertText inserts s at every cursor.
func InsertText(s string) Message { return Message{Kind: KindInsertText, Text: s} }

// Paste inserts s at every cursor, one line per cursor when the line
// count matches the cursor count.
func Paste(s string) Message { return Message{Kind: KindPaste, Text: s} }

// Simple returns a message of a kind that carries no payload.
func Simple(k Kind) Message { return Message{Kind: k} }

// Payload-free messages.
var (
	InsertNewline              = Simple(KindInsertNewline)
	DeleteBackward             = Simple(KindDeleteBackward)
	DeleteForward              = Simple(KindDeleteForward)
	DeleteWordBackward         = Simple(KindDeleteWordBackward)
	DeleteWordForward          = Simple(KindDeleteWordForward)
	DeleteLine                 = Simple(KindDeleteLine)
	SelectAll                  = Simple(KindSelectAll)
	SelectWord                 = Simple(KindSelectWord)
	SelectLine                 = Simple(KindSelectLine)
	CollapseSelection          = Simple(KindCollapseSelection)
	AddCursorAbove             = Simple(KindAddCursorAbove)
	AddCursorBelow             = Simple(KindAddCursorBelow)
	AddCursorAtNextOccurrence  = Simple(KindAddCursorAtNextOccurrence)
	UnselectOccurrence         = Simple(KindUnselectOccurrence)
	AddCursorsAtAllOccurrences = Simple(KindAddCursorsAtAllOccurrences)
	CollapseCursors            = Simple(KindCollapseCursors)
	Copy                       = Simple(KindCopy)
	Cut                        = Simple(KindCut)
	Undo                       = Simple(KindUndo)
	Redo                       = Simple(KindRedo)
	Indent                     = Simple(KindIndent)
	Unindent                   = Simple(KindUnindent)
	Duplicate                  = Simple(KindDuplicate)
	MoveLineUp                 = Simple(KindMoveLineUp)
	MoveLineDown               = Simple(KindMoveLineDown)
)
