package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/engine/message"
)

// Command is a front-end action that is not an engine message.
type Command uint8

// Front-end commands.
const (
	CmdNone Command = iota
	CmdQuit
	CmdSave
	CmdGotoLine
	CmdFind
	CmdCommandPalette
	CmdCancel
	CmdPaste
)

var commandNames = [...]string{
	CmdNone:           "none",
	CmdQuit:           "quit",
	CmdSave:           "save",
	CmdGotoLine:       "goto_line",
	CmdFind:           "find",
	CmdCommandPalette: "command_palette",
	CmdCancel:         "cancel",
	CmdPaste:          "paste",
}

// String returns the command name.
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Action is the outcome of translating a key: either a message for the
// active context or a front-end command.
type Action struct {
	Command    Command
	Message    message.Message
	HasMessage bool
}

func send(m message.Message) Action { return Action{Message: m, HasMessage: true} }
func run(c Command) Action          { return Action{Command: c} }

// ctrlKeys maps control keys to their actions.
var ctrlKeys = map[tcell.Key]Action{
	tcell.KeyCtrlA: send(message.SelectAll),
	tcell.KeyCtrlC: send(message.Copy),
	tcell.KeyCtrlX: send(message.Cut),
	tcell.KeyCtrlV: run(CmdPaste),
	tcell.KeyCtrlZ: send(message.Undo),
	tcell.KeyCtrlY: send(message.Redo),
	tcell.KeyCtrlD: send(message.AddCursorAtNextOccurrence),
	tcell.KeyCtrlU: send(message.UnselectOccurrence),
	tcell.KeyCtrlL: send(message.SelectLine),
	tcell.KeyCtrlW: send(message.SelectWord),
	tcell.KeyCtrlK: send(message.DeleteLine),
	tcell.KeyCtrlQ: run(CmdQuit),
	tcell.KeyCtrlS: run(CmdSave),
	tcell.KeyCtrlG: run(CmdGotoLine),
	tcell.KeyCtrlF: run(CmdFind),
	tcell.KeyCtrlP: run(CmdCommandPalette),
}

// altRunes maps Alt+letter to actions.
var altRunes = map[rune]Action{
	'd': send(message.Duplicate),
	'a': send(message.AddCursorsAtAllOccurrences),
	'c': send(message.CollapseCursors),
}

// Translate turns a key event into an action. The second result is false
// for keys with no binding.
func Translate(ev *tcell.EventKey) (Action, bool) {
	mod := ev.Modifiers()
	ctrl := mod&tcell.ModCtrl != 0
	alt := mod&tcell.ModAlt != 0
	shift := mod&tcell.ModShift != 0

	if a, ok := ctrlKeys[ev.Key()]; ok {
		return a, true
	}

	switch ev.Key() {
	case tcell.KeyRune:
		if alt {
			a, ok := altRunes[ev.Rune()]
			return a, ok
		}
		return send(message.InsertChar(ev.Rune())), true
	case tcell.KeyEnter:
		return send(message.InsertNewline), true
	case tcell.KeyTab:
		return send(message.Indent), true
	case tcell.KeyBacktab:
		return send(message.Unindent), true
	case tcell.KeyEscape:
		return run(CmdCancel), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if alt || ctrl {
			return send(message.DeleteWordBackward), true
		}
		return send(message.DeleteBackward), true
	case tcell.KeyDelete:
		if alt || ctrl {
			return send(message.DeleteWordForward), true
		}
		return send(message.DeleteForward), true
	case tcell.KeyUp, tcell.KeyDown:
		up := ev.Key() == tcell.KeyUp
		switch {
		case ctrl && alt:
			if up {
				return send(message.AddCursorAbove), true
			}
			return send(message.AddCursorBelow), true
		case alt:
			if up {
				return send(message.MoveLineUp), true
			}
			return send(message.MoveLineDown), true
		}
		if up {
			return motion(message.Up, shift), true
		}
		return motion(message.Down, shift), true
	case tcell.KeyLeft:
		if ctrl {
			return motion(message.WordLeft, shift), true
		}
		return motion(message.Left, shift), true
	case tcell.KeyRight:
		if ctrl {
			return motion(message.WordRight, shift), true
		}
		return motion(message.Right, shift), true
	case tcell.KeyHome:
		if ctrl {
			return motion(message.DocumentStart, shift), true
		}
		return motion(message.LineStartSmart, shift), true
	case tcell.KeyEnd:
		if ctrl {
			return motion(message.DocumentEnd, shift), true
		}
		return motion(message.LineEnd, shift), true
	case tcell.KeyPgUp:
		return motion(message.PageUp, shift), true
	case tcell.KeyPgDn:
		return motion(message.PageDown, shift), true
	}
	return Action{}, false
}

func motion(t message.Target, extend bool) Action {
	if extend {
		return send(message.MoveWithSelection(t))
	}
	return send(message.Move(t))
}
