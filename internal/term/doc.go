// Package term is the terminal front end: it reads tcell key events,
// translates them into engine messages or prompt commands for an
// app.Session, and draws the editor with a status line.
//
// Column arithmetic follows the engine (characters); screen offsets are
// computed per grapheme cluster with uniseg so wide and combining
// characters line up. Tabs expand to the configured indent width.
//
// Key bindings:
//
//	Ctrl+S save          Ctrl+Q quit          Ctrl+P command prompt
//	Ctrl+G go to line    Ctrl+F find          Esc    cancel / collapse
//	Ctrl+Z undo          Ctrl+Y redo          Ctrl+A select all
//	Ctrl+C copy          Ctrl+X cut           Ctrl+V paste
//	Ctrl+D next match    Ctrl+U unselect      Alt+A  all matches
//	Ctrl+L select line   Ctrl+W select word   Ctrl+K delete line
//	Alt+D  duplicate     Alt+Up/Down move line
//	Ctrl+Alt+Up/Down add cursor              Tab/Shift+Tab indent
package term
