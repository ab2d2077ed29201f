package term

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/constraint"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/message"
)

// SaveFunc writes the editor text, with its original line endings, to
// path.
type SaveFunc func(path, text string) error

// UI is the terminal front end of one session. It translates key events
// into messages, opens prompts for go-to-line, find and commands, and
// draws the editor with a status line.
//
// All methods run on the goroutine that calls Run.
type UI struct {
	screen  tcell.Screen
	session *app.Session
	theme   Theme
	logger  *app.Logger

	path string
	save SaveFunc

	updates <-chan config.Update

	top, left int
	notice    string
}

// Option configures a UI.
type Option func(*UI)

// WithFile sets the file the editor content is saved to.
func WithFile(path string, save SaveFunc) Option {
	return func(u *UI) {
		u.path = path
		u.save = save
	}
}

// WithConfigUpdates applies configuration reloads delivered on ch.
func WithConfigUpdates(ch <-chan config.Update) Option {
	return func(u *UI) {
		u.updates = ch
	}
}

// WithLogger sets the logger.
func WithLogger(l *app.Logger) Option {
	return func(u *UI) {
		if l != nil {
			u.logger = l
		}
	}
}

// New creates a UI drawing session on screen. The screen must already be
// initialized.
func New(screen tcell.Screen, session *app.Session, opts ...Option) *UI {
	u := &UI{
		screen:  screen,
		session: session,
		theme:   NewTheme(session.Config().Palette()),
		logger:  app.NullLogger,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.logger = u.logger.WithComponent("term")
	return u
}

// Run processes events until the user quits or ctx is cancelled.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go u.screen.ChannelEvents(events, quit)
	defer close(quit)

	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if u.HandleEvent(ev) {
				return nil
			}
		case upd := <-u.updates:
			u.applyUpdate(upd)
		}
		u.Draw()
	}
}

// HandleEvent processes one event and reports whether the UI should exit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		a, ok := Translate(ev)
		if !ok {
			return false
		}
		u.notice = ""
		return u.perform(a)
	}
	return false
}

func (u *UI) perform(a Action) bool {
	if a.HasMessage {
		if res := u.session.Dispatch(a.Message); res.Confirm {
			return u.confirm()
		}
		return false
	}

	switch a.Command {
	case CmdQuit:
		return true
	case CmdSave:
		u.saveFile()
	case CmdGotoLine:
		u.session.Enter(constraint.ContextGotoLine, "")
	case CmdFind:
		u.session.Enter(constraint.ContextFindQuery, u.session.Editor().SelectedText())
	case CmdCommandPalette:
		u.session.Enter(constraint.ContextCommandPalette, "")
	case CmdCancel:
		if err := u.session.Cancel(); errors.Is(err, app.ErrNoModal) {
			u.session.Dispatch(message.CollapseCursors)
			u.session.Dispatch(message.CollapseSelection)
		}
	case CmdPaste:
		if _, err := u.session.PasteFromClipboard(); err != nil {
			u.notice = err.Error()
		}
	}
	return false
}

// confirm commits the open prompt and acts on its text.
func (u *UI) confirm() bool {
	text, ctx, err := u.session.Commit()
	if err != nil {
		return false
	}
	switch ctx.Kind {
	case constraint.KindGotoLine:
		u.gotoLine(text)
	case constraint.KindFindQuery:
		u.find(text)
	case constraint.KindCommandPalette:
		return u.runCommand(text)
	}
	return false
}

// parseGoto parses "line" or "line:column", both one-based.
func parseGoto(text string) (cursor.Position, bool) {
	lineText, colText, hasCol := strings.Cut(text, ":")
	line, err := strconv.Atoi(lineText)
	if err != nil || line < 1 {
		return cursor.Position{}, false
	}
	col := 1
	if hasCol {
		if col, err = strconv.Atoi(colText); err != nil || col < 1 {
			return cursor.Position{}, false
		}
	}
	return cursor.Position{Line: line - 1, Column: col - 1}, true
}

func (u *UI) gotoLine(text string) {
	pos, ok := parseGoto(text)
	if !ok {
		u.notice = fmt.Sprintf("invalid location %q", text)
		return
	}
	u.session.Editor().GoTo(pos)
}

// find selects the next occurrence of needle after the editor cursor,
// wrapping at the end of the document.
func (u *UI) find(needle string) {
	if needle == "" {
		return
	}
	ed := u.session.Editor()
	buf := ed.Buffer()
	content := buf.Content()
	from := buf.PositionToOffset(ed.Selection().End())

	at := strings.Index(content[from:], needle)
	if at >= 0 {
		at += from
	} else {
		at = strings.Index(content, needle)
	}
	if at < 0 {
		u.notice = fmt.Sprintf("not found: %s", needle)
		return
	}
	ed.Select(buf.OffsetToPosition(at), buf.OffsetToPosition(at+len(needle)))
}

// runCommand executes a command palette entry.
func (u *UI) runCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "q", "quit":
		return true
	case "w", "write", "save":
		u.saveFile()
	case "wq":
		return u.saveFile()
	case "undo":
		u.session.Dispatch(message.Undo)
	case "redo":
		u.session.Dispatch(message.Redo)
	case "goto":
		if len(fields) > 1 {
			u.gotoLine(fields[1])
		}
	default:
		u.notice = fmt.Sprintf("unknown command %q", fields[0])
	}
	return false
}

// saveFile writes the editor text and reports whether it succeeded.
func (u *UI) saveFile() bool {
	if u.path == "" || u.save == nil {
		u.notice = "no file name"
		return false
	}
	if err := u.save(u.path, u.session.Export()); err != nil {
		u.logger.Error("save %s: %v", u.path, err)
		u.notice = "save failed: " + err.Error()
		return false
	}
	u.session.MarkSaved()
	u.notice = "saved " + u.path
	u.logger.Info("saved %s", u.path)
	return true
}

func (u *UI) applyUpdate(upd config.Update) {
	if upd.Err != nil {
		u.logger.Warn("config reload: %v", upd.Err)
		u.notice = "config: " + upd.Err.Error()
		return
	}
	u.session.SetConfig(upd.Config)
	u.theme = NewTheme(upd.Config.Palette())
}

func (u *UI) tabWidth() int {
	return max(1, u.session.Config().Editor.IndentWidth)
}

// Draw renders the editor and the status line.
func (u *UI) Draw() {
	s := u.screen
	w, h := s.Size()
	if w < 1 || h < 1 {
		return
	}
	s.Clear()
	rows := h - 1
	tab := u.tabWidth()

	ed := u.session.Editor()
	buf := ed.Buffer()
	cur := ed.Cursor()

	// Keep the active cursor in view
	if cur.Line < u.top {
		u.top = cur.Line
	}
	if rows > 0 && cur.Line >= u.top+rows {
		u.top = cur.Line - rows + 1
	}
	curX := columnToX(buf.Line(cur.Line), cur.Column, tab)
	if curX < u.left {
		u.left = curX
	}
	if curX >= u.left+w {
		u.left = curX - w + 1
	}

	carets := make(map[cursor.Position]bool)
	for i, c := range ed.Cursors() {
		if i != ed.ActiveIndex() {
			carets[c.Position] = true
		}
	}
	sels := ed.Selections()
	for row := 0; row < rows; row++ {
		line := u.top + row
		if line >= buf.LineCount() {
			break
		}
		drawLine(s, row, buf.Line(line), line, u.left, w, tab, sels, carets, u.theme)
	}

	if m, ok := u.session.Modal(); ok {
		x := drawText(s, 0, h-1, w, promptLabel(u.session.Active()), u.theme.Status)
		text := m.Text()
		end := drawText(s, x, h-1, w, text, u.theme.Status)
		fill(s, end, h-1, w, u.theme.Status)
		s.ShowCursor(x+columnToX(text, m.Cursor().Column, tab), h-1)
	} else {
		x := drawText(s, 0, h-1, w, u.statusText(), u.theme.Status)
		fill(s, x, h-1, w, u.theme.Status)
		s.ShowCursor(curX-u.left, cur.Line-u.top)
	}
	s.Show()
}

func promptLabel(ctx constraint.Context) string {
	switch ctx.Kind {
	case constraint.KindGotoLine:
		return "Go to line: "
	case constraint.KindFindQuery:
		return "Find: "
	case constraint.KindReplaceQuery:
		return "Replace: "
	case constraint.KindCommandPalette:
		return ":"
	}
	return ctx.String() + ": "
}

// statusText describes the editor: file, position, cursors, undo depth
// and the latest notice.
func (u *UI) statusText() string {
	st := u.session.Status()
	name := u.path
	if name == "" {
		name = "[scratch]"
	}
	if st.Modified {
		name += " [+]"
	}
	var b strings.Builder
	fmt.Fprintf(&b, " %s  Ln %d, Col %d", name, st.Line+1, st.Column+1)
	if st.LineEnding != buffer.LineEndingLF {
		fmt.Fprintf(&b, "  %s", st.LineEnding)
	}
	if st.Cursors > 1 {
		fmt.Fprintf(&b, "  %d cursors", st.Cursors)
	}
	fmt.Fprintf(&b, "  undo %d", st.UndoDepth)
	if u.notice != "" {
		b.WriteString("  ")
		b.WriteString(u.notice)
	}
	return b.String()
}
