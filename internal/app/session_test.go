package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine/constraint"
	"github.com/dshills/quill/internal/engine/message"
)

type failingClipboard struct{}

var errNoDisplay = errors.New("no display")

func (failingClipboard) ReadAll() (string, error) { return "", errNoDisplay }
func (failingClipboard) WriteAll(string) error    { return errNoDisplay }

func typeText(s *Session, text string) {
	for _, r := range text {
		s.Dispatch(message.InsertChar(r))
	}
}

func TestSession_GotoLineCommit(t *testing.T) {
	s := NewSession("one\ntwo\n")
	s.Enter(constraint.ContextGotoLine, "")
	if got := s.Active(); got != constraint.ContextGotoLine {
		t.Fatalf("Active() = %v, want goto_line", got)
	}

	typeText(s, "1a2:x3")
	if got := s.Text(); got != "12:3" {
		t.Errorf("Text() = %q, want %q", got, "12:3")
	}

	res := s.Dispatch(message.InsertNewline)
	if !res.Confirm || !res.Suppressed {
		t.Errorf("newline result = %+v, want Confirm and Suppressed", res)
	}

	text, ctx, err := s.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if text != "12:3" || ctx != constraint.ContextGotoLine {
		t.Errorf("Commit() = %q, %v, want %q, goto_line", text, ctx, "12:3")
	}
	if got := s.Active(); got != constraint.ContextEditor {
		t.Errorf("Active() after commit = %v, want editor", got)
	}
	if got := s.Editor().Text(); got != "one\ntwo\n" {
		t.Errorf("editor text = %q, unchanged text expected", got)
	}
}

func TestSession_EnterSanitizesInitial(t *testing.T) {
	s := NewSession("")
	s.Enter(constraint.ContextFindQuery, "foo\nbar")
	if got := s.Text(); got != "foobar" {
		t.Errorf("Text() = %q, want %q", got, "foobar")
	}
	state, ok := s.Modal()
	if !ok {
		t.Fatal("Modal() = false, want an open modal")
	}
	if got := state.Cursor().Column; got != 6 {
		t.Errorf("cursor column = %d, want 6", got)
	}
}

func TestSession_EnterReplacesModal(t *testing.T) {
	s := NewSession("")
	s.Enter(constraint.ContextFindQuery, "needle")
	s.Enter(constraint.ContextCsvCell(2, 3), "42")
	if got := s.Active(); got != constraint.ContextCsvCell(2, 3) {
		t.Errorf("Active() = %v, want csv_cell(2,3)", got)
	}
	if got := s.Text(); got != "42" {
		t.Errorf("Text() = %q, want 42", got)
	}

	s.Enter(constraint.ContextEditor, "")
	if _, ok := s.Modal(); ok {
		t.Error("entering the editor left a modal open")
	}
}

func TestSession_CommitCancelWithoutModal(t *testing.T) {
	s := NewSession("")
	if _, _, err := s.Commit(); !errors.Is(err, ErrNoModal) {
		t.Errorf("Commit() error = %v, want ErrNoModal", err)
	}
	if err := s.Cancel(); !errors.Is(err, ErrNoModal) {
		t.Errorf("Cancel() error = %v, want ErrNoModal", err)
	}
}

func TestSession_CancelDiscards(t *testing.T) {
	s := NewSession("doc")
	s.Enter(constraint.ContextCommandPalette, "")
	typeText(s, "quit")
	if err := s.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got := s.Text(); got != "doc" {
		t.Errorf("Text() = %q, want the editor text", got)
	}
	snap := s.Metrics().Snapshot()
	if snap.ContextsEntered != 1 || snap.Cancels != 1 || snap.Commits != 0 {
		t.Errorf("metrics = %+v", snap)
	}
}

func TestSession_ConfigOverridesApplyOnEnter(t *testing.T) {
	cfg := config.Default()
	limit := 3
	cfg.Contexts["goto_line"] = config.ContextConfig{MaxLength: &limit}

	s := NewSession("", WithConfig(cfg))
	s.Enter(constraint.ContextGotoLine, "")
	typeText(s, "12345")
	if got := s.Text(); got != "123" {
		t.Errorf("Text() = %q, want %q", got, "123")
	}

	// A reloaded config affects the next entry only.
	next := config.Default()
	s.SetConfig(next)
	typeText(s, "4")
	if got := s.Text(); got != "123" {
		t.Errorf("Text() after SetConfig = %q, want %q", got, "123")
	}
	s.Enter(constraint.ContextGotoLine, "")
	typeText(s, "12345")
	if got := s.Text(); got != "12345" {
		t.Errorf("Text() after re-entry = %q, want %q", got, "12345")
	}
}

func TestSession_CopyPasteThroughClipboard(t *testing.T) {
	clip := &MemoryClipboard{}
	s := NewSession("alpha", WithClipboard(clip))

	s.Dispatch(message.SelectAll)
	res := s.Dispatch(message.Copy)
	if !res.HasClipboard || res.Clipboard != "alpha" {
		t.Fatalf("Copy result = %+v", res)
	}
	if got, _ := clip.ReadAll(); got != "alpha" {
		t.Errorf("clipboard = %q, want alpha", got)
	}

	s.Enter(constraint.ContextFindQuery, "")
	if _, err := s.PasteFromClipboard(); err != nil {
		t.Fatalf("PasteFromClipboard: %v", err)
	}
	if got := s.Text(); got != "alpha" {
		t.Errorf("Text() = %q, want alpha", got)
	}
}

func TestSession_PasteEmptyClipboard(t *testing.T) {
	s := NewSession("")
	if _, err := s.PasteFromClipboard(); !errors.Is(err, ErrClipboardEmpty) {
		t.Errorf("PasteFromClipboard() error = %v, want ErrClipboardEmpty", err)
	}
}

func TestSession_ClipboardFailureFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	s := NewSession("word", WithClipboard(failingClipboard{}), WithLogger(logger))

	s.Dispatch(message.SelectAll)
	s.Dispatch(message.Cut)
	if got := s.Text(); got != "" {
		t.Errorf("Text() after cut = %q, want empty", got)
	}

	if _, err := s.PasteFromClipboard(); err != nil {
		t.Fatalf("PasteFromClipboard: %v", err)
	}
	if got := s.Text(); got != "word" {
		t.Errorf("Text() = %q, want the last cut text", got)
	}
	if got := s.Metrics().Snapshot().ClipboardErrors; got != 2 {
		t.Errorf("ClipboardErrors = %d, want 2", got)
	}
	if !strings.Contains(buf.String(), "clipboard write failed") {
		t.Errorf("log missing clipboard warning: %q", buf.String())
	}
}

func TestSession_ClipboardReadErrorWithNothingCopied(t *testing.T) {
	s := NewSession("", WithClipboard(failingClipboard{}))
	_, err := s.PasteFromClipboard()
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("error = %v, want *OperationError", err)
	}
	if !errors.Is(err, errNoDisplay) {
		t.Errorf("error does not wrap the clipboard failure: %v", err)
	}
}

func TestSession_LogsSuppressedMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	s := NewSession("", WithLogger(logger))
	s.Enter(constraint.ContextGotoLine, "")
	s.Dispatch(message.AddCursorBelow)

	out := buf.String()
	if !strings.Contains(out, "suppressed AddCursorBelow") {
		t.Errorf("log = %q, want a suppression entry", out)
	}
	if !strings.Contains(out, "context=goto_line") {
		t.Errorf("log = %q, want the context field", out)
	}
}

func TestSession_EditorFanOutAndStatus(t *testing.T) {
	s := NewSession("a\nb\nc")
	s.Dispatch(message.AddCursorBelow)
	s.Dispatch(message.AddCursorBelow)
	s.Dispatch(message.InsertChar('-'))

	if got := s.Text(); got != "-a\n-b\n-c" {
		t.Errorf("Text() = %q, want %q", got, "-a\n-b\n-c")
	}
	st := s.Status()
	if st.Cursors != 3 || st.UndoDepth != 1 || !st.Modified {
		t.Errorf("Status() = %+v, want 3 cursors, undo depth 1, modified", st)
	}

	s.Dispatch(message.Undo)
	if got := s.Text(); got != "a\nb\nc" {
		t.Errorf("Text() after undo = %q", got)
	}
	if got := s.Metrics().Snapshot().Undos; got != 1 {
		t.Errorf("Undos = %d, want 1", got)
	}
}

func TestSession_ModifiedTracksSaves(t *testing.T) {
	s := NewSession("a")
	if s.Status().Modified {
		t.Fatal("new session reports modified")
	}

	typeText(s, "b")
	s.MarkSaved()
	if st := s.Status(); st.Modified {
		t.Errorf("Status() after MarkSaved = %+v, want unmodified", st)
	}

	// Undoing past the save changes the text again.
	s.Dispatch(message.Undo)
	if !s.Modified() || !s.Status().Modified {
		t.Error("undo after save not reported as modified")
	}

	s.MarkSaved()
	s.Enter(constraint.ContextFindQuery, "query")
	typeText(s, "!")
	if st := s.Status(); st.Context != constraint.ContextFindQuery || st.Modified {
		t.Errorf("Status() in find = %+v, want the saved editor reported unmodified", st)
	}
}

func TestSession_ExportKeepsLineEndings(t *testing.T) {
	s := NewSession("one\r\ntwo\r\n")
	if got := s.Text(); got != "one\ntwo\n" {
		t.Errorf("Text() = %q, want LF-normalized", got)
	}
	s.Dispatch(message.Move(message.DocumentEnd))
	typeText(s, "three")
	s.Dispatch(message.InsertNewline)

	if got, want := s.Export(), "one\r\ntwo\r\nthree\r\n"; got != want {
		t.Errorf("Export() = %q, want %q", got, want)
	}
	if got := s.Status().LineEnding; got.String() != "CRLF" {
		t.Errorf("Status().LineEnding = %v, want CRLF", got)
	}
}

func TestSession_ReloadLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		opts   []SessionOption
		reload string
		want   LogLevel
	}{
		{"config wins without a pin", nil, "error", LogLevelError},
		{"pinned level survives reload", []SessionOption{WithLogLevel(LogLevelDebug)}, "error", LogLevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
			s := NewSession("", append(tt.opts, WithLogger(logger))...)

			cfg := config.Default()
			cfg.Log.Level = tt.reload
			s.SetConfig(cfg)

			if got := logger.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}
