package app

import (
	"github.com/google/uuid"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/constraint"
	"github.com/dshills/quill/internal/engine/message"
)

// Session owns the editable states of one editor window: the document
// editor and at most one transient single-line context (a modal prompt or
// a spreadsheet cell). Messages go to whichever of the two is active.
//
// A Session is driven from a single goroutine.
type Session struct {
	id  uuid.UUID
	cfg *config.Config

	editor *engine.State[*buffer.DocumentBuffer]
	modal  *modal

	clipboard Clipboard
	// lastCopy backs paste when the clipboard cannot be read
	lastCopy string

	logger  *Logger
	metrics *Metrics
	// level is kept across configuration reloads when pinned
	level       LogLevel
	levelPinned bool

	saved uint64 // editor revision at the last save
}

type modal struct {
	id     uuid.UUID
	ctx    constraint.Context
	state  *engine.State[*buffer.StringBuffer]
	logger *Logger
}

// Status summarizes the active context for display.
type Status struct {
	Context   constraint.Context
	Line      int
	Column    int
	Cursors   int
	UndoDepth int
	// Modified and LineEnding describe the editor document whichever
	// context is active.
	Modified   bool
	LineEnding buffer.LineEnding
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithConfig sets the configuration contexts are built from.
func WithConfig(cfg *config.Config) SessionOption {
	return func(s *Session) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithClipboard sets the clipboard Copy, Cut and paste use.
func WithClipboard(c Clipboard) SessionOption {
	return func(s *Session) {
		if c != nil {
			s.clipboard = c
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLogLevel pins the logger to level. Configuration reloads no longer
// change it.
func WithLogLevel(level LogLevel) SessionOption {
	return func(s *Session) {
		s.level = level
		s.levelPinned = true
	}
}

// WithMetrics sets the metrics the session records into.
func WithMetrics(m *Metrics) SessionOption {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewSession creates a session editing text.
func NewSession(text string, opts ...SessionOption) *Session {
	s := &Session{
		id:        uuid.New(),
		cfg:       config.Default(),
		clipboard: &MemoryClipboard{},
		logger:    NullLogger,
		metrics:   NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.levelPinned {
		s.logger.SetLevel(s.level)
	}
	s.logger = s.logger.WithComponent("session").WithField("session", shortID(s.id))
	s.editor = engine.New(
		buffer.NewDocumentBuffer(text, buffer.WithDetectedLineEnding()),
		s.cfg.Constraints(constraint.ContextEditor),
		s.cfg.EngineOptions()...,
	)
	return s
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Editor returns the document editor state.
func (s *Session) Editor() *engine.State[*buffer.DocumentBuffer] {
	return s.editor
}

// Modal returns the transient context's state, if one is active.
func (s *Session) Modal() (*engine.State[*buffer.StringBuffer], bool) {
	if s.modal == nil {
		return nil, false
	}
	return s.modal.state, true
}

// Metrics returns the session metrics.
func (s *Session) Metrics() *Metrics {
	return s.metrics
}

// Config returns the configuration new contexts are built from.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// SetConfig replaces the configuration. Contexts entered afterwards use
// it; the context currently open keeps the settings it was created with.
func (s *Session) SetConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	s.cfg = cfg
	if !s.levelPinned {
		s.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	}
	s.logger.Info("configuration reloaded")
}

// Export returns the editor text with the document's original line
// endings restored.
func (s *Session) Export() string {
	return s.editor.Buffer().Export()
}

// MarkSaved records that the editor text as of now has been written out.
func (s *Session) MarkSaved() {
	s.saved = s.editor.Revision()
}

// Modified reports whether the editor text changed since the last
// MarkSaved, or since the session was created.
func (s *Session) Modified() bool {
	return s.editor.Revision() != s.saved
}

// Active returns the context messages are currently routed to.
func (s *Session) Active() constraint.Context {
	if s.modal != nil {
		return s.modal.ctx
	}
	return constraint.ContextEditor
}

// Text returns the content of the active context.
func (s *Session) Text() string {
	if s.modal != nil {
		return s.modal.state.Text()
	}
	return s.editor.Text()
}

// Status reports on the active context.
func (s *Session) Status() Status {
	st := Status{
		Modified:   s.Modified(),
		LineEnding: s.editor.Buffer().LineEnding(),
	}
	if m := s.modal; m != nil {
		c := m.state.Cursor()
		st.Context = m.ctx
		st.Line, st.Column = c.Line, c.Column
		st.Cursors = m.state.CursorCount()
		st.UndoDepth = m.state.UndoCount()
		return st
	}
	c := s.editor.Cursor()
	st.Context = constraint.ContextEditor
	st.Line, st.Column = c.Line, c.Column
	st.Cursors = s.editor.CursorCount()
	st.UndoDepth = s.editor.UndoCount()
	return st
}

// Enter makes ctx the active context. Entering the editor closes any open
// transient context. Entering any other context replaces the open one with
// a fresh state holding initial, sanitized to the context's constraints,
// with the cursor at its end.
func (s *Session) Enter(ctx constraint.Context, initial string) {
	if ctx.IsEditor() {
		if s.modal != nil {
			s.close("left")
		}
		return
	}
	if s.modal != nil {
		s.close("replaced")
	}

	c := s.cfg.Constraints(ctx)
	text := constraint.Truncate(c.Sanitize(buffer.NormalizeLineEndings(initial)), c.Remaining(0))
	state := engine.New(buffer.NewStringBuffer(text), c, s.cfg.EngineOptions()...)
	state.Apply(message.Move(message.DocumentEnd))

	id := uuid.New()
	s.modal = &modal{
		id:     id,
		ctx:    ctx,
		state:  state,
		logger: s.logger.WithFields(map[string]any{"context": ctx.String(), "instance": shortID(id)}),
	}
	s.metrics.RecordEnter()
	s.modal.logger.Debug("context entered")
}

// Commit closes the transient context and returns its text and context.
func (s *Session) Commit() (string, constraint.Context, error) {
	if s.modal == nil {
		return "", constraint.ContextEditor, ErrNoModal
	}
	text, ctx := s.modal.state.Text(), s.modal.ctx
	s.metrics.RecordCommit()
	s.close("committed")
	return text, ctx, nil
}

// Cancel closes the transient context, discarding its text.
func (s *Session) Cancel() error {
	if s.modal == nil {
		return ErrNoModal
	}
	s.metrics.RecordCancel()
	s.close("cancelled")
	return nil
}

func (s *Session) close(how string) {
	s.modal.logger.Debug("context %s", how)
	s.modal = nil
}

// Dispatch applies msg to the active context. Text produced by Copy and
// Cut is written to the clipboard.
func (s *Session) Dispatch(msg message.Message) engine.Result {
	timer := StartTimer()
	var res engine.Result
	logger := s.logger
	if s.modal != nil {
		res = s.modal.state.Apply(msg)
		logger = s.modal.logger
	} else {
		res = s.editor.Apply(msg)
	}
	s.metrics.RecordApply(msg, res, timer.Elapsed())

	if res.Suppressed {
		logger.Debug("suppressed %s", msg)
	}
	if res.HasClipboard {
		s.lastCopy = res.Clipboard
		if err := s.clipboard.WriteAll(res.Clipboard); err != nil {
			s.metrics.RecordClipboardError()
			logger.Warn("clipboard write failed: %v", err)
		}
	}
	return res
}

// PasteFromClipboard pastes the clipboard text into the active context.
// When the clipboard cannot be read, the last copied text is used.
func (s *Session) PasteFromClipboard() (engine.Result, error) {
	text, err := s.clipboard.ReadAll()
	if err != nil {
		s.metrics.RecordClipboardError()
		s.logger.Warn("clipboard read failed: %v", err)
		text = s.lastCopy
	}
	if text == "" {
		if err != nil {
			return engine.Result{}, NewOperationError("paste", "clipboard", err)
		}
		return engine.Result{}, ErrClipboardEmpty
	}
	return s.Dispatch(message.Paste(text)), nil
}
