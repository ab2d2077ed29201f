package app

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel orders log lines by severity.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

func (l LogLevel) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLogLevel maps a configuration name to a level, ignoring case.
// "warning" is accepted for warn; anything unrecognized is info.
func ParseLogLevel(s string) LogLevel {
	if strings.EqualFold(s, "warning") {
		return LogLevelWarn
	}
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(l)
		}
	}
	return LogLevelInfo
}

// field is one key=value pair attached to a Logger.
type field struct {
	key   string
	value any
}

// Logger writes one line per call:
//
//	2024-01-02T03:04:05.000 [INFO] quill: entered goto_line {ctx=..., session=...}
//
// Derived loggers carry their own fields but share level, output and
// lock with the logger they came from, so SetLevel on the root applies
// to every component.
type Logger struct {
	sink   *sink
	prefix string
	fields []field // sorted by key
}

type sink struct {
	mu     sync.Mutex
	level  LogLevel
	w      io.Writer
	closed bool
	now    func() time.Time
}

// LoggerConfig configures NewLogger. A nil Output means os.Stderr.
type LoggerConfig struct {
	Level  LogLevel
	Output io.Writer
	Prefix string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: LogLevelInfo, Output: os.Stderr, Prefix: "quill"}
}

func NewLogger(cfg LoggerConfig) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		sink:   &sink{level: cfg.Level, w: w, now: time.Now},
		prefix: cfg.Prefix,
	}
}

// NullLogger discards everything.
var NullLogger = &Logger{sink: &sink{closed: true, w: io.Discard, now: time.Now}}

// WithField returns a logger that adds key=value to every line. An
// existing key is overwritten.
func (l *Logger) WithField(key string, value any) *Logger {
	fields := slices.Clone(l.fields)
	i, found := slices.BinarySearchFunc(fields, key, func(f field, k string) int {
		return strings.Compare(f.key, k)
	})
	if found {
		fields[i].value = value
	} else {
		fields = slices.Insert(fields, i, field{key, value})
	}
	return &Logger{sink: l.sink, prefix: l.prefix, fields: fields}
}

func (l *Logger) WithFields(fields map[string]any) *Logger {
	out := l
	for k, v := range fields {
		out = out.WithField(k, v)
	}
	if out == l {
		return &Logger{sink: l.sink, prefix: l.prefix, fields: slices.Clone(l.fields)}
	}
	return out
}

func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

func (l *Logger) Level() LogLevel {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	l.sink.w = w
	l.sink.mu.Unlock()
}

func (l *Logger) Debug(format string, args ...any) { l.write(LogLevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.write(LogLevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.write(LogLevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.write(LogLevelError, format, args) }

func (l *Logger) write(level LogLevel, format string, args []any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || level < s.level {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] ", s.now().Format("2006-01-02T15:04:05.000"), level)
	if l.prefix != "" {
		b.WriteString(l.prefix + ": ")
	}
	b.WriteString(msg)
	for i, f := range l.fields {
		sep := ", "
		if i == 0 {
			sep = " {"
		}
		fmt.Fprintf(&b, "%s%s=%v", sep, f.key, f.value)
	}
	if len(l.fields) > 0 {
		b.WriteByte('}')
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(s.w, b.String())
}
