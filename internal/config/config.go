package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/quill/internal/config/loader"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/constraint"
	"github.com/dshills/quill/internal/engine/history"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "QUILL_"

// Config holds every user setting.
type Config struct {
	Editor   EditorConfig             `toml:"editor"`
	History  HistoryConfig            `toml:"history"`
	Log      LogConfig                `toml:"log"`
	Theme    ThemeConfig              `toml:"theme"`
	Contexts map[string]ContextConfig `toml:"contexts"`
}

// EditorConfig holds motion and indentation settings.
type EditorConfig struct {
	PageSize    int  `toml:"page_size"`
	IndentWidth int  `toml:"indent_width"`
	UseTabs     bool `toml:"use_tabs"`
}

// HistoryConfig bounds the undo history of every context.
type HistoryConfig struct {
	Capacity int `toml:"capacity"`
}

// LogConfig selects the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// ThemeConfig holds hex colours used by the terminal front end.
type ThemeConfig struct {
	Selection string `toml:"selection"`
	Cursor    string `toml:"cursor"`
	Status    string `toml:"status"`
}

// ContextConfig overrides the preset constraints of one input surface.
type ContextConfig struct {
	MaxLength *int   `toml:"max_length"`
	Allowed   string `toml:"allowed"`
}

// Palette is the parsed theme.
type Palette struct {
	Selection colorful.Color
	Cursor    colorful.Color
	Status    colorful.Color
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			PageSize:    engine.DefaultPageSize,
			IndentWidth: engine.DefaultIndentWidth,
		},
		History: HistoryConfig{Capacity: history.DefaultCapacity},
		Log:     LogConfig{Level: "info"},
		Theme: ThemeConfig{
			Selection: "#264f78",
			Cursor:    "#e0e0e0",
			Status:    "#3a3d41",
		},
		Contexts: map[string]ContextConfig{},
	}
}

// DefaultPath returns the per-user configuration file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quill", "config.toml"), nil
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fsys    loader.FileSystem
	environ func() []string
}

// WithFileSystem reads the configuration file from fsys.
func WithFileSystem(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fsys = fsys
	}
}

// WithEnviron reads environment overrides from environ instead of the
// process environment.
func WithEnviron(environ func() []string) LoadOption {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// Load reads the file at path, applies QUILL_ environment overrides on
// top, and decodes the result over the defaults. A missing file is not an
// error; an empty path skips the file. The result is validated.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{fsys: loader.DefaultFS(), environ: os.Environ}
	for _, opt := range opts {
		opt(&o)
	}

	merged := map[string]any{}
	if path != "" {
		l, err := loader.ForPath(o.fsys, path)
		if err != nil {
			return nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}
	env, err := loader.NewEnvLoader(EnvPrefix).WithEnviron(o.environ).Load()
	if err != nil {
		return nil, err
	}
	merged = loader.DeepMerge(merged, env)

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode converts the merged source tree into a Config over the defaults.
func decode(data map[string]any) (*Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	raw, err := toml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := toml.NewDecoder(bytes.NewReader(raw)).Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return cfg, nil
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	if c.Editor.PageSize < 1 {
		errs = append(errs, outOfRange("editor.page_size", "must be at least 1", c.Editor.PageSize))
	}
	if c.Editor.IndentWidth < 1 || c.Editor.IndentWidth > 16 {
		errs = append(errs, outOfRange("editor.indent_width", "must be between 1 and 16", c.Editor.IndentWidth))
	}
	if c.History.Capacity < 1 {
		errs = append(errs, outOfRange("history.capacity", "must be at least 1", c.History.Capacity))
	}
	if !validLogLevel(c.Log.Level) {
		errs = append(errs, &ValidationError{
			Path:   "log.level",
			Value:  c.Log.Level,
			Reason: ReasonLogLevel,
			Detail: "want debug, info, warn or error",
		})
	}
	for path, hex := range map[string]string{
		"theme.selection": c.Theme.Selection,
		"theme.cursor":    c.Theme.Cursor,
		"theme.status":    c.Theme.Status,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, &ValidationError{
				Path:   path,
				Value:  hex,
				Reason: ReasonColour,
				Detail: "want #rrggbb",
			})
		}
	}

	names := make([]string, 0, len(c.Contexts))
	for name := range c.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := "contexts." + name
		if _, ok := constraint.ParseKind(name); !ok {
			errs = append(errs, &ValidationError{
				Path:   path,
				Value:  name,
				Reason: ReasonUnknownContext,
				Detail: "no such context",
			})
			continue
		}
		if ml := c.Contexts[name].MaxLength; ml != nil && *ml < 0 {
			errs = append(errs, outOfRange(path+".max_length", "must not be negative", *ml))
		}
	}

	// Map iteration above is unordered; report theme errors by path.
	sort.SliceStable(errs, func(i, j int) bool {
		return errorPath(errs[i]) < errorPath(errs[j])
	})
	return errors.Join(errs...)
}

func outOfRange(path, msg string, v int) error {
	return &ValidationError{Path: path, Value: v, Reason: ReasonRange, Detail: msg}
}

func errorPath(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Path
	}
	return ""
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Constraints returns the preset constraints of ctx with any configured
// override for its kind applied.
func (c *Config) Constraints(ctx constraint.Context) constraint.Constraints {
	base := ctx.Constraints()
	cc, ok := c.Contexts[ctx.Kind.String()]
	if !ok {
		return base
	}
	return base.With(constraint.Override{MaxLength: cc.MaxLength, Allowed: cc.Allowed})
}

// EngineOptions returns the state options derived from the editor and
// history settings.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithHistoryCapacity(c.History.Capacity),
		engine.WithPageSize(c.Editor.PageSize),
		engine.WithIndent(c.Editor.IndentWidth, c.Editor.UseTabs),
	}
}

// Palette parses the theme colours. Invalid entries fall back to the
// default theme.
func (c *Config) Palette() Palette {
	def := Default().Theme
	parse := func(hex, fallback string) colorful.Color {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
		col, _ := colorful.Hex(fallback)
		return col
	}
	return Palette{
		Selection: parse(c.Theme.Selection, def.Selection),
		Cursor:    parse(c.Theme.Cursor, def.Cursor),
		Status:    parse(c.Theme.Status, def.Status),
	}
}
