package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/quill.toml", `
[editor]
page_size = 30
use_tabs = true

[contexts.goto_line]
allowed = "0123456789:,"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/quill.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	editor, ok := config["editor"].(map[string]any)
	if !ok {
		t.Fatal("expected editor to be a map")
	}
	if editor["page_size"] != int64(30) {
		t.Errorf("page_size = %v (%T), want 30", editor["page_size"], editor["page_size"])
	}
	if editor["use_tabs"] != true {
		t.Errorf("use_tabs = %v, want true", editor["use_tabs"])
	}
	contexts, ok := config["contexts"].(map[string]any)
	if !ok {
		t.Fatal("expected contexts to be a map")
	}
	if _, ok := contexts["goto_line"].(map[string]any); !ok {
		t.Error("expected contexts.goto_line to be a map")
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/missing.toml").Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", "[editor\npage_size = 4\n")

	_, err := NewTOMLLoaderWithFS(memfs, "/invalid.toml").Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line < 1 {
		t.Errorf("Line = %d, want a position", parseErr.Line)
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := (&TOMLLoader{}).LoadFromReader(strings.NewReader("level = \"debug\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["level"] != "debug" {
		t.Errorf("level = %v, want 'debug'", config["level"])
	}
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/quill.yaml", `
editor:
  page_size: 12
log:
  level: warn
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/quill.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	editor, ok := config["editor"].(map[string]any)
	if !ok {
		t.Fatalf("expected editor to be a map, got %T", config["editor"])
	}
	if editor["page_size"] != 12 {
		t.Errorf("page_size = %v (%T), want 12", editor["page_size"], editor["page_size"])
	}
}

func TestYAMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yml", "editor: [unclosed\n")

	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yml").Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
}

func TestYAMLLoader_Empty(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.yaml", "")

	config, err := NewYAMLLoaderWithFS(memfs, "/empty.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(config) != 0 {
		t.Errorf("config = %v, want empty", config)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"a.toml", "*loader.TOMLLoader", false},
		{"a.yaml", "*loader.YAMLLoader", false},
		{"a.YML", "*loader.YAMLLoader", false},
		{"a.json", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(NewMemFS(), tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("err = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPath: %v", err)
			}
			switch l.(type) {
			case *TOMLLoader:
				if tt.want != "*loader.TOMLLoader" {
					t.Errorf("got TOMLLoader, want %s", tt.want)
				}
			case *YAMLLoader:
				if tt.want != "*loader.YAMLLoader" {
					t.Errorf("got YAMLLoader, want %s", tt.want)
				}
			}
		})
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{"page_size": 20, "use_tabs": false},
		"log":    map[string]any{"level": "info"},
	}
	src := map[string]any{
		"editor": map[string]any{"use_tabs": true},
		"log":    "flat",
	}
	got := DeepMerge(dst, src)

	editor := got["editor"].(map[string]any)
	if editor["page_size"] != 20 || editor["use_tabs"] != true {
		t.Errorf("editor = %v", editor)
	}
	if got["log"] != "flat" {
		t.Errorf("log = %v, want replaced by scalar", got["log"])
	}
	if DeepMerge(nil, nil) == nil {
		t.Error("DeepMerge(nil, nil) returned nil")
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoader("QUILL_")
	l.environ = func() []string {
		return []string{
			"QUILL_LOG_LEVEL=debug",
			"QUILL_EDITOR_PAGE_SIZE=42",
			"QUILL_EDITOR_USE_TABS=yes",
			"QUILL_CONFIG=/tmp/x.toml",
			"HOME=/root",
		}
	}
	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	log := config["log"].(map[string]any)
	if log["level"] != "debug" {
		t.Errorf("log.level = %v", log["level"])
	}
	editor := config["editor"].(map[string]any)
	if editor["page_size"] != int64(42) {
		t.Errorf("editor.page_size = %v (%T)", editor["page_size"], editor["page_size"])
	}
	if editor["use_tabs"] != true {
		t.Errorf("editor.use_tabs = %v", editor["use_tabs"])
	}
	if _, ok := config["config"]; ok {
		t.Error("variable without a key was mapped")
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variable was mapped")
	}
}
