package loader

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"
	"time"
)

// memFS is an in-memory FileSystem for tests.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	data, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}
	return memInfo{name: path, size: int64(len(data))}, nil
}

type memInfo struct {
	name string
	size int64
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.size }
func (i memInfo) Mode() fs.FileMode  { return 0o644 }
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return false }
func (i memInfo) Sys() any           { return nil }

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"ustring.toml", FormatTOML, false},
		{"conf/USTRING.TOML", FormatTOML, false},
		{"ustring.yaml", FormatYAML, false},
		{"ustring.yml", FormatYAML, false},
		{"ustring.json", "", true},
		{"ustring", "", true},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if got != tt.want || (err != nil) != tt.err {
			t.Errorf("FormatOf(%q) = %q, %v", tt.path, got, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatOf(%q) error %v is not ErrUnknownFormat", tt.path, err)
		}
	}
}

func TestFileLoaderTOML(t *testing.T) {
	fsys := memFS{"/etc/ustring.toml": `
[log]
level = "debug"

[split]
separator = ", "
remove_empty = true

[script]
instruction_limit = 2000
`}
	config, err := NewFileLoaderWithFS(fsys, "/etc/ustring.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	checks := map[string]any{
		"log.level":                "debug",
		"split.separator":          ", ",
		"split.remove_empty":       true,
		"script.instruction_limit": int64(2000),
	}
	for path, want := range checks {
		if got, ok := Lookup(config, path); !ok || got != want {
			t.Errorf("%s = %v (%T), want %v", path, got, got, want)
		}
	}
}

func TestFileLoaderYAML(t *testing.T) {
	fsys := memFS{"ustring.yaml": "log:\n  level: warn\n  format: json\nmultiply:\n  separator: \"-\"\n"}
	config, err := NewFileLoaderWithFS(fsys, "ustring.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got, _ := Lookup(config, "log.format"); got != "json" {
		t.Errorf("log.format = %v", got)
	}
	if got, _ := Lookup(config, "multiply.separator"); got != "-" {
		t.Errorf("multiply.separator = %v", got)
	}
}

func TestFileLoaderMissing(t *testing.T) {
	config, err := NewFileLoaderWithFS(memFS{}, "absent.toml").Load()
	if err != nil || config != nil {
		t.Errorf("Load(missing) = %v, %v; want nil, nil", config, err)
	}
}

func TestFileLoaderParseError(t *testing.T) {
	fsys := memFS{"bad.toml": "[log]\nlevel = \"debug\"\nformat = \n"}
	_, err := NewFileLoaderWithFS(fsys, "bad.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load error = %v, want *ParseError", err)
	}
	if perr.Path != "bad.toml" {
		t.Errorf("Path = %q", perr.Path)
	}
	if perr.Line < 3 {
		t.Errorf("Line = %d, want at least 3", perr.Line)
	}
	if !strings.Contains(perr.Error(), "at line") {
		t.Errorf("Error() = %q", perr.Error())
	}

	fsys = memFS{"bad.yaml": "log: [unclosed\n"}
	_, err = NewFileLoaderWithFS(fsys, "bad.yaml").Load()
	if !errors.As(err, &perr) {
		t.Fatalf("Load error = %v, want *ParseError", err)
	}
}

func TestLoadFromReader(t *testing.T) {
	l := NewFileLoader("settings.toml")
	config, err := l.LoadFromReader(strings.NewReader("[output]\nformat = \"json\"\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if got, _ := Lookup(config, "output.format"); got != "json" {
		t.Errorf("output.format = %v", got)
	}
	if l.Path() != "settings.toml" {
		t.Errorf("Path() = %q", l.Path())
	}
}

func TestDeepMerge(t *testing.T) {
	base := map[string]any{
		"log":   map[string]any{"level": "info", "format": "console"},
		"split": map[string]any{"separator": ","},
	}
	over := map[string]any{
		"log":    map[string]any{"level": "debug"},
		"output": map[string]any{"format": "json"},
	}
	merged := DeepMerge(base, nil, over)

	checks := map[string]any{
		"log.level":       "debug",
		"log.format":      "console",
		"split.separator": ",",
		"output.format":   "json",
	}
	for path, want := range checks {
		if got, ok := Lookup(merged, path); !ok || got != want {
			t.Errorf("%s = %v, want %v", path, got, want)
		}
	}
	if got, _ := Lookup(base, "log.level"); got != "info" {
		t.Errorf("DeepMerge modified its input: log.level = %v", got)
	}
}

func TestSetPathAndLookup(t *testing.T) {
	config := map[string]any{"log": "flat"}
	SetPath(config, "log.level", "warn")
	SetPath(config, "a.b.c", 1)

	if got, ok := Lookup(config, "log.level"); !ok || got != "warn" {
		t.Errorf("log.level = %v, %v", got, ok)
	}
	if got, ok := Lookup(config, "a.b.c"); !ok || got != 1 {
		t.Errorf("a.b.c = %v, %v", got, ok)
	}
	if _, ok := Lookup(config, "a.b.c.d"); ok {
		t.Error("Lookup through a leaf should fail")
	}
	if _, ok := Lookup(config, "missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}
