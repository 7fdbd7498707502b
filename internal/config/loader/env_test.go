package loader

import (
	"testing"
)

func TestEnvLoaderLoad(t *testing.T) {
	l := NewEnvLoaderFrom("USTRING_", []string{
		"USTRING_LOG_LEVEL=debug",
		"USTRING_SPLIT_REMOVE_EMPTY=yes",
		"USTRING_SCRIPT_INSTRUCTION_LIMIT=5000",
		"USTRING_FORMAT_FLOAT_SPEC=%.3f",
		"USTRING_SPLIT_SEPARATOR=",
		"USTRING_BROKEN",
		"OTHER_LOG_LEVEL=error",
		"PATH=/usr/bin",
	})
	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"log.level", "debug"},
		{"split.remove_empty", true},
		{"script.instruction_limit", int64(5000)},
		{"format.float_spec", "%.3f"},
		{"split.separator", ""},
	}
	for _, tt := range tests {
		got, ok := Lookup(config, tt.path)
		if !ok || got != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, got, got, tt.want)
		}
	}
	if len(config) != 4 {
		t.Errorf("got %d sections, want 4: %v", len(config), config)
	}
}

func TestEnvLoaderKeepStrings(t *testing.T) {
	l := NewEnvLoaderFrom("USTRING_", []string{
		"USTRING_SPLIT_SEPARATOR=1",
		"USTRING_MULTIPLY_SEPARATOR=yes",
		"USTRING_SPLIT_REMOVE_EMPTY=yes",
	}).KeepStrings("split.separator", "multiply.separator")

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"split.separator", "1"},
		{"multiply.separator", "yes"},
		{"split.remove_empty", true},
	}
	for _, tt := range tests {
		got, ok := Lookup(config, tt.path)
		if !ok || got != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, got, got, tt.want)
		}
	}
}

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader("USTRING_")
	tests := []struct {
		env  string
		want string
		ok   bool
	}{
		{"USTRING_LOG_LEVEL", "log.level", true},
		{"USTRING_SPLIT_REMOVE_EMPTY", "split.remove_empty", true},
		{"USTRING_OUTPUT_FORMAT", "output.format", true},
		{"USTRING_VERBOSE", "", false},
		{"USTRING_", "", false},
	}
	for _, tt := range tests {
		got, ok := l.envToPath(tt.env)
		if got != tt.want || ok != tt.ok {
			t.Errorf("envToPath(%q) = %q, %v; want %q, %v", tt.env, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"true", true},
		{"OFF", false},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"1.5", 1.5},
		{"1.2.3", "1.2.3"},
		{"hello", "hello"},
		{"", ""},
		{"[not json", "[not json"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.input); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v", tt.input, got, got, tt.want)
		}
	}

	list, ok := parseValue(`["a", "b"]`).([]any)
	if !ok || len(list) != 2 || list[0] != "a" {
		t.Errorf("parseValue(json list) = %v", list)
	}
}
