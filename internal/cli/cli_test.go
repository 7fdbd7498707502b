package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/ustring/internal/ustr"
)

type result struct {
	out  string
	err  string
	code int
}

// execute runs the command tree with an empty environment and a config
// path that does not exist unless the test wrote it.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return executeEnv(t, []string{}, stdin, args...)
}

func executeEnv(t *testing.T, env []string, stdin string, args ...string) result {
	t.Helper()
	hasConfig := false
	for _, arg := range args {
		if arg == "--config" || arg == "-c" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}, args...)
	}

	var out, errOut bytes.Buffer
	code := Execute(args, Streams{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errOut,
	}, WithEnviron(env))
	return result{out: out.String(), err: errOut.String(), code: code}
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"len", "", []string{"len", "héllo"}, "5"},
		{"len bytes", "", []string{"len", "-b", "héllo"}, "6"},
		{"len stdin", "日本語\n", []string{"len"}, "3"},
		{"width", "", []string{"width", "日本"}, "4"},
		{"upper", "", []string{"upper", "straße"}, "STRASSE"},
		{"lower", "", []string{"lower", "ÀÉÎ"}, "àéî"},
		{"trim", "", []string{"trim", "\t  mid \n"}, "mid"},
		{"reverse stdin", "añb\n", []string{"reverse"}, "bña"},
		{"repeat", "", []string{"repeat", "3", "ab", "--sep=-"}, "ab-ab-ab"},
		{"repeat zero", "", []string{"repeat", "0", "ab"}, ""},
		{"split default sep", "", []string{"split", "a,b,,c"}, "a\nb\n\nc"},
		{"split remove empty", "", []string{"split", "-r", "a,b,,c"}, "a\nb\nc"},
		{"split sep", "", []string{"split", "--sep=::", "a::b"}, "a\nb"},
		{"split empty sep", "", []string{"split", "--sep=", "ab"}, "\na\nb\n"},
		{"join args", "", []string{"join", "--sep=+", "a", "b", "c"}, "a+b+c"},
		{"join stdin", "x\ny\n", []string{"join", "--sep=/"}, "x/y"},
		{"replace", "", []string{"replace", ".", "::", "a.b.c"}, "a::b::c"},
		{"replace stdin", "aaa\n", []string{"replace", "a", "bb"}, "bbbbbb"},
		{"find", "", []string{"find", "ñ", "añbñ"}, "1"},
		{"find last", "", []string{"find", "--last", "ñ", "añbñ"}, "3"},
		{"find from", "", []string{"find", "--from=2", "ñ", "añbñ"}, "3"},
		{"find missing", "", []string{"find", "x", "abc"}, "-1"},
		{"find ignore case", "", []string{"find", "-i", "HELLO", "say hello"}, "4"},
		{"substr", "", []string{"substr", "1", "héllo"}, "éllo"},
		{"substr count", "", []string{"substr", "-n", "2", "1", "héllo"}, "él"},
		{"substr end", "", []string{"substr", "5", "héllo"}, ""},
		{"substr bytes", "", []string{"substr", "--bytes", "-n", "2", "1", "héllo"}, "é"},
		{"int", "", []string{"int", "42"}, "42"},
		{"float", "", []string{"float", "2.50"}, "2.5"},
		{"format float", "", []string{"format", "%05.1f", "3.14159"}, "003.1"},
		{"format hex", "", []string{"format", "%x", "255"}, "ff"},
		{"format default int", "", []string{"format", "", "42"}, "42"},
		{"format default float", "", []string{"format", "", "1.5"}, "1.5"},
		{"match", "", []string{"match", `(\d+)-(\d+)`, "x 12-34"}, "12-34\t12\t34"},
		{"match all", "", []string{"match", "--all", `\d`, "a1b2"}, "1\n2"},
		{"freq", "", []string{"freq", "b a b"}, "a 1\nb 2"},
		{"freq padded", "", []string{"freq", "bb a bb"}, "a  1\nbb 2"},
		{"freq ignore case", "", []string{"freq", "-i", "B b a"}, "a 1\nb 2"},
		{"uniq", "x\ny\nx\n", []string{"uniq"}, "x\ny"},
		{"pad", "", []string{"pad", "5", "ab"}, "ab   "},
		{"pad left", "", []string{"pad", "--left", "--char=.", "5", "ab"}, "...ab"},
		{"hash", "", []string{"hash", "abc"}, fmt.Sprintf("%016x", ustr.New("abc").Hash())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, tt.stdin, tt.args...)
			if r.code != 0 {
				t.Fatalf("exit %d, stderr: %s", r.code, r.err)
			}
			if got := strings.TrimSuffix(r.out, "\n"); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		checks map[string]string
	}{
		{
			name:   "len",
			args:   []string{"len", "héllo"},
			checks: map[string]string{"codepoints": "5", "bytes": "6", "inline": "true"},
		},
		{
			name:   "split",
			args:   []string{"split", "a,b"},
			checks: map[string]string{"parts.#": "2", "parts.1": "b", "count": "2"},
		},
		{
			name:   "find",
			args:   []string{"find", "ñ", "añbñ"},
			checks: map[string]string{"found": "true", "position": "1"},
		},
		{
			name:   "find missing",
			args:   []string{"find", "z", "abc"},
			checks: map[string]string{"found": "false", "position": "-1"},
		},
		{
			name:   "match all",
			args:   []string{"match", "--all", `\d`, "a1b2"},
			checks: map[string]string{"matches.#": "2", "matches.1.0": "2", "index.1": "3"},
		},
		{
			name:   "freq",
			args:   []string{"freq", "b a b"},
			checks: map[string]string{"counts.b": "2", "counts.a": "1", "distinct": "2"},
		},
		{
			name:   "upper",
			args:   []string{"upper", `say "hi"`},
			checks: map[string]string{"result": `SAY "HI"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, "", append([]string{"--output", "json"}, tt.args...)...)
			if r.code != 0 {
				t.Fatalf("exit %d, stderr: %s", r.code, r.err)
			}
			if !gjson.Valid(r.out) {
				t.Fatalf("invalid JSON: %s", r.out)
			}
			for path, want := range tt.checks {
				if got := gjson.Get(r.out, path).String(); got != want {
					t.Errorf("%s = %q, want %q in %s", path, got, want, r.out)
				}
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ustring.toml")
	conf := "[split]\nseparator = \";\"\nremove_empty = true\n\n[multiply]\nseparator = \" \"\n"
	if err := os.WriteFile(path, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}

	r := execute(t, "", "--config", path, "split", "a;;b")
	if r.code != 0 || r.out != "a\nb\n" {
		t.Errorf("split with config = %q (exit %d, %s)", r.out, r.code, r.err)
	}
	r = execute(t, "", "--config", path, "repeat", "2", "x")
	if r.out != "x x\n" {
		t.Errorf("repeat with config = %q", r.out)
	}
	r = execute(t, "", "--config", path, "split", "--remove-empty=false", "a;;b")
	if r.out != "a\n\nb\n" {
		t.Errorf("flag should override config, got %q", r.out)
	}
}

func TestEnvironment(t *testing.T) {
	env := []string{"USTRING_OUTPUT_FORMAT=json", "USTRING_SPLIT_SEPARATOR=|"}
	r := executeEnv(t, env, "", "split", "a|b")
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.err)
	}
	if got := gjson.Get(r.out, "parts.0").String(); got != "a" {
		t.Errorf("parts.0 = %q in %s", got, r.out)
	}

	r = executeEnv(t, env, "", "--output", "text", "split", "a|b")
	if r.out != "a\nb\n" {
		t.Errorf("--output should override the environment, got %q", r.out)
	}
}

func TestConfigCommand(t *testing.T) {
	r := execute(t, "", "config")
	if r.code != 0 || !strings.Contains(r.out, "float_spec") {
		t.Errorf("config = %q (exit %d)", r.out, r.code)
	}
	r = execute(t, "", "config", "--format", "yaml")
	if r.code != 0 || !strings.Contains(r.out, "instruction_limit: 1000000") {
		t.Errorf("config yaml = %q (exit %d)", r.out, r.code)
	}
	if r = execute(t, "", "config", "--format", "ini"); r.code == 0 {
		t.Error("config --format ini should fail")
	}
}

func TestRunScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shout.lua")
	code := `print(ustr.upper(arg[1]) .. "!", ustr.len(arg[1]))`
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}
	r := execute(t, "", "run", path, "straße")
	if r.code != 0 {
		t.Fatalf("exit %d: %s", r.code, r.err)
	}
	if r.out != "STRASSE!\t6\n" {
		t.Errorf("output = %q", r.out)
	}

	loop := filepath.Join(t.TempDir(), "loop.lua")
	if err := os.WriteFile(loop, []byte(`while true do ustr.len("abc") end`), 0o644); err != nil {
		t.Fatal(err)
	}
	env := []string{"USTRING_SCRIPT_INSTRUCTION_LIMIT=1000"}
	r = executeEnv(t, env, "", "run", loop)
	if r.code != 1 || !strings.Contains(r.err, "instruction limit") {
		t.Errorf("runaway script: exit %d, stderr %q", r.code, r.err)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"frobnicate"}, "unknown command"},
		{"empty needle", []string{"replace", "", "x", "abc"}, "empty needle"},
		{"substr range", []string{"substr", "9", "abc"}, "out of range"},
		{"bad int", []string{"int", "4x"}, "invalid syntax"},
		{"int overflow", []string{"int", "99999999999999999999"}, "out of range"},
		{"bad format", []string{"format", "%d", "1.5"}, "bad format"},
		{"bad regex", []string{"match", "(", "abc"}, "regex"},
		{"no match", []string{"match", `\d`, "abc"}, "no match"},
		{"bad output", []string{"--output", "xml", "len", "a"}, "output.format"},
		{"too many args", []string{"len", "a", "b"}, "accepts between"},
		{"bad count", []string{"repeat", "x", "ab"}, "count"},
		{"bad pad char", []string{"pad", "--char=ab", "4", "x"}, "single codepoint"},
		{"missing script", []string{"run", "/nonexistent/script.lua"}, "script.lua"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, "", tt.args...)
			if r.code != 1 {
				t.Fatalf("exit %d, want 1 (stdout %q)", r.code, r.out)
			}
			if !strings.Contains(r.err, tt.want) {
				t.Errorf("stderr = %q, want it to mention %q", r.err, tt.want)
			}
		})
	}
}

func TestUsageOnArgumentErrors(t *testing.T) {
	r := execute(t, "", "len", "a", "b")
	if !strings.Contains(r.err, "Usage:") {
		t.Errorf("argument errors should print usage, got %q", r.err)
	}
	r = execute(t, "", "int", "4x")
	if strings.Contains(r.err, "Usage:") {
		t.Errorf("input errors should not print usage, got %q", r.err)
	}
}
