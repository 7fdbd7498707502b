package ustr

import (
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"
)

func strs(parts []String) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		needle      string
		removeEmpty bool
		want        []string
	}{
		{"simple", "pulseyesgun", "yes", false, []string{"pulse", "gun"}},
		{"whole string", "pulseyesgun", "pulseyesgun", false, []string{"", ""}},
		{"whole string removed", "pulseyesgun", "pulseyesgun", true, []string{}},
		{"repeated codepoint", "ÄÄÄ", "Ä", false, []string{"", "", "", ""}},
		{"repeated codepoint removed", "ÄÄÄ", "Ä", true, []string{}},
		{"empty input", "", "asd", false, []string{""}},
		{"empty input removed", "", "asd", true, []string{}},
		{"no match", "abc", "x", false, []string{"abc"}},
		{"adjacent separators", "a,,b", ",", false, []string{"a", "", "b"}},
		{"adjacent removed", "a,,b", ",", true, []string{"a", "b"}},
		{"non-overlapping", "aaaa", "aa", false, []string{"", "", ""}},
		{"multibyte separator", "一世二世三", "世", false, []string{"一", "二", "三"}},
		{"empty needle", "abc", "", false, []string{"", "a", "b", "c", ""}},
		{"empty needle removed", "aä世", "", true, []string{"a", "ä", "世"}},
		{"empty needle empty input", "", "", false, []string{"", ""}},
		{"empty needle empty input removed", "", "", true, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strs(New(tt.input).Split(New(tt.needle), tt.removeEmpty))
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("part %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitEmptyNeedleCount(t *testing.T) {
	s := New("héllo wörld 世界")
	if got := len(s.Split(String{}, true)); got != s.Len() {
		t.Errorf("len(Split(\"\", true)) = %d, want %d", got, s.Len())
	}
	if got := len(s.Split(String{}, false)); got != s.Len()+2 {
		t.Errorf("len(Split(\"\", false)) = %d, want %d", got, s.Len()+2)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		sep   string
		want  string
	}{
		{"none", nil, ",", ""},
		{"one", []string{"a"}, ",", "a"},
		{"several", []string{"a", "b", "c"}, ", ", "a, b, c"},
		{"empty parts", []string{"", "", ""}, "-", "--"},
		{"empty sep", []string{"x", "y"}, "", "xy"},
		{"long", []string{strings.Repeat("a", 20), strings.Repeat("b", 20)}, "世", strings.Repeat("a", 20) + "世" + strings.Repeat("b", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := make([]String, len(tt.parts))
			for i, p := range tt.parts {
				parts[i] = New(p)
			}
			if got := Join(parts, New(tt.sep)).String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitJoinProperty(t *testing.T) {
	f := func(s, sep string) bool {
		if !utf8.ValidString(s) || !utf8.ValidString(sep) {
			return true
		}
		u, needle := New(s), New(sep)
		return Join(u.Split(needle, false), needle).String() == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}

	g := func(s string) bool {
		if !utf8.ValidString(s) {
			return true
		}
		u := New(s)
		return Join(u.Split(String{}, false), String{}).String() == s
	}
	if err := quick.Check(g, nil); err != nil {
		t.Error(err)
	}
}

func TestSplitNoEmptyPartsProperty(t *testing.T) {
	f := func(s, sep string) bool {
		for _, p := range New(s).Split(New(sep), true) {
			if p.IsEmpty() || (sep != "" && p.Contains(New(sep))) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
