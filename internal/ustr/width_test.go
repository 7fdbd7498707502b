package ustr

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"世界", 4},
		{"é", 1},
	}
	for _, tt := range tests {
		if got := New(tt.input).DisplayWidth(); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		pad   rune
		left  string
		right string
	}{
		{"ascii", "ab", 5, ' ', "   ab", "ab   "},
		{"wide content", "世", 4, '.', "..世", "世.."},
		{"already wide enough", "abcdef", 3, ' ', "abcdef", "abcdef"},
		{"wide pad", "a", 5, '世', "世世a", "a世世"},
		{"exact", "abc", 3, '-', "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			if got := s.PadLeft(tt.width, tt.pad).String(); got != tt.left {
				t.Errorf("PadLeft() = %q, want %q", got, tt.left)
			}
			if got := s.PadRight(tt.width, tt.pad).String(); got != tt.right {
				t.Errorf("PadRight() = %q, want %q", got, tt.right)
			}
		})
	}
}
