package ustr

import (
	"github.com/dshills/ustring/internal/unicase"
)

// ToUpper returns s with every codepoint mapped to its uppercase form,
// including multi-codepoint expansions ('ß' becomes "SS"). Malformed bytes
// are copied unchanged.
func (s String) ToUpper() String {
	return s.mapCase(unicase.Default().AppendUpper)
}

// ToLower returns s with every codepoint mapped to its lowercase form.
func (s String) ToLower() String {
	return s.mapCase(unicase.Default().AppendLower)
}

func (s String) mapCase(appendCase func([]byte, rune) []byte) String {
	if s.n == 0 {
		return String{}
	}
	hay := s.bytes()
	b := getBuilder(s.n)
	defer putBuilder(b)
	for i := 0; i < len(hay); {
		r, w := decodeRune(hay[i:])
		if r == InvalidRune {
			b.buf = append(b.buf, hay[i:i+w]...)
		} else {
			b.buf = appendCase(b.buf, r)
		}
		i += w
	}
	return b.Build()
}
