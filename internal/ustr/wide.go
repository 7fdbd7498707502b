package ustr

import "unicode/utf8"

// FromWide encodes a sequence of codepoints. Invalid codepoints are encoded
// as U+FFFD.
func FromWide(runes []rune) String {
	size := 0
	for _, r := range runes {
		n := utf8.RuneLen(r)
		if n < 0 {
			n = utf8.UTFMax
		}
		size += n
	}
	b := getBuilder(size)
	defer putBuilder(b)
	for _, r := range runes {
		b.WriteRune(r)
	}
	return b.Build()
}

// Wide decodes s into codepoints. Malformed sequences decode to InvalidRune.
func (s String) Wide() []rune {
	out := make([]rune, 0, s.Len())
	for _, r := range s.Runes() {
		out = append(out, r)
	}
	return out
}
