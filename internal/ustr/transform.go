package ustr

import (
	"fmt"
	"math"
	"unicode"
)

// Replace substitutes every non-overlapping occurrence of needle, found
// left to right, with replacement. Replaced text is not rescanned.
func (s String) Replace(needle, replacement String) (String, error) {
	if needle.n == 0 {
		return String{}, fmt.Errorf("replace: %w", ErrEmptyNeedle)
	}
	hay := s.bytes()
	from := s.Begin()
	hit := s.FindFirstAt(needle, from)
	if hit.Done() {
		return s.Clone(), nil
	}

	b := getBuilder(s.n)
	defer putBuilder(b)
	for !hit.Done() {
		b.Write(hay[from.byteIdx:hit.byteIdx])
		b.WriteUString(replacement)
		from = skip(hit, needle.n)
		hit = s.FindFirstAt(needle, from)
	}
	b.Write(hay[from.byteIdx:])
	return b.Build(), nil
}

// Trim removes leading and trailing white space as defined by
// unicode.IsSpace.
func (s String) Trim() String {
	start := s.Begin()
	for !start.Done() && unicode.IsSpace(start.Rune()) {
		start.Next()
	}
	if start.Done() {
		return String{}
	}
	hay := s.bytes()
	end := s.n
	for end > start.byteIdx {
		r, w := decodeLastRune(hay[:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= w
	}
	if start.byteIdx == 0 && end == s.n {
		return s.Clone()
	}
	return fromBytes(hay[start.byteIdx:end])
}

// Reverse returns the codepoints of s in reverse order. Multi-byte
// sequences are kept intact.
func (s String) Reverse() String {
	if s.n == 0 {
		return String{}
	}
	hay := s.bytes()
	b := getBuilder(s.n)
	defer putBuilder(b)
	end := s.n
	for it := s.RBegin(); !it.Done(); it.Next() {
		b.Write(hay[it.byteIdx:end])
		end = it.byteIdx
	}
	return b.Build()
}

// Multiply returns count copies of s joined by sep. A count of zero or
// less yields the empty string. Multiply panics if the result length would
// overflow an int.
func (s String) Multiply(count int, sep String) String {
	switch {
	case count <= 0:
		return String{}
	case count == 1:
		return s.Clone()
	}
	per := s.n + sep.n
	if per == 0 {
		return String{}
	}
	if count > math.MaxInt/per {
		panic("ustr: Multiply output length overflow")
	}
	b := getBuilder(count*per - sep.n)
	defer putBuilder(b)
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteUString(sep)
		}
		b.WriteUString(s)
	}
	return b.Build()
}
