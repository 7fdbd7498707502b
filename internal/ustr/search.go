package ustr

import (
	"bytes"

	"github.com/charlievieth/strcase"
)

// FindFirst returns an iterator at the first occurrence of needle starting
// at or after codepoint from, or End() if there is none. An empty needle is
// never found.
func (s String) FindFirst(needle String, from int) Iterator {
	start, ok := s.iterAt(from)
	if !ok {
		return s.End()
	}
	return s.FindFirstAt(needle, start)
}

// FindFirstAt is FindFirst starting at an iterator position.
func (s String) FindFirstAt(needle String, from Iterator) Iterator {
	if needle.n == 0 || needle.n > s.n || !from.SameSource(s.Begin()) {
		return s.End()
	}
	it := from.forwardCopy()
	hay, nb := s.bytes(), needle.bytes()

	for it.byteIdx <= s.n-needle.n {
		rel := bytes.Index(hay[it.byteIdx:], nb)
		if rel < 0 {
			break
		}
		target := it.byteIdx + rel
		for it.byteIdx < target {
			it.forward()
		}
		if it.byteIdx == target {
			return it
		}
		// The match started inside a malformed sequence; keep looking.
	}
	return s.End()
}

// FindLast returns an iterator at the last occurrence of needle that starts
// at or after codepoint from, or End() if there is none.
func (s String) FindLast(needle String, from int) Iterator {
	start, ok := s.iterAt(from)
	if !ok {
		return s.End()
	}
	return s.FindLastAt(needle, start)
}

// FindLastAt is FindLast starting at an iterator position.
func (s String) FindLastAt(needle String, from Iterator) Iterator {
	if needle.n == 0 || needle.n > s.n || !from.SameSource(s.Begin()) {
		return s.End()
	}
	from = from.forwardCopy()
	hay, nb := s.bytes(), needle.bytes()

	hi := s.n
	for hi-from.byteIdx >= needle.n {
		rel := bytes.LastIndex(hay[from.byteIdx:hi], nb)
		if rel < 0 {
			break
		}
		target := from.byteIdx + rel
		it := from
		for it.byteIdx < target {
			it.forward()
		}
		if it.byteIdx == target {
			return it
		}
		// Only occurrences starting before target remain.
		hi = target + needle.n - 1
	}
	return s.End()
}

// Contains reports whether needle occurs in s.
func (s String) Contains(needle String) bool {
	return !s.FindFirst(needle, 0).Done()
}

// IndexIgnoreCase returns an iterator at the first case-insensitive
// occurrence of needle, or End().
func (s String) IndexIgnoreCase(needle String) Iterator {
	if needle.n == 0 {
		return s.End()
	}
	idx := strcase.Index(s.String(), needle.String())
	if idx < 0 {
		return s.End()
	}
	it := s.Begin()
	for it.byteIdx < idx {
		it.forward()
	}
	if it.byteIdx != idx {
		return s.End()
	}
	return it
}

// ContainsIgnoreCase reports whether needle occurs in s ignoring case.
func (s String) ContainsIgnoreCase(needle String) bool {
	return needle.n > 0 && strcase.Contains(s.String(), needle.String())
}

// HasPrefix reports whether s begins with prefix.
func (s String) HasPrefix(prefix String) bool {
	return bytes.HasPrefix(s.bytes(), prefix.bytes())
}

// HasSuffix reports whether s ends with suffix.
func (s String) HasSuffix(suffix String) bool {
	return bytes.HasSuffix(s.bytes(), suffix.bytes())
}

// HasPrefixIgnoreCase is HasPrefix under simple case folding.
func (s String) HasPrefixIgnoreCase(prefix String) bool {
	return strcase.HasPrefix(s.String(), prefix.String())
}

// HasSuffixIgnoreCase is HasSuffix under simple case folding.
func (s String) HasSuffixIgnoreCase(suffix String) bool {
	return strcase.HasSuffix(s.String(), suffix.String())
}

// forwardCopy returns a forward iterator at the same position, with REnd
// mapped to Begin.
func (it Iterator) forwardCopy() Iterator {
	it.reverse = false
	it.decoded = false
	if it.byteIdx < 0 {
		it.byteIdx, it.cpIdx = 0, 0
	}
	return it
}
