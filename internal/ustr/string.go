package ustr

import (
	"bytes"
	"unicode/utf8"

	"github.com/dshills/ustring/internal/unicase"
)

// New returns a String holding a copy of s.
func New(s string) String {
	if len(s) < InlineCapacity {
		var v String
		v.n = copy(v.inline[:], s)
		v.seal()
		return v
	}
	return fromBytes([]byte(s))
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte) String {
	return fromBytes(b)
}

// FromCString copies b up to, not including, the first NUL byte.
func FromCString(b []byte) String {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return fromBytes(b)
}

// FromByte returns a one-byte String.
func FromByte(c byte) String {
	var s String
	s.inline[0] = c
	s.n = 1
	s.seal()
	return s
}

// FromRune returns the UTF-8 encoding of r.
func FromRune(r rune) String {
	var s String
	s.n = utf8.EncodeRune(s.inline[:], r)
	s.seal()
	return s
}

// String returns the content as a Go string.
func (s String) String() string {
	return string(s.bytes())
}

// Bytes returns a read-only view of the content without the terminator.
// The slice must not be modified.
func (s String) Bytes() []byte {
	return s.bytes()
}

// CStr returns the content followed by a NUL terminator. When the buffer
// is sized exactly to s no later append can write into it, so the result
// aliases it and must not be modified; otherwise a copy is returned.
func (s String) CStr() []byte {
	if s.shared != nil && len(s.shared.data) == s.n+1 {
		return s.shared.data[: s.n+1 : s.n+1]
	}
	out := make([]byte, s.n+1)
	copy(out, s.bytes())
	return out
}

// Equals reports whether s and other hold the same bytes.
func (s String) Equals(other String) bool {
	if s.n != other.n {
		return false
	}
	if s.shared != nil && s.shared == other.shared {
		return true
	}
	return bytes.Equal(s.bytes(), other.bytes())
}

// Compare orders strings by their bytes, which for valid UTF-8 is
// codepoint order.
func (s String) Compare(other String) int {
	return bytes.Compare(s.bytes(), other.bytes())
}

// EqualsIgnoreCase reports whether s and other are equal under simple case
// folding. Multi-codepoint foldings such as 'ß' and "ss" are not equal.
func (s String) EqualsIgnoreCase(other String) bool {
	if s.Equals(other) {
		return true
	}
	a, b := s.bytes(), other.bytes()
	tbl := unicase.Default()
	for len(a) > 0 && len(b) > 0 {
		ra, wa := decodeRune(a)
		rb, wb := decodeRune(b)
		if ra != rb && tbl.Fold(ra) != tbl.Fold(rb) {
			return false
		}
		a, b = a[wa:], b[wb:]
	}
	return len(a) == 0 && len(b) == 0
}

// Concat returns a new String holding a followed by b.
func Concat(a, b String) String {
	n := a.n + b.n
	if n < InlineCapacity {
		var s String
		copy(s.inline[copy(s.inline[:], a.bytes()):], b.bytes())
		s.n = n
		s.seal()
		return s
	}
	return String{n: n, shared: fill(n+1, a.bytes(), b.bytes())}
}

// MarshalText implements encoding.TextMarshaler.
func (s String) MarshalText() ([]byte, error) {
	return bytes.Clone(s.bytes()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *String) UnmarshalText(text []byte) error {
	s.Release()
	*s = fromBytes(text)
	return nil
}
