package ustr

import (
	"sync/atomic"
	"unicode/utf8"
)

// InlineCapacity is the size of the inline buffer, terminator included.
// Strings of up to InlineCapacity-1 bytes never touch the heap.
const InlineCapacity = 16

// sharedBuf is a heap buffer shared between String values.
//
// data always holds at least n+1 bytes for every value that refers to it,
// and data[n] is the terminator as long as that value holds the tail.
type sharedBuf struct {
	// refs counts tracked owners: the value that allocated the buffer plus
	// every Clone that has not been released.
	refs atomic.Int32

	// tail is the high-water mark of bytes ever written. Only a value whose
	// length equals tail may write past it.
	tail atomic.Int64

	data []byte

	// cache memoizes derived state for the byte length it was computed for.
	cache atomic.Pointer[summary]
}

// newSharedBuf allocates a buffer with room for size bytes, terminator
// included, owned by exactly one value.
func newSharedBuf(size int) *sharedBuf {
	b := &sharedBuf{data: make([]byte, size)}
	b.refs.Store(1)
	return b
}

// fill copies parts into a fresh buffer of exactly size bytes and writes
// the terminator after them.
func fill(size int, parts ...[]byte) *sharedBuf {
	b := newSharedBuf(size)
	n := 0
	for _, p := range parts {
		n += copy(b.data[n:], p)
	}
	b.data[n] = 0
	b.tail.Store(int64(n))
	return b
}

func (b *sharedBuf) retain() {
	b.refs.Add(1)
}

func (b *sharedBuf) release() {
	b.refs.Add(-1)
}

// String is a UTF-8 string with inline storage for short values and a
// reference-counted shared buffer for long ones.
//
// The zero value is the empty string. A String is not safe for concurrent
// mutation; hand other goroutines a Clone.
type String struct {
	n      int
	inline [InlineCapacity]byte
	shared *sharedBuf

	// sum is the derived state of inline values. Shared values keep theirs
	// in the buffer header. The zero summary describes the empty string.
	sum summary
}

// fromBytes copies b into a new String.
func fromBytes(b []byte) String {
	var s String
	s.n = len(b)
	if len(b) < InlineCapacity {
		copy(s.inline[:], b)
		s.seal()
		return s
	}
	s.shared = fill(len(b)+1, b)
	return s
}

// bytes returns the content without the terminator. The result must not be
// modified.
func (s *String) bytes() []byte {
	if s.shared != nil {
		return s.shared.data[:s.n:s.n]
	}
	return s.inline[:s.n:s.n]
}

// seal resets the derived state of an inline value to unknown.
func (s *String) seal() {
	s.sum = summary{bytes: s.n, runes: -1}
}

// Clone returns a new owner of the same content in O(1). For shared values
// the reference count is incremented; inline values are copied.
func (s String) Clone() String {
	if s.shared != nil {
		s.shared.retain()
	}
	return s
}

// Release gives up ownership and resets s to the empty string.
func (s *String) Release() {
	if s.shared != nil {
		s.shared.release()
	}
	*s = String{}
}

// Assign replaces the content of s with other. The previous content is
// released; no existing buffer is written to.
func (s *String) Assign(other String) {
	other = other.Clone()
	s.Release()
	*s = other
}

// Append appends other to s.
func (s *String) Append(other String) {
	s.appendBytes(other.bytes())
}

// AppendString appends the bytes of a Go string to s.
func (s *String) AppendString(other string) {
	s.appendBytes([]byte(other))
}

// AppendRune appends the UTF-8 encoding of r to s.
func (s *String) AppendRune(r rune) {
	var enc [4]byte
	s.appendBytes(utf8.AppendRune(enc[:0], r))
}

// Grow ensures room for at least extra more bytes so that subsequent
// appends can be done in place. A buffer with other owners is copied.
func (s *String) Grow(extra int) {
	if extra <= 0 {
		return
	}
	need := s.n + extra + 1
	if s.shared == nil {
		if need <= InlineCapacity {
			return
		}
		s.shared = fill(need, s.inline[:s.n])
		s.inline = [InlineCapacity]byte{}
		s.sum = summary{}
		return
	}
	if s.ownsTail() && need <= len(s.shared.data) {
		return
	}
	old := s.shared
	s.shared = fill(need, old.data[:s.n])
	old.release()
}

// ownsTail reports whether s may write past its own length.
func (s *String) ownsTail() bool {
	return s.shared.refs.Load() == 1 && s.shared.tail.Load() == int64(s.n)
}

func (s *String) appendBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	n := s.n + len(b)

	if s.shared == nil {
		if n < InlineCapacity {
			copy(s.inline[s.n:], b)
			s.n = n
			s.seal()
			return
		}
		s.shared = fill(max(n+1, InlineCapacity), s.inline[:s.n], b)
		s.inline = [InlineCapacity]byte{}
		s.n = n
		s.sum = summary{}
		return
	}

	buf := s.shared
	if buf.refs.Load() == 1 && n+1 <= len(buf.data) && buf.tail.CompareAndSwap(int64(s.n), int64(n)) {
		copy(buf.data[s.n:], b)
		buf.data[n] = 0
		s.n = n
		buf.cache.Store(nil)
		return
	}

	s.shared = fill(n+1, buf.data[:s.n], b)
	s.n = n
	buf.release()
}

// Shares reports whether s and other refer to the same shared buffer.
func (s String) Shares(other String) bool {
	return s.shared != nil && s.shared == other.shared
}

// RefCount returns the number of tracked owners of the shared buffer, or 1
// for inline values.
func (s String) RefCount() int {
	if s.shared == nil {
		return 1
	}
	return int(s.shared.refs.Load())
}

// IsInline reports whether s is stored without a heap buffer.
func (s String) IsInline() bool {
	return s.shared == nil
}

// Cap returns the storage capacity in bytes, terminator included.
func (s String) Cap() int {
	if s.shared == nil {
		return InlineCapacity
	}
	return len(s.shared.data)
}
