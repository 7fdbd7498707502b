package ustr

import (
	"unicode/utf8"
)

// Builder accumulates bytes and produces a String.
// The zero value is ready to use.
type Builder struct {
	buf []byte
}

// NewBuilder creates a builder with room for capacity bytes.
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s.
func (b *Builder) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Builder) WriteRune(r rune) (int, error) {
	n := len(b.buf)
	b.buf = utf8.AppendRune(b.buf, r)
	return len(b.buf) - n, nil
}

// WriteUString appends the bytes of s.
func (b *Builder) WriteUString(s String) {
	b.buf = append(b.buf, s.bytes()...)
}

// Len returns the number of bytes written.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Grow ensures room for n more bytes.
func (b *Builder) Grow(n int) {
	if cap(b.buf)-len(b.buf) < n {
		buf := make([]byte, len(b.buf), 2*cap(b.buf)+n)
		copy(buf, b.buf)
		b.buf = buf
	}
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// Build returns a String holding a copy of the bytes written so far and
// resets the builder. The result is sized to its content.
func (b *Builder) Build() String {
	s := fromBytes(b.buf)
	b.Reset()
	return s
}
