package ustr

import (
	"iter"
	"unicode/utf8"
)

// InvalidRune is produced when decoding a malformed UTF-8 sequence.
const InvalidRune rune = 0xFFFF

// decodeRune decodes the first codepoint of b. Malformed input yields
// InvalidRune with width 1; empty input yields width 0.
func decodeRune(b []byte) (rune, int) {
	r, w := utf8.DecodeRune(b)
	if r == utf8.RuneError && w <= 1 {
		return InvalidRune, w
	}
	return r, w
}

// decodeLastRune decodes the last codepoint of b.
func decodeLastRune(b []byte) (rune, int) {
	r, w := utf8.DecodeLastRune(b)
	if r == utf8.RuneError && w <= 1 {
		return InvalidRune, w
	}
	return r, w
}

// Iterator is a cursor over the codepoints of a String. Forward iterators
// advance towards End, reverse iterators towards REnd.
//
// The codepoint under the cursor is decoded on first access to Rune and
// kept until the cursor moves.
type Iterator struct {
	src     String
	byteIdx int
	cpIdx   int
	reverse bool

	ch      rune
	decoded bool
}

// Begin returns a forward iterator at the first codepoint.
func (s String) Begin() Iterator {
	return Iterator{src: s}
}

// End returns the forward iterator one past the last codepoint.
func (s String) End() Iterator {
	return Iterator{src: s, byteIdx: s.n, cpIdx: s.Len()}
}

// RBegin returns a reverse iterator at the last codepoint.
func (s String) RBegin() Iterator {
	if s.n == 0 {
		return s.REnd()
	}
	_, w := decodeLastRune(s.bytes())
	return Iterator{src: s, byteIdx: s.n - w, cpIdx: s.Len() - 1, reverse: true}
}

// REnd returns the reverse iterator one before the first codepoint.
func (s String) REnd() Iterator {
	return Iterator{src: s, byteIdx: -1, cpIdx: -1, reverse: true}
}

// CharAt returns a forward iterator at codepoint pos.
func (s String) CharAt(pos int) (Iterator, error) {
	length := s.Len()
	if pos < 0 || pos >= length {
		return Iterator{}, &RangeError{Op: "CharAt", Index: pos, Len: length}
	}
	return s.Begin().Plus(pos), nil
}

// iterAt is CharAt that also accepts pos == Len.
func (s String) iterAt(pos int) (Iterator, bool) {
	if pos < 0 || pos > s.Len() {
		return Iterator{}, false
	}
	return s.Begin().Plus(pos), true
}

// Rune returns the codepoint under the cursor, or InvalidRune when the
// cursor is outside the string.
func (it *Iterator) Rune() rune {
	if !it.decoded {
		it.ch = InvalidRune
		if it.byteIdx >= 0 && it.byteIdx < it.src.n {
			it.ch, _ = decodeRune(it.src.bytes()[it.byteIdx:])
		}
		it.decoded = true
	}
	return it.ch
}

// Next moves one codepoint in the iterator's direction. It does nothing at
// the end of that direction.
func (it *Iterator) Next() {
	if it.reverse {
		it.backward()
	} else {
		it.forward()
	}
}

// Prev moves one codepoint against the iterator's direction.
func (it *Iterator) Prev() {
	if it.reverse {
		it.forward()
	} else {
		it.backward()
	}
}

// Plus returns a copy moved n codepoints in the iterator's direction.
func (it Iterator) Plus(n int) Iterator {
	for ; n > 0; n-- {
		it.Next()
	}
	for ; n < 0; n++ {
		it.Prev()
	}
	return it
}

// Minus returns a copy moved n codepoints against the iterator's direction.
func (it Iterator) Minus(n int) Iterator {
	return it.Plus(-n)
}

// Done reports whether the iterator has run off the end of its direction.
func (it Iterator) Done() bool {
	if it.reverse {
		return it.byteIdx < 0
	}
	return it.byteIdx >= it.src.n
}

// Equal reports whether both iterators point at the same position of the
// same string. Direction is ignored.
func (it Iterator) Equal(other Iterator) bool {
	return it.byteIdx == other.byteIdx && it.cpIdx == other.cpIdx && it.SameSource(other)
}

// SameSource reports whether both iterators were created from the same
// string.
func (it Iterator) SameSource(other Iterator) bool {
	a, b := it.src, other.src
	if a.n != b.n {
		return false
	}
	if a.shared != nil || b.shared != nil {
		return a.shared == b.shared
	}
	return a.inline == b.inline
}

// Distance returns the number of codepoints from it to other.
func (it Iterator) Distance(other Iterator) (int, error) {
	if !it.SameSource(other) {
		return 0, ErrForeignIterator
	}
	return other.cpIdx - it.cpIdx, nil
}

// Position returns the codepoint index, -1 for REnd.
func (it Iterator) Position() int {
	return it.cpIdx
}

// ByteIndex returns the byte offset of the codepoint under the cursor.
func (it Iterator) ByteIndex() int {
	return it.byteIdx
}

// Reverse reports whether the iterator moves towards the start.
func (it Iterator) Reverse() bool {
	return it.reverse
}

func (it *Iterator) forward() {
	switch {
	case it.byteIdx < 0:
		it.byteIdx, it.cpIdx = 0, 0
	case it.byteIdx < it.src.n:
		_, w := decodeRune(it.src.bytes()[it.byteIdx:])
		it.byteIdx += w
		it.cpIdx++
	default:
		return
	}
	it.decoded = false
}

func (it *Iterator) backward() {
	switch {
	case it.byteIdx == 0:
		it.byteIdx, it.cpIdx = -1, -1
	case it.byteIdx > 0:
		_, w := decodeLastRune(it.src.bytes()[:it.byteIdx])
		it.byteIdx -= w
		it.cpIdx--
	default:
		return
	}
	it.decoded = false
}

// width returns the byte width of the codepoint under the cursor.
func (it Iterator) width() int {
	if it.byteIdx < 0 || it.byteIdx >= it.src.n {
		return 0
	}
	_, w := decodeRune(it.src.bytes()[it.byteIdx:])
	return w
}

// Runes returns an iterator over (codepoint index, codepoint) pairs.
func (s String) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for it := s.Begin(); !it.Done(); it.Next() {
			if !yield(it.Position(), it.Rune()) {
				return
			}
		}
	}
}
