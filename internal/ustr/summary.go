package ustr

import (
	"hash/fnv"
)

// FNV-1a 64 parameters. Hash values are stable across processes.
const (
	hashOffset uint64 = 0xcbf29ce484222325
	hashPrime  uint64 = 0x100000001b3
)

// summary is the derived state of a byte sequence.
type summary struct {
	// bytes is the byte length the summary was computed for.
	bytes int

	// runes is the codepoint count, or -1 when not yet known.
	runes int

	hash   uint64
	hashed bool
}

// hashBytes returns the FNV-1a hash of b.
func hashBytes(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// countRunes counts codepoints the way the iterator steps over them.
func countRunes(b []byte) int {
	count := 0
	for i := 0; i < len(b); count++ {
		_, w := decodeRune(b[i:])
		i += w
	}
	return count
}

// cached returns the memoized summary for a value of length n.
func (b *sharedBuf) cached(n int) summary {
	if c := b.cache.Load(); c != nil && c.bytes == n {
		return *c
	}
	return summary{bytes: n, runes: -1}
}

// remember publishes sum. A concurrent writer may win; both results
// describe the same bytes.
func (b *sharedBuf) remember(sum summary) {
	old := b.cache.Load()
	if old != nil && old.bytes == sum.bytes {
		if sum.runes < 0 {
			sum.runes = old.runes
		}
		if !sum.hashed && old.hashed {
			sum.hash, sum.hashed = old.hash, true
		}
	}
	b.cache.CompareAndSwap(old, &sum)
}

// ByteLen returns the number of bytes, excluding the terminator.
func (s String) ByteLen() int {
	return s.n
}

// IsEmpty reports whether s has no bytes.
func (s String) IsEmpty() bool {
	return s.n == 0
}

// Len returns the number of codepoints. The count of a shared value is
// computed on first use and cached until the value is mutated; inline
// values count their at most 15 bytes on demand.
func (s String) Len() int {
	if s.shared == nil {
		if s.sum.runes >= 0 {
			return s.sum.runes
		}
		return countRunes(s.bytes())
	}
	sum := s.shared.cached(s.n)
	if sum.runes >= 0 {
		return sum.runes
	}
	sum.runes = countRunes(s.bytes())
	s.shared.remember(sum)
	return sum.runes
}

// Hash returns the FNV-1a hash of the bytes. Byte-identical strings hash
// identically regardless of storage mode.
func (s String) Hash() uint64 {
	if s.shared == nil {
		if s.sum.hashed {
			return s.sum.hash
		}
		return hashBytes(s.bytes())
	}
	sum := s.shared.cached(s.n)
	if sum.hashed {
		return sum.hash
	}
	sum.hash, sum.hashed = hashBytes(s.bytes()), true
	s.shared.remember(sum)
	return sum.hash
}
