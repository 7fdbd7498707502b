package unicase

import (
	"sync"
	"unicode/utf8"

	"github.com/cockroachdb/swiss"
)

// Tables holds the case mappings. A Tables value is immutable once built.
type Tables struct {
	upper *swiss.Map[rune, rune]
	lower *swiss.Map[rune, rune]
	fold  *swiss.Map[rune, rune]

	// Multi-codepoint mappings, consulted before the simple maps.
	upperSeq *swiss.Map[rune, []rune]
	lowerSeq *swiss.Map[rune, []rune]
}

// Stats reports the number of entries in each table.
type Stats struct {
	Upper    int
	Lower    int
	Fold     int
	UpperSeq int
	LowerSeq int
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide tables, building them on first call.
// Concurrent first calls block until the build has completed.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = Build()
	})
	return defaultTables
}

// Upper returns the simple uppercase mapping of r, or r if it has none.
func (t *Tables) Upper(r rune) rune {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}
	if u, ok := t.upper.Get(r); ok {
		return u
	}
	return r
}

// Lower returns the simple lowercase mapping of r, or r if it has none.
func (t *Tables) Lower(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}
	if l, ok := t.lower.Get(r); ok {
		return l
	}
	return r
}

// Fold returns the simple case folding of r. Two codepoints are equal
// ignoring case iff their folds are equal.
func (t *Tables) Fold(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}
	if f, ok := t.fold.Get(r); ok {
		return f
	}
	return r
}

// UpperSeq returns the full uppercase expansion of r when it maps to more
// than one codepoint.
func (t *Tables) UpperSeq(r rune) ([]rune, bool) {
	if r < utf8.RuneSelf {
		return nil, false
	}
	return t.upperSeq.Get(r)
}

// LowerSeq returns the full lowercase expansion of r when it maps to more
// than one codepoint.
func (t *Tables) LowerSeq(r rune) ([]rune, bool) {
	if r < utf8.RuneSelf {
		return nil, false
	}
	return t.lowerSeq.Get(r)
}

// AppendUpper appends the UTF-8 encoding of the uppercase form of r to dst.
func (t *Tables) AppendUpper(dst []byte, r rune) []byte {
	if seq, ok := t.UpperSeq(r); ok {
		for _, c := range seq {
			dst = utf8.AppendRune(dst, c)
		}
		return dst
	}
	return utf8.AppendRune(dst, t.Upper(r))
}

// AppendLower appends the UTF-8 encoding of the lowercase form of r to dst.
func (t *Tables) AppendLower(dst []byte, r rune) []byte {
	if seq, ok := t.LowerSeq(r); ok {
		for _, c := range seq {
			dst = utf8.AppendRune(dst, c)
		}
		return dst
	}
	return utf8.AppendRune(dst, t.Lower(r))
}

// Stats returns entry counts for diagnostics.
func (t *Tables) Stats() Stats {
	return Stats{
		Upper:    t.upper.Len(),
		Lower:    t.lower.Len(),
		Fold:     t.fold.Len(),
		UpperSeq: t.upperSeq.Len(),
		LowerSeq: t.lowerSeq.Len(),
	}
}

// ToUpper maps r through the default tables.
func ToUpper(r rune) rune { return Default().Upper(r) }

// ToLower maps r through the default tables.
func ToLower(r rune) rune { return Default().Lower(r) }

// Fold maps r through the default folding table.
func Fold(r rune) rune { return Default().Fold(r) }

// AppendUpper appends the full uppercase form of r using the default tables.
func AppendUpper(dst []byte, r rune) []byte { return Default().AppendUpper(dst, r) }

// AppendLower appends the full lowercase form of r using the default tables.
func AppendLower(dst []byte, r rune) []byte { return Default().AppendLower(dst, r) }
