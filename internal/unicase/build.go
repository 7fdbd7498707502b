package unicase

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/swiss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Initial capacities, sized for the case mappings of Unicode 15.
const (
	simpleMapCapacity  = 1600
	specialMapCapacity = 128
)

// casedCategories are the letter categories scanned for multi-codepoint
// mappings. Letters such as 'ŉ' and 'ﬀ' have a full mapping but no simple
// one, so unicode.CaseRanges alone misses them.
var casedCategories = []*unicode.RangeTable{
	unicode.Lu,
	unicode.Ll,
	unicode.Lt,
}

// Build constructs a fresh set of tables. Most callers want Default.
func Build() *Tables {
	t := &Tables{
		upper:    swiss.New[rune, rune](simpleMapCapacity),
		lower:    swiss.New[rune, rune](simpleMapCapacity),
		fold:     swiss.New[rune, rune](simpleMapCapacity),
		upperSeq: swiss.New[rune, []rune](specialMapCapacity),
		lowerSeq: swiss.New[rune, []rune](specialMapCapacity),
	}

	// Casers keep per-call state; they are only used here, under Default's once.
	upperCaser := cases.Upper(language.Und)
	lowerCaser := cases.Lower(language.Und)

	visit := func(r rune) {
		if r < utf8.RuneSelf {
			return
		}
		if u := unicode.ToUpper(r); u != r {
			t.upper.Put(r, u)
		}
		if l := unicode.ToLower(r); l != r {
			t.lower.Put(r, l)
		}
		if f := unicode.ToLower(unicode.ToUpper(r)); f != r {
			t.fold.Put(r, f)
		}

		if seq := expand(upperCaser, r); len(seq) > 1 {
			t.upperSeq.Put(r, seq)
		}
		if seq := expand(lowerCaser, r); len(seq) > 1 {
			t.lowerSeq.Put(r, seq)
		}
	}

	// CaseRanges covers every codepoint with a simple mapping, including
	// non-letters such as Roman numerals, circled letters and U+0345.
	for _, cr := range unicode.CaseRanges {
		for r := rune(cr.Lo); r <= rune(cr.Hi); r++ {
			visit(r)
		}
	}
	for _, table := range casedCategories {
		eachRune(table, visit)
	}

	return t
}

// expand runs a single codepoint through a caser.
func expand(c cases.Caser, r rune) []rune {
	c.Reset()
	return []rune(c.String(string(r)))
}

// eachRune calls fn for every codepoint in table.
func eachRune(table *unicode.RangeTable, fn func(rune)) {
	for _, rng := range table.R16 {
		for c := uint32(rng.Lo); c <= uint32(rng.Hi); c += uint32(rng.Stride) {
			fn(rune(c))
		}
	}
	for _, rng := range table.R32 {
		for c := rng.Lo; c <= rng.Hi; c += rng.Stride {
			fn(rune(c))
		}
	}
}
