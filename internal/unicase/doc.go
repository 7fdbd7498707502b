// Package unicase provides the process-wide Unicode case tables used by the
// ustr string type.
//
// Three codepoint -> codepoint maps are kept:
//   - upper: simple uppercase mapping (UnicodeData.txt field 12)
//   - lower: simple lowercase mapping (UnicodeData.txt field 13)
//   - fold:  simple case folding, used for case-insensitive comparison
//
// Codepoints whose full case mapping expands to more than one codepoint
// (SpecialCasing.txt, e.g. 'ß' -> "SS", 'İ' -> "i̇") are kept in separate
// codepoint -> sequence maps that take precedence over the simple maps.
//
// The tables are built once, on first use, from the static data compiled
// into the unicode package and golang.org/x/text/cases. After that they are
// read-only and safe for concurrent use without locking.
//
// Basic usage:
//
//	r := unicase.ToUpper('a')                 // 'A'
//	b := unicase.AppendUpper(nil, 'ß')        // "SS"
//	same := unicase.Fold('K') == unicase.Fold('k')
package unicase
