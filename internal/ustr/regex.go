package ustr

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Match is a regular expression match. Offsets count codepoints.
type Match struct {
	// Groups holds the whole match followed by each capture group.
	// Groups that did not participate are empty.
	Groups []String
	Index  int
	Length int
}

// CompileRegex compiles pattern using ECMAScript syntax.
func CompileRegex(pattern String) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern.String(), regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("compile regex %q: %w", pattern.String(), err)
	}
	return re, nil
}

// RegexMatch returns the first match of re in s.
func (s String) RegexMatch(re *regexp2.Regexp) (Match, bool, error) {
	m, err := re.FindStringMatch(s.String())
	if err != nil {
		return Match{}, false, fmt.Errorf("regex match: %w", err)
	}
	if m == nil {
		return Match{}, false, nil
	}
	return newMatch(m), true, nil
}

// RegexFindAll returns up to limit successive non-overlapping matches of
// re. A negative limit returns all of them.
func (s String) RegexFindAll(re *regexp2.Regexp, limit int) ([]Match, error) {
	var out []Match
	m, err := re.FindStringMatch(s.String())
	for m != nil && err == nil && (limit < 0 || len(out) < limit) {
		out = append(out, newMatch(m))
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return out, fmt.Errorf("regex match: %w", err)
	}
	return out, nil
}

func newMatch(m *regexp2.Match) Match {
	groups := m.Groups()
	out := Match{Groups: make([]String, len(groups)), Index: m.Index, Length: m.Length}
	for i := range groups {
		out.Groups[i] = New(groups[i].String())
	}
	return out
}
