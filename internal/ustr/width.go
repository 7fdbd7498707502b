package ustr

import (
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the number of monospace cells s occupies, counting
// East Asian wide characters as two and combining marks as zero.
func (s String) DisplayWidth() int {
	return uniseg.StringWidth(s.String())
}

// PadLeft right-aligns s in a field of width cells using pad.
func (s String) PadLeft(width int, pad rune) String {
	gap := s.padding(width, pad)
	if gap.n == 0 {
		return s.Clone()
	}
	return Concat(gap, s)
}

// PadRight left-aligns s in a field of width cells using pad.
func (s String) PadRight(width int, pad rune) String {
	gap := s.padding(width, pad)
	if gap.n == 0 {
		return s.Clone()
	}
	return Concat(s, gap)
}

func (s String) padding(width int, pad rune) String {
	cell := uniseg.StringWidth(string(pad))
	missing := width - s.DisplayWidth()
	if cell <= 0 || missing < cell {
		return String{}
	}
	return FromRune(pad).Multiply(missing/cell, String{})
}
