package ustr

// Substr returns the codepoints from start to the end of s. start == Len()
// yields the empty string.
func (s String) Substr(start int) (String, error) {
	length := s.Len()
	if start < 0 || start > length {
		return String{}, &RangeError{Op: "Substr", Index: start, Len: length}
	}
	from := s.Begin().Plus(start)
	return fromBytes(s.bytes()[from.byteIdx:]), nil
}

// SubstrN returns count codepoints starting at start.
func (s String) SubstrN(start, count int) (String, error) {
	length := s.Len()
	if start < 0 || count < 0 || start > length || count > length-start {
		return String{}, &RangeError{Op: "SubstrN", Index: start, Count: count, Len: length}
	}
	from := s.Begin().Plus(start)
	to := from.Plus(count)
	return fromBytes(s.bytes()[from.byteIdx:to.byteIdx]), nil
}

// SubstrAt returns the codepoints from the iterator position to the end.
func (s String) SubstrAt(start Iterator) (String, error) {
	if !start.SameSource(s.Begin()) {
		return String{}, ErrForeignIterator
	}
	if start.byteIdx < 0 {
		return String{}, &RangeError{Op: "SubstrAt", Index: start.cpIdx, Len: s.Len()}
	}
	return fromBytes(s.bytes()[start.byteIdx:]), nil
}

// SubstrRange returns the codepoints in [from, to).
func (s String) SubstrRange(from, to Iterator) (String, error) {
	begin := s.Begin()
	if !from.SameSource(begin) || !to.SameSource(begin) {
		return String{}, ErrForeignIterator
	}
	if from.byteIdx < 0 || to.byteIdx < from.byteIdx {
		return String{}, &RangeError{Op: "SubstrRange", Index: from.cpIdx, Count: to.cpIdx - from.cpIdx, Len: s.Len()}
	}
	return fromBytes(s.bytes()[from.byteIdx:to.byteIdx]), nil
}

// SubstrBytes returns count bytes starting at byte offset from. The bounds
// are not checked against codepoint boundaries.
func (s String) SubstrBytes(from, count int) (String, error) {
	if from < 0 || count < 0 || from > s.n || count > s.n-from {
		return String{}, &RangeError{Op: "SubstrBytes", Index: from, Count: count, Len: s.n}
	}
	return fromBytes(s.bytes()[from : from+count]), nil
}
