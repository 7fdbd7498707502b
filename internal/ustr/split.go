package ustr

// Split cuts s around every non-overlapping occurrence of needle, scanning
// left to right. With an empty needle the result is "", one entry per
// codepoint, "". When removeEmpty is set, empty pieces are dropped.
func (s String) Split(needle String, removeEmpty bool) []String {
	var parts []String
	add := func(b []byte) {
		if removeEmpty && len(b) == 0 {
			return
		}
		parts = append(parts, fromBytes(b))
	}
	hay := s.bytes()

	if needle.n == 0 {
		parts = make([]String, 0, s.Len()+2)
		add(nil)
		for it := s.Begin(); !it.Done(); it.Next() {
			add(hay[it.byteIdx : it.byteIdx+it.width()])
		}
		add(nil)
		return parts
	}

	from := s.Begin()
	for {
		hit := s.FindFirstAt(needle, from)
		if hit.Done() {
			add(hay[from.byteIdx:])
			return parts
		}
		add(hay[from.byteIdx:hit.byteIdx])
		from = skip(hit, needle.n)
	}
}

// Join concatenates parts with sep between consecutive elements.
func Join(parts []String, sep String) String {
	if len(parts) == 0 {
		return String{}
	}
	if len(parts) == 1 {
		return parts[0].Clone()
	}
	size := sep.n * (len(parts) - 1)
	for _, p := range parts {
		size += p.n
	}
	b := getBuilder(size)
	defer putBuilder(b)
	for i, p := range parts {
		if i > 0 {
			b.WriteUString(sep)
		}
		b.WriteUString(p)
	}
	return b.Build()
}

// skip advances it past n bytes, stopping on a codepoint boundary.
func skip(it Iterator, n int) Iterator {
	end := it.byteIdx + n
	for it.byteIdx < end {
		it.forward()
	}
	return it
}
