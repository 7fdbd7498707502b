// Package ustr provides a UTF-8 string value with small-string storage,
// copy-on-write sharing and cached derived state.
//
// Strings of up to InlineCapacity-1 bytes live inside the value. Longer
// strings live in a heap buffer shared between owners through an atomic
// reference count. Every buffer keeps a NUL terminator after the content so
// CStr can hand it to C-style consumers.
//
// Key features:
//   - O(1) Clone; buffers are copied only when an owner appends while others
//     still hold the same buffer
//   - Codepoint length and FNV-1a hash are computed once and cached
//   - Forward and reverse iterators that decode lazily
//   - Malformed UTF-8 never fails; it decodes to U+FFFF
//
// Ownership is explicit. Clone creates a tracked owner and Release gives it
// up. A plain Go assignment creates a read-only view; it stays valid because
// in-place appends only ever write past the end of every existing value.
// Values handed to other goroutines must be Clones.
//
// Basic usage:
//
//	s := ustr.New("pulse yes gun")
//	parts := s.Split(ustr.New(" "), true)  // "pulse", "yes", "gun"
//	up := s.ToUpper()                      // "PULSE YES GUN"
//	it := s.FindFirst(ustr.New("yes"), 0)  // it.Position() == 6
//
//	t := s.Clone()
//	t.AppendString("!")                    // s is unchanged
//	t.Release()
package ustr
