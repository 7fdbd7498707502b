package strmap

import (
	"sync"

	"github.com/dshills/ustring/internal/ustr"
)

// Interner deduplicates strings: equal inputs return Clones of one shared
// value. It is safe for concurrent use.
type Interner struct {
	mu     sync.Mutex
	values Map[ustr.String]
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{}
}

// Intern returns a Clone of the canonical value equal to s, storing s as
// the canonical value when none exists yet.
func (in *Interner) Intern(s ustr.String) ustr.String {
	in.mu.Lock()
	defer in.mu.Unlock()
	if v, ok := in.values.Get(s); ok {
		return v.Clone()
	}
	canonical := s.Clone()
	in.values.Set(s, canonical)
	return canonical.Clone()
}

// Len returns the number of distinct strings held.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.values.Len()
}

// Reset releases every canonical value.
func (in *Interner) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.values.Scan(func(_ ustr.String, v ustr.String) bool {
		v.Release()
		return true
	})
	in.values.Clear()
}
