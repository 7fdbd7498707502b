// Package strmap provides containers keyed by ustr.String content.
//
// Map resolves hash collisions by comparing bytes, so distinct strings never
// share an entry. HashKey trades that guarantee for a plain comparable key
// that can be used with Go maps when collisions are acceptable.
package strmap

import (
	"slices"

	"github.com/tidwall/hashmap"

	"github.com/dshills/ustring/internal/ustr"
)

// HashKey identifies a string by its hash alone. Distinct strings with the
// same hash map to the same HashKey.
type HashKey uint64

// KeyOf returns the HashKey of s.
func KeyOf(s ustr.String) HashKey {
	return HashKey(s.Hash())
}

type entry[V any] struct {
	key   ustr.String
	value V
}

// Map is a hash map keyed by string content. Keys are stored as Clones and
// released by Delete and Clear.
//
// A Map is not safe for concurrent use.
type Map[V any] struct {
	buckets hashmap.Map[uint64, []entry[V]]
	n       int
	hash    func(ustr.String) uint64
}

// New creates an empty map.
func New[V any]() *Map[V] {
	return &Map[V]{hash: ustr.String.Hash}
}

func (m *Map[V]) hashOf(s ustr.String) uint64 {
	if m.hash == nil {
		return s.Hash()
	}
	return m.hash(s)
}

// Set stores value under key and reports whether an existing entry was
// replaced.
func (m *Map[V]) Set(key ustr.String, value V) bool {
	h := m.hashOf(key)
	bucket, _ := m.buckets.Get(h)
	for i := range bucket {
		if bucket[i].key.Equals(key) {
			bucket[i].value = value
			return true
		}
	}
	m.buckets.Set(h, append(bucket, entry[V]{key: key.Clone(), value: value}))
	m.n++
	return false
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key ustr.String) (V, bool) {
	bucket, _ := m.buckets.Get(m.hashOf(key))
	for _, e := range bucket {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[V]) Has(key ustr.String) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map[V]) Delete(key ustr.String) bool {
	h := m.hashOf(key)
	bucket, _ := m.buckets.Get(h)
	for i := range bucket {
		if !bucket[i].key.Equals(key) {
			continue
		}
		bucket[i].key.Release()
		bucket = slices.Delete(bucket, i, i+1)
		if len(bucket) == 0 {
			m.buckets.Delete(h)
		} else {
			m.buckets.Set(h, bucket)
		}
		m.n--
		return true
	}
	return false
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.n
}

// Scan calls fn for every entry in unspecified order until fn returns false.
func (m *Map[V]) Scan(fn func(key ustr.String, value V) bool) {
	m.buckets.Scan(func(_ uint64, bucket []entry[V]) bool {
		for _, e := range bucket {
			if !fn(e.key, e.value) {
				return false
			}
		}
		return true
	})
}

// SortedKeys returns the keys in byte order.
func (m *Map[V]) SortedKeys() []ustr.String {
	keys := make([]ustr.String, 0, m.n)
	m.Scan(func(key ustr.String, _ V) bool {
		keys = append(keys, key)
		return true
	})
	slices.SortFunc(keys, ustr.String.Compare)
	return keys
}

// Clear removes every entry and releases the stored keys.
func (m *Map[V]) Clear() {
	m.Scan(func(key ustr.String, _ V) bool {
		key.Release()
		return true
	})
	m.buckets = hashmap.Map[uint64, []entry[V]]{}
	m.n = 0
}
