package ustr

import "sync"

// maxPooledCapacity bounds the scratch buffers kept for reuse so a single
// huge result does not pin memory.
const maxPooledCapacity = 64 << 10

// builderPool recycles scratch builders used by the algorithms that
// assemble a result piecewise. Results are copied out by Build, so a
// pooled buffer is never shared with a String.
var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{buf: make([]byte, 0, 256)}
	},
}

// getBuilder retrieves an empty builder with room for at least capacity bytes.
func getBuilder(capacity int) *Builder {
	b := builderPool.Get().(*Builder)
	b.Reset()
	b.Grow(capacity)
	return b
}

// putBuilder returns b to the pool. b must not be used afterwards.
func putBuilder(b *Builder) {
	if b == nil || cap(b.buf) > maxPooledCapacity {
		return
	}
	b.Reset()
	builderPool.Put(b)
}
