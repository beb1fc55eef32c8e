// Package pool provides reusable growable byte buffers. A caller
// acquires a slice, fills it, and releases it back; release clears
// the length but retains the capacity so the next acquisition starts
// with warmed storage.
package pool

import "sync"

const defaultCapacity = 64

// ByteSlicePool hands out zero-length byte slices with pre-grown
// capacity
type ByteSlicePool struct {
	pool sync.Pool
}

func ByteSlice() *ByteSlicePool {
	p := &ByteSlicePool{}
	p.pool.New = func() interface{} {
		b := make([]byte, 0, defaultCapacity)
		return &b
	}
	return p
}

// Get returns a free buffer, or allocates one
func (p *ByteSlicePool) Get() []byte {
	b := p.pool.Get().(*[]byte)
	return (*b)[:0]
}

// GetCapacity returns a buffer with at least the given capacity
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := p.Get()
	if cap(b) < n {
		p.Put(b)
		return make([]byte, 0, n)
	}
	return b
}

// Put releases a buffer back to the pool. The caller must not use the
// slice afterwards.
func (p *ByteSlicePool) Put(b []byte) {
	b = b[:0]
	p.pool.Put(&b)
}
