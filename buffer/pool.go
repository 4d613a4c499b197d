package buffer

import (
	"sync"

	"github.com/quickwritereader/smallbuf/utils"
)

// Pool is a size-classed free list of Buffers. Acquire hands out a
// buffer whose heap capacity matches the smallest class holding the
// requested length, so a Release/Acquire cycle reuses the backing
// storage instead of re-growing it.
//
// The pool itself is safe for concurrent use; the Buffers it hands out
// are not.
type Pool struct {
	pools [len(utils.BufferSizeClass)]sync.Pool
}

func NewPool() *Pool {
	var p Pool
	for i, sz := range utils.BufferSizeClass {
		size := sz
		p.pools[i].New = func() any {
			b := New()
			b.sq.Grow(size)
			return b
		}
	}
	return &p
}

// Acquire returns a zeroed buffer of length n. Lengths beyond the
// largest class fall back to a direct allocation.
func (p *Pool) Acquire(n int) *Buffer {
	idx := utils.SizeIndex(n)
	if idx < 0 {
		return WithLen(n)
	}
	b := p.pools[idx].Get().(*Buffer)
	b.sq.Resize(n)
	return b
}

// Release resets b and returns it to the pool when its capacity
// matches a class. Buffers with off-class capacities are dropped for
// the collector. The caller must not use b afterwards.
func (p *Pool) Release(b *Buffer) {
	b.sq.Reset()
	c := b.sq.Cap()
	idx := utils.SizeIndex(c)
	if idx < 0 || utils.BufferSizeClass[idx] != c {
		return
	}
	p.pools[idx].Put(b)
}
