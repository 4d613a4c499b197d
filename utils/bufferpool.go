package utils

import (
	"math/bits"
	"sync"
)

// BufferSizeClass lists the pooled backing sizes, powers of two from
// 64 bytes to 32 KiB.
var BufferSizeClass = [...]int{64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768}

// SizeIndex returns the index of the smallest size class holding n
// bytes, or -1 when n is out of the pooled range.
func SizeIndex(n int) int {
	if n <= 0 || n > 32768 {
		return -1
	}
	idx := bits.Len(uint(n))
	if idx < 7 {
		return 0
	}
	if n&(n-1) == 0 {
		return idx - 7
	}
	return idx - 6
}

// BufferPool is a size-classed free list of byte slices. Releasing a
// slice whose capacity is not an exact class is a no-op, so callers
// may freely mix pooled and directly allocated slices.
type BufferPool struct {
	pools [len(BufferSizeClass)]sync.Pool
}

func NewBufferPool() *BufferPool {
	var bp BufferPool
	for i, sz := range BufferSizeClass {
		size := sz
		bp.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &bp
}

// Acquire returns a slice of length n, pooled when n fits a class.
func (bp *BufferPool) Acquire(n int) []byte {
	idx := SizeIndex(n)
	if idx < 0 {
		return make([]byte, n)
	}
	bufPtr := bp.pools[idx].Get().(*[]byte)
	return (*bufPtr)[:n]
}

// AcquireZeroed is Acquire with the content cleared.
func (bp *BufferPool) AcquireZeroed(n int) []byte {
	buf := bp.Acquire(n)
	clear(buf)
	return buf
}

// Release returns the slice to its pool if its capacity matches a class.
func (bp *BufferPool) Release(buf []byte) {
	c := cap(buf)
	if c&(c-1) != 0 || c < 64 || c > 32768 {
		return // not a valid class
	}
	idx := bits.Len(uint(c)) - 7
	if BufferSizeClass[idx] == c {
		bp.pools[idx].Put(&buf)
	}
}
