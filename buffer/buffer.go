// Package buffer exposes a byte buffer with bounded bulk copy-in and
// copy-out over contiguous storage.
//
// Buffer wraps a seq.Seq[byte] and hides its element API: callers see
// a fixed set of byte-oriented operations that work the same whether
// the sequence is still in its inline tier or has moved to the heap.
// Range violations are contract failures and panic; they are never
// reported as error values.
package buffer

import (
	"fmt"

	"github.com/quickwritereader/smallbuf/seq"
)

// Buffer is a contiguous byte buffer. The zero value is empty and
// ready for use. A Buffer must not be copied by value after first use.
type Buffer struct {
	sq seq.Seq[byte]
}

// New returns an empty buffer.
func New() *Buffer { return &Buffer{} }

// WithLen returns a buffer of n bytes. The content is zeroed, but
// callers should treat it as unspecified and overwrite the ranges they
// care about via CopyIn.
func WithLen(n int) *Buffer {
	b := &Buffer{}
	b.sq.Resize(n)
	return b
}

// Len returns the current length in bytes.
func (b *Buffer) Len() int { return b.sq.Len() }

// Cap returns the capacity of the active storage tier.
func (b *Buffer) Cap() int { return b.sq.Cap() }

// checkSpan validates the range [off, off+n) against the current
// length. Violations panic: an out-of-range span is a bug in the
// caller, not a runtime condition to handle.
func (b *Buffer) checkSpan(op string, off, n int) {
	if off < 0 || n > b.sq.Len()-off {
		panic(fmt.Sprintf("buffer: %s: span [%d:%d) out of range for length %d",
			op, off, off+n, b.sq.Len()))
	}
}

// CopyIn overwrites the bytes [off, off+len(src)) with src. The length
// of the buffer never changes and no allocation occurs.
func (b *Buffer) CopyIn(off int, src []byte) {
	b.checkSpan("CopyIn", off, len(src))
	copy(b.sq.Slice()[off:], src)
}

// CopyOut reads len(dst) bytes starting at off into dst. The buffer is
// not modified.
func (b *Buffer) CopyOut(dst []byte, off int) {
	b.checkSpan("CopyOut", off, len(dst))
	copy(dst, b.sq.Slice()[off:])
}

// Extend appends n unspecified bytes and returns the offset where they
// start. It is the reservation step for writers that fill a span via
// CopyIn or the Put helpers afterwards.
func (b *Buffer) Extend(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("buffer: Extend: negative count %d", n))
	}
	off := b.sq.Len()
	b.sq.Resize(off + n)
	return off
}

// Write appends p to the buffer, growing the storage as needed. It
// implements io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.sq.Append(p...)
	return len(p), nil
}

// Reset empties the buffer, keeping the active tier and its capacity.
func (b *Buffer) Reset() { b.sq.Reset() }

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := WithLen(b.sq.Len())
	copy(c.sq.Slice(), b.sq.Slice())
	return c
}

// ByteSlice returns a copy of the whole content. The returned slice is
// owned by the caller and never aliases the buffer.
func (b *Buffer) ByteSlice() []byte {
	out := make([]byte, b.sq.Len())
	copy(out, b.sq.Slice())
	return out
}
