package buffer

import (
	"encoding/binary"
	"math"
)

// Fixed-width accessors at explicit offsets. All multi-byte values are
// little-endian. Every accessor runs the same span check as CopyIn and
// CopyOut and panics on violation.

// PutUint8 writes v at off.
func (b *Buffer) PutUint8(off int, v uint8) {
	b.checkSpan("PutUint8", off, 1)
	b.sq.Slice()[off] = v
}

// PutUint16 writes v at [off, off+2).
func (b *Buffer) PutUint16(off int, v uint16) {
	b.checkSpan("PutUint16", off, 2)
	binary.LittleEndian.PutUint16(b.sq.Slice()[off:], v)
}

// PutUint32 writes v at [off, off+4).
func (b *Buffer) PutUint32(off int, v uint32) {
	b.checkSpan("PutUint32", off, 4)
	binary.LittleEndian.PutUint32(b.sq.Slice()[off:], v)
}

// PutUint64 writes v at [off, off+8).
func (b *Buffer) PutUint64(off int, v uint64) {
	b.checkSpan("PutUint64", off, 8)
	binary.LittleEndian.PutUint64(b.sq.Slice()[off:], v)
}

// PutFloat32 writes the IEEE 754 bits of v at [off, off+4).
func (b *Buffer) PutFloat32(off int, v float32) {
	b.checkSpan("PutFloat32", off, 4)
	binary.LittleEndian.PutUint32(b.sq.Slice()[off:], math.Float32bits(v))
}

// PutFloat64 writes the IEEE 754 bits of v at [off, off+8).
func (b *Buffer) PutFloat64(off int, v float64) {
	b.checkSpan("PutFloat64", off, 8)
	binary.LittleEndian.PutUint64(b.sq.Slice()[off:], math.Float64bits(v))
}

// PutBool writes v as a single byte at off.
func (b *Buffer) PutBool(off int, v bool) {
	b.checkSpan("PutBool", off, 1)
	var c byte
	if v {
		c = 1
	}
	b.sq.Slice()[off] = c
}

// PutString writes the bytes of s at [off, off+len(s)).
func (b *Buffer) PutString(off int, s string) {
	b.checkSpan("PutString", off, len(s))
	copy(b.sq.Slice()[off:], s)
}

// Uint8 reads the byte at off.
func (b *Buffer) Uint8(off int) uint8 {
	b.checkSpan("Uint8", off, 1)
	return b.sq.Slice()[off]
}

// Uint16 reads [off, off+2).
func (b *Buffer) Uint16(off int) uint16 {
	b.checkSpan("Uint16", off, 2)
	return binary.LittleEndian.Uint16(b.sq.Slice()[off:])
}

// Uint32 reads [off, off+4).
func (b *Buffer) Uint32(off int) uint32 {
	b.checkSpan("Uint32", off, 4)
	return binary.LittleEndian.Uint32(b.sq.Slice()[off:])
}

// Uint64 reads [off, off+8).
func (b *Buffer) Uint64(off int) uint64 {
	b.checkSpan("Uint64", off, 8)
	return binary.LittleEndian.Uint64(b.sq.Slice()[off:])
}

// Float32 reads [off, off+4) as IEEE 754 bits.
func (b *Buffer) Float32(off int) float32 {
	b.checkSpan("Float32", off, 4)
	return math.Float32frombits(binary.LittleEndian.Uint32(b.sq.Slice()[off:]))
}

// Float64 reads [off, off+8) as IEEE 754 bits.
func (b *Buffer) Float64(off int) float64 {
	b.checkSpan("Float64", off, 8)
	return math.Float64frombits(binary.LittleEndian.Uint64(b.sq.Slice()[off:]))
}

// Bool reads the byte at off; any non-zero value is true.
func (b *Buffer) Bool(off int) bool {
	b.checkSpan("Bool", off, 1)
	return b.sq.Slice()[off] != 0
}
