package buffer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickwritereader/smallbuf/seq"
)

func pattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func TestWithLen(t *testing.T) {
	for _, n := range []int{0, 1, 4, seq.InlineCap, seq.InlineCap + 1, 1000} {
		b := WithLen(n)
		assert.Equal(t, n, b.Len(), "WithLen(%d).Len()", n)
	}
}

func TestNewIsEmpty(t *testing.T) {
	assert.Equal(t, 0, New().Len())
}

func TestCopyInCopyOutRoundTrip(t *testing.T) {
	cases := []struct {
		size, off, amount int
	}{
		{10, 0, 10},
		{10, 3, 4},
		{10, 9, 1},
		{seq.InlineCap, 1, seq.InlineCap - 1},
		{seq.InlineCap + 5, 0, seq.InlineCap + 5},
		{4096, 1000, 2000},
	}

	for _, tc := range cases {
		b := WithLen(tc.size)
		src := pattern(tc.amount)
		b.CopyIn(tc.off, src)

		dst := make([]byte, tc.amount)
		b.CopyOut(dst, tc.off)
		assert.Equal(t, src, dst, "round trip size=%d off=%d amount=%d", tc.size, tc.off, tc.amount)
	}
}

func TestCopyBoundary(t *testing.T) {
	b := WithLen(10)
	two := []byte{1, 2}

	// off+amount == Len is in contract.
	assert.NotPanics(t, func() { b.CopyIn(8, two) })
	assert.NotPanics(t, func() { b.CopyOut(two, 8) })

	// One past the end is a contract failure.
	assert.Panics(t, func() { b.CopyIn(9, two) })
	assert.Panics(t, func() { b.CopyOut(two, 9) })
	assert.Panics(t, func() { b.CopyIn(-1, two) })
	assert.Panics(t, func() { b.CopyOut(two, -1) })
	assert.Panics(t, func() { b.CopyIn(0, pattern(11)) })
}

func TestZeroLengthSpans(t *testing.T) {
	b := WithLen(10)
	for _, off := range []int{0, 5, 10} {
		assert.NotPanics(t, func() { b.CopyIn(off, nil) }, "CopyIn(%d, nil)", off)
		assert.NotPanics(t, func() { b.CopyOut(nil, off) }, "CopyOut(nil, %d)", off)
	}
	assert.Panics(t, func() { b.CopyIn(11, nil) })

	empty := New()
	assert.NotPanics(t, func() { empty.CopyIn(0, nil) })
	assert.NotPanics(t, func() { empty.CopyOut(nil, 0) })
}

func TestSubRangeOverwrite(t *testing.T) {
	b := WithLen(4)

	before := make([]byte, 4)
	b.CopyOut(before, 0)

	b.CopyIn(1, []byte{9, 9})

	after := make([]byte, 4)
	b.CopyOut(after, 0)

	assert.Equal(t, before[0], after[0], "byte before the span changed")
	assert.Equal(t, byte(9), after[1])
	assert.Equal(t, byte(9), after[2])
	assert.Equal(t, before[3], after[3], "byte after the span changed")
}

func TestPatternAcrossTierSwitch(t *testing.T) {
	for _, k := range []int{1, 2, seq.InlineCap, 10 * seq.InlineCap} {
		n := seq.InlineCap + k
		b := WithLen(n)
		src := pattern(n)
		b.CopyIn(0, src)

		dst := make([]byte, n)
		b.CopyOut(dst, 0)
		require.Equal(t, src, dst, "pattern corrupted at n=%d", n)
	}
}

func TestWriteGrowsAndPreservesContent(t *testing.T) {
	b := New()
	var want bytes.Buffer
	chunk := pattern(7)
	for b.Len() <= 4*seq.InlineCap {
		n, err := b.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
		want.Write(chunk)
	}
	assert.Equal(t, want.Bytes(), b.ByteSlice())
}

func TestExtend(t *testing.T) {
	b := New()
	off := b.Extend(4)
	assert.Equal(t, 0, off)
	assert.Equal(t, 4, b.Len())

	b.CopyIn(off, []byte{1, 2, 3, 4})
	off = b.Extend(2)
	assert.Equal(t, 4, off)
	b.CopyIn(off, []byte{5, 6})

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, b.ByteSlice())
	assert.Panics(t, func() { b.Extend(-1) })
}

func TestCloneIsDeep(t *testing.T) {
	b := WithLen(seq.InlineCap + 3)
	b.CopyIn(0, pattern(b.Len()))

	c := b.Clone()
	require.Equal(t, b.ByteSlice(), c.ByteSlice())

	c.CopyIn(0, []byte{0xFF})
	assert.Equal(t, byte(0), b.Uint8(0))
}

func TestReset(t *testing.T) {
	b := WithLen(8)
	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Panics(t, func() { b.CopyOut(make([]byte, 1), 0) })
}

func TestPrimitivesRoundTrip(t *testing.T) {
	b := WithLen(64)

	b.PutUint8(0, 0xAB)
	b.PutUint16(1, 0xBEEF)
	b.PutUint32(3, 0xDEADBEEF)
	b.PutUint64(7, 0x0102030405060708)
	b.PutFloat32(15, 3.5)
	b.PutFloat64(19, -12.25)
	b.PutBool(27, true)
	b.PutBool(28, false)
	b.PutString(29, "go")

	assert.Equal(t, uint8(0xAB), b.Uint8(0))
	assert.Equal(t, uint16(0xBEEF), b.Uint16(1))
	assert.Equal(t, uint32(0xDEADBEEF), b.Uint32(3))
	assert.Equal(t, uint64(0x0102030405060708), b.Uint64(7))
	assert.Equal(t, float32(3.5), b.Float32(15))
	assert.Equal(t, -12.25, b.Float64(19))
	assert.True(t, b.Bool(27))
	assert.False(t, b.Bool(28))

	s := make([]byte, 2)
	b.CopyOut(s, 29)
	assert.Equal(t, "go", string(s))
}

func TestPrimitivesLittleEndian(t *testing.T) {
	b := WithLen(4)
	b.PutUint32(0, 0x04030201)
	assert.Equal(t, []byte{1, 2, 3, 4}, b.ByteSlice())
}

func TestPrimitivesBounds(t *testing.T) {
	b := WithLen(4)
	assert.Panics(t, func() { b.PutUint32(1, 0) })
	assert.Panics(t, func() { b.Uint64(0) })
	assert.Panics(t, func() { b.PutUint8(4, 0) })
	assert.Panics(t, func() { b.PutString(3, "go") })
	assert.NotPanics(t, func() { b.PutUint32(0, 0) })
}
