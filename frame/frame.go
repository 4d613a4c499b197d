// Package frame appends and scans varint length-prefixed records over
// a buffer.Buffer.
//
// The wire layout is a plain concatenation: for each record,
// varint(len) followed by the record bytes. Writers only ever append;
// readers walk the buffer front to back. Corrupt or truncated input is
// a data error and is returned as an error value, unlike the span
// contract violations in package buffer, which panic.
package frame

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/mus-format/mus-go/varint"

	"github.com/quickwritereader/smallbuf/buffer"
	"github.com/quickwritereader/smallbuf/utils"
)

// ErrCorrupt reports a length prefix that is malformed or runs past
// the end of the buffer.
var ErrCorrupt = errors.New("frame: corrupt length prefix")

// scratch holds pooled slices for AppendRecord marshalling.
var scratch = utils.NewBufferPool()

// Record is anything that knows its encoded size and can marshal
// itself into a byte slice at a position, returning the new position.
type Record interface {
	Size() int
	MarshalTo(buf []byte, pos int) int
}

// Writer appends length-prefixed records to a buffer.
type Writer struct {
	buf *buffer.Buffer
}

func NewWriter(buf *buffer.Buffer) *Writer {
	return &Writer{buf: buf}
}

// Append writes varint(len(p)) followed by p at the end of the buffer.
func (w *Writer) Append(p []byte) {
	var hdr [binary.MaxVarintLen64]byte
	n := varint.Uint64.Marshal(uint64(len(p)), hdr[:])

	off := w.buf.Extend(n + len(p))
	w.buf.CopyIn(off, hdr[:n])
	w.buf.CopyIn(off+n, p)
}

// AppendRecord marshals r through a pooled scratch slice and appends
// it as one record.
func (w *Writer) AppendRecord(r Record) {
	size := r.Size()
	buf := scratch.Acquire(size)
	r.MarshalTo(buf, 0)
	w.Append(buf[:size])
	scratch.Release(buf)
}

// Reader walks the records of a buffer front to back.
type Reader struct {
	buf *buffer.Buffer
	off int
}

func NewReader(buf *buffer.Buffer) *Reader {
	return &Reader{buf: buf}
}

// More reports whether bytes remain before the cursor reaches the end.
func (r *Reader) More() bool { return r.off < r.buf.Len() }

// Next returns a copy of the next record, or io.EOF when the cursor
// has consumed the whole buffer. The cursor does not advance past a
// corrupt record, so a failed Next fails again.
func (r *Reader) Next() ([]byte, error) {
	if r.off >= r.buf.Len() {
		return nil, io.EOF
	}

	var hdr [binary.MaxVarintLen64]byte
	k := min(len(hdr), r.buf.Len()-r.off)
	r.buf.CopyOut(hdr[:k], r.off)

	length, n, err := varint.Uint64.Unmarshal(hdr[:k])
	if err != nil {
		return nil, ErrCorrupt
	}
	if length > uint64(r.buf.Len()-r.off-n) {
		return nil, ErrCorrupt
	}

	out := make([]byte, length)
	r.buf.CopyOut(out, r.off+n)
	r.off += n + int(length)
	return out, nil
}
