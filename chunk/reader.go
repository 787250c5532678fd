// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunk

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Reader is a cursor over one chunk (or the root of a stream),
// bounded by the chunk's declared extent. A Reader returned by
// [Reader.Enter] has its own cursor, independent of its parent.
//
// Reads past the boundary do not panic: they record a sticky
// [OverrunError], shared by every Reader of the same stream, and
// return zero values. Check [Reader.Err] after a group of reads.
// A Reader is not safe for concurrent use.
type Reader struct {
	name string
	data []byte

	// pos is the cursor within data.
	pos int

	// base is the absolute offset of data[0] in the stream.
	base int

	err *error
}

// NewReader returns a root Reader over the given stream. The root has
// no name, and is bounded by the length of data.
// Byte slices returned by [Reader.ReadBytes] alias data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, err: new(error)}
}

// ReadAll reads the whole stream from r and returns a root Reader on it.
func ReadAll(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewReader(data), nil
}

// Name returns the name tag of this chunk, or "" for the root.
func (r *Reader) Name() string {
	return r.name
}

// Err returns the first error encountered by any Reader of this stream.
func (r *Reader) Err() error {
	return *r.err
}

// HasMore returns whether unconsumed bytes remain before the
// boundary of this chunk, and no error has occurred.
func (r *Reader) HasMore() bool {
	return *r.err == nil && r.pos < len(r.data)
}

// Offset returns the absolute offset of the cursor in the stream.
func (r *Reader) Offset() int {
	return r.base + r.pos
}

// Len returns the number of unconsumed bytes before the boundary.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// take consumes n bytes, or records an overrun.
func (r *Reader) take(n int) []byte {
	if *r.err != nil {
		return nil
	}
	if n < 0 || n > r.Len() {
		*r.err = &OverrunError{Chunk: r.name, Offset: r.Offset(), Want: n, Have: r.Len()}
		r.pos = len(r.data)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

// Enter descends into the next child chunk, returning a Reader
// bounded to the child's declared extent. The cursor of r moves past
// the entire child, regardless of how much of it is read.
// If the child header or payload overruns r, the error is recorded
// and an empty Reader is returned.
func (r *Reader) Enter() *Reader {
	start := r.pos
	hdr := r.take(HeaderLength)
	if hdr == nil {
		return &Reader{name: "", base: r.Offset(), err: r.err}
	}
	name := string(bytes.TrimRight(hdr[:NameLength], "\x00"))
	size := binary.LittleEndian.Uint32(hdr[NameLength:])
	if int64(size) > int64(r.Len()) {
		*r.err = &OverrunError{Chunk: name, Offset: r.base + start, Want: int(size), Have: r.Len()}
		r.pos = len(r.data)
		return &Reader{name: name, base: r.Offset(), err: r.err}
	}
	child := &Reader{
		name: name,
		data: r.data[r.pos : r.pos+int(size)],
		base: r.Offset(),
		err:  r.err,
	}
	r.pos += int(size)
	return child
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadBytes reads a run of n raw bytes. The result aliases the stream.
func (r *Reader) ReadBytes(n int) []byte {
	return r.take(n)
}

// ReadString reads a length-prefixed string.
func (r *Reader) ReadString() string {
	n := r.ReadU8()
	return string(r.take(int(n)))
}
