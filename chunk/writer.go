// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunk

import (
	"encoding/binary"
	"fmt"
)

// Writer builds a chunk stream in memory. Chunks are opened with
// [Writer.Begin] and closed with [Writer.End], which back-fills the
// payload length. Misuse (bad names, unbalanced Begin / End, overlong
// strings) is a programmer error and panics.
type Writer struct {
	buf []byte

	// open holds the offsets of the headers of currently open chunks.
	open []int
}

// NewWriter returns a new empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Begin opens a new chunk with the given name, nested in the
// currently open chunk if any.
func (w *Writer) Begin(name string) *Writer {
	if name == "" || len(name) > NameLength {
		panic(fmt.Sprintf("chunk.Writer: invalid chunk name %q", name))
	}
	w.open = append(w.open, len(w.buf))
	var hdr [HeaderLength]byte
	copy(hdr[:], name)
	w.buf = append(w.buf, hdr[:]...)
	return w
}

// End closes the most recently opened chunk.
func (w *Writer) End() *Writer {
	n := len(w.open)
	if n == 0 {
		panic("chunk.Writer: End without Begin")
	}
	start := w.open[n-1]
	w.open = w.open[:n-1]
	size := len(w.buf) - start - HeaderLength
	binary.LittleEndian.PutUint32(w.buf[start+NameLength:], uint32(size))
	return w
}

// U8 writes a single byte.
func (w *Writer) U8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

// U32 writes a little-endian uint32.
func (w *Writer) U32(v uint32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

// Raw writes the given bytes as-is.
func (w *Writer) Raw(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// Text writes a length-prefixed string.
func (w *Writer) Text(s string) *Writer {
	if len(s) > MaxStringLength {
		panic(fmt.Sprintf("chunk.Writer: string of length %d is too long", len(s)))
	}
	w.buf = append(w.buf, uint8(len(s)))
	w.buf = append(w.buf, s...)
	return w
}

// Bytes returns the encoded stream. All chunks must be closed.
func (w *Writer) Bytes() []byte {
	if len(w.open) != 0 {
		panic(fmt.Sprintf("chunk.Writer: %d chunks still open", len(w.open)))
	}
	return w.buf
}
