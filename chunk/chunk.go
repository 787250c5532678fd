// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chunk reads and writes the nested, self-delimiting binary
container used for mesh assets.

Each chunk is laid out as:

	[8 bytes: name tag, ASCII, NUL padded]
	[4 bytes: payload length, little-endian]
	[payload: fields and child chunks]

Fields are fixed width little-endian integers, raw byte runs, and
strings stored as a 1 byte length followed by that many bytes.
Which fields a chunk holds, and in what order, is decided entirely
by the grammar of the format built on top (see the mesh package).
Chunks are read forward only and never revisited.
*/
package chunk

import (
	"errors"
	"fmt"
)

const (
	// NameLength is the fixed size of a chunk name tag, in bytes.
	NameLength = 8

	// HeaderLength is the size of a chunk header: name tag plus payload length.
	HeaderLength = NameLength + 4

	// MaxStringLength is the longest string that can be stored in a field.
	MaxStringLength = 255
)

// ErrOverrun is matched by every error caused by reading past
// the end of a chunk.
var ErrOverrun = errors.New("chunk: read past chunk boundary")

// OverrunError records a read that went past the boundary of a chunk.
type OverrunError struct {
	// Chunk is the name of the chunk being read (empty for the root).
	Chunk string

	// Offset is the absolute byte offset of the failed read in the stream.
	Offset int

	// Want is the number of bytes the read needed.
	Want int

	// Have is the number of bytes that remained before the boundary.
	Have int
}

func (e *OverrunError) Error() string {
	nm := e.Chunk
	if nm == "" {
		nm = "<root>"
	}
	return fmt.Sprintf("chunk: %q: read of %d bytes at offset %d, only %d left before boundary", nm, e.Want, e.Offset, e.Have)
}

func (e *OverrunError) Unwrap() error { return ErrOverrun }
