// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"fmt"
)

// Kinds of mesh decoding errors. Every error returned by a [Decoder]
// matches exactly one of these with [errors.Is].
var (
	// ErrRead means the chunk stream is truncated or otherwise unreadable.
	ErrRead = errors.New("mesh: truncated chunk stream")

	// ErrSignature means the top chunk is not a mesh chunk.
	ErrSignature = errors.New("mesh: not a mesh chunk")

	// ErrChunk means an unrecognized child chunk.
	ErrChunk = errors.New("mesh: unrecognized chunk")

	// ErrTopology means an unknown topology code.
	ErrTopology = errors.New("mesh: unknown topology")

	// ErrAttribType means an attribute format that is not one of the known types.
	ErrAttribType = errors.New("mesh: invalid attribute type")

	// ErrIndexType means an unknown index format.
	ErrIndexType = errors.New("mesh: invalid index type")

	// ErrStride means the attribute sizes of a buffer do not add up to its stride.
	ErrStride = errors.New("mesh: attribute sizes do not match buffer stride")

	// ErrDoubleIndex means a second index chunk in the same mesh.
	ErrDoubleIndex = errors.New("mesh: more than one index chunk")

	// ErrNotInCollection means the requested mesh name is not in the asset.
	ErrNotInCollection = errors.New("mesh: name not in collection")

	// ErrBuffer means the device failed to create a buffer.
	ErrBuffer = errors.New("mesh: buffer creation failed")
)

// Error is a mesh decoding error, naming where it happened.
type Error struct {

	// Kind is one of the Err* kinds above.
	Kind error

	// Mesh is the name of the mesh being decoded, if known.
	Mesh string

	// Chunk is the name of the offending chunk.
	Chunk string

	// Detail describes the offending field or value.
	Detail string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	s := e.Kind.Error()
	if e.Chunk != "" {
		s += fmt.Sprintf(": chunk %q", e.Chunk)
	}
	if e.Mesh != "" {
		s += fmt.Sprintf(" of mesh %q", e.Mesh)
	}
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
