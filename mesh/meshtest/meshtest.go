// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshtest builds mesh chunk streams for tests,
// including deliberately malformed ones.
package meshtest

import (
	"encoding/binary"
	"math"
	"strings"

	"cogentcore.org/blade/chunk"
)

// Chunk is a child chunk of a mesh.
type Chunk interface {
	WriteChunk(w *chunk.Writer)
}

// Attrib is one attribute of a [Buffer].
type Attrib struct {
	Name string

	// Code is the 2 character format code, e.g. "3f".
	Code string

	Flags uint8
}

// Buffer is a "buffer" chunk.
type Buffer struct {
	Stride  uint8
	Attribs []Attrib
	Data    []byte
}

func (b *Buffer) WriteChunk(w *chunk.Writer) {
	var format strings.Builder
	for _, a := range b.Attribs {
		format.WriteString(a.Code)
	}
	w.Begin("buffer").U8(b.Stride).Text(format.String())
	for _, a := range b.Attribs {
		w.Text(a.Name).U8(a.Flags)
	}
	w.Raw(b.Data).End()
}

// Index is an "index" chunk.
type Index struct {
	Count uint32

	// Code is the index format character: B, H or L.
	Code byte

	Data []byte
}

func (ix *Index) WriteChunk(w *chunk.Writer) {
	w.Begin("index").U32(ix.Count).U8(ix.Code).Raw(ix.Data).End()
}

// Raw is an arbitrary chunk.
type Raw struct {
	Name string
	Data []byte
}

func (r *Raw) WriteChunk(w *chunk.Writer) {
	w.Begin(r.Name).Raw(r.Data).End()
}

// Mesh is a "mesh" chunk.
type Mesh struct {

	// Tag is the chunk name, "mesh" if empty.
	Tag string

	Name      string
	NumVertex uint32

	// Topology is the topology code, e.g. "3".
	Topology string

	Chunks []Chunk
}

func (m *Mesh) WriteChunk(w *chunk.Writer) {
	tag := m.Tag
	if tag == "" {
		tag = "mesh"
	}
	w.Begin(tag).Text(m.Name).U32(m.NumVertex).Text(m.Topology)
	for _, c := range m.Chunks {
		c.WriteChunk(w)
	}
	w.End()
}

// Bytes returns the stream holding just this mesh.
func (m *Mesh) Bytes() []byte {
	return Stream(m)
}

// Stream returns a stream holding the given top level chunks.
func Stream(chunks ...Chunk) []byte {
	w := chunk.NewWriter()
	for _, c := range chunks {
		c.WriteChunk(w)
	}
	return w.Bytes()
}

// Triangle returns a 3 vertex triangle list mesh with the given name,
// with one float32 position buffer and a 16 bit index.
func Triangle(name string) *Mesh {
	return &Mesh{
		Name:      name,
		NumVertex: 3,
		Topology:  "3",
		Chunks: []Chunk{
			&Buffer{
				Stride:  12,
				Attribs: []Attrib{{Name: "position", Code: "3f"}},
				Data:    Float32Bytes(0, 0, 0, 1, 0, 0, 0, 1, 0),
			},
			&Index{Count: 3, Code: 'H', Data: Uint16Bytes(0, 1, 2)},
		},
	}
}

// Float32Bytes returns the little-endian encoding of the given values.
func Float32Bytes(vals ...float32) []byte {
	b := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

// Uint16Bytes returns the little-endian encoding of the given values.
func Uint16Bytes(vals ...uint16) []byte {
	b := make([]byte, 0, 2*len(vals))
	for _, v := range vals {
		b = binary.LittleEndian.AppendUint16(b, v)
	}
	return b
}
