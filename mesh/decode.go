// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"log/slog"

	"cogentcore.org/blade/chunk"
	"cogentcore.org/blade/gpu"
)

// Chunk names of the mesh grammar.
const (
	MeshChunk   = "mesh"
	BufferChunk = "buffer"
	IndexChunk  = "index"
)

// NormalizedFlag is the bit of the attribute flags byte that marks
// integer attributes as normalized.
const NormalizedFlag = 1

// Decoder decodes mesh chunks, creating the device buffers for
// their data through Factory.
//
// The mesh chunk grammar is:
//
//	"mesh":   name string, vertex count u32, topology code string,
//	          then any number of "buffer" chunks and at most one "index" chunk
//	"buffer": stride u8, format string of <count digit><type char> pairs,
//	          name string and flags u8 per pair, then vertex count * stride bytes
//	"index":  count u32, format char u8 (B, H or L), then count * width bytes
type Decoder struct {

	// Factory creates the vertex and index buffers.
	Factory gpu.Factory

	// Logger receives decoding events. [slog.Default] is used if nil.
	Logger *slog.Logger

	// AttribPrefix is prepended to every attribute name,
	// for matching shader input names.
	AttribPrefix string
}

// NewDecoder returns a new Decoder creating buffers with the given factory.
func NewDecoder(f gpu.Factory) *Decoder {
	return &Decoder{Factory: f}
}

func (dec *Decoder) logger() *slog.Logger {
	if dec.Logger != nil {
		return dec.Logger
	}
	return slog.Default()
}

// Decode enters the next chunk of r and decodes it as a mesh.
func (dec *Decoder) Decode(r *chunk.Reader) (*Mesh, Slice, error) {
	return dec.DecodeChunk(r.Enter())
}

// DecodeNamed scans the top level chunks of r, a collection of
// meshes, and decodes the first mesh with the given name.
// It returns an error matching [ErrNotInCollection] if there is none.
func (dec *Decoder) DecodeNamed(r *chunk.Reader, name string) (*Mesh, Slice, error) {
	for r.HasMore() {
		c := r.Enter()
		if c.Name() != MeshChunk {
			continue
		}
		peek := *c
		if peek.ReadString() == name {
			return dec.DecodeChunk(c)
		}
	}
	if err := r.Err(); err != nil {
		return nil, Slice{}, &Error{Kind: ErrRead, Mesh: name, Err: err}
	}
	return nil, Slice{}, &Error{Kind: ErrNotInCollection, Mesh: name}
}

// DecodeChunk decodes the given, already entered, mesh chunk.
// The returned buffers are owned by the device. On error, any
// buffer created so far is released and no Mesh is returned.
func (dec *Decoder) DecodeChunk(c *chunk.Reader) (*Mesh, Slice, error) {
	if err := c.Err(); err != nil {
		return nil, Slice{}, &Error{Kind: ErrRead, Chunk: c.Name(), Err: err}
	}
	if c.Name() != MeshChunk {
		return nil, Slice{}, &Error{Kind: ErrSignature, Chunk: c.Name()}
	}
	name := c.ReadString()
	nvert := c.ReadU32()
	code := c.ReadString()
	if err := c.Err(); err != nil {
		return nil, Slice{}, &Error{Kind: ErrRead, Mesh: name, Chunk: MeshChunk, Err: err}
	}
	topo, ok := ParseTopology(code)
	if !ok {
		return nil, Slice{}, &Error{Kind: ErrTopology, Mesh: name, Chunk: MeshChunk, Detail: fmt.Sprintf("code %q", code)}
	}
	dec.logger().Debug("decoding mesh", "mesh", name, "vertices", nvert, "topology", topo)

	m := &Mesh{Name: name, NumVertex: nvert}
	sl := Slice{Start: 0, End: nvert, Topology: topo}
	err := dec.decodeChildren(c, m, &sl)
	if err != nil {
		m.Release()
		if sl.Index != nil {
			gpu.Release(sl.Index.Buffer)
		}
		return nil, Slice{}, err
	}
	return m, sl, nil
}

func (dec *Decoder) decodeChildren(c *chunk.Reader, m *Mesh, sl *Slice) error {
	for c.HasMore() {
		cb := c.Enter()
		if err := c.Err(); err != nil {
			return &Error{Kind: ErrRead, Mesh: m.Name, Chunk: cb.Name(), Err: err}
		}
		switch cb.Name() {
		case BufferChunk:
			if err := dec.decodeBuffer(cb, m); err != nil {
				return err
			}
		case IndexChunk:
			if sl.Index != nil {
				return &Error{Kind: ErrDoubleIndex, Mesh: m.Name, Chunk: IndexChunk}
			}
			ib, err := dec.decodeIndex(cb, m)
			if err != nil {
				return err
			}
			sl.Index = ib
		default:
			return &Error{Kind: ErrChunk, Mesh: m.Name, Chunk: cb.Name()}
		}
	}
	if err := c.Err(); err != nil {
		return &Error{Kind: ErrRead, Mesh: m.Name, Chunk: MeshChunk, Err: err}
	}
	return nil
}

func (dec *Decoder) decodeBuffer(cb *chunk.Reader, m *Mesh) error {
	stride := int(cb.ReadU8())
	format := cb.ReadString()
	if err := cb.Err(); err != nil {
		return &Error{Kind: ErrRead, Mesh: m.Name, Chunk: BufferChunk, Err: err}
	}
	if len(format)%2 != 0 {
		return &Error{Kind: ErrAttribType, Mesh: m.Name, Chunk: BufferChunk, Detail: fmt.Sprintf("format %q has odd length", format)}
	}
	dec.logger().Debug("mesh buffer", "mesh", m.Name, "stride", stride, "format", format)

	attrs := make([]Attribute, 0, len(format)/2)
	offset := 0
	for i := 0; i < len(format); i += 2 {
		count := int(format[i]) - '0'
		tc := format[i+1]
		name := cb.ReadString()
		flags := cb.ReadU8()
		if err := cb.Err(); err != nil {
			return &Error{Kind: ErrRead, Mesh: m.Name, Chunk: BufferChunk, Err: err}
		}
		if count < 1 || count > 9 {
			return &Error{Kind: ErrAttribType, Mesh: m.Name, Chunk: BufferChunk, Detail: fmt.Sprintf("attribute %q: element count %q", name, format[i])}
		}
		et, ok := ParseElemType(tc, flags&NormalizedFlag != 0)
		if !ok {
			return &Error{Kind: ErrAttribType, Mesh: m.Name, Chunk: BufferChunk, Detail: fmt.Sprintf("attribute %q: type %q, flags %d", name, tc, flags)}
		}
		dec.logger().Debug("mesh attribute", "mesh", m.Name, "name", name, "count", count, "type", et, "flags", flags)
		attrs = append(attrs, Attribute{
			Name: dec.AttribPrefix + name,
			Format: Format{
				Count:  count,
				Type:   et,
				Offset: offset,
				Stride: stride,
			},
		})
		offset += count * et.Size()
	}
	if offset != stride {
		return &Error{Kind: ErrStride, Mesh: m.Name, Chunk: BufferChunk, Detail: fmt.Sprintf("attributes take %d bytes, stride is %d", offset, stride)}
	}
	data := cb.ReadBytes(int(m.NumVertex) * stride)
	if err := cb.Err(); err != nil {
		return &Error{Kind: ErrRead, Mesh: m.Name, Chunk: BufferChunk, Err: err}
	}
	buf, err := dec.Factory.CreateBuffer(data, gpu.VertexBuffer)
	if err != nil {
		return &Error{Kind: ErrBuffer, Mesh: m.Name, Chunk: BufferChunk, Err: err}
	}
	for i := range attrs {
		attrs[i].Buffer = buf
	}
	m.Buffers = append(m.Buffers, buf)
	m.Attributes = append(m.Attributes, attrs...)
	return nil
}

func (dec *Decoder) decodeIndex(cb *chunk.Reader, m *Mesh) (*IndexBuffer, error) {
	count := cb.ReadU32()
	code := cb.ReadU8()
	if err := cb.Err(); err != nil {
		return nil, &Error{Kind: ErrRead, Mesh: m.Name, Chunk: IndexChunk, Err: err}
	}
	it, ok := ParseIndexType(code)
	if !ok {
		return nil, &Error{Kind: ErrIndexType, Mesh: m.Name, Chunk: IndexChunk, Detail: fmt.Sprintf("format %q", code)}
	}
	dec.logger().Debug("mesh index", "mesh", m.Name, "count", count, "type", it)
	data := cb.ReadBytes(int(count) * it.Bytes())
	if err := cb.Err(); err != nil {
		return nil, &Error{Kind: ErrRead, Mesh: m.Name, Chunk: IndexChunk, Err: err}
	}
	buf, err := dec.Factory.CreateBuffer(data, gpu.IndexBuffer)
	if err != nil {
		return nil, &Error{Kind: ErrBuffer, Mesh: m.Name, Chunk: IndexChunk, Err: err}
	}
	return &IndexBuffer{Buffer: buf, Type: it, Count: count}, nil
}
