// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/blade/gpu"

// Format describes how one attribute is laid out in its buffer.
type Format struct {

	// Count is the number of elements per vertex, 1 to 9.
	Count int

	// Type is the element type.
	Type ElemType

	// Offset is the byte offset of the attribute within a vertex record.
	Offset int

	// Stride is the size of a whole vertex record in the buffer.
	Stride int

	// InstanceRate is the number of instances drawn per attribute
	// value; 0 means the attribute advances per vertex.
	InstanceRate int
}

// Size returns the size of the attribute in a vertex record, in bytes.
func (f Format) Size() int {
	return f.Count * f.Type.Size()
}

// Attribute is one named, typed field of a vertex buffer record.
type Attribute struct {
	Name   string
	Buffer gpu.Buffer
	Format Format
}

// Mesh holds the decoded vertex attributes of a mesh, which can
// span several backing buffers.
type Mesh struct {

	// Name is the name of the mesh in its asset.
	Name string

	// NumVertex is the number of vertices.
	NumVertex uint32

	// Attributes are all the attributes, in decoding order.
	Attributes []Attribute

	// Buffers are the vertex buffers backing the attributes.
	Buffers []gpu.Buffer
}

// AttributeByName returns the attribute with the given name, if any.
func (m *Mesh) AttributeByName(name string) (*Attribute, bool) {
	for i := range m.Attributes {
		if m.Attributes[i].Name == name {
			return &m.Attributes[i], true
		}
	}
	return nil, false
}

// Release releases all of the mesh buffers that can be released.
func (m *Mesh) Release() {
	if m == nil {
		return
	}
	for _, b := range m.Buffers {
		gpu.Release(b)
	}
}

// IndexBuffer is a buffer of vertex indexes of a given width.
type IndexBuffer struct {
	Buffer gpu.Buffer
	Type   IndexTypes
	Count  uint32
}

// Slice describes how to interpret the vertices of a [Mesh] for a
// draw call: the element range, the topology and the optional index.
type Slice struct {

	// Start is the first vertex (or index) to draw.
	Start uint32

	// End is one past the last vertex (or index) to draw.
	End uint32

	// Topology is the primitive assembly mode.
	Topology Topologies

	// Index is the index buffer, or nil for non-indexed drawing.
	Index *IndexBuffer

	// BaseVertex is added to every index value.
	BaseVertex uint32
}

// IsIndexed returns whether the slice draws through an index buffer.
func (sl Slice) IsIndexed() bool {
	return sl.Index != nil
}

// Len returns the number of elements in the draw range.
func (sl Slice) Len() uint32 {
	if sl.End < sl.Start {
		return 0
	}
	return sl.End - sl.Start
}
