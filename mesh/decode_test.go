// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh_test

import (
	"errors"
	"testing"

	"cogentcore.org/blade/chunk"
	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/gpu/headless"
	. "cogentcore.org/blade/mesh"
	"cogentcore.org/blade/mesh/meshtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, data []byte) (*headless.Device, *Mesh, Slice, error) {
	t.Helper()
	dv := headless.New()
	m, sl, err := NewDecoder(dv).Decode(chunk.NewReader(data))
	return dv, m, sl, err
}

func TestDecodeTriangle(t *testing.T) {
	dv, m, sl, err := decode(t, meshtest.Triangle("tri").Bytes())
	require.NoError(t, err)

	assert.Equal(t, "tri", m.Name)
	assert.Equal(t, uint32(3), m.NumVertex)
	require.Len(t, m.Attributes, 1)
	at := m.Attributes[0]
	assert.Equal(t, "position", at.Name)
	assert.Equal(t, Format{Count: 3, Type: Float32, Offset: 0, Stride: 12}, at.Format)
	require.Len(t, m.Buffers, 1)
	assert.Same(t, m.Buffers[0], at.Buffer)
	assert.Equal(t, 36, at.Buffer.Size())
	assert.Equal(t, gpu.VertexBuffer, at.Buffer.Role())

	assert.Equal(t, TriangleList, sl.Topology)
	assert.Equal(t, uint32(0), sl.Start)
	assert.Equal(t, uint32(3), sl.End)
	require.True(t, sl.IsIndexed())
	assert.Equal(t, Index16, sl.Index.Type)
	assert.Equal(t, uint32(3), sl.Index.Count)
	assert.Equal(t, gpu.IndexBuffer, sl.Index.Buffer.Role())
	assert.Equal(t, meshtest.Uint16Bytes(0, 1, 2), sl.Index.Buffer.(*headless.Buffer).Data)
	assert.Equal(t, 2, dv.LiveBuffers())
}

func TestDecodeInterleaved(t *testing.T) {
	m := &meshtest.Mesh{
		Name:      "quad",
		NumVertex: 4,
		Topology:  "3s",
		Chunks: []meshtest.Chunk{
			&meshtest.Buffer{
				Stride: 16,
				Attribs: []meshtest.Attrib{
					{Name: "position", Code: "3f"},
					{Name: "color", Code: "4B", Flags: NormalizedFlag},
				},
				Data: make([]byte, 64),
			},
			&meshtest.Buffer{
				Stride:  4,
				Attribs: []meshtest.Attrib{{Name: "uv", Code: "2h", Flags: NormalizedFlag}},
				Data:    make([]byte, 16),
			},
		},
	}
	dv := headless.New()
	dec := NewDecoder(dv)
	dec.AttribPrefix = "a_"
	msh, sl, err := dec.Decode(chunk.NewReader(m.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, TriangleStrip, sl.Topology)
	assert.False(t, sl.IsIndexed())
	assert.Equal(t, uint32(4), sl.Len())
	require.Len(t, msh.Buffers, 2)

	color, ok := msh.AttributeByName("a_color")
	require.True(t, ok)
	assert.Equal(t, Format{Count: 4, Type: Uint8Norm, Offset: 12, Stride: 16}, color.Format)
	assert.Same(t, msh.Buffers[0], color.Buffer)

	uv, ok := msh.AttributeByName("a_uv")
	require.True(t, ok)
	assert.Equal(t, Format{Count: 2, Type: Int16Norm, Offset: 0, Stride: 4}, uv.Format)
	assert.Same(t, msh.Buffers[1], uv.Buffer)

	_, ok = msh.AttributeByName("position")
	assert.False(t, ok)
}

// errorCase is a malformed mesh and the error kind it must produce.
type errorCase struct {
	name string
	mesh *meshtest.Mesh
	kind error
}

func triangleWith(mod func(m *meshtest.Mesh)) *meshtest.Mesh {
	m := meshtest.Triangle("bad")
	mod(m)
	return m
}

func TestDecodeErrors(t *testing.T) {
	cases := []errorCase{
		{"stride", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks[0].(*meshtest.Buffer).Stride = 16
			m.Chunks[0].(*meshtest.Buffer).Data = make([]byte, 48)
		}), ErrStride},
		{"attrib type", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks[0].(*meshtest.Buffer).Attribs[0].Code = "3x"
		}), ErrAttribType},
		{"normalized float", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks[0].(*meshtest.Buffer).Attribs[0].Flags = NormalizedFlag
		}), ErrAttribType},
		{"count digit", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks[0].(*meshtest.Buffer).Attribs[0].Code = "0f"
		}), ErrAttribType},
		{"double index", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks = append(m.Chunks, m.Chunks[1])
		}), ErrDoubleIndex},
		{"index type", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks[1].(*meshtest.Index).Code = 'Q'
		}), ErrIndexType},
		{"unknown chunk", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks = append(m.Chunks, &meshtest.Raw{Name: "bones"})
		}), ErrChunk},
		{"signature", triangleWith(func(m *meshtest.Mesh) {
			m.Tag = "mush"
		}), ErrSignature},
		{"topology", triangleWith(func(m *meshtest.Mesh) {
			m.Topology = "4"
		}), ErrTopology},
		{"short vertex data", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks[0].(*meshtest.Buffer).Data = make([]byte, 24)
		}), ErrRead},
		{"short index data", triangleWith(func(m *meshtest.Mesh) {
			m.Chunks[1].(*meshtest.Index).Data = []byte{0, 0}
		}), ErrRead},
	}
	kinds := []error{ErrRead, ErrSignature, ErrChunk, ErrTopology, ErrAttribType, ErrIndexType, ErrStride, ErrDoubleIndex}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dv, m, _, err := decode(t, tc.mesh.Bytes())
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.kind)
			for _, k := range kinds {
				if k != tc.kind {
					assert.NotErrorIs(t, err, k)
				}
			}
			var merr *Error
			require.True(t, errors.As(err, &merr))
			if tc.kind != ErrSignature {
				assert.Equal(t, "bad", merr.Mesh)
			}
			assert.Equal(t, 0, dv.LiveBuffers(), "buffers created before the error are released")
		})
	}
}

func TestDecodeTruncatedStream(t *testing.T) {
	data := meshtest.Triangle("tri").Bytes()
	_, m, _, err := decode(t, data[:len(data)-5])
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, chunk.ErrOverrun)

	_, _, _, err = decode(t, data[:6])
	assert.ErrorIs(t, err, ErrRead)
}

func TestDecodeBufferError(t *testing.T) {
	dv := headless.New()
	dv.BufferError = errors.New("device lost")
	_, _, err := NewDecoder(dv).Decode(chunk.NewReader(meshtest.Triangle("tri").Bytes()))
	assert.ErrorIs(t, err, ErrBuffer)
	assert.ErrorIs(t, err, dv.BufferError)
}

func TestDecodeNamed(t *testing.T) {
	data := meshtest.Stream(
		meshtest.Triangle("a"),
		&meshtest.Raw{Name: "notes", Data: []byte("hello")},
		meshtest.Triangle("b"),
	)
	dv := headless.New()
	dec := NewDecoder(dv)

	m, _, err := dec.DecodeNamed(chunk.NewReader(data), "b")
	require.NoError(t, err)
	assert.Equal(t, "b", m.Name)
	assert.Equal(t, 2, dv.LiveBuffers(), "only the named mesh is decoded")

	_, _, err = dec.DecodeNamed(chunk.NewReader(data), "c")
	assert.ErrorIs(t, err, ErrNotInCollection)

	_, _, err = dec.DecodeNamed(chunk.NewReader(data[:len(data)-3]), "c")
	assert.ErrorIs(t, err, ErrRead)
}
