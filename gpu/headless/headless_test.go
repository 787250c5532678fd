// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffers(t *testing.T) {
	dv := New()
	data := []byte{1, 2, 3, 4}
	b, err := dv.CreateBuffer(data, gpu.IndexBuffer)
	require.NoError(t, err)
	data[0] = 9
	assert.Equal(t, []byte{1, 2, 3, 4}, b.(*Buffer).Data)
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, gpu.IndexBuffer, b.Role())
	assert.Equal(t, 1, dv.LiveBuffers())

	gpu.Release(b)
	assert.Equal(t, 0, dv.LiveBuffers())
	assert.Len(t, dv.Buffers, 1)

	dv.BufferError = errors.New("out of memory")
	_, err = dv.CreateBuffer(data, gpu.VertexBuffer)
	assert.Error(t, err)
}

func TestTexture(t *testing.T) {
	dv := New()
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(1, 1, color.Gray{Y: 200})
	tx, err := dv.CreateTexture(img, true)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(3, 2), tx.Size())
	assert.True(t, tx.SRGB())
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, tx.(*Texture).Image.RGBAAt(1, 1))

	_, err = dv.CreateTexture(nil, false)
	assert.Error(t, err)
}

func TestSampler(t *testing.T) {
	dv := New()
	info := gpu.NewSamplerInfo(gpu.Trilinear, gpu.Mirror)
	s, err := dv.CreateSampler(info)
	require.NoError(t, err)
	assert.Equal(t, info, s.Info())
}

func TestProgram(t *testing.T) {
	dv := New()
	p, err := dv.LinkProgram("scene", "void main() {}", "void main() {}")
	require.NoError(t, err)
	assert.Equal(t, "scene", p.Name())

	_, err = dv.LinkProgram("scene", "", "void main() {}")
	assert.Error(t, err)

	dv.LinkError = errors.New("link failed")
	_, err = dv.LinkProgram("scene", "void main() {}", "void main() {}")
	assert.ErrorIs(t, err, dv.LinkError)
}

func TestBatch(t *testing.T) {
	dv := New()
	p, err := dv.LinkProgram("scene", "v", "f")
	require.NoError(t, err)
	vb, err := dv.CreateBuffer(make([]byte, 36), gpu.VertexBuffer)
	require.NoError(t, err)
	m := &mesh.Mesh{
		Name:       "tri",
		NumVertex:  3,
		Attributes: []mesh.Attribute{{Name: "position", Buffer: vb, Format: mesh.Format{Count: 3, Type: mesh.Float32, Stride: 12}}},
		Buffers:    []gpu.Buffer{vb},
	}
	ds := gpu.NewDrawState().Depth(gpu.LessEqual, true)

	b, err := dv.MakeBatch(p, m, mesh.Slice{End: 3, Topology: mesh.TriangleList}, ds)
	require.NoError(t, err)
	assert.Equal(t, ds, b.DrawState())
	assert.Len(t, dv.Batches, 1)

	_, err = dv.MakeBatch(p, m, mesh.Slice{End: 4}, ds)
	assert.Error(t, err)

	_, err = dv.MakeBatch(p, m, mesh.Slice{Start: 2, End: 1}, ds)
	assert.Error(t, err)

	_, err = dv.MakeBatch(p, &mesh.Mesh{Name: "empty"}, mesh.Slice{}, ds)
	assert.Error(t, err)

	_, err = dv.MakeBatch(nil, m, mesh.Slice{End: 3}, ds)
	assert.Error(t, err)

	ix := &mesh.IndexBuffer{Type: mesh.Index16, Count: 6}
	_, err = dv.MakeBatch(p, m, mesh.Slice{End: 6, Index: ix}, ds)
	assert.NoError(t, err)

	dv.BatchError = errors.New("no batch")
	_, err = dv.MakeBatch(p, m, mesh.Slice{End: 3}, ds)
	assert.ErrorIs(t, err, dv.BatchError)
}
