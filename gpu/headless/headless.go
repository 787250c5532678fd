// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides an in-memory graphics device that keeps
// all resources in ordinary Go memory. It is used by the blade
// command to validate assets without a GPU, and by tests.
package headless

import (
	"fmt"
	"image"

	"cogentcore.org/blade/base/errors"
	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/mesh"
)

// Device is an in-memory device. The zero value is ready to use.
// It is not safe for concurrent use.
type Device struct {

	// Buffers are all the buffers created, including released ones.
	Buffers []*Buffer

	// Samplers are all the samplers created.
	Samplers []*Sampler

	// Textures are all the textures created.
	Textures []*Texture

	// Programs are all the linked programs.
	Programs []*Program

	// Batches are all the batches made.
	Batches []*Batch

	// LinkError, if set, is returned by every LinkProgram call.
	LinkError error

	// BufferError, if set, is returned by every CreateBuffer call.
	BufferError error

	// BatchError, if set, is returned by every MakeBatch call.
	BatchError error
}

// New returns a new empty Device.
func New() *Device {
	return &Device{}
}

// LiveBuffers returns the number of buffers that have not been released.
func (dv *Device) LiveBuffers() int {
	n := 0
	for _, b := range dv.Buffers {
		if !b.Released {
			n++
		}
	}
	return n
}

// CreateBuffer implements [gpu.Factory].
func (dv *Device) CreateBuffer(data []byte, role gpu.BufferRoles) (gpu.Buffer, error) {
	if dv.BufferError != nil {
		return nil, dv.BufferError
	}
	b := &Buffer{Data: append([]byte(nil), data...), role: role}
	dv.Buffers = append(dv.Buffers, b)
	return b, nil
}

// CreateSampler implements [gpu.Factory].
func (dv *Device) CreateSampler(info gpu.SamplerInfo) (gpu.Sampler, error) {
	s := &Sampler{info: info}
	dv.Samplers = append(dv.Samplers, s)
	return s, nil
}

// CreateTexture implements [gpu.Factory].
func (dv *Device) CreateTexture(img image.Image, srgb bool) (gpu.Texture, error) {
	if img == nil {
		return nil, errors.New("headless: nil texture image")
	}
	tx := &Texture{Image: gpu.ImageToRGBA(img), srgb: srgb}
	dv.Textures = append(dv.Textures, tx)
	return tx, nil
}

// LinkProgram links a program from the given vertex and fragment sources.
// Sources are not compiled; they only need to be non-empty.
func (dv *Device) LinkProgram(name, vertex, fragment string) (gpu.Program, error) {
	if dv.LinkError != nil {
		return nil, dv.LinkError
	}
	if vertex == "" || fragment == "" {
		return nil, fmt.Errorf("headless: program %q: empty shader source", name)
	}
	p := &Program{name: name, Vertex: vertex, Fragment: fragment}
	dv.Programs = append(dv.Programs, p)
	return p, nil
}

// MakeBatch makes a batch drawing the given slice of the mesh with the
// given program and draw state. It checks that the program came from
// this kind of device, and that the slice is within the mesh data.
func (dv *Device) MakeBatch(prog gpu.Program, m *mesh.Mesh, sl mesh.Slice, ds gpu.DrawState) (gpu.Batch, error) {
	if dv.BatchError != nil {
		return nil, dv.BatchError
	}
	p, ok := prog.(*Program)
	if !ok || p == nil {
		return nil, fmt.Errorf("headless: batch: program %T is not a headless program", prog)
	}
	if m == nil || len(m.Attributes) == 0 {
		return nil, errors.New("headless: batch: mesh has no attributes")
	}
	limit := m.NumVertex
	if sl.Index != nil {
		limit = sl.Index.Count
	}
	if sl.Start > sl.End || sl.End > limit {
		return nil, fmt.Errorf("headless: batch: slice [%d, %d) out of range of %d elements of mesh %q", sl.Start, sl.End, limit, m.Name)
	}
	b := &Batch{Program: p, Mesh: m, Slice: sl, state: ds}
	dv.Batches = append(dv.Batches, b)
	return b, nil
}

// Buffer is an in-memory buffer.
type Buffer struct {
	Data     []byte
	Released bool
	role     gpu.BufferRoles
}

func (b *Buffer) Role() gpu.BufferRoles { return b.role }

func (b *Buffer) Size() int { return len(b.Data) }

// Release implements [gpu.Releaser].
func (b *Buffer) Release() {
	b.Released = true
	b.Data = nil
}

// Sampler is an in-memory sampler.
type Sampler struct {
	info gpu.SamplerInfo
}

func (s *Sampler) Info() gpu.SamplerInfo { return s.info }

// Texture is an in-memory texture.
type Texture struct {
	Image *image.RGBA
	srgb  bool
}

func (tx *Texture) Size() image.Point { return tx.Image.Rect.Size() }

func (tx *Texture) SRGB() bool { return tx.srgb }

// Program is a linked program, holding its sources.
type Program struct {
	Vertex   string
	Fragment string
	name     string
}

func (p *Program) Name() string { return p.name }

// Batch is a recorded batch.
type Batch struct {
	Program *Program
	Mesh    *mesh.Mesh
	Slice   mesh.Slice
	state   gpu.DrawState
}

func (b *Batch) DrawState() gpu.DrawState { return b.state }
