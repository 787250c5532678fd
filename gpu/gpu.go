// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gpu defines the boundary between asset loading and the
graphics device: the handles the device hands back (buffers, samplers,
textures, programs, batches), the descriptions it is given (buffer
roles, sampler info, draw state), and the [Factory] capability used
to allocate resources from decoded data.

Loading code only ever talks to these interfaces; an actual device
backend, or the in-memory gpu/headless one, implements them.
*/
package gpu

import "image"

// Buffer is a handle to a block of device memory holding
// vertex or index data. It is owned by the device once created.
type Buffer interface {
	// Role returns what the buffer is bound as.
	Role() BufferRoles

	// Size returns the size of the buffer in bytes.
	Size() int
}

// Releaser is implemented by device resources that can be released
// explicitly, for example when a load fails after the resource
// was already created.
type Releaser interface {
	Release()
}

// Sampler is a handle to a device sampler.
type Sampler interface {
	// Info returns the description the sampler was created from.
	Info() SamplerInfo
}

// Texture is a handle to a device texture.
type Texture interface {
	// Size returns the size of the texture in pixels.
	Size() image.Point

	// SRGB returns whether the texture holds sRGB encoded colors.
	SRGB() bool
}

// Program is a handle to a linked shader program.
type Program interface {
	// Name returns the name of the program, for diagnostics.
	Name() string
}

// Batch is a handle to everything needed to issue one draw call:
// a program, mesh data, a draw range and the draw state.
type Batch interface {
	// DrawState returns the fixed function state the batch draws with.
	DrawState() DrawState
}

// Factory allocates device resources from decoded asset data.
type Factory interface {
	// CreateBuffer creates a static buffer with the given contents.
	// The data is copied; it can be reused by the caller afterwards.
	CreateBuffer(data []byte, role BufferRoles) (Buffer, error)

	// CreateSampler creates a sampler from the given description.
	CreateSampler(info SamplerInfo) (Sampler, error)

	// CreateTexture uploads the given image as a texture.
	// srgb indicates that the image colors are sRGB encoded,
	// as opposed to linear.
	CreateTexture(img image.Image, srgb bool) (Texture, error)
}

// Release releases the given resource if it implements [Releaser].
func Release(res any) {
	if rl, ok := res.(Releaser); ok {
		rl.Release()
	}
}
