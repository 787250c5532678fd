// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// WrapModes are the ways a sampler treats coordinates
// that go off the edge of a texture.
type WrapModes int32 //enums:enum

const (
	// Tile repeats the texture when going off the edge.
	Tile WrapModes = iota

	// Mirror repeats the texture, mirrored, when going off the edge.
	Mirror

	// Clamp uses the nearest edge pixel when going off the edge.
	Clamp
)

func (wm WrapModes) String() string {
	switch wm {
	case Tile:
		return "Tile"
	case Mirror:
		return "Mirror"
	case Clamp:
		return "Clamp"
	}
	return "WrapModes(?)"
}

// FilterMethods are the texture minification and magnification methods.
type FilterMethods int32 //enums:enum

const (
	// Nearest samples the single nearest texel (point sampling).
	Nearest FilterMethods = iota

	// Bilinear interpolates between the four nearest texels.
	Bilinear

	// Trilinear also interpolates between mipmap levels.
	Trilinear
)

func (fm FilterMethods) String() string {
	switch fm {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	case Trilinear:
		return "Trilinear"
	}
	return "FilterMethods(?)"
}

// SamplerInfo describes a sampler to create.
type SamplerInfo struct {

	// Filter is used for both minification and magnification.
	Filter FilterMethods

	// Wrap holds the wrap mode for the U, V and W axes.
	Wrap [3]WrapModes
}

// NewSamplerInfo returns a SamplerInfo using the given filter,
// and the given wrap mode on all three axes.
func NewSamplerInfo(filter FilterMethods, wrap WrapModes) SamplerInfo {
	return SamplerInfo{Filter: filter, Wrap: [3]WrapModes{wrap, wrap, wrap}}
}

func (si SamplerInfo) String() string {
	return fmt.Sprintf("%v %v/%v/%v", si.Filter, si.Wrap[0], si.Wrap[1], si.Wrap[2])
}
