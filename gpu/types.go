// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// BufferRoles are the ways a [Buffer] can be bound.
type BufferRoles int32 //enums:enum

const (
	// VertexBuffer holds interleaved per-vertex attribute data.
	VertexBuffer BufferRoles = iota

	// IndexBuffer holds element indexes into vertex data.
	IndexBuffer
)

func (br BufferRoles) String() string {
	switch br {
	case VertexBuffer:
		return "Vertex"
	case IndexBuffer:
		return "Index"
	}
	return "BufferRoles(?)"
}

// Comparisons are the depth comparison functions.
type Comparisons int32 //enums:enum

const (
	Never Comparisons = iota
	Less
	Equal
	LessEqual
	Greater
	NotEqual
	GreaterEqual
	Always
)

var comparisonNames = [...]string{"Never", "Less", "Equal", "LessEqual", "Greater", "NotEqual", "GreaterEqual", "Always"}

func (c Comparisons) String() string {
	if c < 0 || int(c) >= len(comparisonNames) {
		return "Comparisons(?)"
	}
	return comparisonNames[c]
}

// BlendModes are the color blending presets.
type BlendModes int32 //enums:enum

const (
	// NoBlend writes colors as-is.
	NoBlend BlendModes = iota

	// AlphaBlend blends using source alpha.
	AlphaBlend

	// AddBlend adds source to destination.
	AddBlend
)

func (bm BlendModes) String() string {
	switch bm {
	case NoBlend:
		return "None"
	case AlphaBlend:
		return "Alpha"
	case AddBlend:
		return "Add"
	}
	return "BlendModes(?)"
}
