// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "fmt"

// ElemType is the numeric type of each element of an [Attribute].
// The set of types is closed: it is exactly what the format can encode.
type ElemType int32 //enums:enum

const (
	Int8 ElemType = iota
	Uint8
	Int8Norm
	Uint8Norm
	Int16
	Uint16
	Int16Norm
	Uint16Norm
	Int32
	Uint32
	Int32Norm
	Uint32Norm
	Float32
	Float64
)

var elemTypeNames = [...]string{
	"Int8", "Uint8", "Int8Norm", "Uint8Norm",
	"Int16", "Uint16", "Int16Norm", "Uint16Norm",
	"Int32", "Uint32", "Int32Norm", "Uint32Norm",
	"Float32", "Float64",
}

func (et ElemType) String() string {
	if et < 0 || int(et) >= len(elemTypeNames) {
		return fmt.Sprintf("ElemType(%d)", int32(et))
	}
	return elemTypeNames[et]
}

// Size returns the size of one element in bytes.
func (et ElemType) Size() int {
	switch et {
	case Int8, Uint8, Int8Norm, Uint8Norm:
		return 1
	case Int16, Uint16, Int16Norm, Uint16Norm:
		return 2
	case Int32, Uint32, Int32Norm, Uint32Norm, Float32:
		return 4
	case Float64:
		return 8
	}
	return 0
}

// IsFloat returns whether this is a floating point type.
func (et ElemType) IsFloat() bool {
	return et == Float32 || et == Float64
}

// IsNormalized returns whether integer values are normalized
// into [0, 1] (unsigned) or [-1, 1] (signed) when read by a shader.
func (et ElemType) IsNormalized() bool {
	switch et {
	case Int8Norm, Uint8Norm, Int16Norm, Uint16Norm, Int32Norm, Uint32Norm:
		return true
	}
	return false
}

// IsSigned returns whether this is a signed type.
func (et ElemType) IsSigned() bool {
	switch et {
	case Int8, Int8Norm, Int16, Int16Norm, Int32, Int32Norm, Float32, Float64:
		return true
	}
	return false
}

// ParseElemType maps a format type character, using the
// Python struct packing notation (b, B, h, H, l, L, f, d),
// and the normalized flag to an ElemType.
// Floating point types cannot be normalized.
func ParseElemType(code byte, normalized bool) (ElemType, bool) {
	switch code {
	case 'b':
		return pick(Int8, Int8Norm, normalized), true
	case 'B':
		return pick(Uint8, Uint8Norm, normalized), true
	case 'h':
		return pick(Int16, Int16Norm, normalized), true
	case 'H':
		return pick(Uint16, Uint16Norm, normalized), true
	case 'l':
		return pick(Int32, Int32Norm, normalized), true
	case 'L':
		return pick(Uint32, Uint32Norm, normalized), true
	case 'f':
		if !normalized {
			return Float32, true
		}
	case 'd':
		if !normalized {
			return Float64, true
		}
	}
	return 0, false
}

func pick(raw, norm ElemType, normalized bool) ElemType {
	if normalized {
		return norm
	}
	return raw
}

// Topologies are the primitive assembly modes.
type Topologies int32 //enums:enum

const (
	Point Topologies = iota
	Line
	LineStrip
	TriangleList
	TriangleStrip
	TriangleFan
)

var topologyNames = [...]string{"Point", "Line", "LineStrip", "TriangleList", "TriangleStrip", "TriangleFan"}

// topologyCodes are the codes used in the mesh chunk, by topology.
var topologyCodes = [...]string{"1", "2", "2s", "3", "3s", "3f"}

func (tp Topologies) String() string {
	if tp < 0 || int(tp) >= len(topologyNames) {
		return fmt.Sprintf("Topologies(%d)", int32(tp))
	}
	return topologyNames[tp]
}

// Code returns the code used for this topology in the mesh chunk.
func (tp Topologies) Code() string {
	if tp < 0 || int(tp) >= len(topologyCodes) {
		return ""
	}
	return topologyCodes[tp]
}

// ParseTopology returns the topology for the given mesh chunk code.
func ParseTopology(code string) (Topologies, bool) {
	for i, c := range topologyCodes {
		if c == code {
			return Topologies(i), true
		}
	}
	return 0, false
}

// IndexTypes are the widths of index buffer elements.
type IndexTypes int32 //enums:enum

const (
	Index8 IndexTypes = iota
	Index16
	Index32
)

func (it IndexTypes) String() string {
	switch it {
	case Index8:
		return "Index8"
	case Index16:
		return "Index16"
	case Index32:
		return "Index32"
	}
	return fmt.Sprintf("IndexTypes(%d)", int32(it))
}

// Bytes returns the size of one index in bytes.
func (it IndexTypes) Bytes() int {
	switch it {
	case Index8:
		return 1
	case Index16:
		return 2
	case Index32:
		return 4
	}
	return 0
}

// Code returns the format character of this index type in the mesh chunk.
func (it IndexTypes) Code() byte {
	switch it {
	case Index8:
		return 'B'
	case Index16:
		return 'H'
	case Index32:
		return 'L'
	}
	return 0
}

// ParseIndexType returns the index type for the given format character.
func ParseIndexType(code byte) (IndexTypes, bool) {
	switch code {
	case 'B':
		return Index8, true
	case 'H':
		return Index16, true
	case 'L':
		return Index32, true
	}
	return 0, false
}
