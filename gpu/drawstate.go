// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// DrawState is the fixed function state used by a [Batch].
type DrawState struct {

	// DepthTest enables depth testing using DepthCompare.
	DepthTest bool

	// DepthCompare is the comparison used for depth testing.
	DepthCompare Comparisons

	// DepthWrite enables writing to the depth buffer.
	DepthWrite bool

	// Blend is the color blending mode.
	Blend BlendModes
}

// NewDrawState returns the default draw state: no depth test, no blending.
func NewDrawState() DrawState {
	return DrawState{DepthCompare: Always}
}

// Depth returns a copy of the draw state with depth testing
// enabled using the given comparison, and depth writing as given.
func (ds DrawState) Depth(cmp Comparisons, write bool) DrawState {
	ds.DepthTest = true
	ds.DepthCompare = cmp
	ds.DepthWrite = write
	return ds
}

// WithBlend returns a copy of the draw state using the given blend mode.
func (ds DrawState) WithBlend(bm BlendModes) DrawState {
	ds.Blend = bm
	return ds
}
