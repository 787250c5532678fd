// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/math32"
	"github.com/stretchr/testify/assert"
)

func TestProjection(t *testing.T) {
	pr := NewProjection(1.2, 0.8, 0.1, 100)
	assert.Equal(t, float32(0.8), pr.FovY)
	assert.InDelta(t, math32.Tan(1.2)/math32.Tan(0.8), pr.Aspect, 1e-6)
	assert.Greater(t, pr.Aspect, float32(1))

	pr = NewProjection(1, 1, 1, 10)
	assert.InDelta(t, 1, pr.Aspect, 1e-6)
	m := pr.Matrix()
	assert.InDelta(t, 1/math32.Tan(0.5), m[5], 1e-5)
	assert.Equal(t, float32(-1), m[11])
}

func TestLightKinds(t *testing.T) {
	lk, ok := ParseLightKind("SPOT")
	assert.True(t, ok)
	assert.Equal(t, SpotLight, lk)
	assert.Equal(t, "SPOT", lk.String())
	_, ok = ParseLightKind("LASER")
	assert.False(t, ok)
	assert.Equal(t, "UNKNOWN", LightKinds(9).String())
}

func TestMaterial(t *testing.T) {
	mt := NewMaterial("", nil, nil)
	assert.True(t, mt.Visible)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, mt.Color)
	assert.False(t, mt.IsTransparent())
	mt.Blend = gpu.AlphaBlend
	assert.True(t, mt.IsTransparent())
}
