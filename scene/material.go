// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/blade/gpu"

// Material is the resolved surface of an entity.
type Material struct {
	Name string

	// Visible is whether entities with this material are drawn.
	Visible bool

	// Color is the RGBA base color, multiplied with the texture.
	Color [4]float32

	Texture gpu.Texture
	Sampler gpu.Sampler

	// Blend is the blend mode, [gpu.NoBlend] for opaque materials.
	Blend gpu.BlendModes
}

// NewMaterial returns the default material: visible, white and
// opaque, using the given texture and sampler.
func NewMaterial(name string, tex gpu.Texture, smp gpu.Sampler) *Material {
	return &Material{
		Name:    name,
		Visible: true,
		Color:   [4]float32{1, 1, 1, 1},
		Texture: tex,
		Sampler: smp,
	}
}

// IsTransparent returns whether the material blends with what is behind it.
func (mt *Material) IsTransparent() bool {
	return mt.Blend != gpu.NoBlend
}
