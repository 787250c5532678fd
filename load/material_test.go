// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"testing"
	"testing/fstest"

	"cogentcore.org/blade/desc"
	"cogentcore.org/blade/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textured(wrap [3]int8, filter uint8) *desc.Material {
	return &desc.Material{
		Name: "m",
		Textures: []desc.Texture{{
			Name:   "diffuse",
			Image:  desc.Image{Path: "tex/grass.png", Space: LinearSpace},
			Wrap:   wrap,
			Filter: filter,
		}},
	}
}

func TestDefaultMaterial(t *testing.T) {
	ctx, _ := testContext(t, testAssets(t))
	mt, err := ctx.LoadMaterial(&desc.Material{Name: "plain"})
	require.NoError(t, err)
	assert.True(t, mt.Visible)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, mt.Color)
	assert.Same(t, ctx.Black, mt.Texture)
	assert.Same(t, ctx.PointSampler, mt.Sampler)
	assert.Equal(t, gpu.NoBlend, mt.Blend)

	mt, err = ctx.LoadMaterial(&desc.Material{Transparent: true})
	require.NoError(t, err)
	assert.Equal(t, gpu.AlphaBlend, mt.Blend)
	assert.Equal(t, gpu.AlphaBlend, DrawState(mt).Blend)
}

func TestDiffuseColor(t *testing.T) {
	ctx, _ := testContext(t, testAssets(t))
	mt, err := ctx.LoadMaterial(&desc.Material{Data: map[string]desc.Data{
		DiffuseColor: {Kind: "vec3", Values: []float32{0.5, 0.25, 0.125}},
	}})
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0.5, 0.25, 0.125, 1}, mt.Color)

	mt, err = ctx.LoadMaterial(&desc.Material{Data: map[string]desc.Data{
		DiffuseColor: {Kind: "float", Values: []float32{0.5}},
	}})
	require.NoError(t, err)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, mt.Color)
}

func TestSamplerRules(t *testing.T) {
	ctx, _ := testContext(t, testAssets(t))
	for _, f := range []struct {
		v    uint8
		want gpu.FilterMethods
	}{{1, gpu.Nearest}, {2, gpu.Bilinear}, {3, gpu.Trilinear}} {
		mt, err := ctx.LoadMaterial(textured([3]int8{1, 1, 1}, f.v))
		require.NoError(t, err)
		assert.Equal(t, f.want, mt.Sampler.Info().Filter)
		assert.False(t, mt.Texture.SRGB())
	}

	_, err := ctx.LoadMaterial(textured([3]int8{1, 1, 1}, 4))
	assert.ErrorIs(t, err, ErrSamplerFilter)
	var ae *AssetError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "diffuse", ae.Name)

	_, err = ctx.LoadMaterial(textured([3]int8{1, 2, 1}, 1))
	assert.ErrorIs(t, err, ErrSamplerWrap)

	_, err = ctx.LoadMaterial(textured([3]int8{-2, 1, 1}, 9))
	assert.ErrorIs(t, err, ErrSamplerWrap, "wrap is checked first")
}

func TestTextureErrors(t *testing.T) {
	assets := testAssets(t)
	assets["tex/junk.png"] = &fstest.MapFile{Data: []byte("junk")}
	ctx, _ := testContext(t, assets)

	md := textured([3]int8{1, 1, 1}, 1)
	md.Textures[0].Image.Path = "tex/missing.png"
	_, err := ctx.LoadMaterial(md)
	assert.ErrorIs(t, err, ErrTexture)
	assert.ErrorIs(t, err, ErrAsset)
	var ae *AssetError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, "tex/missing.png", ae.Name)

	md.Textures[0].Image.Path = "tex/junk.png"
	_, err = ctx.LoadMaterial(md)
	assert.ErrorIs(t, err, ErrTexture)
	assert.NotErrorIs(t, err, ErrAsset)
}

func TestColorSpace(t *testing.T) {
	ctx, _ := testContext(t, testAssets(t))
	assert.True(t, ctx.isSRGB(SRGBSpace))
	assert.False(t, ctx.isSRGB(LinearSpace))
	assert.False(t, ctx.isSRGB("XYZ"))

	md := textured([3]int8{0, 0, 0}, 2)
	md.Textures[0].Image.Space = "XYZ"
	mt, err := ctx.LoadMaterial(md)
	require.NoError(t, err)
	assert.False(t, mt.Texture.SRGB())
	assert.Equal(t, [3]gpu.WrapModes{gpu.Clamp, gpu.Clamp, gpu.Clamp}, mt.Sampler.Info().Wrap)
}
