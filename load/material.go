// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"fmt"

	"cogentcore.org/blade/desc"
	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/scene"
)

// DiffuseColor is the material data entry that sets the material color.
const DiffuseColor = "DiffuseColor"

// Color spaces of texture images.
const (
	LinearSpace = "Linear"
	SRGBSpace   = "sRGB"
)

// LoadMaterial loads the given material description. The result
// starts from the default material: visible, white, and using the
// [Context.Black] texture; a transparent material alpha blends.
// The first texture of the description, if any, replaces the
// default texture and sampler, and a [DiffuseColor] data entry
// sets the color, with an alpha of 1.
func (ctx *Context) LoadMaterial(md *desc.Material) (*scene.Material, error) {
	mt := scene.NewMaterial(md.Name, ctx.Black, ctx.PointSampler)
	if md.Transparent {
		mt.Blend = gpu.AlphaBlend
	}
	if len(md.Textures) > 0 {
		td := &md.Textures[0]
		tex, err := ctx.RequestTexture(td.Image.Path, ctx.isSRGB(td.Image.Space))
		if err != nil {
			return nil, err
		}
		info, err := SamplerInfo(td)
		if err != nil {
			return nil, err
		}
		smp, err := ctx.Device.CreateSampler(info)
		if err != nil {
			return nil, &AssetError{Kind: ErrTexture, Name: td.Image.Path, Err: err}
		}
		mt.Texture = tex
		mt.Sampler = smp
	}
	if d, ok := md.Data[DiffuseColor]; ok {
		if len(d.Values) < 3 {
			ctx.logger().Warn("ignoring short material color", "material", md.Name, "values", len(d.Values))
		} else {
			mt.Color = [4]float32{d.Values[0], d.Values[1], d.Values[2], 1}
		}
	}
	return mt, nil
}

func (ctx *Context) isSRGB(space string) bool {
	switch space {
	case LinearSpace:
		return false
	case SRGBSpace:
		return true
	}
	ctx.logger().Warn("unknown color space, using linear", "space", space)
	return false
}

// WrapMode returns the wrap mode for the given description value:
// -1 mirror, 0 clamp or 1 tile.
func WrapMode(v int8) (gpu.WrapModes, bool) {
	switch v {
	case -1:
		return gpu.Mirror, true
	case 0:
		return gpu.Clamp, true
	case 1:
		return gpu.Tile, true
	}
	return gpu.Tile, false
}

// FilterMethod returns the filter method for the given description
// value: 1 nearest, 2 bilinear or 3 trilinear.
func FilterMethod(v uint8) (gpu.FilterMethods, bool) {
	switch v {
	case 1:
		return gpu.Nearest, true
	case 2:
		return gpu.Bilinear, true
	case 3:
		return gpu.Trilinear, true
	}
	return gpu.Nearest, false
}

// SamplerInfo returns the sampler description of the given texture.
// Wrap modes are checked before the filter.
func SamplerInfo(td *desc.Texture) (gpu.SamplerInfo, error) {
	var info gpu.SamplerInfo
	for i, v := range td.Wrap {
		wm, ok := WrapMode(v)
		if !ok {
			return info, &AssetError{Kind: ErrSamplerWrap, Name: td.Name, Err: fmt.Errorf("wrap %d on axis %d", v, i)}
		}
		info.Wrap[i] = wm
	}
	f, ok := FilterMethod(td.Filter)
	if !ok {
		return info, &AssetError{Kind: ErrSamplerFilter, Name: td.Name, Err: fmt.Errorf("filter %d", td.Filter)}
	}
	info.Filter = f
	return info, nil
}
