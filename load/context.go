// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package load loads scenes and their assets onto a graphics
// device. A [Context] is one loading session: it holds the asset
// filesystem, the device, and caches of the meshes and textures
// loaded so far, so that every asset is loaded at most once.
package load

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"cogentcore.org/blade/cache"
	"cogentcore.org/blade/chunk"
	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/mesh"
	"github.com/klauspost/compress/zstd"
)

// DefaultAttribPrefix is prepended to mesh attribute names,
// to match the shader input names.
const DefaultAttribPrefix = "a_"

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// MeshAsset is a loaded mesh with its default draw slice.
type MeshAsset struct {
	Mesh  *mesh.Mesh
	Slice mesh.Slice
}

// Context is a loading session. It is not safe for concurrent use.
type Context struct {

	// Assets is the filesystem that asset paths are relative to.
	Assets fs.FS

	// Device is the device resources are created on.
	Device Device

	// Logger receives loading events. [slog.Default] is used if nil.
	Logger *slog.Logger

	// AttribPrefix is prepended to mesh attribute names.
	AttribPrefix string

	// Meshes are the loaded meshes, by mesh key.
	Meshes cache.Cache[*MeshAsset]

	// Textures are the loaded textures, by image path.
	Textures cache.Cache[gpu.Texture]

	// Black is the 1x1 texture used by materials without a texture.
	Black gpu.Texture

	// PointSampler is the sampler used with [Context.Black].
	PointSampler gpu.Sampler

	program gpu.Program
}

// NewContext returns a new loading session for the given assets and
// device, creating the default texture and sampler on the device.
func NewContext(assets fs.FS, dv Device) (*Context, error) {
	ctx := &Context{Assets: assets, Device: dv, AttribPrefix: DefaultAttribPrefix}
	black := image.NewRGBA(image.Rect(0, 0, 1, 1))
	black.SetRGBA(0, 0, color.RGBA{A: 255})
	var err error
	ctx.Black, err = dv.CreateTexture(black, false)
	if err != nil {
		return nil, &AssetError{Kind: ErrTexture, Name: "black", Err: err}
	}
	ctx.PointSampler, err = dv.CreateSampler(gpu.NewSamplerInfo(gpu.Nearest, gpu.Clamp))
	if err != nil {
		return nil, &AssetError{Kind: ErrTexture, Name: "black", Err: err}
	}
	return ctx, nil
}

func (ctx *Context) logger() *slog.Logger {
	if ctx.Logger != nil {
		return ctx.Logger
	}
	return slog.Default()
}

// SplitMeshKey splits a mesh key into the asset path and the name of
// the mesh within the asset, which is empty if the key has no @name.
// It splits on the last @, so it cannot tell an @ in a file name from
// a mesh name; see [Context.ResolveMeshKey].
func SplitMeshKey(key string) (path, name string) {
	if i := strings.LastIndexByte(key, '@'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, ""
}

// ResolveMeshKey is [SplitMeshKey] for the context assets: a key that
// names an existing asset file is a path, even if it contains @.
func (ctx *Context) ResolveMeshKey(key string) (path, name string) {
	path, name = SplitMeshKey(key)
	if name == "" {
		return
	}
	if fi, err := fs.Stat(ctx.Assets, key); err == nil && !fi.IsDir() {
		return key, ""
	}
	return
}

// RequestMesh returns the mesh for the given key, loading it if it
// is not already loaded. The key is an asset path, optionally
// followed by @name to select one mesh of a collection; without a
// name, the first chunk of the asset is decoded.
// Errors match [ErrMesh].
func (ctx *Context) RequestMesh(key string) (*mesh.Mesh, mesh.Slice, error) {
	ma, err := ctx.Meshes.Request(key, ctx.loadMesh)
	if err != nil {
		return nil, mesh.Slice{}, &AssetError{Kind: ErrMesh, Name: key, Err: err}
	}
	return ma.Mesh, ma.Slice, nil
}

func (ctx *Context) loadMesh(key string) (*MeshAsset, error) {
	path, name := ctx.ResolveMeshKey(key)
	data, err := ctx.ReadAsset(path)
	if err != nil {
		return nil, err
	}
	dec := &mesh.Decoder{Factory: ctx.Device, Logger: ctx.logger(), AttribPrefix: ctx.AttribPrefix}
	r := chunk.NewReader(data)
	var m *mesh.Mesh
	var sl mesh.Slice
	if name == "" {
		m, sl, err = dec.Decode(r)
	} else {
		m, sl, err = dec.DecodeNamed(r, name)
	}
	if err != nil {
		return nil, err
	}
	ctx.logger().Info("loaded mesh", "key", key, "vertices", m.NumVertex, "attributes", len(m.Attributes), "indexed", sl.IsIndexed())
	return &MeshAsset{Mesh: m, Slice: sl}, nil
}

// RequestTexture returns the texture for the given image path,
// loading it if it is not already loaded. srgb indicates that
// the image colors are sRGB encoded; it only applies to the first
// request for a path. Errors match [ErrTexture].
func (ctx *Context) RequestTexture(path string, srgb bool) (gpu.Texture, error) {
	tex, err := ctx.Textures.Request(path, func(path string) (gpu.Texture, error) {
		data, err := ctx.ReadAsset(path)
		if err != nil {
			return nil, err
		}
		img, format, err := DecodeImage(data)
		if err != nil {
			return nil, err
		}
		tex, err := ctx.Device.CreateTexture(img, srgb)
		if err != nil {
			return nil, err
		}
		ctx.logger().Info("loaded texture", "path", path, "format", format, "size", tex.Size(), "srgb", srgb)
		return tex, nil
	})
	if err != nil {
		return nil, &AssetError{Kind: ErrTexture, Name: path, Err: err}
	}
	return tex, nil
}

// ReadAsset returns the contents of the given asset file,
// decompressing it if it is zstd compressed. Errors match [ErrAsset].
func (ctx *Context) ReadAsset(path string) ([]byte, error) {
	data, err := fs.ReadFile(ctx.Assets, path)
	if err != nil {
		return nil, &AssetError{Kind: ErrAsset, Name: path, Err: err}
	}
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}
	decoder, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetError{Kind: ErrAsset, Name: path, Err: fmt.Errorf("creating zstd decoder: %w", err)}
	}
	defer decoder.Close()
	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, &AssetError{Kind: ErrAsset, Name: path, Err: fmt.Errorf("decompressing: %w", err)}
	}
	ctx.logger().Debug("decompressed asset", "path", path, "size", len(data))
	return data, nil
}

// Reset releases all loaded meshes and textures that can be
// released, and empties the caches, starting a new session
// on the same assets and device.
func (ctx *Context) Reset() {
	for _, ma := range ctx.Meshes.Values() {
		ma.Mesh.Release()
		if ma.Slice.Index != nil {
			gpu.Release(ma.Slice.Index.Buffer)
		}
	}
	for _, tex := range ctx.Textures.Values() {
		gpu.Release(tex)
	}
	ctx.Meshes.Reset()
	ctx.Textures.Reset()
}
