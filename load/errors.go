// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"fmt"

	"cogentcore.org/blade/base/errors"
)

// Kinds of loading errors, matched with [errors.Is].
var (
	// ErrNoCamera means the scene description has no camera.
	ErrNoCamera = errors.New("load: scene has no camera")

	// ErrMissingNode means a camera, entity or light names a node
	// that is not in the scene. See [MissingNodeError].
	ErrMissingNode = errors.New("load: missing node")

	// ErrMissingMaterial means an entity names a material that is
	// not in the scene.
	ErrMissingMaterial = errors.New("load: missing material")

	// ErrMesh means a mesh asset failed to load.
	ErrMesh = errors.New("load: mesh")

	// ErrTexture means a texture image failed to load.
	ErrTexture = errors.New("load: texture")

	// ErrSamplerFilter means an unknown texture filter method.
	ErrSamplerFilter = errors.New("load: invalid sampler filter")

	// ErrSamplerWrap means an unknown texture wrap mode.
	ErrSamplerWrap = errors.New("load: invalid sampler wrap mode")

	// ErrProgram means the device failed to link the shader program.
	ErrProgram = errors.New("load: program")

	// ErrBatch means the device failed to make a draw batch.
	ErrBatch = errors.New("load: batch")

	// ErrAsset means an asset file could not be read.
	ErrAsset = errors.New("load: asset")
)

// MissingNodeError is returned when a node name does not resolve.
type MissingNodeError struct {

	// Name is the node name.
	Name string

	// User is what refers to the node, e.g. "camera main".
	User string
}

func (e *MissingNodeError) Error() string {
	if e.User == "" {
		return fmt.Sprintf("load: missing node %q", e.Name)
	}
	return fmt.Sprintf("load: missing node %q for %s", e.Name, e.User)
}

func (e *MissingNodeError) Unwrap() error {
	return ErrMissingNode
}

// AssetError is an error of one of the kinds above, for a named asset.
type AssetError struct {

	// Kind is one of the Err* kinds above.
	Kind error

	// Name is the asset path, mesh key or other name of the offending item.
	Name string

	// Err is the underlying cause, if any.
	Err error
}

func (e *AssetError) Error() string {
	s := fmt.Sprintf("%v %q", e.Kind, e.Name)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *AssetError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
