// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"

	"cogentcore.org/blade/math32"
)

// Transform is a position, rotation and uniform scale,
// relative to a parent node (or to the world, for roots).
type Transform struct {

	// Pos is the translation.
	Pos math32.Vector3

	// Rot is the rotation, as a unit quaternion.
	Rot math32.Quat

	// Scale is the uniform scale factor.
	Scale float32
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rot: math32.QuatIdentity(), Scale: 1}
}

// NewTransform returns a transform with the given position, rotation and scale.
func NewTransform(pos math32.Vector3, rot math32.Quat, scale float32) Transform {
	return Transform{Pos: pos, Rot: rot, Scale: scale}
}

func (tr Transform) String() string {
	return fmt.Sprintf("Transform{Pos: %v, Rot: %v, Scale: %g}", tr.Pos, tr.Rot, tr.Scale)
}

// Compose returns the transform local, given relative to tr,
// expressed in the space that tr is relative to:
// scales multiply, rotations multiply (tr first), and the local
// position is scaled and rotated by tr and then offset by tr.Pos.
func (tr Transform) Compose(local Transform) Transform {
	return Transform{
		Pos:   local.Pos.MulScalar(tr.Scale).MulQuat(tr.Rot).Add(tr.Pos),
		Rot:   tr.Rot.Mul(local.Rot),
		Scale: tr.Scale * local.Scale,
	}
}

// Apply returns the given point transformed by tr.
func (tr Transform) Apply(p math32.Vector3) math32.Vector3 {
	return p.MulScalar(tr.Scale).MulQuat(tr.Rot).Add(tr.Pos)
}

// Matrix returns the transformation matrix for tr.
func (tr Transform) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(tr.Pos, tr.Rot, math32.Vector3Scalar(tr.Scale))
	return m
}

// IsEqualTol returns whether tr is equal to other within the given tolerance.
func (tr Transform) IsEqualTol(other Transform, tol float32) bool {
	return tr.Pos.IsEqualTol(other.Pos, tol) && tr.Rot.IsEqualTol(other.Rot, tol) &&
		math32.EqualTol(tr.Scale, other.Scale, tol)
}
