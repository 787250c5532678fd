// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds an assembled scene, ready for rendering:
// the world of nodes, and the camera, lights and drawable entities
// bound to those nodes, with all of their device resources loaded.
package scene

import (
	"cogentcore.org/blade/base/ordmap"
	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/math32"
	"cogentcore.org/blade/mesh"
	"cogentcore.org/blade/space"
)

// Scene is an assembled scene.
type Scene struct {

	// World holds the node hierarchy that everything else is bound to.
	World *space.World

	// Gravity is the scene gravity vector.
	Gravity math32.Vector3

	// Camera is the camera to render with.
	Camera Camera

	// Entities are the drawable objects, in description order.
	Entities []Entity

	// Lights are the lights, in description order.
	Lights []Light

	// Materials are the materials used by entities, by name.
	Materials ordmap.Map[string, *Material]

	// Program is the shader program shared by all entities.
	Program gpu.Program
}

// Entity is a drawable object.
type Entity struct {

	// Name is the mesh key the entity was loaded from.
	Name string

	// Node is the node the entity is attached to.
	Node space.NodeID

	Mesh  *mesh.Mesh
	Slice mesh.Slice

	Material *Material

	// Batch draws the entity.
	Batch gpu.Batch

	// Armature is the name of the armature deforming the mesh, if any.
	// It is not resolved.
	Armature string
}

// Camera is a perspective camera.
type Camera struct {
	Name       string
	Node       space.NodeID
	Projection Projection
}

// Projection is a perspective projection.
type Projection struct {

	// FovY is the vertical field of view in radians.
	FovY float32

	// Aspect is the width / height ratio of the view.
	Aspect float32

	Near float32
	Far  float32
}

// NewProjection returns the projection for the given horizontal and
// vertical field of view angles in radians, and near and far distances.
func NewProjection(fovx, fovy, near, far float32) Projection {
	return Projection{
		FovY:   fovy,
		Aspect: math32.Tan(fovx) / math32.Tan(fovy),
		Near:   near,
		Far:    far,
	}
}

// Matrix returns the projection matrix.
func (pr Projection) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetPerspective(math32.RadToDeg(pr.FovY), pr.Aspect, pr.Near, pr.Far)
	return m
}

// LightKinds are the kinds of light.
type LightKinds int32 //enums:enum

const (
	PointLight LightKinds = iota
	SunLight
	SpotLight
	AreaLight
	HemiLight
)

var lightKindNames = [...]string{"POINT", "SUN", "SPOT", "AREA", "HEMI"}

func (lk LightKinds) String() string {
	if lk < 0 || int(lk) >= len(lightKindNames) {
		return "UNKNOWN"
	}
	return lightKindNames[lk]
}

// ParseLightKind returns the light kind with the given name.
func ParseLightKind(s string) (LightKinds, bool) {
	for i, nm := range lightKindNames {
		if nm == s {
			return LightKinds(i), true
		}
	}
	return PointLight, false
}

// Light is a light source bound to a node.
type Light struct {
	Name string
	Node space.NodeID
	Kind LightKinds

	// Color is the linear RGB color.
	Color math32.Vector3

	Energy   float32
	Distance float32

	// Attenuation holds the linear and quadratic falloff factors.
	Attenuation [2]float32

	Spherical  bool
	Parameters []float32
}
