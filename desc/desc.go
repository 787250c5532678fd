// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desc defines the scene description document: the node
// tree, materials, entities, cameras and lights of a scene, as
// exported by a modeling tool in JSON or YAML.
//
// Tuples are written as arrays, e.g. "pos": [0, 1, 2].
package desc

// Scene is a whole scene description.
type Scene struct {
	Global    Global     `json:"global" yaml:"global"`
	Nodes     []Node     `json:"nodes" yaml:"nodes"`
	Materials []Material `json:"materials" yaml:"materials"`
	Entities  []Entity   `json:"entities" yaml:"entities"`
	Cameras   []Camera   `json:"cameras" yaml:"cameras"`
	Lights    []Light    `json:"lights" yaml:"lights"`
}

// Global holds the scene wide settings.
type Global struct {
	Gravity [3]float32 `json:"gravity" yaml:"gravity"`
}

// Node is a node of the scene hierarchy, with its children.
type Node struct {
	Name     string   `json:"name" yaml:"name"`
	Space    Space    `json:"space" yaml:"space"`
	Children []Node   `json:"children" yaml:"children"`
	Actions  []Action `json:"actions" yaml:"actions"`
}

// Space is the transform of a node relative to its parent.
type Space struct {
	Pos [3]float32 `json:"pos" yaml:"pos"`

	// Rot is the rotation quaternion as x, y, z, w.
	Rot [4]float32 `json:"rot" yaml:"rot"`

	// Scale is the uniform scale.
	Scale float32 `json:"scale" yaml:"scale"`
}

// Defaults sets defaults for values that are zero: an all-zero
// rotation becomes the identity, and a zero scale becomes 1,
// so an explicit scale of 0 also becomes 1.
func (sp *Space) Defaults() {
	if sp.Rot == [4]float32{} {
		sp.Rot[3] = 1
	}
	if sp.Scale == 0 {
		sp.Scale = 1
	}
}

// Entity is a drawable object: a mesh attached to a node.
type Entity struct {

	// Mesh is the mesh asset key, a path optionally followed by
	// @name to select one mesh of a collection.
	Mesh string `json:"mesh" yaml:"mesh"`

	// Node is the name of the node the entity is attached to.
	Node string `json:"node" yaml:"node"`

	// Range is the vertex range to draw; it is only used if End > Start.
	Range [2]uint32 `json:"range" yaml:"range"`

	Armature string `json:"armature" yaml:"armature"`

	// Material is the name of one of the scene materials,
	// or empty for the default material.
	Material string   `json:"material" yaml:"material"`
	Actions  []Action `json:"actions" yaml:"actions"`
}

// Camera is a perspective camera attached to a node.
type Camera struct {
	Name string `json:"name" yaml:"name"`
	Node string `json:"node" yaml:"node"`

	// Angle is the horizontal and vertical field of view, in radians.
	Angle [2]float32 `json:"angle" yaml:"angle"`

	// Range is the near and far clipping distances.
	Range   [2]float32 `json:"range" yaml:"range"`
	Actions []Action   `json:"actions" yaml:"actions"`
}

// Light is a light source, attached to the node with the same name.
type Light struct {
	Name        string     `json:"name" yaml:"name"`
	Kind        string     `json:"kind" yaml:"kind"`
	Color       [3]float32 `json:"color" yaml:"color"`
	Energy      float32    `json:"energy" yaml:"energy"`
	Distance    float32    `json:"distance" yaml:"distance"`
	Attenuation [2]float32 `json:"attenuation" yaml:"attenuation"`
	Spherical   bool       `json:"spherical" yaml:"spherical"`
	Parameters  []float32  `json:"parameters" yaml:"parameters"`
	Actions     []Action   `json:"actions" yaml:"actions"`
}

// Material is a named surface description.
type Material struct {
	Name   string `json:"name" yaml:"name"`
	Shader string `json:"shader" yaml:"shader"`

	// Data are named shader parameters, e.g. "DiffuseColor".
	Data map[string]Data `json:"data" yaml:"data"`

	Textures []Texture `json:"textures" yaml:"textures"`

	// Transparent enables alpha blending.
	Transparent bool `json:"transparent" yaml:"transparent"`
}

// Data is a typed list of shader parameter values.
// It is written either as ["kind", [values]] or as {"kind": ..., "values": [...]}.
type Data struct {
	Kind   string    `json:"kind" yaml:"kind"`
	Values []float32 `json:"values" yaml:"values"`
}

// Texture is a texture reference of a material.
type Texture struct {
	Name  string `json:"name" yaml:"name"`
	Image Image  `json:"image" yaml:"image"`

	// Wrap is the wrap mode per axis: -1 mirror, 0 clamp, 1 tile.
	Wrap [3]int8 `json:"wrap" yaml:"wrap"`

	// Filter is the filter method: 1 nearest, 2 bilinear, 3 trilinear.
	Filter uint8 `json:"filter" yaml:"filter"`
}

// Image is an image file reference.
type Image struct {
	Path string `json:"path" yaml:"path"`

	// Space is the color space of the image data, "Linear" or "sRGB".
	Space string `json:"space" yaml:"space"`
}

// Action is an animation action. Actions are carried through
// but not interpreted.
type Action any

// MaterialByName returns the material with the given name, if any.
func (sc *Scene) MaterialByName(name string) (*Material, bool) {
	for i := range sc.Materials {
		if sc.Materials[i].Name == name {
			return &sc.Materials[i], true
		}
	}
	return nil, false
}

// WalkNodes calls fun for every node in pre-order, with the parent
// of each node (nil for roots).
func (sc *Scene) WalkNodes(fun func(nd, parent *Node)) {
	var walk func(nodes []Node, parent *Node)
	walk = func(nodes []Node, parent *Node) {
		for i := range nodes {
			nd := &nodes[i]
			fun(nd, parent)
			walk(nd.Children, nd)
		}
	}
	walk(sc.Nodes, nil)
}
