// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"fmt"

	"cogentcore.org/blade/desc"
	"cogentcore.org/blade/gpu"
	"cogentcore.org/blade/math32"
	"cogentcore.org/blade/scene"
	"cogentcore.org/blade/space"
)

// DrawState returns the draw state of entity batches with the
// given material: depth tested with LessEqual and depth writing.
func DrawState(mt *scene.Material) gpu.DrawState {
	return gpu.NewDrawState().Depth(gpu.LessEqual, true).WithBlend(mt.Blend)
}

// Open reads the scene description at the given asset path and loads it.
func (ctx *Context) Open(path string) (*scene.Scene, error) {
	sd, err := desc.OpenFS(ctx.Assets, path)
	if err != nil {
		return nil, err
	}
	return ctx.LoadScene(sd)
}

// LoadScene loads the given scene description. The node tree is
// added to a new world top-down, then the camera, entities and
// lights are bound to nodes by name. The first error aborts the
// load, and no scene is returned; meshes and textures loaded
// before the error stay in the caches of the context.
func (ctx *Context) LoadScene(sd *desc.Scene) (*scene.Scene, error) {
	sc := &scene.Scene{
		World:   space.NewWorld(),
		Gravity: math32.Vec3(sd.Global.Gravity[0], sd.Global.Gravity[1], sd.Global.Gravity[2]),
	}
	addNodes(sc.World, sd.Nodes, space.NoNode)

	if len(sd.Cameras) == 0 {
		return nil, ErrNoCamera
	}
	cd := &sd.Cameras[0]
	cnode, ok := sc.World.FindNode(cd.Node)
	if !ok {
		return nil, &MissingNodeError{Name: cd.Node, User: "camera " + cd.Name}
	}
	sc.Camera = scene.Camera{
		Name:       cd.Name,
		Node:       cnode,
		Projection: scene.NewProjection(cd.Angle[0], cd.Angle[1], cd.Range[0], cd.Range[1]),
	}

	prog, err := ctx.Program()
	if err != nil {
		return nil, err
	}
	sc.Program = prog

	if err := ctx.bindScene(sd, sc); err != nil {
		for _, ent := range sc.Entities {
			gpu.Release(ent.Batch)
		}
		return nil, err
	}
	ctx.logger().Info("loaded scene", "nodes", sc.World.Len(), "entities", len(sc.Entities), "lights", len(sc.Lights), "materials", sc.Materials.Len())
	return sc, nil
}

// bindScene loads the entities and lights of sd into sc.
func (ctx *Context) bindScene(sd *desc.Scene, sc *scene.Scene) error {
	for i := range sd.Entities {
		ed := &sd.Entities[i]
		node, ok := sc.World.FindNode(ed.Node)
		if !ok {
			return &MissingNodeError{Name: ed.Node, User: "entity " + ed.Mesh}
		}
		m, sl, err := ctx.RequestMesh(ed.Mesh)
		if err != nil {
			return err
		}
		if start, end := ed.Range[0], ed.Range[1]; end > start {
			sl.Start = start
			sl.End = end
		}
		mt, err := ctx.sceneMaterial(sd, sc, ed.Material)
		if err != nil {
			return err
		}
		batch, err := ctx.Device.MakeBatch(sc.Program, m, sl, DrawState(mt))
		if err != nil {
			return &AssetError{Kind: ErrBatch, Name: ed.Mesh, Err: err}
		}
		sc.Entities = append(sc.Entities, scene.Entity{
			Name:     ed.Mesh,
			Node:     node,
			Mesh:     m,
			Slice:    sl,
			Material: mt,
			Batch:    batch,
			Armature: ed.Armature,
		})
	}

	for i := range sd.Lights {
		ld := &sd.Lights[i]
		node, ok := sc.World.FindNode(ld.Name)
		if !ok {
			return &MissingNodeError{Name: ld.Name, User: "light " + ld.Name}
		}
		kind, ok := scene.ParseLightKind(ld.Kind)
		if !ok {
			ctx.logger().Warn("unknown light kind, using point", "light", ld.Name, "kind", ld.Kind)
		}
		sc.Lights = append(sc.Lights, scene.Light{
			Name:        ld.Name,
			Node:        node,
			Kind:        kind,
			Color:       math32.Vec3(ld.Color[0], ld.Color[1], ld.Color[2]),
			Energy:      ld.Energy,
			Distance:    ld.Distance,
			Attenuation: ld.Attenuation,
			Spherical:   ld.Spherical,
			Parameters:  ld.Parameters,
		})
	}
	return nil
}

// sceneMaterial returns the named material of the scene, loading it
// the first time it is used. The empty name is the default material.
func (ctx *Context) sceneMaterial(sd *desc.Scene, sc *scene.Scene, name string) (*scene.Material, error) {
	if mt, ok := sc.Materials.ValueByKeyTry(name); ok {
		return mt, nil
	}
	var mt *scene.Material
	if name == "" {
		mt = scene.NewMaterial("", ctx.Black, ctx.PointSampler)
	} else {
		md, ok := sd.MaterialByName(name)
		if !ok {
			return nil, &AssetError{Kind: ErrMissingMaterial, Name: name}
		}
		var err error
		mt, err = ctx.LoadMaterial(md)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
	}
	sc.Materials.Add(name, mt)
	return mt, nil
}

// addNodes adds the given description nodes and all of their
// descendants to the world, parents first.
func addNodes(w *space.World, nodes []desc.Node, parent space.NodeID) {
	for i := range nodes {
		nd := &nodes[i]
		id := w.AddNode(nd.Name, parent, spaceTransform(nd.Space))
		addNodes(w, nd.Children, id)
	}
}

func spaceTransform(sp desc.Space) space.Transform {
	sp.Defaults()
	return space.NewTransform(
		math32.Vec3(sp.Pos[0], sp.Pos[1], sp.Pos[2]),
		math32.NewQuat(sp.Rot[0], sp.Rot[1], sp.Rot[2], sp.Rot[3]),
		sp.Scale,
	)
}
