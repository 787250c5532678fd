// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"testing"

	"cogentcore.org/blade/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

// chain builds root -> arm -> hand, returning the world and their local transforms.
func chain() (*World, []Transform) {
	locals := []Transform{
		NewTransform(math32.Vec3(1, 2, 3), math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Pi/2), 2),
		NewTransform(math32.Vec3(0, 0, 1), math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.Pi/2), 0.5),
		NewTransform(math32.Vec3(3, 0, 0), math32.QuatIdentity(), 3),
	}
	w := NewWorld()
	root := w.AddNode("root", NoNode, locals[0])
	arm := w.AddNode("arm", root, locals[1])
	w.AddNode("hand", arm, locals[2])
	return w, locals
}

func TestWorldTransformChain(t *testing.T) {
	w, locals := chain()
	hand, ok := w.FindNode("hand")
	require.True(t, ok)

	// manual composition of the rule, worked through by hand:
	// root rotates 90 degrees about Y and scales by 2; arm rotates
	// 90 degrees about X and scales by 0.5; hand is offset by 3 in X.
	armWorld := Transform{
		Pos:   math32.Vec3(1+2, 2, 3), // (0,0,2) rotated about Y is (2,0,0)
		Rot:   locals[0].Rot.Mul(locals[1].Rot),
		Scale: 1,
	}
	got := w.WorldTransform(w.Node(hand).Parent)
	assert.True(t, got.IsEqualTol(armWorld, tol), "%v != %v", got, armWorld)

	// hand offset (3,0,0) * armScale 1 rotated by X then Y quarter turns:
	// X turn leaves (3,0,0); Y turn takes it to (0,0,-3).
	handWorld := Transform{
		Pos:   math32.Vec3(3, 2, 0),
		Rot:   armWorld.Rot,
		Scale: 3,
	}
	got = w.WorldTransform(hand)
	assert.True(t, got.IsEqualTol(handWorld, tol), "%v != %v", got, handWorld)

	all := w.WorldTransforms()
	require.Len(t, all, 3)
	for i := range all {
		assert.True(t, all[i].IsEqualTol(w.WorldTransform(NodeID(i)), tol))
	}
	assert.Equal(t, locals[0], all[0], "roots are unchanged")
}

func TestTransformMatrix(t *testing.T) {
	w, _ := chain()
	hand, _ := w.FindNode("hand")
	wt := w.WorldTransform(hand)

	var m math32.Matrix4
	m.SetIdentity()
	for _, id := range []NodeID{0, 1, 2} {
		lm := w.Node(id).Local.Matrix()
		m.MulMatrices(&m, &lm)
	}
	wm := wt.Matrix()
	for i := range m {
		assert.InDelta(t, wm[i], m[i], tol)
	}

	p := math32.Vec3(1, -1, 0.5)
	assert.True(t, wt.Apply(p).IsEqualTol(p.MulMatrix4AsPoint(&m), tol))
}

func TestIdentityCompose(t *testing.T) {
	tr := NewTransform(math32.Vec3(4, 5, 6), math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), 1), 2)
	assert.True(t, Identity().Compose(tr).IsEqualTol(tr, tol))
	assert.True(t, tr.Compose(Identity()).IsEqualTol(tr, tol))
}

func TestFindNode(t *testing.T) {
	w := NewWorld()
	a := w.AddNode("a", NoNode, Identity())
	dup := w.AddNode("x", a, Identity())
	b := w.AddNode("b", NoNode, Identity())
	w.AddNode("x", b, Identity())

	id, ok := w.FindNode("x")
	assert.True(t, ok)
	assert.Equal(t, dup, id, "first match in pre-order")

	id, ok = w.FindNode("nope")
	assert.False(t, ok)
	assert.Equal(t, NoNode, id)
	assert.False(t, id.IsValid())

	assert.Equal(t, 4, w.Len())
	assert.Equal(t, []NodeID{a, b}, w.Children(NoNode))
	assert.Equal(t, []NodeID{dup}, w.Children(a))
	assert.Equal(t, "/a/x", w.Path(dup))
}

func TestAddNodeBadParent(t *testing.T) {
	w := NewWorld()
	assert.Panics(t, func() { w.AddNode("orphan", 3, Identity()) })
	assert.Equal(t, 0, w.Len())
}
