// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space provides the spatial hierarchy of a scene: a [World]
// of named nodes, each with a [Transform] relative to its parent.
//
// Nodes live in a flat arena and are addressed by [NodeID] handles.
// A node can only be added after its parent, so the world is always
// built top-down, and its storage order is a pre-order of the tree.
package space

import (
	"fmt"
	"strings"
)

// NodeID is a handle to a node in a [World].
type NodeID int32

// NoNode is the parent of root nodes.
const NoNode NodeID = -1

// IsValid returns whether id refers to a node (it may still be
// out of range of a particular [World]).
func (id NodeID) IsValid() bool {
	return id >= 0
}

// Node is a named point in the hierarchy.
type Node struct {

	// Name is the name of the node; it need not be unique.
	Name string

	// Parent is the parent node, or [NoNode] for a root.
	Parent NodeID

	// Local is the transform relative to the parent.
	Local Transform
}

// World is an arena of nodes. Nodes are never removed.
// A World is not safe for concurrent use.
type World struct {
	nodes []Node
}

// NewWorld returns a new empty World.
func NewWorld() *World {
	return &World{}
}

// Len returns the number of nodes.
func (w *World) Len() int {
	return len(w.nodes)
}

// AddNode adds a new node with the given name, parent and local
// transform, returning its handle. The parent must be [NoNode] or
// a node already in the world; anything else panics.
func (w *World) AddNode(name string, parent NodeID, local Transform) NodeID {
	if parent != NoNode && !w.has(parent) {
		panic(fmt.Sprintf("space: AddNode %q: parent %d is not in the world", name, parent))
	}
	id := NodeID(len(w.nodes))
	w.nodes = append(w.nodes, Node{Name: name, Parent: parent, Local: local})
	return id
}

func (w *World) has(id NodeID) bool {
	return id >= 0 && int(id) < len(w.nodes)
}

// Node returns the node with the given handle, which must be valid.
func (w *World) Node(id NodeID) *Node {
	return &w.nodes[id]
}

// FindNode returns the first node with the given name, in pre-order.
func (w *World) FindNode(name string) (NodeID, bool) {
	for i := range w.nodes {
		if w.nodes[i].Name == name {
			return NodeID(i), true
		}
	}
	return NoNode, false
}

// Children returns the direct children of the given node, in order.
// Passing [NoNode] returns the roots.
func (w *World) Children(id NodeID) []NodeID {
	var ch []NodeID
	for i := range w.nodes {
		if w.nodes[i].Parent == id {
			ch = append(ch, NodeID(i))
		}
	}
	return ch
}

// Path returns the slash separated names from the root down to the node.
func (w *World) Path(id NodeID) string {
	var names []string
	for ; id != NoNode; id = w.nodes[id].Parent {
		names = append(names, w.nodes[id].Name)
	}
	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	return b.String()
}

// WorldTransform returns the transform of the node relative to the
// world, composing the local transforms of all of its ancestors.
func (w *World) WorldTransform(id NodeID) Transform {
	nd := &w.nodes[id]
	if nd.Parent == NoNode {
		return nd.Local
	}
	return w.WorldTransform(nd.Parent).Compose(nd.Local)
}

// WorldTransforms returns the world transforms of all nodes, indexed
// by [NodeID], in one pass. Parents precede their children, so each
// parent transform is final by the time it is used.
func (w *World) WorldTransforms() []Transform {
	wt := make([]Transform, len(w.nodes))
	for i := range w.nodes {
		nd := &w.nodes[i]
		if nd.Parent == NoNode {
			wt[i] = nd.Local
			continue
		}
		wt[i] = wt[nd.Parent].Compose(nd.Local)
	}
	return wt
}
