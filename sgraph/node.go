// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sgraph is the scene graph of a loaded model: a tree of
// nodes with poses, optional mesh data, and shadow participation flags.
package sgraph

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/jinzhu/copier"
)

// Mesh is the triangle data of a renderable node.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	TexCoords [][2]float32

	// Indices are triangle list indices; nil means non-indexed.
	Indices []uint32

	// Color is the base color of the material.
	Color color.RGBA
}

// Node is a group or mesh in the scene graph.
type Node struct {
	Name string

	// Mesh is nil for pure groups.
	Mesh *Mesh

	// CastShadow makes the node render into shadow maps.
	CastShadow bool

	// ReceiveShadow makes the node sample shadow maps.
	ReceiveShadow bool

	Pose Pose

	Children []*Node
}

// NewGroup returns a node without mesh data.
func NewGroup(name string) *Node {
	n := &Node{Name: name}
	n.Pose.Defaults()
	return n
}

// NewMesh returns a renderable node.
func NewMesh(name string, m *Mesh) *Node {
	n := NewGroup(name)
	n.Mesh = m
	return n
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// IsMesh returns true if the node carries mesh data.
func (n *Node) IsMesh() bool {
	return n.Mesh != nil
}

// Walk calls fun for n and every descendant, depth first, parents before
// children. If fun returns false the children of that node are skipped.
func (n *Node) Walk(fun func(n *Node, depth int) bool) {
	n.walk(fun, 0)
}

func (n *Node) walk(fun func(n *Node, depth int) bool, depth int) {
	if !fun(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fun, depth+1)
	}
}

// Meshes returns all mesh nodes in the subtree, in walk order.
func (n *Node) Meshes() []*Node {
	var ms []*Node
	n.Walk(func(c *Node, _ int) bool {
		if c.IsMesh() {
			ms = append(ms, c)
		}
		return true
	})
	return ms
}

// Count returns the number of nodes in the subtree, including n.
func (n *Node) Count() int {
	c := 0
	n.Walk(func(*Node, int) bool {
		c++
		return true
	})
	return c
}

// UpdateWorld recomputes local and world matrices for the subtree,
// treating n as the root.
func (n *Node) UpdateWorld() {
	n.updateWorld(nil)
}

func (n *Node) updateWorld(parent *math32.Matrix4) {
	n.Pose.UpdateMatrix()
	n.Pose.UpdateWorldMatrix(parent)
	for _, c := range n.Children {
		c.updateWorld(&n.Pose.WorldMatrix)
	}
}

// BBox returns the world-space bounds of every mesh vertex in the subtree.
// World matrices must be current (see UpdateWorld). The box is empty when
// there are no vertices.
func (n *Node) BBox() math32.Box3 {
	bb := math32.B3Empty()
	n.Walk(func(c *Node, _ int) bool {
		if c.Mesh == nil {
			return true
		}
		for _, p := range c.Mesh.Positions {
			bb.ExpandByPoint(c.Pose.TransformPoint(math32.Vec3(p[0], p[1], p[2])))
		}
		return true
	})
	return bb
}

// Clone returns a deep copy of the subtree.
func (n *Node) Clone() *Node {
	cp := &Node{}
	if err := copier.CopyWithOption(cp, n, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return cp
}
