// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"tokyo3d/sgraph"
)

// Model is the xyz view of a mounted model. The xyz tree mirrors the
// scene graph one group per node, with a solid under every mesh node.
type Model struct {

	// Group is the xyz group of the model root.
	Group *xyz.Group

	src *sgraph.Node
}

// NewModel builds the xyz tree for root under sc, registering one mesh
// per mesh node.
func NewModel(sc *xyz.Scene, root *sgraph.Node) *Model {
	m := &Model{src: root}
	nsolids := 0
	var build func(parent tree.Node, n *sgraph.Node) *xyz.Group
	build = func(parent tree.Node, n *sgraph.Node) *xyz.Group {
		gp := xyz.NewGroup(parent)
		gp.SetName(n.Name)
		setPose(&gp.Pose, &n.Pose)
		if n.IsMesh() {
			ms := FlattenMesh(n.Name, n.Mesh)
			sc.AddMeshUnique(ms)
			sld := xyz.NewSolid(gp)
			sld.SetName(n.Name + "-solid")
			sld.SetMesh(ms).SetColor(n.Mesh.Color)
			nsolids++
		}
		for _, c := range n.Children {
			build(gp, c)
		}
		return gp
	}
	m.Group = build(sc, root)
	slog.Info("render: model built", "name", root.Name, "solids", nsolids)
	sc.SetNeedsUpdate()
	return m
}

// Sync copies the root pose of the source scene graph into the xyz group.
// Only the root moves per frame.
func (m *Model) Sync() {
	if m == nil || m.Group == nil {
		return
	}
	setPose(&m.Group.Pose, &m.src.Pose)
}

// Remove deletes the xyz tree of the model from its scene.
func (m *Model) Remove() {
	if m == nil || m.Group == nil {
		return
	}
	m.Group.Delete()
	m.Group = nil
}

func setPose(dst *xyz.Pose, src *sgraph.Pose) {
	dst.Pos = src.Pos
	dst.Scale = src.Scale
	dst.Quat = src.Quat()
}
