// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model drives a loaded scene graph from panel values:
// shadow flags once at mount, then position, uniform scale and
// accumulated yaw every frame.
package model

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"tokyo3d/params"
	"tokyo3d/sgraph"
)

// ErrAlreadyMounted is returned when mounting a second model reference.
var ErrAlreadyMounted = errors.New("model: a model is already mounted")

// Adapter holds the one live model reference of a scene.
//
// The adapter is the only writer of the root pose and of the shadow
// flags. Mount, Tick and Unmount must all be called from the render
// goroutine; values read from the panel arrive as an explicit
// [params.Transform] argument.
type Adapter struct {
	root *sgraph.Node
}

// Mount takes the resolved scene graph and enables shadow casting and
// receiving on every mesh node. It fails if a model is already mounted.
func (ad *Adapter) Mount(root *sgraph.Node) error {
	if ad.root != nil {
		return ErrAlreadyMounted
	}
	n := EnableShadows(root)
	ad.root = root
	root.UpdateWorld()
	bb := root.BBox()
	slog.Info("model mounted", "name", root.Name, "meshes", n, "center", bb.Center(), "size", bb.Size())
	return nil
}

// EnableShadows sets CastShadow and ReceiveShadow on every mesh node
// under root and returns how many were set.
func EnableShadows(root *sgraph.Node) int {
	n := 0
	root.Walk(func(c *sgraph.Node, _ int) bool {
		if c.IsMesh() {
			c.CastShadow = true
			c.ReceiveShadow = true
			n++
		}
		return true
	})
	return n
}

// Tick applies one frame: the root position becomes the panel position,
// the scale becomes uniform, and RotationSpeed is added to the yaw.
// Accumulated yaw is never reset. Tick does nothing without a model.
func (ad *Adapter) Tick(t params.Transform) {
	if ad.root == nil {
		return
	}
	ps := &ad.root.Pose
	ps.SetPos(t.PositionX, t.PositionY, t.PositionZ)
	ps.SetUniformScale(t.Scale)
	ps.RotateY(t.RotationSpeed)
	ad.root.UpdateWorld()
}

// Unmount drops the model reference.
func (ad *Adapter) Unmount() {
	ad.root = nil
}

// Root returns the mounted model, or nil.
func (ad *Adapter) Root() *sgraph.Node {
	return ad.root
}

// Yaw returns the accumulated yaw in radians.
func (ad *Adapter) Yaw() float32 {
	if ad.root == nil {
		return 0
	}
	return ad.root.Pose.Rot.Y
}
