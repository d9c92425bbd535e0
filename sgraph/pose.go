// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sgraph

import (
	"cogentcore.org/core/math32"
)

// Pose contains the full specification of position, orientation and scale,
// always relative to the parent node.
type Pose struct {

	// Pos is the position of the node center, relative to the parent.
	Pos math32.Vector3

	// Scale is the scale relative to the parent.
	Scale math32.Vector3

	// Rot is the rotation as Euler angles in radians (X = pitch, Y = yaw,
	// Z = roll). Keeping Euler angles lets yaw accumulate without drift.
	Rot math32.Vector3

	// Matrix is the local matrix built from Pos, Rot and Scale.
	Matrix math32.Matrix4 `display:"-"`

	// WorldMatrix is the absolute matrix: parent world * Matrix.
	WorldMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets a unit scale if none is set.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
}

// SetPos sets the position.
func (ps *Pose) SetPos(x, y, z float32) {
	ps.Pos.Set(x, y, z)
}

// SetUniformScale sets the same scale on all three axes.
func (ps *Pose) SetUniformScale(s float32) {
	ps.Scale.Set(s, s, s)
}

// RotateY adds angle (radians) to the yaw.
func (ps *Pose) RotateY(angle float32) {
	ps.Rot.Y += angle
}

// Quat returns the rotation as a quaternion.
func (ps *Pose) Quat() math32.Quat {
	return math32.NewQuatEuler(ps.Rot)
}

// SetQuat sets the rotation from a quaternion.
func (ps *Pose) SetQuat(q math32.Quat) {
	ps.Rot = q.ToEuler()
}

// UpdateMatrix updates the local matrix from Pos, Rot and Scale.
// A zero scale is kept as is.
func (ps *Pose) UpdateMatrix() {
	ps.Matrix.SetTransform(ps.Pos, ps.Quat(), ps.Scale)
}

// UpdateWorldMatrix sets the world matrix from the parent's world matrix,
// or to the local matrix at the root (parent == nil).
// Does NOT call UpdateMatrix.
func (ps *Pose) UpdateWorldMatrix(parent *math32.Matrix4) {
	if parent == nil {
		ps.WorldMatrix = ps.Matrix
		return
	}
	ps.WorldMatrix.MulMatrices(parent, &ps.Matrix)
}

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	m := &ps.WorldMatrix
	return math32.Vec3(m[12], m[13], m[14])
}

// TransformPoint returns p transformed by the world matrix.
func (ps *Pose) TransformPoint(p math32.Vector3) math32.Vector3 {
	return p.MulMatrix4(&ps.WorldMatrix)
}

// SetMatrix sets Pos, Rot and Scale from a local transform matrix.
func (ps *Pose) SetMatrix(m *math32.Matrix4) {
	pos, q, s := m.Decompose()
	ps.Pos, ps.Scale = pos, s
	ps.SetQuat(q)
}
