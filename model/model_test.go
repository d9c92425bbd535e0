// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"context"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tokyo3d/asset"
	"tokyo3d/params"
	"tokyo3d/sgraph"
)

func tri() *sgraph.Mesh {
	return &sgraph.Mesh{Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
}

func district() *sgraph.Node {
	return sgraph.NewGroup("district").Add(
		sgraph.NewGroup("block").Add(sgraph.NewMesh("tower", tri())),
		sgraph.NewMesh("street", tri()),
	)
}

func mounted(t *testing.T) *Adapter {
	ad := &Adapter{}
	require.NoError(t, ad.Mount(district()))
	return ad
}

func TestMountEnablesShadows(t *testing.T) {
	ad := mounted(t)
	ad.Root().Walk(func(n *sgraph.Node, _ int) bool {
		assert.Equal(t, n.IsMesh(), n.CastShadow, n.Name)
		assert.Equal(t, n.IsMesh(), n.ReceiveShadow, n.Name)
		return true
	})
	assert.ErrorIs(t, ad.Mount(district()), ErrAlreadyMounted)
}

func TestTickPosition(t *testing.T) {
	ad := mounted(t)
	for _, p := range [][3]float32{{0, 0, 0}, {-30, 30, 0.1}, {12.3, -4.5, 29.9}, {30, -30, -30}} {
		ad.Tick(params.Transform{PositionX: p[0], PositionY: p[1], PositionZ: p[2], Scale: 0.1})
		ps := ad.Root().Pose
		assert.Equal(t, math32.Vec3(p[0], p[1], p[2]), ps.Pos)
		assert.Equal(t, math32.Vec3(p[0], p[1], p[2]), ps.WorldPos())
	}
}

func TestTickUniformScale(t *testing.T) {
	ad := mounted(t)
	for _, s := range []float32{0.01, 0.1, 0.5, 1} {
		ad.Tick(params.Transform{Scale: s})
		assert.Equal(t, math32.Vec3(s, s, s), ad.Root().Pose.Scale)
		assert.NotZero(t, ad.Root().Pose.Scale.X)
	}
}

func TestTickZeroScale(t *testing.T) {
	ad := mounted(t)
	ad.Tick(params.Transform{Scale: 0})
	assert.Equal(t, math32.Vector3{}, ad.Root().Pose.Scale)
	for _, n := range ad.Root().Meshes() {
		for _, p := range n.Mesh.Positions {
			assert.Equal(t, math32.Vector3{}, n.Pose.TransformPoint(math32.Vec3(p[0], p[1], p[2])), n.Name)
		}
	}

	ad.Tick(params.Transform{Scale: 0.5})
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0.5), ad.Root().Pose.Scale)
}

func TestTickRotationAccumulates(t *testing.T) {
	ad := mounted(t)
	const r = float32(0.003)
	const k = 200
	for i := range k {
		// position and scale changes must not affect yaw
		ad.Tick(params.Transform{PositionX: float32(i % 7), Scale: 0.01 + float32(i%3)*0.2, RotationSpeed: r})
	}
	assert.InDelta(t, k*r, ad.Yaw(), 1e-4)

	before := ad.Yaw()
	ad.Tick(params.Transform{Scale: 0.5, RotationSpeed: 0})
	ad.Tick(params.Transform{Scale: 0.5, RotationSpeed: 0})
	assert.Equal(t, before, ad.Yaw())
}

func TestScenario(t *testing.T) {
	ad := mounted(t)
	ad.Tick(params.Defaults())
	ad.Tick(params.Defaults())
	yaw := ad.Yaw()
	assert.InDelta(t, 2*0.0002, yaw, 1e-7)

	st := params.NewStore(params.Defaults())
	cur := st.Current()
	cur.PositionY = 10
	cur.Scale = 0.5
	st.Set(cur)
	ad.Tick(st.Current())
	assert.Equal(t, float32(10), ad.Root().Pose.WorldPos().Y)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0.5), ad.Root().Pose.Scale)

	cur.RotationSpeed = 0
	st.Set(cur)
	frozen := ad.Yaw()
	for range 10 {
		ad.Tick(st.Current())
	}
	assert.Equal(t, frozen, ad.Yaw())
}

func TestTickWithoutModel(t *testing.T) {
	ad := &Adapter{}
	assert.NotPanics(t, func() { ad.Tick(params.Defaults()) })
	assert.Zero(t, ad.Yaw())

	ad = mounted(t)
	ad.Unmount()
	assert.Nil(t, ad.Root())
	assert.NotPanics(t, func() { ad.Tick(params.Defaults()) })
}

func loader(t *testing.T, fsys fstest.MapFS) *asset.Loader {
	return asset.NewLoader(asset.NewProvider(fsys), "tokyo.glb")
}

func TestSlotLifecycle(t *testing.T) {
	b, err := os.ReadFile("../asset/testdata/city.glb")
	require.NoError(t, err)
	ld := loader(t, fstest.MapFS{"tokyo.glb": {Data: b}})
	sl := NewSlot(ld)

	// before the asset resolves nothing is mounted and nothing panics
	assert.Equal(t, asset.Loading, sl.State())
	assert.False(t, sl.Tick(params.Defaults()))
	assert.False(t, sl.Mounted())

	mounts := 0
	sl.OnMount(func(*Slot) { mounts++ })

	ld.Start(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, ld.Wait(ctx))

	assert.True(t, sl.Tick(params.Defaults()))
	assert.True(t, sl.Tick(params.Defaults()))
	assert.Equal(t, 1, mounts)
	assert.True(t, sl.Mounted())

	root := sl.Adapter.Root()
	require.NotNil(t, root)
	meshes := root.Meshes()
	assert.Len(t, meshes, 2)
	for _, m := range meshes {
		assert.True(t, m.CastShadow)
		assert.True(t, m.ReceiveShadow)
	}
	assert.Equal(t, math32.Vec3(0.1, 0.1, 0.1), root.Pose.Scale)

	sl.Unmount()
	assert.False(t, sl.Mounted())
	assert.Nil(t, sl.Adapter.Root())
}

func TestSlotFailed(t *testing.T) {
	ld := loader(t, fstest.MapFS{})
	sl := NewSlot(ld)
	ld.Start(context.Background())
	<-ld.Done()
	assert.Equal(t, asset.Failed, sl.State())
	assert.Error(t, sl.Err())
	assert.False(t, sl.Tick(params.Defaults()))
	assert.False(t, sl.Mounted())
}
