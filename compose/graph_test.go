// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compose

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var in = Inputs{ModelPath: "tokyo.glb"}

func TestComposeIdempotent(t *testing.T) {
	a := Compose(in)
	b := Compose(in)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(Compose(in)))

	// results do not alias each other
	b.Lights[1].Shadow.Far = 100
	assert.False(t, a.Equal(b))
	assert.Equal(t, float32(50), Compose(in).Lights[1].Shadow.Far)

	assert.False(t, a.Equal(Compose(Inputs{ModelPath: "osaka.glb"})))
}

func TestLightRig(t *testing.T) {
	g := Compose(in)
	require.Len(t, g.Lights, 4)
	kinds := make([]LightKinds, len(g.Lights))
	for i, l := range g.Lights {
		kinds[i] = l.Kind
	}
	assert.Equal(t, []LightKinds{Ambient, Directional, Point, Spot}, kinds)

	amb := g.Light("ambient")
	require.NotNil(t, amb)
	assert.Equal(t, float32(0.5), amb.Intensity)
	assert.False(t, amb.CastShadow)

	sun := g.Light("sun")
	require.NotNil(t, sun)
	assert.Equal(t, math32.Vec3(10, 10, 5), sun.Pos)
	assert.Equal(t, float32(1.5), sun.Intensity)
	assert.True(t, sun.CastShadow)
	require.NotNil(t, sun.Shadow)
	assert.Equal(t, ShadowFrustum{
		MapWidth: 2048, MapHeight: 2048, Near: 0.5, Far: 50,
		Left: -20, Right: 20, Top: 20, Bottom: -20,
	}, *sun.Shadow)

	fill := g.Light("fill")
	require.NotNil(t, fill)
	assert.Equal(t, math32.Vec3(-10, 0, -20), fill.Pos)
	assert.Equal(t, float32(0.5), fill.Intensity)
	assert.Equal(t, float32(0.5), fill.Decay)
	assert.Equal(t, colors.Blue, fill.Color)

	spot := g.Light("spot")
	require.NotNil(t, spot)
	assert.Equal(t, math32.Vec3(0, 15, 0), spot.Pos)
	assert.Equal(t, float32(0.3), spot.Angle)
	assert.Equal(t, float32(1), spot.Penumbra)
	assert.Equal(t, float32(2), spot.Intensity)
	assert.Equal(t, colors.Yellow, spot.Color)

	assert.Equal(t, []string{"sun", "spot"}, g.ShadowCasters())
	assert.Nil(t, g.Light("moon"))
}

func TestStaticParts(t *testing.T) {
	g := Compose(in)
	assert.Equal(t, "city", g.Environment.Preset)
	assert.Equal(t, ContactShadows{
		Pos: math32.Vec3(0, -0.5, 0), Opacity: 0.75, Scale: 60, Blur: 2,
		Far: 30, Resolution: 1024, Color: colors.Black,
	}, g.Ground)
	assert.Equal(t, ModelSlot{Path: "tokyo.glb"}, g.Model)
	assert.Equal(t, math32.Vector3{}, g.Orbit.Target)

	b, ok := g.Bloom()
	require.True(t, ok)
	assert.Equal(t, Bloom{LuminanceThreshold: 0, LuminanceSmoothing: 0.9, Height: 300}, b)
	assert.Equal(t, "bloom", b.EffectName())
}

func TestLightKindsString(t *testing.T) {
	assert.Equal(t, "Spot", Spot.String())
	var k LightKinds
	require.NoError(t, k.SetString("Directional"))
	assert.Equal(t, Directional, k)
	assert.Len(t, LightKindsValues(), int(LightKindsN))
}
