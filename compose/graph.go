// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compose describes the render graph of the Tokyo scene as plain
// data: the light rig, environment, ground contact shadows, the model
// slot, orbit controls and post-processing. It has no GPU dependency.
package compose

//go:generate core generate

import (
	"image/color"
	"reflect"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// LightKinds are the supported light types.
type LightKinds int32 //enums:enum

const (
	// Ambient light lights every surface evenly.
	Ambient LightKinds = iota

	// Directional light shines parallel rays from Pos toward the origin.
	Directional

	// Point light radiates from Pos and decays with distance.
	Point

	// Spot light is a cone from Pos toward the origin.
	Spot
)

// ShadowFrustum is the orthographic shadow camera of a directional light.
type ShadowFrustum struct {
	MapWidth  int
	MapHeight int
	Near      float32
	Far       float32
	Left      float32
	Right     float32
	Top       float32
	Bottom    float32
}

// Light is one light of the rig.
type Light struct {
	Kind      LightKinds
	Name      string
	Intensity float32
	Pos       math32.Vector3

	// Color defaults to white.
	Color color.RGBA

	// Decay is the distance falloff exponent of point and spot lights.
	Decay float32

	// Angle is the spot cone half-angle in radians.
	Angle float32

	// Penumbra is the fraction of the cone that is softened, in [0, 1].
	Penumbra float32

	CastShadow bool

	// Shadow is set for lights that carry an explicit shadow frustum.
	Shadow *ShadowFrustum
}

// Environment is an image-based lighting preset used as backdrop.
type Environment struct {
	Preset string
}

// ContactShadows is a ground plane that darkens where the model touches.
type ContactShadows struct {
	Pos        math32.Vector3
	Opacity    float32
	Scale      float32
	Blur       float32
	Far        float32
	Resolution int
	Color      color.RGBA
}

// ModelSlot is the place of the model in the graph, rendered behind a
// loading boundary.
type ModelSlot struct {
	Path string

	// Fallback is shown while the model loads. Empty renders nothing.
	Fallback string
}

// OrbitControls is camera orbit interaction around Target.
type OrbitControls struct {
	Target math32.Vector3
}

// Effect is a post-processing pass applied to the rendered frame.
type Effect interface {
	EffectName() string
}

// Bloom is the bloom post-processing pass.
type Bloom struct {
	LuminanceThreshold float32
	LuminanceSmoothing float32

	// Height is the vertical resolution of the blur render target.
	Height int
}

func (b Bloom) EffectName() string { return "bloom" }

// Graph is the full render graph of the scene.
type Graph struct {
	Lights      []Light
	Environment Environment
	Ground      ContactShadows
	Model       ModelSlot
	Orbit       OrbitControls

	// Effects are applied in order.
	Effects []Effect
}

// Inputs are the static inputs of [Compose].
type Inputs struct {

	// ModelPath is the model file relative to the served root.
	ModelPath string
}

// Compose returns the render graph. The rig is fixed: equal inputs
// always give equal graphs, and no state is kept between calls.
func Compose(in Inputs) *Graph {
	return &Graph{
		Lights: []Light{
			{Kind: Ambient, Name: "ambient", Intensity: 0.5, Color: colors.White},
			{
				Kind: Directional, Name: "sun", Intensity: 1.5, Color: colors.White,
				Pos:        math32.Vec3(10, 10, 5),
				CastShadow: true,
				Shadow: &ShadowFrustum{
					MapWidth: 2048, MapHeight: 2048,
					Near: 0.5, Far: 50,
					Left: -20, Right: 20, Top: 20, Bottom: -20,
				},
			},
			{Kind: Point, Name: "fill", Intensity: 0.5, Decay: 0.5, Color: colors.Blue, Pos: math32.Vec3(-10, 0, -20)},
			{
				Kind: Spot, Name: "spot", Intensity: 2, Color: colors.Yellow,
				Pos:   math32.Vec3(0, 15, 0),
				Angle: 0.3, Penumbra: 1, Decay: 2,
				CastShadow: true,
			},
		},
		Environment: Environment{Preset: "city"},
		Ground: ContactShadows{
			Pos:        math32.Vec3(0, -0.5, 0),
			Opacity:    0.75,
			Scale:      60,
			Blur:       2,
			Far:        30,
			Resolution: 1024,
			Color:      colors.Black,
		},
		Model: ModelSlot{Path: in.ModelPath},
		Orbit: OrbitControls{Target: math32.Vector3{}},
		Effects: []Effect{
			Bloom{LuminanceThreshold: 0, LuminanceSmoothing: 0.9, Height: 300},
		},
	}
}

// Equal reports whether g and o describe the same render graph.
func (g *Graph) Equal(o *Graph) bool {
	return reflect.DeepEqual(g, o)
}

// Light returns the light with the given name, or nil.
func (g *Graph) Light(name string) *Light {
	for i := range g.Lights {
		if g.Lights[i].Name == name {
			return &g.Lights[i]
		}
	}
	return nil
}

// Bloom returns the bloom pass, if any.
func (g *Graph) Bloom() (Bloom, bool) {
	for _, e := range g.Effects {
		if b, ok := e.(Bloom); ok {
			return b, true
		}
	}
	return Bloom{}, false
}

// ShadowCasters returns the names of the lights that cast shadows.
func (g *Graph) ShadowCasters() []string {
	var ns []string
	for _, l := range g.Lights {
		if l.CastShadow {
			ns = append(ns, l.Name)
		}
	}
	return ns
}
