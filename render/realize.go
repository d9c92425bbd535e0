// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render maps the app and its render graph onto a Cogent Core
// [xyz.Scene].
package render

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"tokyo3d/compose"
	"tokyo3d/shell"
)

// FullIntensity is the light intensity that maps to full xyz lumens.
const FullIntensity = 2

// GroundName is the name of the contact-shadow solid.
const GroundName = "contact-shadows"

// Presets maps environment presets to the tint and strength of the
// ambient light that stands in for them.
var Presets = map[string]struct {
	Color  xyz.LightColors
	Lumens float32
}{
	"city":      {xyz.Overcast, 0.3},
	"sunset":    {xyz.Tungsten40W, 0.3},
	"dawn":      {xyz.Halogen, 0.2},
	"night":     {xyz.FluorCool, 0.1},
	"warehouse": {xyz.FluorStd, 0.3},
	"studio":    {xyz.DirectSun, 0.4},
}

// Realize sets up sc for app: camera, background, lights, environment
// and ground. The model is added separately with [NewModel] once it
// has loaded.
func Realize(sc *xyz.Scene, app *shell.App) {
	cam := app.Canvas.Camera
	sc.Background = colors.Uniform(app.Canvas.Background)
	sc.Camera.FOV = cam.FOV
	sc.Camera.Near = cam.Near
	sc.Camera.Far = cam.Far
	sc.Camera.Pose.Pos = cam.Pos
	sc.Camera.LookAt(app.Graph.Orbit.Target, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")

	g := app.Graph
	for _, l := range g.Lights {
		addLight(sc, l)
	}
	if p, ok := Presets[g.Environment.Preset]; ok {
		xyz.NewAmbient(sc, "environment", p.Lumens, p.Color)
	} else {
		slog.Warn("render: unknown environment preset", "preset", g.Environment.Preset)
	}
	addGround(sc, g.Ground)

	// xyz has no shadow maps or post-processing
	if app.Canvas.Shadows {
		slog.Info("render: shadows are not drawn", "casters", g.ShadowCasters())
	}
	slog.Info("render: contact shadows drawn without blur", "blur", g.Ground.Blur, "resolution", g.Ground.Resolution)
	for _, e := range g.Effects {
		slog.Info("render: effect is not drawn", "effect", e.EffectName())
	}
	sc.SetNeedsUpdate()
}

// Lumens converts a light intensity to normalized xyz lumens.
func Lumens(intensity float32) float32 {
	return math32.Clamp(intensity/FullIntensity, 0, 1)
}

// Decay converts a distance falloff exponent to xyz linear and
// quadratic decay factors. Exponents up to 1 are linear.
func Decay(exp float32) (lin, quad float32) {
	if exp <= 1 {
		return 0.1 * max(exp, 0), 0
	}
	return 0.1, 0.01 * (exp - 1)
}

// CutoffAngle converts a spot half-angle in radians to xyz degrees.
func CutoffAngle(rad float32) float32 {
	return math32.Clamp(math32.RadToDeg(rad), 1, 90)
}

// AngularDecay converts a spot penumbra fraction to xyz angular decay:
// a hard edge for 0 and the softest falloff for 1.
func AngularDecay(penumbra float32) float32 {
	return 1 + 14*(1-math32.Clamp(penumbra, 0, 1))
}

func addLight(sc *xyz.Scene, l compose.Light) {
	var lb *xyz.LightBase
	lm := Lumens(l.Intensity)
	switch l.Kind {
	case compose.Ambient:
		lt := xyz.NewAmbient(sc, l.Name, lm, xyz.DirectSun)
		lb = lt.AsLightBase()
	case compose.Directional:
		lt := xyz.NewDirectional(sc, l.Name, lm, xyz.DirectSun)
		lt.Pos = l.Pos
		lb = lt.AsLightBase()
	case compose.Point:
		lt := xyz.NewPoint(sc, l.Name, lm, xyz.DirectSun)
		lt.Pos = l.Pos
		lt.LinDecay, lt.QuadDecay = Decay(l.Decay)
		lb = lt.AsLightBase()
	case compose.Spot:
		lt := xyz.NewSpot(sc, l.Name, lm, xyz.DirectSun)
		lt.Pose.Pos = l.Pos
		lt.LookAtOrigin()
		lt.CutoffAngle = CutoffAngle(l.Angle)
		lt.AngDecay = AngularDecay(l.Penumbra)
		lt.LinDecay, lt.QuadDecay = Decay(l.Decay)
		lb = lt.AsLightBase()
	default:
		slog.Warn("render: unknown light kind", "kind", l.Kind)
		return
	}
	if l.Color != (color.RGBA{}) {
		lb.Color = l.Color
	}
}

func addGround(sc *xyz.Scene, cs compose.ContactShadows) {
	pm := xyz.NewPlane(sc, GroundName, cs.Scale, cs.Scale)
	sld := xyz.NewSolid(sc)
	sld.SetName(GroundName)
	clr := cs.Color
	clr.A = uint8(math32.Round(255 * math32.Clamp(cs.Opacity, 0, 1)))
	sld.SetMesh(pm).SetColor(clr).SetPos(cs.Pos.X, cs.Pos.Y, cs.Pos.Z)
}
