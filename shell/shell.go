// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell assembles the static parts of the app: the canvas and
// camera, the overlay text, the render graph and the parameter panel.
package shell

//go:generate core generate

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"tokyo3d/asset"
	"tokyo3d/compose"
	"tokyo3d/config"
	"tokyo3d/model"
	"tokyo3d/params"
)

// Camera is the initial perspective camera.
type Camera struct {
	Pos math32.Vector3

	// Target is the point the camera looks at, and orbits around.
	Target math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	Near, Far float32
}

// Canvas is the drawing surface of the scene.
type Canvas struct {
	Shadows    bool
	Camera     Camera
	Background color.RGBA
}

// Overlay is the informational text drawn over the canvas.
// It does not react to input.
type Overlay struct {
	Heading string
	Text    string
}

// App is the whole application.
type App struct {
	Canvas  Canvas
	Overlay Overlay
	Graph   *compose.Graph

	// PanelLabel is the title of the parameter panel.
	PanelLabel string

	// Panel is the ordered list of panel controls.
	Panel []params.Range
}

// New returns the app for cfg. Everything but the model path is fixed.
func New(cfg *config.Config) *App {
	return &App{
		Canvas: Canvas{
			Shadows: true,
			Camera: Camera{
				Pos:  math32.Vec3(0, 8, 25),
				FOV:  45,
				Near: 0.1,
				Far:  1000,
			},
			Background: colors.Black,
		},
		Overlay: Overlay{
			Heading: "Explore Tokyo in 3D!",
			Text:    "Drag to orbit, scroll to zoom. Use the parameter panel to adjust the Tokyo model's position.",
		},
		Graph:      compose.Compose(compose.Inputs{ModelPath: cfg.Asset}),
		PanelLabel: params.GroupLabel,
		Panel:      params.Ranges,
	}
}

// Phases are the lifecycle phases of the app.
type Phases int32 //enums:enum

const (
	// Unmounted is before the model slot exists and after it is dropped.
	Unmounted Phases = iota

	// Loading is while the model is fetched and decoded.
	Loading

	// Ready is while the model is mounted and ticking.
	Ready

	// Failed is when the model could not be loaded.
	Failed
)

// PhaseOf returns the phase of the app for the given model slot.
func PhaseOf(sl *model.Slot) Phases {
	if sl == nil || sl.Loader == nil {
		return Unmounted
	}
	switch sl.State() {
	case asset.Ready:
		return Ready
	case asset.Failed:
		return Failed
	}
	return Loading
}

// Status returns the overlay status line for phase p; empty when there
// is nothing to report.
func (o Overlay) Status(p Phases, err error) string {
	switch p {
	case Loading:
		return "Loading model..."
	case Failed:
		if err == nil {
			return "The model could not be loaded."
		}
		return fmt.Sprintf("The model could not be loaded: %v", err)
	}
	return ""
}
