// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tokyo3d/asset"
	"tokyo3d/compose"
	"tokyo3d/config"
	"tokyo3d/model"
	"tokyo3d/params"
)

func newApp(t *testing.T) *App {
	cfg := &config.Config{}
	require.NoError(t, cli.SetFromDefaults(cfg))
	return New(cfg)
}

func TestNew(t *testing.T) {
	a := newApp(t)
	assert.True(t, a.Canvas.Shadows)
	assert.Equal(t, math32.Vec3(0, 8, 25), a.Canvas.Camera.Pos)
	assert.Equal(t, float32(45), a.Canvas.Camera.FOV)
	assert.Equal(t, math32.Vector3{}, a.Canvas.Camera.Target)
	assert.Equal(t, colors.Black, a.Canvas.Background)

	assert.Equal(t, "Explore Tokyo in 3D!", a.Overlay.Heading)
	assert.Contains(t, a.Overlay.Text, "Drag to orbit, scroll to zoom.")

	assert.True(t, a.Graph.Equal(compose.Compose(compose.Inputs{ModelPath: "tokyo.glb"})))

	assert.Equal(t, "Tokyo Model", a.PanelLabel)
	names := make([]string, len(a.Panel))
	for i, r := range a.Panel {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"positionX", "positionY", "positionZ", "modelScale", "rotationSpeed"}, names)

	assert.True(t, newApp(t).Graph.Equal(a.Graph))
}

func TestPhaseOf(t *testing.T) {
	assert.Equal(t, Unmounted, PhaseOf(nil))
	assert.Equal(t, Unmounted, PhaseOf(&model.Slot{}))

	b, err := os.ReadFile("../asset/testdata/city.glb")
	require.NoError(t, err)
	ld := asset.NewLoader(asset.NewProvider(fstest.MapFS{"tokyo.glb": {Data: b}}), "tokyo.glb")
	sl := model.NewSlot(ld)
	assert.Equal(t, Loading, PhaseOf(sl))
	ld.Start(context.Background())
	<-ld.Done()
	assert.Equal(t, Ready, PhaseOf(sl))
	assert.True(t, sl.Tick(params.Defaults()))

	bad := asset.NewLoader(asset.NewProvider(fstest.MapFS{}), "tokyo.glb")
	bsl := model.NewSlot(bad)
	bad.Start(context.Background())
	<-bad.Done()
	assert.Equal(t, Failed, PhaseOf(bsl))
}

func TestStatus(t *testing.T) {
	o := newApp(t).Overlay
	assert.Empty(t, o.Status(Ready, nil))
	assert.Empty(t, o.Status(Unmounted, nil))
	assert.NotEmpty(t, o.Status(Loading, nil))
	assert.Contains(t, o.Status(Failed, errors.New("no such file")), "no such file")
	assert.NotEmpty(t, o.Status(Failed, nil))
}

func TestPhasesString(t *testing.T) {
	assert.Equal(t, "Failed", Failed.String())
	assert.Len(t, PhasesValues(), int(PhasesN))
}
