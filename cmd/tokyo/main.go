// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tokyo is a 3D viewer for a model of Tokyo, with a panel that
// moves, scales and spins the model. It can also build the static
// deployable directory and serve it during development.
package main

import (
	"context"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/xyz/xyzcore"
	"tokyo3d/asset"
	"tokyo3d/config"
	"tokyo3d/devserver"
	"tokyo3d/model"
	"tokyo3d/params"
	"tokyo3d/render"
	"tokyo3d/shell"
)

type cmd = cli.Cmd[*config.Config]

func main() {
	opts := cli.DefaultOptions("tokyo", "Explore a model of Tokyo in 3D.")
	opts.DefaultFiles = []string{config.File}
	cli.Run(opts, &config.Config{},
		&cmd{Func: Run, Name: "run", Doc: "run opens the viewer", Root: true},
		&cmd{Func: devserver.Build, Name: "build", Doc: "build compiles the app for the web and stages it with the public assets into the output directory"},
		&cmd{Func: devserver.Serve, Name: "serve", Doc: "serve builds and serves the app under its base path, reloading on change"},
	)
}

// Run opens the viewer window and blocks until it is closed.
func Run(c *config.Config) error {
	app := shell.New(c)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tr := params.Defaults()
	if c.Params != "" {
		if t, err := params.OpenFile(c.Params); errors.Log(err) == nil {
			tr = t
		}
	}
	store := params.NewStore(tr)
	fsys, err := assets(c)
	if err != nil {
		return err
	}
	ld := asset.NewLoader(asset.NewProvider(fsys), c.Asset)
	slot := model.NewSlot(ld)

	b := core.NewBody(c.Name)
	sp := core.NewSplits(b)

	panel := core.NewFrame(sp)
	panel.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	core.NewText(panel).SetType(core.TextTitleMedium).SetText(app.PanelLabel)
	form := core.NewForm(panel).SetStruct(&tr)
	form.OnChange(func(e events.Event) {
		commit(&tr, store, func() { form.Update() })
	})

	view := core.NewFrame(sp)
	view.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
	})
	core.NewText(view).SetType(core.TextHeadlineSmall).SetText(app.Overlay.Heading)
	core.NewText(view).SetText(app.Overlay.Text)
	status := core.NewText(view).SetText(app.Overlay.Status(shell.Loading, nil))

	sw := xyzcore.NewScene(view)
	sc := sw.SceneXYZ()
	render.Realize(sc, app)
	sp.SetSplits(.25, .75)

	// the animation is the only goroutine that touches the model and the
	// xyz tree after they are built
	var rm *render.Model
	slot.OnMount(func(sl *model.Slot) {
		rm = render.NewModel(sc, sl.Adapter.Root())
	})
	sw.Animate(func(a *core.Animation) {
		if !slot.Tick(store.Current()) {
			return
		}
		rm.Sync()
		sc.SetNeedsUpdate()
		sw.NeedsRender()
	})

	ld.OnResolve(func(ld *asset.Loader) {
		b.AsyncLock()
		status.SetText(app.Overlay.Status(shell.PhaseOf(slot), ld.Err())).Update()
		b.AsyncUnlock()
	})
	startWatch := sync.OnceFunc(func() {
		go watchParams(ctx, c.Params, b, form, &tr, store)
	})
	b.OnShow(func(e events.Event) {
		ld.Start(ctx)
		if c.Params != "" {
			startWatch()
		}
	})

	b.RunMainWindow()
	return nil
}

// commit clamps tr into the panel ranges, publishes it to store and
// refreshes the form showing it.
func commit(tr *params.Transform, store *params.Store, refresh func()) {
	*tr = tr.Clamp()
	store.Set(*tr)
	refresh()
}

// watchParams commits every valid rewrite of the params file to store
// and shows it in the form.
func watchParams(ctx context.Context, path string, b *core.Body, form *core.Form, tr *params.Transform, store *params.Store) {
	file := params.NewStore(store.Current())
	file.OnChange(func(t params.Transform) {
		b.AsyncLock()
		*tr = t
		store.Set(t)
		form.Update()
		b.AsyncUnlock()
	})
	errors.Log(params.Watch(ctx, path, file))
}
