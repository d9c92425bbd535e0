// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"tokyo3d/asset"
	"tokyo3d/params"
)

// Slot is the model behind its loading boundary. Until the loader is
// Ready nothing is mounted and ticks render nothing; a Failed load is
// reported through State and Err rather than left pending.
type Slot struct {
	Loader *asset.Loader

	// Adapter is mounted on the first tick after the loader is Ready.
	Adapter Adapter

	mounted bool
	mountFn []func(*Slot)
}

// NewSlot returns a Slot over ld.
func NewSlot(ld *asset.Loader) *Slot {
	return &Slot{Loader: ld}
}

// OnMount registers f to run on the render goroutine right after the
// model is mounted.
func (sl *Slot) OnMount(f func(sl *Slot)) {
	sl.mountFn = append(sl.mountFn, f)
}

// State returns the loader state.
func (sl *Slot) State() asset.States {
	return sl.Loader.State()
}

// Err returns the load error when Failed.
func (sl *Slot) Err() error {
	return sl.Loader.Err()
}

// Mounted reports whether the model is mounted.
func (sl *Slot) Mounted() bool {
	return sl.mounted
}

// Tick mounts the model if it has just become Ready, then applies t.
// It returns true if a model was updated.
func (sl *Slot) Tick(t params.Transform) bool {
	if !sl.mounted {
		if sl.Loader.State() != asset.Ready {
			return false
		}
		if err := sl.Adapter.Mount(sl.Loader.Root()); err != nil {
			return false
		}
		sl.mounted = true
		for _, f := range sl.mountFn {
			f(sl)
		}
	}
	sl.Adapter.Tick(t)
	return true
}

// Unmount drops the model. A later Tick mounts it again from the loader.
func (sl *Slot) Unmount() {
	sl.Adapter.Unmount()
	sl.mounted = false
}
