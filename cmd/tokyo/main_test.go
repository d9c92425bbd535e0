// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tokyo3d/config"
	"tokyo3d/params"
)

func TestCommitClamps(t *testing.T) {
	store := params.NewStore(params.Defaults())
	tr := params.Transform{PositionX: 99, PositionY: -99, Scale: 5, RotationSpeed: -1}
	refreshed := 0
	commit(&tr, store, func() {
		refreshed++
		// the form is refreshed with the clamped value already in place
		assert.Equal(t, tr, store.Current())
	})
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, params.Transform{PositionX: 30, PositionY: -30, Scale: 1, RotationSpeed: 0}, tr)
	assert.Equal(t, tr, store.Current())
}

func TestAssetsFromPublic(t *testing.T) {
	fsys, err := assets(&config.Config{Public: "../../asset/testdata"})
	assert.NoError(t, err)
	b, err := fsys.Open("city.glb")
	if assert.NoError(t, err) {
		b.Close()
	}
}
