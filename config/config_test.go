// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"cogentcore.org/core/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	assert.Equal(t, "three-js-app", c.Name)
	assert.Equal(t, "/three-js-app/", c.BasePath)
	assert.Equal(t, "public", c.Public)
	assert.Equal(t, "tokyo.glb", c.Asset)
	assert.Empty(t, c.Params)
	assert.Equal(t, "dist", c.Build.Output)
	assert.Equal(t, "./cmd/tokyo", c.Build.Package)
	assert.Equal(t, "8080", c.Web.Port)
	assert.Equal(t, "/three-js-app/tokyo.glb", c.AssetURL())
}

func TestBase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/three-js-app/", "/three-js-app/"},
		{"three-js-app", "/three-js-app/"},
		{"/a//b/", "/a/b/"},
		{"", "/"},
		{"/", "/"},
	}
	for _, test := range tests {
		c := &Config{BasePath: test.in}
		assert.Equal(t, test.want, c.Base(), test.in)
	}
}
