// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration information for the tokyo tool.
package config

import (
	"path"
	"strings"
)

// File is the name of the config file read from the working directory.
const File = "tokyo.toml"

// Config is the configuration information for the tokyo tool.
type Config struct {

	// Name is the name of the app.
	Name string `default:"three-js-app"`

	// BasePath is the URL path the app is deployed under.
	// It must begin and end with a slash.
	BasePath string `default:"/three-js-app/"`

	// Public is the directory of static assets served at the base path.
	Public string `default:"public"`

	// Asset is the model file, relative to Public.
	Asset string `default:"tokyo.glb"`

	// Params is an optional TOML file of panel values. When set, the
	// file is watched and every valid rewrite updates the model.
	Params string `flag:"p,params"`

	// Build is the configuration for the build command.
	Build Build `cmd:"build,serve"`

	// Web is the configuration for the serve command.
	Web Web `cmd:"serve"`
}

type Build struct {

	// Output is the directory the deployable app is written to.
	Output string `default:"dist" flag:"o,output"`

	// Package is the main package compiled to app.wasm in Output.
	// When empty, only the static files are staged.
	Package string `default:"./cmd/tokyo"`
}

type Web struct {

	// Port is the port to serve on.
	Port string `default:"8080"`
}

// Base returns BasePath in canonical form: rooted, cleaned, with a
// trailing slash.
func (c *Config) Base() string {
	b := path.Clean("/" + strings.Trim(c.BasePath, "/"))
	if b == "/" {
		return b
	}
	return b + "/"
}

// AssetURL returns the URL path of the model under the base path.
func (c *Config) AssetURL() string {
	return c.Base() + strings.TrimPrefix(c.Asset, "/")
}
