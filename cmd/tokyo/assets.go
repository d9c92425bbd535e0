// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package main

import (
	"io/fs"
	"os"

	"tokyo3d/config"
)

// assets returns the file system the model is loaded from: the public
// directory on disk.
func assets(c *config.Config) (fs.FS, error) {
	return os.DirFS(c.Public), nil
}
