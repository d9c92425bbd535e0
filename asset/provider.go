// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset resolves model files from the served root into scene
// graphs, and tracks the loading lifecycle of a single model.
package asset

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"tokyo3d/sgraph"
)

// Provider loads binary glTF files from a file system.
// Decoded scene graphs are cached by path; every Load returns a
// fresh clone, so callers own the returned tree.
type Provider struct {

	// FS is the served root that paths are resolved against.
	FS fs.FS

	mu    sync.Mutex
	cache map[string]*sgraph.Node
}

// NewProvider returns a Provider reading from fsys.
func NewProvider(fsys fs.FS) *Provider {
	return &Provider{FS: fsys, cache: map[string]*sgraph.Node{}}
}

// Load returns the scene graph of the model at path.
func (p *Provider) Load(ctx context.Context, path string) (*sgraph.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	root, ok := p.cache[path]
	p.mu.Unlock()
	if ok {
		return root.Clone(), nil
	}

	st := time.Now()
	b, err := fs.ReadFile(p.FS, path)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	root, err = Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slog.Info("asset decoded", "path", path, "bytes", len(b), "nodes", root.Count(), "meshes", len(root.Meshes()), "took", time.Since(st))

	p.mu.Lock()
	p.cache[path] = root
	p.mu.Unlock()
	return root.Clone(), nil
}

// Forget drops the cached scene graph of path.
func (p *Provider) Forget(path string) {
	p.mu.Lock()
	delete(p.cache, path)
	p.mu.Unlock()
}
