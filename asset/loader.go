// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"context"
	"log/slog"
	"sync"

	"tokyo3d/sgraph"
)

// Loader fetches one model in the background and exposes its lifecycle:
// Loading until the fetch resolves, then Ready or Failed. There is no
// retry; a Failed loader stays Failed.
type Loader struct {

	// Provider resolves the model.
	Provider *Provider

	// Path is the model path within the provider's file system.
	Path string

	start sync.Once
	done  chan struct{}

	mu        sync.Mutex
	state     States
	root      *sgraph.Node
	err       error
	onResolve []func(ld *Loader)
}

// NewLoader returns a Loader for path; call Start to begin the fetch.
func NewLoader(p *Provider, path string) *Loader {
	return &Loader{Provider: p, Path: path, done: make(chan struct{})}
}

// Start launches the fetch on its own goroutine. Subsequent calls do nothing.
func (ld *Loader) Start(ctx context.Context) {
	ld.start.Do(func() {
		go ld.run(ctx)
	})
}

func (ld *Loader) run(ctx context.Context) {
	root, err := ld.Provider.Load(ctx, ld.Path)
	ld.mu.Lock()
	if err != nil {
		ld.state = Failed
		ld.err = err
		slog.Error("asset load failed", "path", ld.Path, "err", err)
	} else {
		ld.state = Ready
		ld.root = root
	}
	fs := ld.onResolve
	ld.onResolve = nil
	ld.mu.Unlock()
	close(ld.done)
	for _, f := range fs {
		f(ld)
	}
}

// State returns the current lifecycle state.
func (ld *Loader) State() States {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.state
}

// Root returns the loaded scene graph, or nil unless Ready.
func (ld *Loader) Root() *sgraph.Node {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.root
}

// Err returns the load error, or nil unless Failed.
func (ld *Loader) Err() error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.err
}

// Done returns a channel closed when the loader leaves Loading.
func (ld *Loader) Done() <-chan struct{} {
	return ld.done
}

// Wait blocks until the loader resolves or ctx is done,
// and returns the load error if any.
func (ld *Loader) Wait(ctx context.Context) error {
	select {
	case <-ld.done:
		return ld.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnResolve registers f to run once the loader leaves Loading, on the
// loading goroutine. If it already resolved, f runs immediately.
func (ld *Loader) OnResolve(f func(ld *Loader)) {
	ld.mu.Lock()
	if ld.state == Loading {
		ld.onResolve = append(ld.onResolve, f)
		ld.mu.Unlock()
		return
	}
	ld.mu.Unlock()
	f(ld)
}
