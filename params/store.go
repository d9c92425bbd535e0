// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"sync"
	"sync/atomic"
)

// Source supplies the Transform to apply on a frame tick.
type Source interface {
	Current() Transform
}

// Store is a [Source] holding the latest committed Transform.
// Set may be called from any goroutine (GUI events, file watcher);
// Current always returns a complete value that was passed to Set.
type Store struct {
	cur atomic.Pointer[Transform]

	mu        sync.Mutex
	listeners []func(Transform)
}

// NewStore returns a Store whose current value is t.
func NewStore(t Transform) *Store {
	st := &Store{}
	st.cur.Store(&t)
	return st
}

// Current returns the latest committed Transform.
func (st *Store) Current() Transform {
	return *st.cur.Load()
}

// Set commits t and notifies OnChange listeners.
func (st *Store) Set(t Transform) {
	st.cur.Store(&t)
	st.mu.Lock()
	ls := st.listeners
	st.mu.Unlock()
	for _, f := range ls {
		f(t)
	}
}

// OnChange registers f to be called with every committed value.
func (st *Store) OnChange(f func(Transform)) {
	st.mu.Lock()
	st.listeners = append(st.listeners, f)
	st.mu.Unlock()
}
