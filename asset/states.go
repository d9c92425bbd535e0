// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

//go:generate core generate

// States are the lifecycle states of an asynchronously loaded asset.
type States int32 //enums:enum

const (
	// Loading means the fetch/decode is in flight; nothing is rendered.
	Loading States = iota

	// Ready means the scene graph is available.
	Ready

	// Failed means the fetch or decode returned an error.
	Failed
)
