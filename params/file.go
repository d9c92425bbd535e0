// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// OpenFile reads a TOML params file over the defaults and validates it.
// Keys are the control names, e.g. positionY = 10.0.
func OpenFile(path string) (Transform, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Transform{}, err
	}
	return Parse(b)
}

// Parse decodes TOML params over the defaults and validates the result.
func Parse(b []byte) (Transform, error) {
	t := Defaults()
	if err := toml.Unmarshal(b, &t); err != nil {
		return Transform{}, fmt.Errorf("params: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Transform{}, fmt.Errorf("params: %w", err)
	}
	return t, nil
}

// Watch commits the contents of the params file at path into st, first
// immediately and then every time the file is written, until ctx is done.
// A rewrite that fails to parse or validate is logged and the previous
// value is kept.
func Watch(ctx context.Context, path string, st *Store) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors often replace the file, so watch the directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	reload := func() {
		t, err := OpenFile(path)
		if errors.Log(err) != nil {
			return
		}
		slog.Debug("params reloaded", "file", path, "transform", t)
		st.Set(t)
	}
	reload()

	name := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			reload()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
