// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, Transform{Scale: 0.1, RotationSpeed: 0.0002}, d)
	assert.NoError(t, d.Validate())
}

func TestRanges(t *testing.T) {
	want := []struct {
		name                    string
		def, min, max, stepSize float32
	}{
		{"positionX", 0, -30, 30, 0.1},
		{"positionY", 0, -30, 30, 0.1},
		{"positionZ", 0, -30, 30, 0.1},
		{"modelScale", 0.1, 0.01, 1, 0.01},
		{"rotationSpeed", 0.0002, 0, 0.01, 0.00001},
	}
	require.Len(t, Ranges, len(want))
	for i, w := range want {
		r := Ranges[i]
		assert.Equal(t, w.name, r.Name)
		assert.Equal(t, w.def, r.Default, w.name)
		assert.Equal(t, w.min, r.Min, w.name)
		assert.Equal(t, w.max, r.Max, w.name)
		assert.Equal(t, w.stepSize, r.Step, w.name)
	}

	r, ok := RangeOf("modelScale")
	assert.True(t, ok)
	assert.Equal(t, float32(0.01), r.Min)
	_, ok = RangeOf("nope")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tr := Transform{PositionX: 31, PositionY: -30, Scale: 0, RotationSpeed: 0.02}
	err := tr.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positionX")
	assert.Contains(t, err.Error(), "modelScale")
	assert.Contains(t, err.Error(), "rotationSpeed")
	assert.NotContains(t, err.Error(), "positionY")

	assert.NoError(t, Transform{Scale: 0.01}.Validate())
	assert.NoError(t, Transform{Scale: 1, RotationSpeed: 0.01}.Validate())
}

func TestClamp(t *testing.T) {
	tr := Transform{PositionX: 100, PositionY: -100, PositionZ: 5, Scale: 3, RotationSpeed: -1}
	c := tr.Clamp()
	assert.Equal(t, Transform{PositionX: 30, PositionY: -30, PositionZ: 5, Scale: 1, RotationSpeed: 0}, c)
	assert.NoError(t, c.Validate())
	assert.Equal(t, float32(100), tr.PositionX, "Clamp must not modify the receiver")
}

func TestStore(t *testing.T) {
	st := NewStore(Defaults())
	assert.Equal(t, Defaults(), st.Current())

	var got []Transform
	st.OnChange(func(tr Transform) { got = append(got, tr) })
	next := Transform{PositionY: 10, Scale: 0.5}
	st.Set(next)
	assert.Equal(t, next, st.Current())
	assert.Equal(t, []Transform{next}, got)
}

func TestStoreConcurrent(t *testing.T) {
	st := NewStore(Defaults())
	a := Transform{PositionX: 1, PositionY: 1, PositionZ: 1, Scale: 1}
	b := Transform{PositionX: 2, PositionY: 2, PositionZ: 2, Scale: 0.5}
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 500 {
				if (i+j)%2 == 0 {
					st.Set(a)
				} else {
					st.Set(b)
				}
			}
		}()
	}
	for range 2000 {
		cur := st.Current()
		if cur != a && cur != b && cur != Defaults() {
			t.Fatalf("torn read: %+v", cur)
		}
	}
	wg.Wait()
}

func TestParse(t *testing.T) {
	tr, err := Parse([]byte("positionY = 10.0\nmodelScale = 0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, Transform{PositionY: 10, Scale: 0.5, RotationSpeed: 0.0002}, tr)

	_, err = Parse([]byte("modelScale = 5.0\n"))
	assert.ErrorContains(t, err, "modelScale")

	_, err = Parse([]byte("positionX = ["))
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.toml")
	require.NoError(t, os.WriteFile(path, []byte("positionX = 1.0\n"), 0o644))

	st := NewStore(Defaults())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, st) }()

	assert.Eventually(t, func() bool { return st.Current().PositionX == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("positionX = 2.0\npositionZ = -4.0\n"), 0o644))
	assert.Eventually(t, func() bool { return st.Current().PositionZ == -4 }, 5*time.Second, 10*time.Millisecond)

	// invalid rewrite keeps the last good value
	require.NoError(t, os.WriteFile(path, []byte("positionX = 99.0\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, float32(2), st.Current().PositionX)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
