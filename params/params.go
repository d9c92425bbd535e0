// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params holds the live-tunable model transform: the five numeric
// controls of the "Tokyo Model" panel, their declared ranges, and a store
// that hands the latest committed value to the render loop.
package params

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

// GroupLabel is the label of the panel group holding the controls.
const GroupLabel = "Tokyo Model"

// Transform is one committed set of panel values. It is a plain value:
// readers get a copy, and the render loop never sees a partial update.
type Transform struct {

	// PositionX is the model world position on the X axis.
	PositionX float32 `toml:"positionX" default:"0" min:"-30" max:"30" step:"0.1"`

	// PositionY is the model world position on the Y axis.
	PositionY float32 `toml:"positionY" default:"0" min:"-30" max:"30" step:"0.1"`

	// PositionZ is the model world position on the Z axis.
	PositionZ float32 `toml:"positionZ" default:"0" min:"-30" max:"30" step:"0.1"`

	// Scale is the uniform scale applied to all three axes.
	Scale float32 `toml:"modelScale" label:"Model scale" default:"0.1" min:"0.01" max:"1" step:"0.01"`

	// RotationSpeed is the yaw increment, in radians, added every frame.
	RotationSpeed float32 `toml:"rotationSpeed" default:"0.0002" min:"0" max:"0.01" step:"0.00001"`
}

// Range is the declared domain of one control.
type Range struct {
	Name    string
	Default float32
	Min     float32
	Max     float32
	Step    float32

	field int
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to [Min, Max].
func (r Range) Clamp(v float32) float32 {
	return min(max(v, r.Min), r.Max)
}

// Ranges lists the controls in panel order. It is read from the struct
// tags of [Transform], so the form widgets and validation share one source.
var Ranges = rangesFromTags()

func rangesFromTags() []Range {
	typ := reflect.TypeFor[Transform]()
	rs := make([]Range, 0, typ.NumField())
	for i := range typ.NumField() {
		f := typ.Field(i)
		rs = append(rs, Range{
			Name:    f.Tag.Get("toml"),
			Default: tagFloat(f, "default"),
			Min:     tagFloat(f, "min"),
			Max:     tagFloat(f, "max"),
			Step:    tagFloat(f, "step"),
			field:   i,
		})
	}
	return rs
}

func tagFloat(f reflect.StructField, key string) float32 {
	v, err := strconv.ParseFloat(f.Tag.Get(key), 32)
	if err != nil {
		panic(fmt.Sprintf("params: bad %s tag on %s: %v", key, f.Name, err))
	}
	return float32(v)
}

// RangeOf returns the range of the named control.
func RangeOf(name string) (Range, bool) {
	for _, r := range Ranges {
		if r.Name == name {
			return r, true
		}
	}
	return Range{}, false
}

// Defaults returns the panel's initial values.
func Defaults() Transform {
	var t Transform
	if err := reflectx.SetFromDefaultTags(&t); err != nil {
		panic(err)
	}
	return t
}

func (t *Transform) fields() []*float32 {
	return []*float32{&t.PositionX, &t.PositionY, &t.PositionZ, &t.Scale, &t.RotationSpeed}
}

// Validate returns an error naming every control that is out of range.
func (t Transform) Validate() error {
	fs := t.fields()
	var errs []error
	for _, r := range Ranges {
		if v := *fs[r.field]; !r.Contains(v) {
			errs = append(errs, fmt.Errorf("%s = %g is outside [%g, %g]", r.Name, v, r.Min, r.Max))
		}
	}
	return errors.Join(errs...)
}

// Clamp returns a copy of t with every control limited to its range.
func (t Transform) Clamp() Transform {
	fs := t.fields()
	for _, r := range Ranges {
		*fs[r.field] = r.Clamp(*fs[r.field])
	}
	return t
}
