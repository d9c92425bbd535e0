// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/h2non/filetype"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"tokyo3d/sgraph"
)

// ErrNotGLB is returned for files that are not binary glTF.
var ErrNotGLB = errors.New("asset: not a binary glTF file")

// ErrBadIndex is returned for primitives whose indices address
// vertices the primitive does not have.
var ErrBadIndex = errors.New("asset: index out of range")

// DefaultColor is used for primitives without a base color.
var DefaultColor = color.RGBA{200, 200, 200, 255}

var glbType = filetype.NewType("glb", "model/gltf-binary")

func init() {
	filetype.AddMatcher(glbType, func(buf []byte) bool {
		return len(buf) >= 12 && string(buf[:4]) == "glTF"
	})
}

// IsGLB reports whether b starts with the binary glTF header.
func IsGLB(b []byte) bool {
	return filetype.Is(b, glbType.Extension)
}

// Decode decodes binary glTF bytes into a scene graph.
func Decode(b []byte) (*sgraph.Node, error) {
	if !IsGLB(b) {
		return nil, ErrNotGLB
	}
	doc := &gltf.Document{}
	if err := gltf.NewDecoder(bytes.NewReader(b)).Decode(doc); err != nil {
		return nil, fmt.Errorf("asset: decode glb: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument converts the default scene of doc into a scene graph rooted
// at a group named after the scene. Node transforms, the node hierarchy and
// triangle primitives are kept; cameras, skins and animations are ignored.
func FromDocument(doc *gltf.Document) (*sgraph.Node, error) {
	root := sgraph.NewGroup("scene")
	if len(doc.Scenes) == 0 {
		return root, nil
	}
	si := 0
	if doc.Scene != nil {
		si = int(*doc.Scene)
	}
	if si >= len(doc.Scenes) {
		return nil, fmt.Errorf("asset: scene %d out of range", si)
	}
	sc := doc.Scenes[si]
	if sc.Name != "" {
		root.Name = sc.Name
	}
	cv := &converter{doc: doc, seen: map[int]bool{}}
	for _, ni := range sc.Nodes {
		n, err := cv.node(int(ni))
		if err != nil {
			return nil, err
		}
		root.Add(n)
	}
	return root, nil
}

type converter struct {
	doc  *gltf.Document
	seen map[int]bool
}

func (cv *converter) node(idx int) (*sgraph.Node, error) {
	if idx < 0 || idx >= len(cv.doc.Nodes) {
		return nil, fmt.Errorf("asset: node %d out of range", idx)
	}
	if cv.seen[idx] {
		return nil, fmt.Errorf("asset: node %d appears twice in the hierarchy", idx)
	}
	cv.seen[idx] = true

	gn := cv.doc.Nodes[idx]
	name := gn.Name
	if name == "" {
		name = "node" + strconv.Itoa(idx)
	}
	n := sgraph.NewGroup(name)
	setPose(&n.Pose, gn)

	if gn.Mesh != nil {
		ms, err := cv.mesh(int(*gn.Mesh))
		if err != nil {
			return nil, fmt.Errorf("asset: node %q: %w", name, err)
		}
		for i, m := range ms {
			if i == 0 {
				n.Mesh = m
				continue
			}
			n.Add(sgraph.NewMesh(name+"."+strconv.Itoa(i), m))
		}
	}
	for _, ci := range gn.Children {
		c, err := cv.node(int(ci))
		if err != nil {
			return nil, err
		}
		n.Add(c)
	}
	return n, nil
}

func setPose(ps *sgraph.Pose, gn *gltf.Node) {
	if m := gn.Matrix; !isIdentityOrZero(m[:]) {
		var mat math32.Matrix4
		for i := range mat {
			mat[i] = float32(m[i])
		}
		ps.SetMatrix(&mat)
		return
	}
	t := gn.Translation
	ps.SetPos(float32(t[0]), float32(t[1]), float32(t[2]))
	if s := gn.Scale; s[0] != 0 || s[1] != 0 || s[2] != 0 {
		ps.Scale.Set(float32(s[0]), float32(s[1]), float32(s[2]))
	}
	if r := gn.Rotation; r[0] != 0 || r[1] != 0 || r[2] != 0 || r[3] != 0 {
		ps.SetQuat(math32.NewQuat(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])))
	}
}

func isIdentityOrZero[T float32 | float64](m []T) bool {
	zero, ident := true, true
	for i, v := range m {
		if v != 0 {
			zero = false
		}
		want := T(0)
		if i%5 == 0 {
			want = 1
		}
		if v != want {
			ident = false
		}
	}
	return zero || ident
}

// mesh reads the triangle primitives of mesh idx.
func (cv *converter) mesh(idx int) ([]*sgraph.Mesh, error) {
	doc := cv.doc
	if idx < 0 || idx >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh %d out of range", idx)
	}
	var ms []*sgraph.Mesh
	for pi, prim := range doc.Meshes[idx].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		pos, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			return nil, fmt.Errorf("mesh %d primitive %d has no POSITION", idx, pi)
		}
		m := &sgraph.Mesh{Color: DefaultColor}
		var err error
		if m.Positions, err = modeler.ReadPosition(doc, doc.Accessors[pos], nil); err != nil {
			return nil, err
		}
		if nrm, ok := prim.Attributes[gltf.NORMAL]; ok {
			if m.Normals, err = modeler.ReadNormal(doc, doc.Accessors[nrm], nil); err != nil {
				return nil, err
			}
		}
		if tc, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			if m.TexCoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[tc], nil); err != nil {
				return nil, err
			}
		}
		if prim.Indices != nil {
			if m.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
				return nil, err
			}
			if err := checkIndices(m.Indices, len(m.Positions)); err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", idx, pi, err)
			}
		}
		if prim.Material != nil && int(*prim.Material) < len(doc.Materials) {
			m.Color = baseColor(doc.Materials[*prim.Material])
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func baseColor(mat *gltf.Material) color.RGBA {
	pbr := mat.PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return DefaultColor
	}
	f := *pbr.BaseColorFactor
	c8 := func(v float64) uint8 {
		return uint8(math32.Clamp(float32(v), 0, 1)*255 + 0.5)
	}
	return color.RGBA{c8(f[0]), c8(f[1]), c8(f[2]), c8(f[3])}
}

// checkIndices returns an error wrapping [ErrBadIndex] if any index
// does not address one of the n vertices.
func checkIndices(indices []uint32, n int) error {
	for i, v := range indices {
		if int(v) >= n {
			return fmt.Errorf("%w: index %d is %d with %d vertices", ErrBadIndex, i, v, n)
		}
	}
	return nil
}
