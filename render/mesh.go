// Copyright (c) 2026, The tokyo3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"tokyo3d/sgraph"
)

// FlattenMesh converts m into an indexed triangle [xyz.GenMesh] with the
// given name. Missing indices are generated in vertex order, missing
// normals are computed from the faces, and missing texture coordinates
// are zero. Triangles that address a vertex past the end are dropped.
func FlattenMesh(name string, m *sgraph.Mesh) *xyz.GenMesh {
	n := len(m.Positions)
	ms := &xyz.GenMesh{}
	ms.Name = name
	ms.Vertex = make(math32.ArrayF32, 0, 3*n)
	for _, p := range m.Positions {
		ms.Vertex = append(ms.Vertex, p[0], p[1], p[2])
	}

	if len(m.Indices) > 0 {
		ms.Index = make(math32.ArrayU32, 0, len(m.Indices))
		for f := 0; f+2 < len(m.Indices); f += 3 {
			tri := m.Indices[f : f+3]
			if int(max(tri[0], tri[1], tri[2])) >= n {
				continue
			}
			ms.Index = append(ms.Index, tri...)
		}
	} else {
		ms.Index = make(math32.ArrayU32, n-n%3)
		for i := range ms.Index {
			ms.Index[i] = uint32(i)
		}
	}

	ms.Normal = make(math32.ArrayF32, 3*n)
	if len(m.Normals) == n {
		for i, v := range m.Normals {
			copy(ms.Normal[3*i:], v[:])
		}
	} else {
		faceNormals(ms)
	}

	ms.TexCoord = make(math32.ArrayF32, 2*n)
	if len(m.TexCoords) == n {
		for i, v := range m.TexCoords {
			copy(ms.TexCoord[2*i:], v[:])
		}
	}
	ms.MeshSize()
	return ms
}

// faceNormals sets ms.Normal to the normalized sum of the normals of
// the faces sharing each vertex.
func faceNormals(ms *xyz.GenMesh) {
	vtx := func(i uint32) math32.Vector3 {
		return math32.Vec3(ms.Vertex[3*i], ms.Vertex[3*i+1], ms.Vertex[3*i+2])
	}
	acc := make([]math32.Vector3, len(ms.Vertex)/3)
	for f := 0; f+2 < len(ms.Index); f += 3 {
		a, b, c := ms.Index[f], ms.Index[f+1], ms.Index[f+2]
		fn := vtx(b).Sub(vtx(a)).Cross(vtx(c).Sub(vtx(a)))
		acc[a] = acc[a].Add(fn)
		acc[b] = acc[b].Add(fn)
		acc[c] = acc[c].Add(fn)
	}
	for i, v := range acc {
		if v == (math32.Vector3{}) {
			v = math32.Vec3(0, 1, 0)
		}
		v = v.Normal()
		ms.Normal[3*i], ms.Normal[3*i+1], ms.Normal[3*i+2] = v.X, v.Y, v.Z
	}
}
