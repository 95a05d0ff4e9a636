// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape builds primitive editable meshes (plane, box, prism)
// through the public [mesh] mutators, producing welded, editor-ready
// topology rather than raw render arrays.
package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/probuild/mesh"
)

// Plane returns a new mesh containing a flat grid of wsegs x dsegs quad
// faces in the XZ plane, centered on the origin, with its normal along
// +Y. Coincident corners of neighboring quads are welded. Segment counts
// below 1 are treated as 1.
func Plane(width, depth float32, wsegs, dsegs int) (*mesh.Mesh, error) {
	wsegs = max(wsegs, 1)
	dsegs = max(dsegs, 1)
	m := mesh.New()

	// one weld group per grid node
	node := func(x, z int) int {
		return z*(wsegs+1) + x
	}
	corner := func(x, z int) math32.Vector3 {
		return math32.Vec3(
			-width/2+float32(x)*width/float32(wsegs),
			0,
			-depth/2+float32(z)*depth/float32(dsegs),
		)
	}
	uv := func(x, z int) math32.Vector2 {
		return math32.Vec2(float32(x)/float32(wsegs), float32(z)/float32(dsegs))
	}

	var positions [][]math32.Vector3
	var uvs [][]math32.Vector2
	var faces []*mesh.Face
	var shared [][]int
	for z := 0; z < dsegs; z++ {
		for x := 0; x < wsegs; x++ {
			positions = append(positions, []math32.Vector3{
				corner(x, z), corner(x+1, z), corner(x+1, z+1), corner(x, z+1),
			})
			uvs = append(uvs, []math32.Vector2{
				uv(x, z), uv(x+1, z), uv(x+1, z+1), uv(x, z+1),
			})
			// wound so the normal points along +Y
			faces = append(faces, mesh.NewFace([]int{0, 2, 1, 0, 3, 2}))
			shared = append(shared, []int{
				node(x, z), node(x+1, z), node(x+1, z+1), node(x, z+1),
			})
		}
	}
	if _, err := m.AppendFaces(positions, nil, uvs, faces, shared); err != nil {
		return nil, err
	}
	return m, nil
}
