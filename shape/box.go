// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/probuild/mesh"
)

// boxQuads lists the corner of each box face in outward winding order,
// as indexes into the 8 box corners. Corners are numbered with bit 0 = x,
// bit 1 = y, bit 2 = z (0 = min, 1 = max).
var boxQuads = [6][4]int{
	{1, 0, 2, 3}, // nz, typically back
	{0, 1, 5, 4}, // ny
	{1, 3, 7, 5}, // px
	{2, 0, 4, 6}, // nx
	{3, 2, 6, 7}, // py
	{4, 5, 7, 6}, // pz
}

// Box returns a new mesh cuboid of the given size centered on the
// origin, with six quad faces and all coincident corners welded, so each
// of the 8 corners is one weld group of 3 vertices.
func Box(width, height, depth float32) (*mesh.Mesh, error) {
	h := math32.Vec3(width/2, height/2, depth/2)
	var corners [8]math32.Vector3
	for i := range corners {
		corners[i] = math32.Vec3(
			h.X*float32(2*(i&1)-1),
			h.Y*float32(2*(i>>1&1)-1),
			h.Z*float32(2*(i>>2&1)-1),
		)
	}

	m := mesh.New()
	var positions [][]math32.Vector3
	var uvs [][]math32.Vector2
	var faces []*mesh.Face
	var shared [][]int
	quadUV := []math32.Vector2{
		math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(1, 1), math32.Vec2(0, 1),
	}
	for _, q := range boxQuads {
		positions = append(positions, []math32.Vector3{
			corners[q[0]], corners[q[1]], corners[q[2]], corners[q[3]],
		})
		uvs = append(uvs, quadUV)
		faces = append(faces, mesh.NewFace([]int{0, 1, 2, 2, 3, 0}))
		shared = append(shared, []int{q[0], q[1], q[2], q[3]})
	}
	if _, err := m.AppendFaces(positions, nil, uvs, faces, shared); err != nil {
		return nil, err
	}
	return m, nil
}

// Prism returns a new mesh built by triangulating the given ordered
// point loop and extruding it by height along its normal; a thin wrapper
// over [mesh.Mesh.CreateShapeFromPolygon]. It returns nil without error
// when given fewer than 3 points.
func Prism(points []math32.Vector3, height float32) (*mesh.Mesh, error) {
	m := mesh.New()
	created, err := m.CreateShapeFromPolygon(points, height, false)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, nil
	}
	return m, nil
}
