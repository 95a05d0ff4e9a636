// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestRecalculateNormalsFlat(t *testing.T) {
	m := twoTriangleQuad(t)
	m.RecalculateNormals()
	assert.True(t, m.HasNormals())
	assert.Len(t, m.Normals, m.NumVertices())
	for _, n := range m.Normals {
		assertVec3(t, math32.Vec3(0, 0, 1), n)
	}
}

func TestRecalculateNormalsSmoothing(t *testing.T) {
	// two triangles at a right angle, welded at one corner
	m := New()
	_, err := m.AppendFace([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}, nil, nil, NewFace([]int{0, 1, 2}), nil)
	assert.NoError(t, err)
	_, err = m.AppendFace([]math32.Vector3{
		math32.Vec3(1, 0, 0), math32.Vec3(1, 0, -1), math32.Vec3(1, 1, 0),
	}, nil, nil, NewFace([]int{0, 1, 2}), []int{1, -1, -1})
	assert.NoError(t, err)

	// hard edge: each vertex keeps its own face normal
	m.RecalculateNormals()
	assertVec3(t, math32.Vec3(0, 0, 1), m.Normals[1])
	assertVec3(t, math32.Vec3(1, 0, 0), m.Normals[3])

	// same smoothing group: welded vertices average to 45 degrees
	m.Faces[0].SmoothingGroup = 1
	m.Faces[1].SmoothingGroup = 1
	m.RecalculateNormals()
	d := math32.Sqrt(0.5)
	assertVec3(t, math32.Vec3(d, 0, d), m.Normals[1])
	assertVec3(t, math32.Vec3(d, 0, d), m.Normals[3])
	assertVec3(t, math32.Vec3(0, 0, 1), m.Normals[0])
}
