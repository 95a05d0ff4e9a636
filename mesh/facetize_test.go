// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestToTriangles(t *testing.T) {
	m := quadMesh(t)
	m.Faces[0].Material = "brick"
	created, err := m.ToTriangles(m.Faces)
	assert.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, []int{0, 1, 2}, m.Faces[0].Indexes)
	assert.Equal(t, []int{2, 3, 0}, m.Faces[1].Indexes)
	assert.Equal(t, "brick", m.Faces[0].Material)
	assert.Equal(t, "brick", m.Faces[1].Material)

	// already-triangular faces are untouched
	before := m.Faces[0]
	created, err = m.ToTriangles(m.Faces)
	assert.NoError(t, err)
	assert.Empty(t, created)
	assert.Same(t, before, m.Faces[0])
}

func TestToTrianglesPreservesPosition(t *testing.T) {
	m := twoTriangleQuad(t)
	quad, err := m.AppendFace([]math32.Vector3{
		math32.Vec3(2, 0, 0), math32.Vec3(3, 0, 0), math32.Vec3(3, 1, 0), math32.Vec3(2, 1, 0),
	}, nil, nil, NewFace([]int{0, 1, 2, 2, 3, 0}), nil)
	assert.NoError(t, err)

	// only the given face is split, in place in the table
	created, err := m.ToTriangles([]*Face{quad})
	assert.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, 4, m.NumFaces())
	assert.Same(t, created[0], m.Faces[2])
	assert.Same(t, created[1], m.Faces[3])
}
