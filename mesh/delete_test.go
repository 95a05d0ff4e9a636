// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// separatedQuads returns a mesh of two quad faces with no shared vertices.
func separatedQuads(t *testing.T) *Mesh {
	t.Helper()
	m := quadMesh(t)
	_, err := m.AppendFace([]math32.Vector3{
		math32.Vec3(3, 0, 0), math32.Vec3(4, 0, 0), math32.Vec3(4, 1, 0), math32.Vec3(3, 1, 0),
	}, nil, nil, NewFace([]int{0, 1, 2, 2, 3, 0}), nil)
	assert.NoError(t, err)
	return m
}

func TestDeleteFaces(t *testing.T) {
	m := separatedQuads(t)
	assert.NoError(t, m.DeleteFaces([]int{0}))
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 4, m.NumVertices())

	// remaining indexes were shifted down and stay dense
	assert.Equal(t, []int{0, 1, 2, 2, 3, 0}, m.Faces[0].Indexes)
	assert.Len(t, m.Shared, 4)
	for _, v := range m.Faces[0].Indexes {
		assert.Less(t, v, m.NumVertices())
	}
	assertVec3(t, math32.Vec3(3, 0, 0), m.Positions[0])
}

func TestDeleteFaceRoundTrip(t *testing.T) {
	m := quadMesh(t)
	_, err := m.AppendFace([]math32.Vector3{
		math32.Vec3(2, 0, 0), math32.Vec3(3, 0, 0), math32.Vec3(2, 1, 0),
	}, nil, nil, NewFace([]int{0, 1, 2}), nil)
	assert.NoError(t, err)
	assert.NoError(t, m.DeleteFace(1))
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, []int{0, 1, 2, 2, 3, 0}, m.Faces[0].Indexes)
}

func TestDeleteFacesErrors(t *testing.T) {
	m := quadMesh(t)
	assert.ErrorIs(t, m.DeleteFaces([]int{1}), ErrRange)
	assert.ErrorIs(t, m.DeleteFaces([]int{-1}), ErrRange)
	assert.Equal(t, 1, m.NumFaces())
}

func TestRemoveUnusedVertices(t *testing.T) {
	m := quadMesh(t)
	m.Faces = nil
	removed := m.RemoveUnusedVertices()
	assert.Equal(t, []int{0, 1, 2, 3}, removed)
	assert.Equal(t, 0, m.NumVertices())
	assert.Empty(t, m.Shared)
}

func TestRemoveDegenerateTriangles(t *testing.T) {
	m := New()
	_, err := m.AppendFace([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}, nil, nil, NewFace([]int{0, 1, 2}), nil)
	assert.NoError(t, err)
	_, err = m.AppendFace([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(2, 0, 0),
	}, nil, nil, NewFace([]int{0, 1, 2}), nil)
	assert.NoError(t, err)

	removed := m.RemoveDegenerateTriangles()
	assert.Equal(t, []int{3, 4, 5}, removed)
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 3, m.NumVertices())

	// a second pass changes nothing
	assert.Empty(t, m.RemoveDegenerateTriangles())
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 3, m.NumVertices())
}

func TestRemoveDegeneratePinched(t *testing.T) {
	// two vertices in the same weld group pinch the triangle shut
	m := New()
	_, err := m.AppendFace([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}, nil, nil, NewFace([]int{0, 1, 2}), []int{0, 0, 1})
	assert.NoError(t, err)

	m.RemoveDegenerateTriangles()
	assert.Equal(t, 0, m.NumFaces())
	assert.Equal(t, 0, m.NumVertices())
}
