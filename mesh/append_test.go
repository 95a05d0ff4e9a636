// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestAppendFace(t *testing.T) {
	m := quadMesh(t)
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 1, m.NumFaces())
	assert.Len(t, m.Shared.Groups(), 4)

	// appending never renumbers existing vertices or faces
	first := append([]int(nil), m.Faces[0].Indexes...)
	_, err := m.AppendFace([]math32.Vector3{
		math32.Vec3(2, 0, 0), math32.Vec3(3, 0, 0), math32.Vec3(2, 1, 0),
	}, nil, nil, NewFace([]int{0, 1, 2}), nil)
	assert.NoError(t, err)
	assert.Equal(t, 7, m.NumVertices())
	assert.Equal(t, first, m.Faces[0].Indexes)
	assert.Equal(t, []int{4, 5, 6}, m.Faces[1].Indexes)
}

func TestAppendFaceErrors(t *testing.T) {
	m := New()
	pts := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)}

	_, err := m.AppendFace(pts, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilFace)

	_, err = m.AppendFace(nil, nil, nil, NewFace([]int{0, 1, 2}), nil)
	assert.ErrorIs(t, err, ErrRange)

	_, err = m.AppendFace(pts, nil, nil, NewFace([]int{0, 1}), nil)
	assert.ErrorIs(t, err, ErrRange)

	_, err = m.AppendFace(pts, nil, nil, NewFace([]int{0, 1, 3}), nil)
	assert.ErrorIs(t, err, ErrRange)

	_, err = m.AppendFace(pts, nil, nil, NewFace([]int{0, 1, 2}), []int{0, 1})
	assert.ErrorIs(t, err, ErrRange)

	// a failed append leaves the mesh untouched
	assert.Equal(t, 0, m.NumVertices())
	assert.Equal(t, 0, m.NumFaces())
}

func TestAppendFacesMatchesSequential(t *testing.T) {
	positions := [][]math32.Vector3{
		{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0)},
		{math32.Vec3(1, 0, 0), math32.Vec3(2, 0, 0), math32.Vec3(2, 1, 0), math32.Vec3(1, 1, 0)},
	}
	shared := [][]int{{0, 1, 2, 3}, {1, 4, 5, 2}}

	batch := New()
	_, err := batch.AppendFaces(positions, nil, nil, []*Face{
		NewFace([]int{0, 1, 2, 2, 3, 0}), NewFace([]int{0, 1, 2, 2, 3, 0}),
	}, shared)
	assert.NoError(t, err)

	seq := New()
	for i := range positions {
		_, err := seq.AppendFace(positions[i], nil, nil, NewFace([]int{0, 1, 2, 2, 3, 0}), shared[i])
		assert.NoError(t, err)
	}

	assert.Equal(t, seq.Positions, batch.Positions)
	assert.Equal(t, seq.Shared, batch.Shared)
	assert.Equal(t, seq.NumFaces(), batch.NumFaces())
	for i := range seq.Faces {
		assert.Equal(t, seq.Faces[i].Indexes, batch.Faces[i].Indexes)
	}
}

func TestAppendFacesWeld(t *testing.T) {
	m := New()
	_, err := m.AppendFaces([][]math32.Vector3{
		{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0)},
		{math32.Vec3(1, 0, 0), math32.Vec3(2, 0, 0), math32.Vec3(2, 1, 0), math32.Vec3(1, 1, 0)},
	}, nil, nil, []*Face{
		NewFace([]int{0, 1, 2, 2, 3, 0}), NewFace([]int{0, 1, 2, 2, 3, 0}),
	}, [][]int{{0, 1, 2, 3}, {1, 4, 5, 2}})
	assert.NoError(t, err)
	assert.Equal(t, 8, m.NumVertices())
	assert.Len(t, m.Shared.Groups(), 6)
	assert.Equal(t, m.Shared.Group(1), m.Shared.Group(4))
	assert.Equal(t, m.Shared.Group(2), m.Shared.Group(7))

	// welded faces are adjacent: one island, one opposite pair
	islands := m.FaceIslands()
	assert.Equal(t, [][]int{{0, 1}}, islands)
}

func TestDuplicateAndFlip(t *testing.T) {
	m := quadMesh(t)
	dups, err := m.DuplicateAndFlip(m.Faces[0])
	assert.NoError(t, err)
	assert.Len(t, dups, 1)
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, 8, m.NumVertices())
	assertVec3(t, math32.Vec3(0, 0, -1), m.FaceNormal(dups[0]))
	for i := 0; i < 4; i++ {
		assert.Equal(t, m.Shared.Group(i), m.Shared.Group(4+i))
	}
}

func TestCreatePolygon(t *testing.T) {
	m := quadMesh(t)
	nf, err := m.CreatePolygon([]int{0, 1, 2, 3}, false)
	assert.NoError(t, err)
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, 4, m.NumVertices()) // no vertices created
	assertVec3(t, math32.Vec3(0, 0, 1), m.FaceNormal(nf))
	tolassert.EqualTol(t, 1, m.FaceArea(nf), tol)
}

func TestCreatePolygonUnordered(t *testing.T) {
	m := quadMesh(t)
	nf, err := m.CreatePolygon([]int{2, 0, 3, 1}, true)
	assert.NoError(t, err)
	tolassert.EqualTol(t, 1, m.FaceArea(nf), tol)
}

func TestCreatePolygonErrors(t *testing.T) {
	m := quadMesh(t)
	_, err := m.CreatePolygon([]int{0, 99}, false)
	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, 1, m.NumFaces())
}

func TestCreateShapeFromPolygon(t *testing.T) {
	m := New()
	created, err := m.CreateShapeFromPolygon([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}, 1, false)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 5, m.NumFaces()) // top, bottom cap, 3 sides
	assert.Equal(t, 18, m.NumVertices())

	// the original face was extruded to the top
	for _, v := range m.Faces[0].Distinct() {
		tolassert.EqualTol(t, 1, m.Positions[v].Z, tol)
	}
	assertVec3(t, math32.Vec3(0, 0, 1), m.FaceNormal(m.Faces[0]))
	assertVec3(t, math32.Vec3(0, 0, -1), m.FaceNormal(m.Faces[1]))
}

func TestCreateShapeFromPolygonFlipped(t *testing.T) {
	m := New()
	created, err := m.CreateShapeFromPolygon([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}, 1, true)
	assert.NoError(t, err)
	assert.True(t, created)
	assertVec3(t, math32.Vec3(0, 0, -1), m.FaceNormal(m.Faces[0]))
}

func TestCreateShapeFromPolygonDegenerate(t *testing.T) {
	m := New()
	created, err := m.CreateShapeFromPolygon([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(2, 0, 0),
	}, 1, false)
	assert.ErrorIs(t, err, ErrDegenerate)
	assert.False(t, created)
	assert.Equal(t, 0, m.NumVertices())
	assert.Equal(t, 0, m.NumFaces())
}

func TestCreateShapeFromPolygonTooFew(t *testing.T) {
	m := New()
	created, err := m.CreateShapeFromPolygon([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0),
	}, 1, false)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 0, m.NumVertices())
}
