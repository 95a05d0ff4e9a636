// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestWingedEdges(t *testing.T) {
	m := twoTriangleQuad(t)
	wings := m.WingedEdges()
	assert.Len(t, wings, 6)

	var linked []*WingedEdge
	for _, w := range wings {
		if w.Opposite != nil {
			linked = append(linked, w)
		}
	}
	assert.Len(t, linked, 2)
	assert.Same(t, linked[0], linked[1].Opposite)
	assert.Same(t, linked[1], linked[0].Opposite)
	assert.NotEqual(t, linked[0].FaceIndex, linked[1].FaceIndex)
	assert.Equal(t, linked[0].Common.Normalized(), linked[1].Common.Normalized())
}

func TestWingedEdgesNonManifold(t *testing.T) {
	// a third face on the same common edge: no edge on it gets a partner
	m := twoTriangleQuad(t)
	_, err := m.AppendFace([]math32.Vector3{
		math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1),
	}, nil, nil, NewFace([]int{0, 1, 2}), []int{1, 2, -1})
	assert.NoError(t, err)

	wings := m.WingedEdges()
	assert.Len(t, wings, 9)
	for _, w := range wings {
		assert.Nil(t, w.Opposite)
	}
}

func TestWingedEdgesSubset(t *testing.T) {
	m := twoTriangleQuad(t)
	wings := m.WingedEdges(0)
	assert.Len(t, wings, 3)
	for _, w := range wings {
		assert.Equal(t, 0, w.FaceIndex)
		assert.Nil(t, w.Opposite)
	}
}

func TestLoop(t *testing.T) {
	m := quadMesh(t)
	wings := m.WingedEdges()
	assert.Len(t, wings, 4)

	var seen []*WingedEdge
	for w := range wings[0].Loop() {
		seen = append(seen, w)
	}
	assert.Len(t, seen, 4)
	assert.Same(t, wings[0], seen[0])
	assert.Same(t, wings[0], seen[3].Next)

	// prev links circulate the other way
	assert.Same(t, seen[3], seen[0].Prev)
}

func TestFaceIslands(t *testing.T) {
	m := twoTriangleQuad(t)
	assert.Equal(t, [][]int{{0, 1}}, m.FaceIslands())

	sep := separatedQuads(t)
	assert.Equal(t, [][]int{{0}, {1}}, sep.FaceIslands())

	// subset restriction breaks connectivity through excluded faces
	assert.Equal(t, [][]int{{0}}, m.FaceIslands(0))
}
