// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedVertexMap(t *testing.T) {
	s := SharedVertexMap{}
	assert.Equal(t, -1, s.Group(0))

	g0 := s.Add(-1, 0)
	assert.Equal(t, 0, g0)
	g1 := s.Add(-1, 1)
	assert.Equal(t, 1, g1)
	assert.Equal(t, g0, s.Group(0))

	// welding into an existing group
	assert.Equal(t, g0, s.Add(g0, 2))
	assert.Equal(t, s.Group(0), s.Group(2))

	// an id not yet present is created as given
	assert.Equal(t, 7, s.Add(7, 3))
	assert.Equal(t, 8, s.NextGroup())

	assert.Equal(t, [][]int{{0, 2}, {1}, {3}}, s.Groups())
}

func TestFromGroups(t *testing.T) {
	s := FromGroups([][]int{{0, 3}, {1}, {2, 4}})
	assert.Equal(t, s.Group(0), s.Group(3))
	assert.Equal(t, s.Group(2), s.Group(4))
	assert.NotEqual(t, s.Group(0), s.Group(1))
	assert.Equal(t, [][]int{{0, 3}, {1}, {2, 4}}, s.Groups())
}

func TestCommonEdge(t *testing.T) {
	s := FromGroups([][]int{{0, 3}, {1}, {2}})
	ce := s.CommonEdge(Edge{3, 2})
	assert.Equal(t, CommonEdge{0, 2}, ce)
	assert.Equal(t, CommonEdge{0, 2}, CommonEdge{2, 0}.Normalized())
	assert.True(t, ce.Equal(CommonEdge{2, 0}))
	assert.True(t, ce.Contains(0))
	assert.False(t, ce.Contains(1))
}

func TestRemoveAndShift(t *testing.T) {
	s := SharedVertexMap{0: 0, 1: 1, 2: 1, 3: 2}
	out := s.RemoveAndShift([]int{1})
	assert.Equal(t, SharedVertexMap{0: 0, 1: 1, 2: 2}, out)

	out = s.RemoveAndShift([]int{0, 2})
	assert.Equal(t, SharedVertexMap{0: 1, 1: 2}, out)

	// unsorted input with duplicates
	out = s.RemoveAndShift([]int{3, 0, 3})
	assert.Equal(t, SharedVertexMap{0: 1, 1: 1}, out)
}
