// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// WeldVertices merges the weld groups of the selected vertices that lie
// within tolerance of each other. All vertices of the merged groups are
// collapsed onto their mean position, so they remain exactly coincident.
// It returns the number of merges performed.
func (m *Mesh) WeldVertices(indexes []int, tolerance float32) (int, error) {
	if m == nil {
		return 0, ErrNilMesh
	}
	if err := m.checkIndexes(indexes); err != nil {
		return 0, err
	}
	if tolerance < 0 {
		return 0, fmt.Errorf("%w: negative tolerance", ErrRange)
	}
	sel := slices.Clone(indexes)
	slices.Sort(sel)
	sel = slices.Compact(sel)

	// cluster the selection by position
	tol2 := tolerance * tolerance
	var clusters [][]int
	for _, v := range sel {
		placed := false
		for ci, cl := range clusters {
			if m.Positions[v].DistanceToSquared(m.Positions[cl[0]]) <= tol2 {
				clusters[ci] = append(cl, v)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, []int{v})
		}
	}

	merges := 0
	for _, cl := range clusters {
		groups := map[int]bool{}
		for _, v := range cl {
			groups[m.Shared.Group(v)] = true
		}
		if len(groups) < 2 {
			continue
		}
		target := -1
		for g := range groups {
			if target < 0 || g < target {
				target = g
			}
		}
		members := []int{}
		for v, g := range m.Shared {
			if groups[g] {
				members = append(members, v)
			}
		}
		var mean math32.Vector3
		for _, v := range members {
			mean = mean.Add(m.Positions[v])
		}
		mean = mean.DivScalar(float32(len(members)))
		for _, v := range members {
			m.Shared[v] = target
			m.Positions[v] = mean
		}
		merges++
	}
	if merges > 0 {
		m.Sync()
	}
	return merges, nil
}

// SplitVertices moves each selected vertex into its own fresh weld
// group, detaching it from any coincident partners; the inverse of
// [Mesh.WeldVertices]. Positions are unchanged.
func (m *Mesh) SplitVertices(indexes []int) error {
	if m == nil {
		return ErrNilMesh
	}
	if err := m.checkIndexes(indexes); err != nil {
		return err
	}
	next := m.Shared.NextGroup()
	for _, v := range indexes {
		m.Shared[v] = next
		next++
	}
	m.Sync()
	return nil
}
