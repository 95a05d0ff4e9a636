// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"slices"
	"sort"
)

// SharedVertexMap is the shared-vertex (weld group) index: it maps each
// vertex id to the id of the group of vertices considered coincident with
// it for topology purposes. This vertex-to-group mapping is the canonical
// representation; the group-to-members form is derived on demand by
// [SharedVertexMap.Groups]. Group ids are arbitrary and may be sparse.
type SharedVertexMap map[int]int

// Group returns the weld group id for the given vertex id, or -1 if the
// vertex has no entry.
func (s SharedVertexMap) Group(v int) int {
	g, ok := s[v]
	if !ok {
		return -1
	}
	return g
}

// Add inserts the given vertex id into the given weld group. If group is
// -1, a fresh group is allocated, so the vertex is welded to nothing.
// It returns the group id the vertex was assigned to.
func (s SharedVertexMap) Add(group, v int) int {
	if group < 0 {
		group = s.NextGroup()
	}
	s[v] = group
	return group
}

// NextGroup returns a group id not yet used by any vertex.
func (s SharedVertexMap) NextGroup() int {
	next := 0
	for _, g := range s {
		if g >= next {
			next = g + 1
		}
	}
	return next
}

// Groups derives the group-to-members form: one sorted slice of vertex
// ids per group, ordered by ascending group id.
func (s SharedVertexMap) Groups() [][]int {
	byGroup := map[int][]int{}
	for v, g := range s {
		byGroup[g] = append(byGroup[g], v)
	}
	gids := make([]int, 0, len(byGroup))
	for g := range byGroup {
		gids = append(gids, g)
	}
	sort.Ints(gids)
	out := make([][]int, 0, len(gids))
	for _, g := range gids {
		mem := byGroup[g]
		sort.Ints(mem)
		out = append(out, mem)
	}
	return out
}

// FromGroups builds the canonical vertex-to-group mapping from an
// explicit list of groups, assigning group ids by position.
func FromGroups(groups [][]int) SharedVertexMap {
	s := SharedVertexMap{}
	for g, mem := range groups {
		for _, v := range mem {
			s[v] = g
		}
	}
	return s
}

// CommonEdge maps a local edge into weld-group space.
func (s SharedVertexMap) CommonEdge(e Edge) CommonEdge {
	return CommonEdge{s.Group(e.A), s.Group(e.B)}
}

// RemoveAndShift removes the entries for the given deleted vertex ids and
// shifts every remaining vertex id down by the number of deleted ids
// before it, matching the same shift applied to the vertex arrays and
// face table. The deleted slice need not be sorted.
func (s SharedVertexMap) RemoveAndShift(deleted []int) SharedVertexMap {
	del := slices.Clone(deleted)
	sort.Ints(del)
	del = slices.Compact(del)
	out := SharedVertexMap{}
	for v, g := range s {
		shift, found := slices.BinarySearch(del, v)
		if found {
			continue
		}
		out[v-shift] = g
	}
	return out
}
