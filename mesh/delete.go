// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"slices"
)

// DeleteFaces removes the faces at the given face-table indexes, along
// with any vertex that becomes unreferenced as a result. All remaining
// faces' triangle indexes and the shared-vertex map are shifted downward
// to stay dense: the shift for vertex id i is the count of deleted ids
// strictly less than i.
func (m *Mesh) DeleteFaces(faceIndexes []int) error {
	if m == nil {
		return ErrNilMesh
	}
	del := slices.Clone(faceIndexes)
	slices.Sort(del)
	del = slices.Compact(del)
	if len(del) > 0 && (del[0] < 0 || del[len(del)-1] >= len(m.Faces)) {
		return fmt.Errorf("%w: face index outside face table", ErrRange)
	}
	kept := make([]*Face, 0, len(m.Faces)-len(del))
	for i, f := range m.Faces {
		if _, found := slices.BinarySearch(del, i); !found {
			kept = append(kept, f)
		}
	}
	m.Faces = kept
	m.removeUnusedVertices()
	m.Sync()
	return nil
}

// DeleteFace removes one face by face-table index; see [Mesh.DeleteFaces].
func (m *Mesh) DeleteFace(faceIndex int) error {
	return m.DeleteFaces([]int{faceIndex})
}

// RemoveUnusedVertices removes every vertex not referenced by any face,
// shifting all remaining indexes downward. It returns the removed vertex
// ids (as they were before removal), in ascending order.
func (m *Mesh) RemoveUnusedVertices() []int {
	removed := m.removeUnusedVertices()
	m.Sync()
	return removed
}

func (m *Mesh) removeUnusedVertices() []int {
	used := make([]bool, m.NumVertices())
	for _, f := range m.Faces {
		for _, v := range f.Indexes {
			used[v] = true
		}
	}
	var unused []int
	for v, u := range used {
		if !u {
			unused = append(unused, v)
		}
	}
	m.deleteVertices(unused)
	return unused
}

// deleteVertices removes the given sorted, unique vertex ids from all
// per-vertex arrays, the shared-vertex map, and every face's triangle
// list, applying the same prefix-sum shift to each so the three stay
// mutually consistent. No face may still reference a deleted vertex.
func (m *Mesh) deleteVertices(deleted []int) {
	if len(deleted) == 0 {
		return
	}
	keep := func(v int) bool {
		_, found := slices.BinarySearch(deleted, v)
		return !found
	}
	shift := func(v int) int {
		n, _ := slices.BinarySearch(deleted, v)
		return v - n
	}

	pos := m.Positions[:0]
	for v, p := range m.Positions {
		if keep(v) {
			pos = append(pos, p)
		}
	}
	m.Positions = pos
	if m.HasColors() {
		cl := m.Colors[:0]
		for v, c := range m.Colors {
			if keep(v) {
				cl = append(cl, c)
			}
		}
		m.Colors = cl
	}
	if m.HasUVs() {
		uv := m.UVs[:0]
		for v, u := range m.UVs {
			if keep(v) {
				uv = append(uv, u)
			}
		}
		m.UVs = uv
	}
	if m.HasNormals() {
		nr := m.Normals[:0]
		for v, n := range m.Normals {
			if keep(v) {
				nr = append(nr, n)
			}
		}
		m.Normals = nr
	}
	m.Shared = m.Shared.RemoveAndShift(deleted)
	for _, f := range m.Faces {
		for i, v := range f.Indexes {
			f.Indexes[i] = shift(v)
		}
	}
}

// RemoveDegenerateTriangles drops every triangle whose area is at or
// below [Epsilon] or whose three weld groups are not pairwise distinct
// (a pinched triangle). Affected faces are rebuilt from their surviving
// triangles, faces with none are removed, and vertices left unreferenced
// are deleted. It returns the removed vertex ids. Calling it twice in a
// row produces no further changes.
func (m *Mesh) RemoveDegenerateTriangles() []int {
	kept := m.Faces[:0]
	for _, f := range m.Faces {
		good := f.Indexes[:0:0]
		for i := 0; i+2 < len(f.Indexes); i += 3 {
			a, b, c := f.Indexes[i], f.Indexes[i+1], f.Indexes[i+2]
			ga, gb, gc := m.Shared.Group(a), m.Shared.Group(b), m.Shared.Group(c)
			if ga == gb || gb == gc || ga == gc {
				continue
			}
			pa, pb, pc := m.Positions[a], m.Positions[b], m.Positions[c]
			if pb.Sub(pa).Cross(pc.Sub(pa)).Length()/2 <= Epsilon {
				continue
			}
			good = append(good, a, b, c)
		}
		if len(good) == 0 {
			continue
		}
		f.Indexes = good
		kept = append(kept, f)
	}
	m.Faces = kept
	removed := m.removeUnusedVertices()
	m.Sync()
	return removed
}
