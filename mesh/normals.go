// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"
)

// RecalculateNormals recomputes the per-vertex normal array. Each vertex
// first accumulates the area-weighted normals of the faces that reference
// it. Then, within every weld group, vertices whose faces share the same
// nonzero smoothing group have their normals averaged together, so welded
// seams are smooth inside a smoothing group and hard across them.
func (m *Mesh) RecalculateNormals() {
	m.Normals = slicesx.SetLength(m.Normals, m.NumVertices())
	for i := range m.Normals {
		m.Normals[i] = math32.Vector3{}
	}

	smooth := make([]int, m.NumVertices())
	for _, f := range m.Faces {
		for i := 0; i+2 < len(f.Indexes); i += 3 {
			a, b, c := f.Indexes[i], f.Indexes[i+1], f.Indexes[i+2]
			fn := m.Positions[b].Sub(m.Positions[a]).Cross(m.Positions[c].Sub(m.Positions[a]))
			m.Normals[a] = m.Normals[a].Add(fn)
			m.Normals[b] = m.Normals[b].Add(fn)
			m.Normals[c] = m.Normals[c].Add(fn)
		}
		for _, v := range f.Distinct() {
			smooth[v] = f.SmoothingGroup
		}
	}

	// average across weld groups within a smoothing group
	for _, group := range m.Shared.Groups() {
		if len(group) < 2 {
			continue
		}
		bySmooth := map[int][]int{}
		for _, v := range group {
			if smooth[v] != 0 {
				bySmooth[smooth[v]] = append(bySmooth[smooth[v]], v)
			}
		}
		for _, vs := range bySmooth {
			if len(vs) < 2 {
				continue
			}
			var sum math32.Vector3
			for _, v := range vs {
				sum = sum.Add(m.Normals[v])
			}
			for _, v := range vs {
				m.Normals[v] = sum
			}
		}
	}

	for i, n := range m.Normals {
		if n.LengthSquared() > 0 {
			m.Normals[i] = n.Normal()
		}
	}
}
