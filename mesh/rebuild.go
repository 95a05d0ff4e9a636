// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"slices"

	"cogentcore.org/core/math32"
)

// FaceRebuildData is a write-ahead staging record for one new face and
// the new vertices it brings along. Mutators assemble these records while
// computing against the current mesh, then commit them all at once with
// applyRebuild, so a failure during computation leaves the mesh untouched.
type FaceRebuildData struct {
	// Positions are the new vertex positions, 0-based within this record.
	Positions []math32.Vector3

	// Colors are optional per-vertex colors, either nil or parallel to
	// Positions.
	Colors []math32.Vector4

	// UVs are optional per-vertex UVs, either nil or parallel to Positions.
	UVs []math32.Vector2

	// Face is the new face; its indexes are 0-based within this record
	// and are rebased onto the mesh on commit.
	Face *Face

	// Shared are per-vertex weld group hints, either nil or parallel to
	// Positions. An entry of -1 (or a nil slice) allocates a fresh group;
	// an existing group id welds the new vertex to that group. Ids not
	// yet present in the mesh are created, so records in one batch can
	// share a pre-allocated id to weld their vertices together.
	Shared []int
}

// applyRebuild commits the given staging records: it grows all per-vertex
// arrays once, rebases each record's face indexes onto the end of the
// existing vertex range, appends the faces, and inserts shared-group
// entries for every new vertex. Existing vertices and faces are never
// renumbered. It returns the appended faces and does not Sync.
func (m *Mesh) applyRebuild(data ...*FaceRebuildData) []*Face {
	total := 0
	hasColors := m.HasColors()
	hasUVs := m.HasUVs()
	for _, rd := range data {
		total += len(rd.Positions)
		hasColors = hasColors || rd.Colors != nil
		hasUVs = hasUVs || rd.UVs != nil
	}

	old := m.NumVertices()
	m.Positions = slices.Grow(m.Positions, total)
	if hasColors {
		m.Colors = append(m.Colors, make([]math32.Vector4, old-len(m.Colors))...)
	}
	if hasUVs {
		m.UVs = append(m.UVs, make([]math32.Vector2, old-len(m.UVs))...)
	}
	if m.HasNormals() {
		m.Normals = append(m.Normals, make([]math32.Vector3, total)...)
	}

	faces := make([]*Face, 0, len(data))
	offset := old
	for _, rd := range data {
		n := len(rd.Positions)
		m.Positions = append(m.Positions, rd.Positions...)
		if hasColors {
			if rd.Colors != nil {
				m.Colors = append(m.Colors, rd.Colors...)
			} else {
				m.Colors = append(m.Colors, make([]math32.Vector4, n)...)
			}
		}
		if hasUVs {
			if rd.UVs != nil {
				m.UVs = append(m.UVs, rd.UVs...)
			} else {
				m.UVs = append(m.UVs, make([]math32.Vector2, n)...)
			}
		}
		for i := 0; i < n; i++ {
			hint := -1
			if rd.Shared != nil {
				hint = rd.Shared[i]
			}
			m.Shared.Add(hint, offset+i)
		}
		rd.Face.Shift(offset)
		m.Faces = append(m.Faces, rd.Face)
		faces = append(faces, rd.Face)
		offset += n
	}
	return faces
}
