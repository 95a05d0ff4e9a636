// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "slices"

// ToTriangles replaces each given face with one face per triangle,
// preserving position in the face table, material and UV settings, and
// weld groups. Faces that are already single triangles are unchanged.
// It returns the newly created faces.
func (m *Mesh) ToTriangles(faces []*Face) ([]*Face, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	target := map[*Face]bool{}
	for _, f := range faces {
		if err := m.checkFace(f); err != nil {
			return nil, err
		}
		target[f] = true
	}
	var created []*Face
	table := make([]*Face, 0, len(m.Faces))
	for _, f := range m.Faces {
		if !target[f] || f.NumTriangles() <= 1 {
			table = append(table, f)
			continue
		}
		for i := 0; i+2 < len(f.Indexes); i += 3 {
			nf := f.Clone()
			nf.Indexes = slices.Clone(f.Indexes[i : i+3])
			table = append(table, nf)
			created = append(created, nf)
		}
	}
	m.Faces = table
	m.Sync()
	return created, nil
}
