// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/probuild/base/logx"
	"cogentcore.org/probuild/triangulate"
)

// AppendFace appends one new face with its own new vertices. The face's
// indexes are 0-based into positions and are rebased onto the end of the
// existing vertex range; existing vertices and faces are never renumbered.
// colors, uvs, and shared are optional; when given they must be parallel
// to positions. shared entries are weld group hints as in
// [FaceRebuildData]. The face is adopted by the mesh and returned.
func (m *Mesh) AppendFace(positions []math32.Vector3, colors []math32.Vector4, uvs []math32.Vector2, face *Face, shared []int) (*Face, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	rd := &FaceRebuildData{Positions: positions, Colors: colors, UVs: uvs, Face: face, Shared: shared}
	if err := checkRebuild(rd); err != nil {
		return nil, err
	}
	m.applyRebuild(rd)
	m.Sync()
	return face, nil
}

// AppendFaces appends a batch of new faces, producing the same result as
// calling [Mesh.AppendFace] for each entry in order, but growing the mesh
// arrays once. colors, uvs, and shared may be nil overall or per entry.
func (m *Mesh) AppendFaces(positions [][]math32.Vector3, colors [][]math32.Vector4, uvs [][]math32.Vector2, faces []*Face, shared [][]int) ([]*Face, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if (colors != nil && len(colors) != len(faces)) ||
		(uvs != nil && len(uvs) != len(faces)) ||
		(shared != nil && len(shared) != len(faces)) ||
		len(positions) != len(faces) {
		return nil, fmt.Errorf("%w: batch slices must be parallel to faces", ErrRange)
	}
	data := make([]*FaceRebuildData, len(faces))
	for i, f := range faces {
		rd := &FaceRebuildData{Positions: positions[i], Face: f}
		if colors != nil {
			rd.Colors = colors[i]
		}
		if uvs != nil {
			rd.UVs = uvs[i]
		}
		if shared != nil {
			rd.Shared = shared[i]
		}
		if err := checkRebuild(rd); err != nil {
			return nil, err
		}
		data[i] = rd
	}
	out := m.applyRebuild(data...)
	m.Sync()
	return out, nil
}

// checkRebuild validates one staging record before any commit.
func checkRebuild(rd *FaceRebuildData) error {
	if rd.Face == nil {
		return ErrNilFace
	}
	n := len(rd.Positions)
	if n == 0 {
		return fmt.Errorf("%w: no positions", ErrRange)
	}
	if len(rd.Face.Indexes)%3 != 0 {
		return fmt.Errorf("%w: face index count %d is not a multiple of 3", ErrRange, len(rd.Face.Indexes))
	}
	for _, v := range rd.Face.Indexes {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: face index %d outside new vertex range %d", ErrRange, v, n)
		}
	}
	if (rd.Colors != nil && len(rd.Colors) != n) ||
		(rd.UVs != nil && len(rd.UVs) != n) ||
		(rd.Shared != nil && len(rd.Shared) != n) {
		return fmt.Errorf("%w: attribute arrays must be parallel to positions", ErrRange)
	}
	return nil
}

// DuplicateAndFlip appends a winding-reversed copy of each given face.
// The copies get new vertices welded into the originals' weld groups, so
// each duplicate remains coincident with its source but oppositely
// oriented; this is how caps are built. It returns the new faces in order.
func (m *Mesh) DuplicateAndFlip(faces ...*Face) ([]*Face, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	data := make([]*FaceRebuildData, len(faces))
	for i, f := range faces {
		if err := m.checkFace(f); err != nil {
			return nil, err
		}
		dis := f.Distinct()
		local := make(map[int]int, len(dis))
		rd := &FaceRebuildData{
			Positions: make([]math32.Vector3, len(dis)),
			Shared:    make([]int, len(dis)),
		}
		if m.HasColors() {
			rd.Colors = make([]math32.Vector4, len(dis))
		}
		if m.HasUVs() {
			rd.UVs = make([]math32.Vector2, len(dis))
		}
		for j, v := range dis {
			local[v] = j
			rd.Positions[j] = m.Positions[v]
			rd.Shared[j] = m.Shared.Group(v)
			if rd.Colors != nil {
				rd.Colors[j] = m.Colors[v]
			}
			if rd.UVs != nil {
				rd.UVs[j] = m.UVs[v]
			}
		}
		nf := f.Clone()
		for j, v := range nf.Indexes {
			nf.Indexes[j] = local[v]
		}
		nf.Reverse()
		rd.Face = nf
		data[i] = rd
	}
	out := m.applyRebuild(data...)
	m.Sync()
	return out, nil
}

// CreatePolygon builds one new face connecting existing vertices
// identified by their weld group ids, without creating any vertices.
// If unordered is true, the points are treated as an arbitrary convex
// point set; otherwise they are an ordered boundary path, which may be
// concave. It fails without touching the mesh if the points cannot be
// triangulated.
func (m *Mesh) CreatePolygon(groups []int, unordered bool) (*Face, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	reps, err := m.groupRepresentatives(groups)
	if err != nil {
		return nil, err
	}
	points := make([]math32.Vector3, len(reps))
	for i, v := range reps {
		points[i] = m.Positions[v]
	}
	normal := triangulate.PlaneNormal(points)
	if normal == (math32.Vector3{}) {
		return nil, fmt.Errorf("create polygon: %w: points are collinear", ErrDegenerate)
	}
	tris, err := triangulate.Polygon(triangulate.Project(points, normal), unordered)
	if err != nil {
		logx.Warn("mesh.CreatePolygon: triangulation failed", "groups", groups, "err", err)
		return nil, err
	}
	for i, t := range tris {
		tris[i] = reps[t]
	}
	face := NewFace(tris)
	m.Faces = append(m.Faces, face)
	m.Sync()
	return face, nil
}

// groupRepresentatives resolves each weld group id to its smallest member
// vertex, dropping duplicate group ids while preserving order.
func (m *Mesh) groupRepresentatives(groups []int) ([]int, error) {
	rep := map[int]int{}
	for v, g := range m.Shared {
		if cur, ok := rep[g]; !ok || v < cur {
			rep[g] = v
		}
	}
	seen := map[int]bool{}
	reps := make([]int, 0, len(groups))
	for _, g := range groups {
		if seen[g] {
			continue
		}
		seen[g] = true
		v, ok := rep[g]
		if !ok {
			return nil, fmt.Errorf("%w: no vertices in weld group %d", ErrRange, g)
		}
		reps = append(reps, v)
	}
	return reps, nil
}

// CreateShapeFromPolygon resets the mesh and rebuilds it as a prism: the
// given ordered point loop is triangulated into one face, the face is
// duplicated and flipped into a cap, and the original is extruded by
// extrude along its normal. If extrude is negative or flipNormals is set
// (but not both), all faces are winding-reversed. Fewer than 3 points is
// a no-op that leaves the mesh empty, reported by the false result with
// a nil error; a polygon with area below [Epsilon] also leaves the mesh
// empty but reports [ErrDegenerate].
func (m *Mesh) CreateShapeFromPolygon(points []math32.Vector3, extrude float32, flipNormals bool) (bool, error) {
	if m == nil {
		return false, ErrNilMesh
	}
	m.Clear()
	if len(points) < 3 {
		m.Sync()
		return false, nil
	}
	normal := triangulate.PlaneNormal(points)
	if normal == (math32.Vector3{}) {
		m.Sync()
		return false, fmt.Errorf("create shape: %w: polygon area below epsilon", ErrDegenerate)
	}
	tris, err := triangulate.Polygon(triangulate.Project(points, normal), false)
	if err != nil {
		m.Clear()
		m.Sync()
		return false, err
	}
	face, err := m.AppendFace(points, nil, nil, NewFace(tris), nil)
	if err != nil {
		m.Clear()
		m.Sync()
		return false, err
	}
	if m.FaceArea(face) <= Epsilon {
		m.Clear()
		m.Sync()
		return false, fmt.Errorf("create shape: %w: polygon area below epsilon", ErrDegenerate)
	}
	if _, err := m.DuplicateAndFlip(face); err != nil {
		m.Clear()
		m.Sync()
		return false, err
	}
	if _, err := m.ExtrudeFaces([]*Face{face}, extrude); err != nil {
		m.Clear()
		m.Sync()
		return false, err
	}
	if (extrude < 0) != flipNormals {
		for _, f := range m.Faces {
			f.Reverse()
		}
	}
	m.Sync()
	return true, nil
}
