// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"slices"
	"sort"

	"cogentcore.org/core/math32"
	"cogentcore.org/probuild/triangulate"
)

// MaxEdgeSubdivisions is the upper bound on the number of vertices that
// [Mesh.AppendVerticesToEdge] inserts per edge.
const MaxEdgeSubdivisions = 512

// bvert is one vertex on a face boundary being rebuilt: either an
// existing mesh vertex or a newly interpolated one.
type bvert struct {
	pos   math32.Vector3
	color math32.Vector4
	uv    math32.Vector2
	group int // weld group hint
}

// AppendVerticesToFace inserts the given points into the face's boundary.
// Each point is snapped onto its nearest boundary segment at the
// proportional split position between that segment's endpoints, the
// enlarged boundary is re-triangulated, and the new face replaces the
// original, winding-reversed if its normal flipped. The mesh is untouched
// if re-triangulation fails.
func (m *Mesh) AppendVerticesToFace(face *Face, points []math32.Vector3) (*Face, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if err := m.checkFace(face); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points to insert", ErrRange)
	}
	per := face.PerimeterEdges(m.Shared)
	if len(per) < 3 {
		return nil, fmt.Errorf("%w: face has no closed boundary", ErrDegenerate)
	}

	boundary := make([]bvert, 0, len(per)+len(points))
	for _, e := range per {
		boundary = append(boundary, m.boundaryVertex(e.A))
	}
	for _, p := range points {
		seg, t := nearestSegment(boundary, p)
		bv := lerpBoundary(boundary[seg], boundary[(seg+1)%len(boundary)], t)
		boundary = slices.Insert(boundary, seg+1, bv)
	}

	rd, err := m.rebuildLoop(face, boundary, m.FaceNormal(face))
	if err != nil {
		return nil, err
	}

	fi := m.FaceIndex(face)
	nf := m.applyRebuild(rd)[0]
	m.Faces = slices.Delete(m.Faces, fi, fi+1)
	m.removeUnusedVertices()
	m.Sync()
	return nf, nil
}

// AppendVerticesToEdge evenly subdivides each given edge by inserting
// count new vertices at fractions 1/(count+1) .. count/(count+1) along
// it. Every face bordering a subdivided edge has its boundary rebuilt and
// re-triangulated to incorporate the new vertices, which are welded
// across the faces sharing each edge. count must be in
// [1, MaxEdgeSubdivisions]. It returns the new edges along each
// subdivided edge: the segments between consecutive inserted vertices and
// their original endpoints, without duplicates. Vertex ids of affected
// faces shift; the returned edges account for this.
func (m *Mesh) AppendVerticesToEdge(edges []Edge, count int) ([]Edge, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if count < 1 || count > MaxEdgeSubdivisions {
		return nil, fmt.Errorf("%w: count %d outside [1,%d]", ErrRange, count, MaxEdgeSubdivisions)
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrRange)
	}

	// dedupe input edges in weld space, keeping a representative local
	// edge directed from the smaller group id
	reps := map[CommonEdge]Edge{}
	var order []CommonEdge
	for _, e := range edges {
		if err := m.checkEdge(e); err != nil {
			return nil, err
		}
		ce := m.Shared.CommonEdge(e)
		key := ce.Normalized()
		if _, ok := reps[key]; ok {
			continue
		}
		if ce != key {
			e = e.Reversed()
		}
		reps[key] = e
		order = append(order, key)
	}

	// faces bordering any input edge
	affected := map[int]bool{}
	matched := map[CommonEdge]bool{}
	for fi, f := range m.Faces {
		for _, e := range f.PerimeterEdges(m.Shared) {
			key := m.Shared.CommonEdge(e).Normalized()
			if _, ok := reps[key]; ok {
				affected[fi] = true
				matched[key] = true
			}
		}
	}
	for _, key := range order {
		if !matched[key] {
			return nil, fmt.Errorf("%w: edge (%d,%d) is not part of any face", ErrRange, key.A, key.B)
		}
	}

	// pre-allocate weld groups and interpolate the inserted vertices,
	// shared across all faces bordering each edge
	next := m.Shared.NextGroup()
	inserted := map[CommonEdge][]bvert{}
	for _, key := range order {
		e := reps[key]
		row := make([]bvert, count)
		for i := 0; i < count; i++ {
			t := float32(i+1) / float32(count+1)
			row[i] = lerpBoundary(m.boundaryVertex(e.A), m.boundaryVertex(e.B), t)
			row[i].group = next
			next++
		}
		inserted[key] = row
	}

	// stage a rebuilt boundary for every affected face
	fidxs := make([]int, 0, len(affected))
	for fi := range affected {
		fidxs = append(fidxs, fi)
	}
	sort.Ints(fidxs)
	data := make([]*FaceRebuildData, 0, len(fidxs))
	oldFaces := make([]*Face, 0, len(fidxs))
	for _, fi := range fidxs {
		f := m.Faces[fi]
		per := f.PerimeterEdges(m.Shared)
		if len(per) < 3 {
			return nil, fmt.Errorf("%w: face %d has no closed boundary", ErrDegenerate, fi)
		}
		boundary := make([]bvert, 0, len(per)+count)
		for _, e := range per {
			boundary = append(boundary, m.boundaryVertex(e.A))
			key := m.Shared.CommonEdge(e).Normalized()
			row, ok := inserted[key]
			if !ok {
				continue
			}
			if m.Shared.Group(e.A) == key.A {
				boundary = append(boundary, row...)
			} else {
				for i := len(row) - 1; i >= 0; i-- {
					boundary = append(boundary, row[i])
				}
			}
		}
		rd, err := m.rebuildLoop(f, boundary, m.FaceNormal(f))
		if err != nil {
			return nil, err
		}
		data = append(data, rd)
		oldFaces = append(oldFaces, f)
	}

	// commit
	m.applyRebuild(data...)
	m.Faces = slices.DeleteFunc(m.Faces, func(f *Face) bool {
		return slices.Contains(oldFaces, f)
	})
	m.removeUnusedVertices()
	m.Sync()

	// resolve the chain of new edges through the final vertex ids
	rep := map[int]int{}
	for v, g := range m.Shared {
		if cur, ok := rep[g]; !ok || v < cur {
			rep[g] = v
		}
	}
	var out []Edge
	for _, key := range order {
		chain := make([]int, 0, count+2)
		chain = append(chain, key.A)
		for _, bv := range inserted[key] {
			chain = append(chain, bv.group)
		}
		chain = append(chain, key.B)
		for i := 0; i+1 < len(chain); i++ {
			a, aok := rep[chain[i]]
			b, bok := rep[chain[i+1]]
			if aok && bok {
				out = append(out, Edge{a, b})
			}
		}
	}
	return out, nil
}

// boundaryVertex captures an existing vertex as a boundary rebuild entry,
// keeping its weld group.
func (m *Mesh) boundaryVertex(v int) bvert {
	bv := bvert{pos: m.Positions[v], group: m.Shared.Group(v)}
	if m.HasColors() {
		bv.color = m.Colors[v]
	}
	if m.HasUVs() {
		bv.uv = m.UVs[v]
	}
	return bv
}

// lerpBoundary interpolates a new boundary vertex between a and b at
// fraction t, in a fresh weld group.
func lerpBoundary(a, b bvert, t float32) bvert {
	return bvert{
		pos:   a.pos.Lerp(b.pos, t),
		color: a.color.Lerp(b.color, t),
		uv:    a.uv.Lerp(b.uv, t),
		group: -1,
	}
}

// nearestSegment returns the boundary segment closest to p, and the
// clamped fraction along it of the closest point.
func nearestSegment(boundary []bvert, p math32.Vector3) (int, float32) {
	best, bestT, bestD := 0, float32(0), float32(-1)
	for i := range boundary {
		a := boundary[i].pos
		b := boundary[(i+1)%len(boundary)].pos
		ab := b.Sub(a)
		t := float32(0)
		if l2 := ab.LengthSquared(); l2 > 0 {
			t = math32.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
		}
		d := p.DistanceToSquared(a.Add(ab.MulScalar(t)))
		if bestD < 0 || d < bestD {
			best, bestT, bestD = i, t, d
		}
	}
	return best, bestT
}

// rebuildLoop stages a replacement face over the given boundary loop:
// it projects the loop into the plane of oldNormal, triangulates it as an
// ordered path, reverses the result if its normal flipped relative to
// oldNormal, and copies the face's material and UV settings.
func (m *Mesh) rebuildLoop(f *Face, boundary []bvert, oldNormal math32.Vector3) (*FaceRebuildData, error) {
	positions := make([]math32.Vector3, len(boundary))
	groups := make([]int, len(boundary))
	for i, bv := range boundary {
		positions[i] = bv.pos
		groups[i] = bv.group
	}
	normal := oldNormal
	if normal == (math32.Vector3{}) {
		normal = triangulate.PlaneNormal(positions)
	}
	tris, err := triangulate.Polygon(triangulate.Project(positions, normal), false)
	if err != nil {
		return nil, err
	}
	nf := &Face{
		Indexes:        tris,
		Material:       f.Material,
		SmoothingGroup: f.SmoothingGroup,
		ManualUV:       f.ManualUV,
		UV:             f.UV,
	}
	var n math32.Vector3
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := positions[tris[i]], positions[tris[i+1]], positions[tris[i+2]]
		n = n.Add(b.Sub(a).Cross(c.Sub(a)))
	}
	if n.Dot(oldNormal) < 0 {
		nf.Reverse()
	}
	rd := &FaceRebuildData{Positions: positions, Face: nf, Shared: groups}
	if m.HasColors() {
		rd.Colors = make([]math32.Vector4, len(boundary))
		for i, bv := range boundary {
			rd.Colors[i] = bv.color
		}
	}
	if m.HasUVs() {
		rd.UVs = make([]math32.Vector2, len(boundary))
		for i, bv := range boundary {
			rd.UVs[i] = bv.uv
		}
	}
	return rd, nil
}
