// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/probuild/base/logx"
)

// ExtrudeEdges appends one new quad per given edge, bridging the edge to
// a copy of itself translated by distance along the in-plane outward
// normal of the bordering face (edge direction crossed with the face
// normal, oriented away from the face centroid). The quad's near side is
// welded into the source edge's weld groups and its material and UV
// settings are copied from the bordering face. Each edge must be a
// boundary edge (bordering exactly one face) unless allowNonBoundary is
// set. It returns the translated far edges, parallel to the input.
func (m *Mesh) ExtrudeEdges(edges []Edge, distance float32, allowNonBoundary bool) ([]Edge, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrRange)
	}
	wings := m.WingedEdges()
	data := make([]*FaceRebuildData, 0, len(edges))
	for _, e := range edges {
		if err := m.checkEdge(e); err != nil {
			return nil, err
		}
		ce := m.Shared.CommonEdge(e)
		var wing *WingedEdge
		for _, w := range wings {
			if w.Common.Equal(ce) {
				wing = w
				break
			}
		}
		if wing == nil {
			return nil, fmt.Errorf("%w: edge (%d,%d) is not part of any face", ErrRange, e.A, e.B)
		}
		if wing.Opposite != nil && !allowNonBoundary {
			logx.Warn("mesh.ExtrudeEdges: edge is not a boundary edge", "edge", wing.Edge)
			return nil, ErrNonBoundary
		}

		f := wing.Face
		n := m.FaceNormal(f)
		a, b := wing.Edge.A, wing.Edge.B
		pa, pb := m.Positions[a], m.Positions[b]
		out := pb.Sub(pa).Normal().Cross(n)
		if out.LengthSquared() <= Epsilon {
			return nil, fmt.Errorf("%w: zero-length edge", ErrDegenerate)
		}
		out = out.Normal()
		mid := pa.Add(pb).MulScalar(0.5)
		if out.Dot(mid.Sub(m.FaceCentroid(f))) < 0 {
			out = out.Negate()
		}
		off := out.MulScalar(distance)

		rd := &FaceRebuildData{
			Positions: []math32.Vector3{pa, pb, pb.Add(off), pa.Add(off)},
			Face: &Face{
				Indexes:        []int{0, 1, 2, 2, 3, 0},
				Material:       f.Material,
				SmoothingGroup: f.SmoothingGroup,
				ManualUV:       f.ManualUV,
				UV:             f.UV,
			},
			Shared: []int{m.Shared.Group(a), m.Shared.Group(b), -1, -1},
		}
		if m.HasColors() {
			rd.Colors = []math32.Vector4{m.Colors[a], m.Colors[b], m.Colors[b], m.Colors[a]}
		}
		if m.HasUVs() {
			rd.UVs = []math32.Vector2{m.UVs[a], m.UVs[b], m.UVs[b], m.UVs[a]}
		}
		// keep the flap's orientation consistent with the source face
		q := rd.Positions
		if q[1].Sub(q[0]).Cross(q[2].Sub(q[0])).Dot(n) < 0 {
			rd.Face.Reverse()
		}
		data = append(data, rd)
	}

	base := m.NumVertices()
	m.applyRebuild(data...)
	m.Sync()
	far := make([]Edge, len(data))
	for i := range data {
		far[i] = Edge{base + 4*i + 2, base + 4*i + 3}
	}
	return far, nil
}

// ExtrudeFaces extrudes each given face individually by distance along
// its own normal: the face's vertices are split into fresh weld groups,
// one side quad is appended per perimeter edge (welded to the neighbors
// below and the moved face above), and the face's vertices are translated.
// It returns the new side faces.
func (m *Mesh) ExtrudeFaces(faces []*Face, distance float32) ([]*Face, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: no faces", ErrRange)
	}

	type plan struct {
		face    *Face
		offset  math32.Vector3
		regroup map[int]int // old group -> fresh group for the face's vertices
	}
	next := m.Shared.NextGroup()
	plans := make([]plan, 0, len(faces))
	var data []*FaceRebuildData
	for _, f := range faces {
		if err := m.checkFace(f); err != nil {
			return nil, err
		}
		n := m.FaceNormal(f)
		if n == (math32.Vector3{}) {
			return nil, fmt.Errorf("%w: face has no normal", ErrDegenerate)
		}
		off := n.MulScalar(distance)
		regroup := map[int]int{}
		for _, v := range f.Distinct() {
			g := m.Shared.Group(v)
			if _, ok := regroup[g]; !ok {
				regroup[g] = next
				next++
			}
		}
		plans = append(plans, plan{face: f, offset: off, regroup: regroup})

		for _, e := range f.PerimeterEdges(m.Shared) {
			a, b := e.A, e.B
			pa, pb := m.Positions[a], m.Positions[b]
			ga, gb := m.Shared.Group(a), m.Shared.Group(b)
			rd := &FaceRebuildData{
				Positions: []math32.Vector3{pa, pb, pb.Add(off), pa.Add(off)},
				Face: &Face{
					Indexes:        []int{0, 1, 2, 2, 3, 0},
					Material:       f.Material,
					SmoothingGroup: f.SmoothingGroup,
					ManualUV:       f.ManualUV,
					UV:             f.UV,
				},
				Shared: []int{ga, gb, regroup[gb], regroup[ga]},
			}
			if m.HasColors() {
				rd.Colors = []math32.Vector4{m.Colors[a], m.Colors[b], m.Colors[b], m.Colors[a]}
			}
			if m.HasUVs() {
				rd.UVs = []math32.Vector2{m.UVs[a], m.UVs[b], m.UVs[b], m.UVs[a]}
			}
			data = append(data, rd)
		}
	}

	// commit: split the faces' weld groups, append the side quads, then
	// move the faces
	for _, p := range plans {
		for _, v := range p.face.Distinct() {
			m.Shared[v] = p.regroup[m.Shared.Group(v)]
		}
	}
	sides := m.applyRebuild(data...)
	moved := map[int]bool{}
	for _, p := range plans {
		for _, v := range p.face.Distinct() {
			if moved[v] {
				continue
			}
			moved[v] = true
			m.Positions[v] = m.Positions[v].Add(p.offset)
		}
	}
	m.Sync()
	return sides, nil
}
