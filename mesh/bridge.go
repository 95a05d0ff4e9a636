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

// Bridge creates one new face connecting the two given edges, without
// creating any vertices. If enforcePerimeterOnly is set, it fails when
// either edge already borders more than one face. It always fails when a
// face already spans both edges. When the edges share an endpoint (by
// weld group) the result degenerates to a triangle; otherwise it is a
// quad whose diagonal pairing is chosen so the quad does not
// self-intersect in its projected plane. Material and UV settings are
// copied from the face bordering edge a, or failing that, edge b.
func (m *Mesh) Bridge(a, b Edge, enforcePerimeterOnly bool) (*Face, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if err := m.checkEdge(a); err != nil {
		return nil, err
	}
	if err := m.checkEdge(b); err != nil {
		return nil, err
	}
	ca := m.Shared.CommonEdge(a)
	cb := m.Shared.CommonEdge(b)
	if ca.Equal(cb) {
		return nil, fmt.Errorf("%w: cannot bridge an edge to itself", ErrRange)
	}

	var facesA, facesB []*Face
	for _, f := range m.Faces {
		spansA, spansB := false, false
		for _, e := range f.PerimeterEdges(m.Shared) {
			ce := m.Shared.CommonEdge(e)
			spansA = spansA || ce.Equal(ca)
			spansB = spansB || ce.Equal(cb)
		}
		if spansA && spansB {
			logx.Warn("mesh.Bridge: a face already exists between these edges")
			return nil, ErrFaceExists
		}
		if spansA {
			facesA = append(facesA, f)
		}
		if spansB {
			facesB = append(facesB, f)
		}
	}
	if enforcePerimeterOnly && (len(facesA) > 1 || len(facesB) > 1) {
		logx.Warn("mesh.Bridge: edge is interior, not a perimeter edge")
		return nil, ErrNonBoundary
	}

	source := (*Face)(nil)
	if len(facesA) > 0 {
		source = facesA[0]
	} else if len(facesB) > 0 {
		source = facesB[0]
	}

	var loop []int
	if g, ok := sharedEndpoint(ca, cb); ok {
		// edges share a weld group: triangle from the three distinct points
		x := b.A
		if m.Shared.Group(x) == g {
			x = b.B
		}
		loop = []int{a.A, a.B, x}
	} else {
		var ok bool
		loop, ok = quadLoop(m, a, b)
		if !ok {
			return nil, fmt.Errorf("%w: no non-intersecting quad between edges", ErrDegenerate)
		}
	}

	var tris []int
	if len(loop) == 3 {
		tris = []int{loop[0], loop[1], loop[2]}
	} else {
		tris = []int{loop[0], loop[1], loop[2], loop[2], loop[3], loop[0]}
	}
	face := NewFace(tris)
	if source != nil {
		face.Material = source.Material
		face.SmoothingGroup = source.SmoothingGroup
		face.ManualUV = source.ManualUV
		face.UV = source.UV
		if m.windingConflicts(source, face) {
			face.Reverse()
		}
	}
	m.Faces = append(m.Faces, face)
	m.Sync()
	return face, nil
}

// sharedEndpoint returns the weld group shared by the two common edges,
// if any.
func sharedEndpoint(a, b CommonEdge) (int, bool) {
	switch {
	case b.Contains(a.A):
		return a.A, true
	case b.Contains(a.B):
		return a.B, true
	}
	return 0, false
}

// quadLoop orders the four vertices of edges a and b into a
// non-self-intersecting boundary path, testing which of the two possible
// diagonal pairings avoids crossing connector segments in the projected
// plane of the four points.
func quadLoop(m *Mesh, a, b Edge) ([]int, bool) {
	pts := []math32.Vector3{
		m.Positions[a.A], m.Positions[a.B],
		m.Positions[b.A], m.Positions[b.B],
	}
	normal := triangulate.PlaneNormal(pts)
	if normal == (math32.Vector3{}) {
		// edges are collinear overall; either pairing is as good
		return []int{a.A, a.B, b.A, b.B}, true
	}
	p := triangulate.Project(pts, normal)

	// candidate 1 connects a.B-b.A and b.B-a.A; candidate 2 swaps b
	if !segmentsCross(p[1], p[2], p[3], p[0]) && !segmentsCross(p[0], p[1], p[2], p[3]) {
		return []int{a.A, a.B, b.A, b.B}, true
	}
	if !segmentsCross(p[1], p[3], p[2], p[0]) && !segmentsCross(p[0], p[1], p[3], p[2]) {
		return []int{a.A, a.B, b.B, b.A}, true
	}
	return nil, false
}

// windingConflicts reports whether the new face traverses a common edge
// of the source face in the same direction the source does, which would
// give the two faces opposing normals.
func (m *Mesh) windingConflicts(source, nf *Face) bool {
	dirs := map[CommonEdge]bool{}
	for _, e := range source.PerimeterEdges(m.Shared) {
		dirs[m.Shared.CommonEdge(e)] = true
	}
	for _, e := range nf.triangleEdges() {
		if dirs[m.Shared.CommonEdge(e)] {
			return true
		}
	}
	return false
}

// segmentsCross reports whether the open segments p1-p2 and q1-q2
// properly intersect, excluding shared endpoints.
func segmentsCross(p1, p2, q1, q2 math32.Vector2) bool {
	const eps = Epsilon
	d1 := cross2d(p2.Sub(p1), q1.Sub(p1))
	d2 := cross2d(p2.Sub(p1), q2.Sub(p1))
	d3 := cross2d(q2.Sub(q1), p1.Sub(q1))
	d4 := cross2d(q2.Sub(q1), p2.Sub(q1))
	return ((d1 > eps && d2 < -eps) || (d1 < -eps && d2 > eps)) &&
		((d3 > eps && d4 < -eps) || (d3 < -eps && d4 > eps))
}

func cross2d(a, b math32.Vector2) float32 {
	return a.X*b.Y - a.Y*b.X
}
