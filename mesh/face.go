// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"slices"

	"cogentcore.org/core/math32"
)

// UVSettings controls automatic UV projection for a face. It is carried
// along by topology operations but not otherwise interpreted by the core.
type UVSettings struct {
	// Rotation is the projection rotation in degrees.
	Rotation float32

	// Offset shifts the projected coordinates.
	Offset math32.Vector2

	// Scale scales the projected coordinates.
	Scale math32.Vector2

	// FlipU and FlipV mirror the projection on each axis.
	FlipU, FlipV bool

	// SwapUV exchanges the projected axes.
	SwapUV bool
}

// DefaultUVSettings returns the identity projection settings.
func DefaultUVSettings() UVSettings {
	return UVSettings{Scale: math32.Vec2(1, 1)}
}

// Face is one polygonal face of a [Mesh]: a flat list of triangle vertex
// ids into the mesh arrays, plus material and UV metadata. A face's
// triangles are assumed to be coplanar and consistently wound, together
// describing one polygon.
type Face struct {
	// Indexes is the flat triangle list; its length is a multiple of 3.
	Indexes []int

	// Material is the host material reference for this face.
	Material string

	// SmoothingGroup joins faces whose normals are averaged together;
	// 0 means no smoothing.
	SmoothingGroup int

	// ManualUV marks the face's UVs as hand-edited, exempting it from
	// automatic projection.
	ManualUV bool

	// UV holds the automatic projection settings when ManualUV is false.
	UV UVSettings
}

// NewFace returns a face over the given flat triangle list, which must
// have a length that is a multiple of 3. The slice is not copied.
func NewFace(indexes []int) *Face {
	return &Face{Indexes: indexes, UV: DefaultUVSettings()}
}

// Clone returns a deep copy of the face.
func (f *Face) Clone() *Face {
	nf := *f
	nf.Indexes = slices.Clone(f.Indexes)
	return &nf
}

// NumTriangles returns the number of triangles in the face.
func (f *Face) NumTriangles() int {
	return len(f.Indexes) / 3
}

// Distinct returns the sorted set of unique vertex ids the face touches.
func (f *Face) Distinct() []int {
	dis := slices.Clone(f.Indexes)
	slices.Sort(dis)
	return slices.Compact(dis)
}

// Contains reports whether the face touches the given vertex id.
func (f *Face) Contains(v int) bool {
	return slices.Contains(f.Indexes, v)
}

// Reverse flips the face's winding by reversing the flat triangle list,
// which reverses the orientation of every triangle.
func (f *Face) Reverse() {
	slices.Reverse(f.Indexes)
}

// Shift adds the given offset to every index in the face.
func (f *Face) Shift(offset int) {
	for i := range f.Indexes {
		f.Indexes[i] += offset
	}
}

// triangleEdges returns every directed edge of every triangle in the
// face, in winding order.
func (f *Face) triangleEdges() []Edge {
	edges := make([]Edge, 0, len(f.Indexes))
	for i := 0; i+2 < len(f.Indexes); i += 3 {
		a, b, c := f.Indexes[i], f.Indexes[i+1], f.Indexes[i+2]
		edges = append(edges, Edge{a, b}, Edge{b, c}, Edge{c, a})
	}
	return edges
}

// PerimeterEdges returns the face's boundary edges: triangle edges whose
// weld-space form appears exactly once within the face. Edges retain the
// direction of the face winding and are chained end to end where the
// boundary forms a simple loop.
func (f *Face) PerimeterEdges(shared SharedVertexMap) []Edge {
	all := f.triangleEdges()
	count := map[CommonEdge]int{}
	for _, e := range all {
		count[shared.CommonEdge(e).Normalized()]++
	}
	per := make([]Edge, 0, len(all))
	for _, e := range all {
		if count[shared.CommonEdge(e).Normalized()] == 1 {
			per = append(per, e)
		}
	}
	return chainEdges(per, shared)
}

// chainEdges orders directed edges into a loop by matching each edge's
// end group to the next edge's start group. Edges that cannot be chained
// (non-simple boundaries) are appended unordered at the end.
func chainEdges(edges []Edge, shared SharedVertexMap) []Edge {
	if len(edges) < 3 {
		return edges
	}
	rest := slices.Clone(edges)
	out := make([]Edge, 0, len(edges))
	out = append(out, rest[0])
	rest = rest[1:]
	for len(rest) > 0 {
		tail := shared.Group(out[len(out)-1].B)
		found := -1
		for i, e := range rest {
			if shared.Group(e.A) == tail {
				found = i
				break
			}
		}
		if found < 0 {
			out = append(out, rest...)
			break
		}
		out = append(out, rest[found])
		rest = append(rest[:found], rest[found+1:]...)
	}
	return out
}
