// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements an editable polygonal mesh for procedural
// construction and topology editing inside an engine editor.
//
// A [Mesh] holds parallel per-vertex attribute arrays (positions and
// optional colors, UVs, and normals), a table of [Face]s whose triangles
// index into those arrays, and a [SharedVertexMap] that groups coincident
// vertices into weld groups so they can be treated as one logical point.
// Adjacency between faces is derived on demand as a transient
// [WingedEdge] graph and rebuilt after every mutation; it is never cached.
//
// Every mutator validates its inputs, computes against staging records,
// and commits by replacing the mesh arrays as a group, so a failure part
// way through leaves the mesh untouched. The mesh is not safe for
// concurrent mutation; callers must serialize access to one instance.
package mesh

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Epsilon is the area cutoff below which triangles and polygons are
// considered degenerate.
const Epsilon = 1e-7

var (
	// ErrNilMesh indicates a nil mesh receiver or argument.
	ErrNilMesh = errors.New("mesh: nil mesh")

	// ErrNilFace indicates a nil face argument.
	ErrNilFace = errors.New("mesh: nil face")

	// ErrRange indicates an argument outside its valid range, such as a
	// vertex or face index that does not exist in the mesh.
	ErrRange = errors.New("mesh: argument out of range")

	// ErrDegenerate indicates geometry too small or flat to operate on,
	// such as a polygon whose area is below [Epsilon].
	ErrDegenerate = errors.New("mesh: degenerate geometry")

	// ErrFaceExists indicates that a face already connects the given edges.
	ErrFaceExists = errors.New("mesh: a face already exists between these edges")

	// ErrNonBoundary indicates an edge that already borders more than one
	// face where a boundary (perimeter) edge is required.
	ErrNonBoundary = errors.New("mesh: edge borders more than one face")
)

// Sink is the commit surface of the host engine mesh. After each
// successful structural edit the core pushes its current arrays through
// this interface; any downstream rendering or collision rebuild is the
// host's concern.
type Sink interface {
	// SetMeshData receives the complete current mesh arrays. The normals,
	// uvs, and colors slices are nil when the mesh does not carry the
	// corresponding attribute. The indexes slice concatenates the
	// triangles of all faces in face order.
	SetMeshData(positions, normals []math32.Vector3, uvs []math32.Vector2, colors []math32.Vector4, indexes []int)
}

// Mesh is an editable polygonal mesh: parallel per-vertex attribute
// arrays, a face table, and the shared-vertex (weld group) index.
type Mesh struct {
	// Positions are the per-vertex positions. The vertex count of the
	// mesh is the length of this slice.
	Positions []math32.Vector3

	// Colors are optional per-vertex colors; either nil or the same
	// length as Positions.
	Colors []math32.Vector4

	// UVs are optional per-vertex texture coordinates; either nil or the
	// same length as Positions.
	UVs []math32.Vector2

	// Normals are optional per-vertex normals, maintained by
	// [Mesh.RecalculateNormals]; either nil or the same length as Positions.
	Normals []math32.Vector3

	// Faces is the ordered face table.
	Faces []*Face

	// Shared maps each vertex index to its weld group. Every vertex
	// referenced by a face has an entry.
	Shared SharedVertexMap

	// Sink, if non-nil, receives the mesh arrays after each successful
	// structural edit via [Mesh.Sync].
	Sink Sink
}

// New returns a new empty mesh.
func New() *Mesh {
	return &Mesh{Shared: SharedVertexMap{}}
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.Positions)
}

// NumFaces returns the number of faces in the mesh.
func (m *Mesh) NumFaces() int {
	return len(m.Faces)
}

// HasColors reports whether the mesh carries per-vertex colors.
func (m *Mesh) HasColors() bool { return m.Colors != nil }

// HasUVs reports whether the mesh carries per-vertex UVs.
func (m *Mesh) HasUVs() bool { return m.UVs != nil }

// HasNormals reports whether the mesh carries per-vertex normals.
func (m *Mesh) HasNormals() bool { return m.Normals != nil }

// Clear resets the mesh to empty, dropping all vertices, faces, and
// weld groups. The Sink is retained.
func (m *Mesh) Clear() {
	m.Positions = nil
	m.Colors = nil
	m.UVs = nil
	m.Normals = nil
	m.Faces = nil
	m.Shared = SharedVertexMap{}
}

// Triangles returns the concatenated triangle indexes of all faces,
// in face order.
func (m *Mesh) Triangles() []int {
	n := 0
	for _, f := range m.Faces {
		n += len(f.Indexes)
	}
	tris := make([]int, 0, n)
	for _, f := range m.Faces {
		tris = append(tris, f.Indexes...)
	}
	return tris
}

// Sync pushes the current mesh arrays to the [Sink], if one is set.
// Mutators call it once after a successful commit; hosts can also call
// it directly after mutating arrays in place.
func (m *Mesh) Sync() {
	if m.Sink == nil {
		return
	}
	m.Sink.SetMeshData(m.Positions, m.Normals, m.UVs, m.Colors, m.Triangles())
}

// FaceIndex returns the index of the given face in the face table,
// or -1 if it is not part of this mesh.
func (m *Mesh) FaceIndex(f *Face) int {
	for i, mf := range m.Faces {
		if mf == f {
			return i
		}
	}
	return -1
}

// FaceNormal returns the unit normal of the given face, computed as the
// area-weighted sum of its triangle normals. Degenerate faces yield the
// zero vector.
func (m *Mesh) FaceNormal(f *Face) math32.Vector3 {
	var n math32.Vector3
	for i := 0; i+2 < len(f.Indexes); i += 3 {
		a := m.Positions[f.Indexes[i]]
		b := m.Positions[f.Indexes[i+1]]
		c := m.Positions[f.Indexes[i+2]]
		n = n.Add(b.Sub(a).Cross(c.Sub(a)))
	}
	if n.LengthSquared() <= Epsilon {
		return math32.Vector3{}
	}
	return n.Normal()
}

// FaceArea returns the total area of the given face's triangles.
func (m *Mesh) FaceArea(f *Face) float32 {
	var area float32
	for i := 0; i+2 < len(f.Indexes); i += 3 {
		a := m.Positions[f.Indexes[i]]
		b := m.Positions[f.Indexes[i+1]]
		c := m.Positions[f.Indexes[i+2]]
		area += b.Sub(a).Cross(c.Sub(a)).Length() / 2
	}
	return area
}

// FaceCentroid returns the mean position of the face's distinct vertices.
func (m *Mesh) FaceCentroid(f *Face) math32.Vector3 {
	var c math32.Vector3
	dis := f.Distinct()
	for _, v := range dis {
		c = c.Add(m.Positions[v])
	}
	return c.DivScalar(float32(len(dis)))
}

// checkFace verifies that the given face belongs to this mesh and that
// all of its indexes are valid vertex ids.
func (m *Mesh) checkFace(f *Face) error {
	if f == nil {
		return ErrNilFace
	}
	if m.FaceIndex(f) < 0 {
		return errors.New("mesh: face is not part of this mesh")
	}
	return m.checkIndexes(f.Indexes)
}

// checkIndexes verifies that all given vertex ids are in range.
func (m *Mesh) checkIndexes(idxs []int) error {
	n := m.NumVertices()
	for _, v := range idxs {
		if v < 0 || v >= n {
			return ErrRange
		}
	}
	return nil
}

// checkEdge verifies that both endpoints of the given edge are valid
// vertex ids.
func (m *Mesh) checkEdge(e Edge) error {
	if e.A < 0 || e.A >= m.NumVertices() || e.B < 0 || e.B >= m.NumVertices() {
		return ErrRange
	}
	return nil
}
