// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"iter"
	"slices"
)

// WingedEdge is one derived, transient adjacency record per perimeter
// edge per face. Opposite links the winged edge on the adjacent face
// sharing the same common edge; it is nil for boundary edges and for
// non-manifold edges (more than two faces on one common edge), which are
// deliberately treated identically as "no singular partner". Next and
// Prev circulate the owning face's boundary in winding order.
//
// Winged edges are rebuilt from the current face table and shared-vertex
// index on every query; any topology change invalidates them.
type WingedEdge struct {
	// Edge is the local edge, directed with the face winding.
	Edge Edge

	// Common is the edge in weld-group space, used for cross-face matching.
	Common CommonEdge

	// FaceIndex is the index of the owning face in the face table.
	FaceIndex int

	// Face is the owning face.
	Face *Face

	// Next and Prev are the neighboring winged edges around the owning
	// face's boundary.
	Next, Prev *WingedEdge

	// Opposite is the winged edge on the adjacent face sharing the same
	// common edge, or nil for boundary and non-manifold edges.
	Opposite *WingedEdge
}

// WingedEdges builds the winged-edge adjacency graph over the current
// face table and shared-vertex index. If face indexes are given, the
// graph is restricted to that subset; opposite links then only connect
// faces within the subset. The result is owned by the caller and must be
// discarded after any mutation.
func (m *Mesh) WingedEdges(faces ...int) []*WingedEdge {
	fidxs := faces
	if len(fidxs) == 0 {
		fidxs = make([]int, len(m.Faces))
		for i := range m.Faces {
			fidxs[i] = i
		}
	}
	var wings []*WingedEdge
	byCommon := map[CommonEdge][]*WingedEdge{}
	for _, fi := range fidxs {
		f := m.Faces[fi]
		per := f.PerimeterEdges(m.Shared)
		if len(per) == 0 {
			continue
		}
		ring := make([]*WingedEdge, len(per))
		for i, e := range per {
			w := &WingedEdge{
				Edge:      e,
				Common:    m.Shared.CommonEdge(e),
				FaceIndex: fi,
				Face:      f,
			}
			ring[i] = w
			key := w.Common.Normalized()
			byCommon[key] = append(byCommon[key], w)
		}
		for i, w := range ring {
			w.Next = ring[(i+1)%len(ring)]
			w.Prev = ring[(i+len(ring)-1)%len(ring)]
		}
		wings = append(wings, ring...)
	}
	// exactly two local edges on a common edge are mutual opposites;
	// one, or more than two, all get nil
	for _, group := range byCommon {
		if len(group) == 2 {
			group[0].Opposite = group[1]
			group[1].Opposite = group[0]
		}
	}
	return wings
}

// Loop returns an iterator over the winged edges circulating the same
// face, starting at w, in winding order. The sequence is finite and can
// be restarted by ranging again.
func (w *WingedEdge) Loop() iter.Seq[*WingedEdge] {
	return func(yield func(*WingedEdge) bool) {
		for c := w; ; c = c.Next {
			if !yield(c) {
				return
			}
			if c.Next == w || c.Next == nil {
				return
			}
		}
	}
}

// FaceIslands groups faces into connected islands: faces belong to the
// same island if they can reach each other by walking opposite links.
// If face indexes are given, only that subset is considered, and
// connectivity through excluded faces does not count. Each island is a
// sorted slice of face indexes.
func (m *Mesh) FaceIslands(faces ...int) [][]int {
	wings := m.WingedEdges(faces...)
	byFace := map[int][]*WingedEdge{}
	for _, w := range wings {
		byFace[w.FaceIndex] = append(byFace[w.FaceIndex], w)
	}
	fidxs := faces
	if len(fidxs) == 0 {
		fidxs = make([]int, len(m.Faces))
		for i := range m.Faces {
			fidxs[i] = i
		}
	}
	visited := map[int]bool{}
	var islands [][]int
	for _, start := range fidxs {
		if visited[start] {
			continue
		}
		island := []int{}
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			fi := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			island = append(island, fi)
			for _, w := range byFace[fi] {
				if w.Opposite == nil || visited[w.Opposite.FaceIndex] {
					continue
				}
				visited[w.Opposite.FaceIndex] = true
				stack = append(stack, w.Opposite.FaceIndex)
			}
		}
		slices.Sort(island)
		islands = append(islands, island)
	}
	return islands
}
