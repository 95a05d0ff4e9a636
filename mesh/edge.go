// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Edge is a pair of vertex ids, local to a specific face. Direction
// (A before B) follows face winding where that matters; equality is
// order-insensitive.
type Edge struct {
	A, B int
}

// NewEdge returns an edge connecting the two given vertex ids.
func NewEdge(a, b int) Edge {
	return Edge{a, b}
}

// Equal reports whether the two edges connect the same vertex ids,
// in either order.
func (e Edge) Equal(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// Contains reports whether the edge touches the given vertex id.
func (e Edge) Contains(v int) bool {
	return e.A == v || e.B == v
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge {
	return Edge{e.B, e.A}
}

// CommonEdge is an edge expressed in weld-group ids rather than raw
// vertex ids. Two local edges on different faces are adjacency-equivalent
// iff their common edges match in either order.
type CommonEdge struct {
	A, B int
}

// Normalized returns the common edge with its smaller group id first,
// suitable for use as a map key.
func (c CommonEdge) Normalized() CommonEdge {
	if c.B < c.A {
		return CommonEdge{c.B, c.A}
	}
	return c
}

// Equal reports whether the two common edges connect the same weld
// groups, in either order.
func (c CommonEdge) Equal(o CommonEdge) bool {
	return (c.A == o.A && c.B == o.B) || (c.A == o.B && c.B == o.A)
}

// Contains reports whether the common edge touches the given group id.
func (c CommonEdge) Contains(group int) bool {
	return c.A == group || c.B == group
}
