// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triangulate converts planar polygons into triangle index lists.
// Ordered boundary paths are ear-clipped, which allows concavity; unordered
// point sets are sorted by angle around their centroid and fanned, which
// treats them as convex. Points are projected from 3D into the polygon
// plane with [Project] before triangulation.
package triangulate

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	cmath32 "github.com/chewxy/math32"
)

// Epsilon is the squared-distance and area cutoff below which points are
// considered coincident and polygons degenerate.
const Epsilon = 1e-7

var (
	// ErrTooFewPoints indicates fewer than 3 unique points.
	ErrTooFewPoints = errors.New("triangulate: too few unique points")

	// ErrBadWinding indicates that no valid triangulation was found,
	// typically because the path is self-intersecting or incorrectly wound.
	ErrBadWinding = errors.New("triangulate: no valid triangulation, path may be incorrectly wound")
)

// Polygon triangulates the given 2D polygon, returning indexes into points
// in groups of three. If unordered is true, the points are treated as an
// arbitrary convex point cloud: they are sorted by angle around their
// centroid and fan-triangulated. Otherwise the points are treated as an
// ordered boundary path and ear-clipped, allowing concavity. Triangles are
// wound counter-clockwise in the plane.
func Polygon(points []math32.Vector2, unordered bool) ([]int, error) {
	if countUnique(points) < 3 {
		return nil, ErrTooFewPoints
	}
	if unordered {
		return fan(points), nil
	}
	return earClip(points)
}

// PolygonArea returns the signed area of the given 2D polygon boundary,
// positive for counter-clockwise winding.
func PolygonArea(points []math32.Vector2) float32 {
	var sum float32
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum / 2
}

// Project maps 3D points lying in (or near) a plane with the given normal
// into 2D plane coordinates, preserving orientation: a loop that is
// counter-clockwise when viewed from the normal side has positive
// [PolygonArea] after projection.
func Project(points []math32.Vector3, normal math32.Vector3) []math32.Vector2 {
	u, v := planeBasis(normal)
	out := make([]math32.Vector2, len(points))
	for i, p := range points {
		out[i] = math32.Vec2(p.Dot(u), p.Dot(v))
	}
	return out
}

// PlaneNormal returns a unit normal for the plane best containing the given
// point loop, using the Newell method, falling back to the first
// non-collinear triple when the loop cancels out (e.g. unordered input).
// It returns the zero vector if all points are collinear.
func PlaneNormal(points []math32.Vector3) math32.Vector3 {
	var n math32.Vector3
	ln := len(points)
	for i := 0; i < ln; i++ {
		p, q := points[i], points[(i+1)%ln]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	if n.LengthSquared() > Epsilon {
		return n.Normal()
	}
	for i := 0; i+2 < ln; i++ {
		c := points[i+1].Sub(points[i]).Cross(points[i+2].Sub(points[i]))
		if c.LengthSquared() > Epsilon {
			return c.Normal()
		}
	}
	return math32.Vector3{}
}

// planeBasis returns unit tangent vectors u, v such that (u, v, normal)
// is right-handed.
func planeBasis(normal math32.Vector3) (u, v math32.Vector3) {
	n := normal.Normal()
	a := math32.Vec3(1, 0, 0)
	if cmath32.Abs(n.X) > cmath32.Abs(n.Y) {
		a = math32.Vec3(0, 1, 0)
	}
	u = a.Cross(n).Normal()
	v = n.Cross(u)
	return u, v
}

func countUnique(points []math32.Vector2) int {
	n := 0
	for i, p := range points {
		dup := false
		for _, q := range points[:i] {
			if p.DistanceToSquared(q) < Epsilon {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}

// fan sorts point indexes by angle around the centroid and emits a
// triangle fan, treating the point set as convex.
func fan(points []math32.Vector2) []int {
	n := len(points)
	var ctr math32.Vector2
	for _, p := range points {
		ctr = ctr.Add(p)
	}
	ctr = ctr.DivScalar(float32(n))

	order := make([]int, n)
	angles := make([]float32, n)
	for i, p := range points {
		order[i] = i
		angles[i] = cmath32.Atan2(p.Y-ctr.Y, p.X-ctr.X)
	}
	for i := 1; i < n; i++ { // insertion sort keeps ties stable
		for j := i; j > 0 && angles[order[j]] < angles[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	tris := make([]int, 0, (n-2)*3)
	for i := 1; i+1 < n; i++ {
		tris = append(tris, order[0], order[i], order[i+1])
	}
	return tris
}

// earClip triangulates an ordered boundary path. A clockwise path is
// reversed first so that clipping always works on counter-clockwise input.
func earClip(points []math32.Vector2) ([]int, error) {
	n := len(points)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if PolygonArea(points) < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	tris := make([]int, 0, (n-2)*3)
	for len(idx) > 3 {
		ear := findEar(points, idx, false)
		if ear < 0 {
			// allow a zero-area ear so collinear runs make progress
			ear = findEar(points, idx, true)
		}
		if ear < 0 {
			return nil, ErrBadWinding
		}
		ln := len(idx)
		tris = append(tris, idx[(ear+ln-1)%ln], idx[ear], idx[(ear+1)%ln])
		idx = append(idx[:ear], idx[ear+1:]...)
	}
	tris = append(tris, idx[0], idx[1], idx[2])
	return tris, nil
}

// findEar returns the position in idx of a clippable ear, or -1. An ear
// is a convex vertex whose triangle holds no other polygon vertex, on or
// inside its boundary; the on-boundary exclusion keeps collinear runs
// (e.g. vertices inserted along one segment) attached to a real apex.
// If flat is true, zero-area (collinear) ears are accepted instead, to
// make progress on spikes and duplicated vertices.
func findEar(points []math32.Vector2, idx []int, flat bool) int {
	ln := len(idx)
	for i := 0; i < ln; i++ {
		a := points[idx[(i+ln-1)%ln]]
		b := points[idx[i]]
		c := points[idx[(i+1)%ln]]
		cr := cross2(b.Sub(a), c.Sub(b))
		if flat {
			if cr > Epsilon || cr < -Epsilon {
				continue
			}
			return i
		}
		if cr <= Epsilon {
			continue
		}
		contains := false
		for j := 0; j < ln; j++ {
			if j == i || j == (i+ln-1)%ln || j == (i+1)%ln {
				continue
			}
			if pointInTriangle(points[idx[j]], a, b, c) {
				contains = true
				break
			}
		}
		if !contains {
			return i
		}
	}
	return -1
}

func cross2(a, b math32.Vector2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// pointInTriangle reports whether p is inside or on the boundary of the
// counter-clockwise triangle abc.
func pointInTriangle(p, a, b, c math32.Vector2) bool {
	d1 := cross2(b.Sub(a), p.Sub(a))
	d2 := cross2(c.Sub(b), p.Sub(b))
	d3 := cross2(a.Sub(c), p.Sub(c))
	return d1 >= -Epsilon && d2 >= -Epsilon && d3 >= -Epsilon
}
