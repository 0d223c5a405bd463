// seehuhn.de/go/wsi - polygon masking for multi-resolution slide images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package geometry provides polygon predicates and Boolean operations
// over simple polygons in pixel coordinates.
//
// Polygons are ordered vertex sequences. A closed polygon repeats its
// first vertex at the end; all operations in this package accept both
// closed and open vertex lists and treat the last edge as implicit
// when the list is open. "Simple" means the boundary does not
// self-intersect; operations that require simplicity check it and
// fail with ErrNonSimple when it is violated.
package geometry

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is an ordered sequence of vertices. Insertion order is
// significant: it defines the edges P[i]→P[i+1].
type Polygon []vec.Vec2

// collinearEps bounds the cross product magnitude below which three
// points are considered collinear.
const collinearEps = 1e-9

// ring returns the vertex list without the repeated closing vertex.
func (p Polygon) ring() []vec.Vec2 {
	if len(p) > 1 && p[0] == p[len(p)-1] {
		return p[:len(p)-1]
	}
	return p
}

// countDistinct returns the number of distinct vertices in the ring.
func (p Polygon) countDistinct() int {
	ring := p.ring()
	n := 0
	for i, v := range ring {
		seen := false
		for _, w := range ring[:i] {
			if v == w {
				seen = true
				break
			}
		}
		if !seen {
			n++
		}
	}
	return n
}

// Area returns the signed area of the polygon (shoelace formula).
// The sign is positive when the vertices are ordered counterclockwise
// with respect to the stored coordinate axes.
func (p Polygon) Area() float64 {
	ring := p.ring()
	if len(ring) < 3 {
		return 0
	}
	a := 0.0
	j := len(ring) - 1
	for i, v := range ring {
		a += (ring[j].X + v.X) * (ring[j].Y - v.Y)
		j = i
	}
	return -a / 2
}

// perimeter returns the total edge length of the polygon.
func (p Polygon) perimeter() float64 {
	ring := p.ring()
	if len(ring) < 2 {
		return 0
	}
	l := 0.0
	j := len(ring) - 1
	for i, v := range ring {
		l += v.Sub(ring[j]).Length()
		j = i
	}
	return l
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// cross returns the z component of (a-o) × (b-o).
func cross(o, a, b vec.Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// IsConvex reports whether the polygon's vertex sequence turns in a
// single direction. Degenerate input (fewer than 3 distinct vertices)
// is an error.
func IsConvex(p Polygon) (bool, error) {
	ring, err := checkRing(p)
	if err != nil {
		return false, err
	}
	n := len(ring)
	var sign float64
	for i := range ring {
		c := cross(ring[i], ring[(i+1)%n], ring[(i+2)%n])
		if math.Abs(c) <= collinearEps {
			continue
		}
		if sign == 0 {
			sign = c
		} else if (c > 0) != (sign > 0) {
			return false, nil
		}
	}
	return true, nil
}

// IsCollinear reports whether all vertices of the polygon lie on a
// single line, i.e. the polygon is degenerate. Fewer than 3 distinct
// vertices is an error.
func IsCollinear(p Polygon) (bool, error) {
	ring, err := checkRing(p)
	if err != nil {
		return false, err
	}
	for i := 2; i < len(ring); i++ {
		if math.Abs(cross(ring[0], ring[1], ring[i])) > collinearEps {
			return false, nil
		}
	}
	return true, nil
}

// IsCounterClockwise reports whether the vertices are ordered
// counterclockwise with respect to the stored coordinate axes.
// Degenerate input is an error.
func IsCounterClockwise(p Polygon) (bool, error) {
	if _, err := checkRing(p); err != nil {
		return false, err
	}
	return p.Area() > 0, nil
}

// checkRing validates that the polygon has at least 3 distinct
// vertices and returns the open vertex list.
func checkRing(p Polygon) ([]vec.Vec2, error) {
	ring := p.ring()
	if len(ring) < 3 || p.countDistinct() < 3 {
		return nil, ErrSizeMismatchP
	}
	return ring, nil
}

// IsSimple reports whether the polygon's boundary is free of
// self-intersections. Non-adjacent edges must not touch; adjacent
// edges share exactly their common vertex.
func (p Polygon) IsSimple() bool {
	ring := p.ring()
	n := len(ring)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a0 := ring[i]
		a1 := ring[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// skip adjacent edges (they share a vertex by construction)
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b0 := ring[j]
			b1 := ring[(j+1)%n]
			if segmentsIntersect(a0, a1, b0, b1) {
				return false
			}
		}
	}
	return true
}

// segmentsIntersect reports whether the closed segments [a0,a1] and
// [b0,b1] share at least one point.
func segmentsIntersect(a0, a1, b0, b1 vec.Vec2) bool {
	d1 := cross(b0, b1, a0)
	d2 := cross(b0, b1, a1)
	d3 := cross(a0, a1, b0)
	d4 := cross(a0, a1, b1)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// collinear cases: an endpoint lies on the other segment
	switch {
	case d1 == 0 && onSpan(b0, b1, a0):
		return true
	case d2 == 0 && onSpan(b0, b1, a1):
		return true
	case d3 == 0 && onSpan(a0, a1, b0):
		return true
	case d4 == 0 && onSpan(a0, a1, b1):
		return true
	}
	return false
}

// onSpan reports whether p, already known to be collinear with the
// segment [a,b], lies within its bounding box.
func onSpan(a, b, p vec.Vec2) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}
