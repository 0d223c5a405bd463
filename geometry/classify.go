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

package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Classify implements Kernel. It uses a crossing-number test with an
// explicit boundary check: a point exactly on an edge is reported as
// Boundary, never Inside or Outside. Containment tests depend on this
// distinction.
func (clipKernel) Classify(points []vec.Vec2, q Polygon) ([]Position, error) {
	if len(points) == 0 {
		return nil, ErrSizeMismatchP
	}
	ring := q.ring()
	if len(ring) < 3 || q.countDistinct() < 3 {
		return nil, ErrSizeMismatchQ
	}

	res := make([]Position, len(points))
	for i, pt := range points {
		res[i] = classifyPoint(pt, ring)
	}
	return res, nil
}

// classifyPoint positions a single point with respect to the ring.
func classifyPoint(pt vec.Vec2, ring []vec.Vec2) Position {
	inside := false
	j := len(ring) - 1
	for i, b := range ring {
		a := ring[j]
		j = i
		if onEdge(pt, a, b) {
			return Boundary
		}
		// crossing test on the half-open edge (a, b]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xInt := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < xInt {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// onEdge reports whether p lies on the closed segment [a,b], within a
// tolerance proportional to the segment length.
func onEdge(p, a, b vec.Vec2) bool {
	d := b.Sub(a)
	len2 := d.X*d.X + d.Y*d.Y
	if len2 == 0 {
		return p == a
	}
	c := d.X*(p.Y-a.Y) - d.Y*(p.X-a.X)
	if math.Abs(c) > collinearEps*math.Sqrt(len2) {
		return false
	}
	dot := (p.X-a.X)*d.X + (p.Y-a.Y)*d.Y
	return dot >= 0 && dot <= len2
}
