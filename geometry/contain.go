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

import "seehuhn.de/go/geom/vec"

// RectPolygon returns the closed polygon for the axis-aligned
// rectangle with opposite corners r0 and r1.
func RectPolygon(r0, r1 vec.Vec2) Polygon {
	return Polygon{
		r0,
		{X: r1.X, Y: r0.Y},
		r1,
		{X: r0.X, Y: r1.Y},
		r0,
	}
}

// RectInside implements Kernel. For a convex polygon it is enough that
// both rectangle corners classify strictly inside. For a non-convex
// polygon the rectangle is inside iff the intersection is a single
// component with the same region as the rectangle; an empty or
// multi-component intersection means the boundaries cross, which
// counts as "not inside".
func (k clipKernel) RectInside(r0, r1 vec.Vec2, p Polygon) (bool, error) {
	convex, err := IsConvex(p)
	if err != nil {
		return false, err
	}
	if convex {
		pos, err := k.Classify([]vec.Vec2{r0, r1}, p)
		if err != nil {
			return false, err
		}
		return pos[0] == Inside && pos[1] == Inside, nil
	}

	r := RectPolygon(r0, r1)
	comps, err := k.Intersect(p, r)
	if err != nil {
		return false, err
	}
	if len(comps) != 1 {
		return false, nil
	}
	return k.Equal(r, comps[0])
}

// PolygonInside implements Kernel: p is contained in q iff their
// intersection is a single component equal to p.
func (k clipKernel) PolygonInside(p, q Polygon) (bool, error) {
	comps, err := k.Intersect(p, q)
	if err != nil {
		return false, err
	}
	if len(comps) != 1 {
		return false, nil
	}
	return k.Equal(p, comps[0])
}
