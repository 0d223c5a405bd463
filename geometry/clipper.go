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
	"fmt"
	"math"

	clipper "github.com/ctessum/go.clipper"

	"seehuhn.de/go/geom/vec"
)

// clipScale converts float pixel coordinates to the clipping engine's
// integer grid. 2^12 gives a resolution of about 0.00024 px, far below
// anything the rasterizer can distinguish, while keeping scaled area
// products well inside float64 range for slide-sized coordinates.
const clipScale = 1 << 12

// clipKernel implements Kernel using Vatti polygon clipping.
type clipKernel struct{}

// toClip converts a polygon to a closed integer path on the engine's
// grid.
func toClip(p Polygon) clipper.Path {
	ring := p.ring()
	path := make(clipper.Path, len(ring))
	for i, v := range ring {
		path[i] = &clipper.IntPoint{
			X: clipper.CInt(math.Round(v.X * clipScale)),
			Y: clipper.CInt(math.Round(v.Y * clipScale)),
		}
	}
	return path
}

// fromClip converts an engine path back to a closed polygon.
func fromClip(path clipper.Path) Polygon {
	p := make(Polygon, 0, len(path)+1)
	for _, ip := range path {
		p = append(p, vec.Vec2{
			X: float64(ip.X) / clipScale,
			Y: float64(ip.Y) / clipScale,
		})
	}
	if len(p) > 0 {
		p = append(p, p[0])
	}
	return p
}

// validate checks a polygon operand for Boolean operations: at least
// 3 distinct vertices, and a simple boundary.
func validate(p Polygon, sizeErr error) (clipper.Path, error) {
	if len(p.ring()) < 3 || p.countDistinct() < 3 {
		return nil, sizeErr
	}
	if !p.IsSimple() {
		return nil, ErrNonSimple
	}
	return toClip(p), nil
}

// Intersect implements Kernel.
func (clipKernel) Intersect(p, q Polygon) ([]Polygon, error) {
	sp, err := validate(p, ErrSizeMismatchP)
	if err != nil {
		return nil, err
	}
	sq, err := validate(q, ErrSizeMismatchQ)
	if err != nil {
		return nil, err
	}

	c := clipper.NewClipper(clipper.IoNone)
	if !c.AddPath(sp, clipper.PtSubject, true) {
		return nil, ErrSizeMismatchP
	}
	if !c.AddPath(sq, clipper.PtClip, true) {
		return nil, ErrSizeMismatchQ
	}
	sol, ok := c.Execute1(clipper.CtIntersection, clipper.PftEvenOdd, clipper.PftEvenOdd)
	if !ok {
		// For two bounded simple operands a failed execution can only
		// mean numerical degeneracy.
		return nil, ErrUnbounded
	}

	var out []Polygon
	for _, path := range sol {
		// drop slivers below the integer grid resolution
		if math.Abs(clipper.Area(path)) < 0.5 {
			continue
		}
		out = append(out, fromClip(path))
	}
	return out, nil
}

// Equal implements Kernel. Two polygons are equal when their symmetric
// difference has zero area at the engine's grid resolution.
func (clipKernel) Equal(p, q Polygon) (bool, error) {
	if len(p.ring()) < 3 || p.countDistinct() < 3 {
		return false, ErrSizeMismatchP
	}
	if len(q.ring()) < 3 || q.countDistinct() < 3 {
		return false, ErrSizeMismatchQ
	}

	c := clipper.NewClipper(clipper.IoNone)
	if !c.AddPath(toClip(p), clipper.PtSubject, true) {
		return false, ErrSizeMismatchP
	}
	if !c.AddPath(toClip(q), clipper.PtClip, true) {
		return false, ErrSizeMismatchQ
	}
	sol, ok := c.Execute1(clipper.CtXor, clipper.PftEvenOdd, clipper.PftEvenOdd)
	if !ok {
		return false, fmt.Errorf("geometry: clipping engine failed on xor")
	}

	diff := 0.0
	for _, path := range sol {
		diff += math.Abs(clipper.Area(path))
	}
	diff /= clipScale * clipScale

	// Rounding onto the grid can leave a thin band along the shared
	// boundary; allow up to one grid cell of slack per unit of
	// perimeter.
	tol := 1e-9 + (p.perimeter()+q.perimeter())/clipScale
	return diff <= tol, nil
}
