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
	"errors"

	"seehuhn.de/go/geom/vec"
)

// Position classifies a point with respect to a polygon. The values
// match the integer codes used by earlier C callers: 1 inside, 0 on
// the boundary, -1 outside.
type Position int

const (
	Inside   Position = 1
	Boundary Position = 0
	Outside  Position = -1
)

func (p Position) String() string {
	switch p {
	case Inside:
		return "INSIDE"
	case Boundary:
		return "BOUNDARY"
	case Outside:
		return "OUTSIDE"
	}
	return "INVALID"
}

// Kernel is the geometric engine used for polygon clipping and
// containment decisions. The interface isolates callers from the
// underlying arithmetic so the engine can be swapped without touching
// them.
//
// All methods accept polygons as closed or open vertex lists and
// return intersection components as closed polygons.
type Kernel interface {
	// Intersect computes the intersection of two simple polygons.
	// The result has zero, one, or several disjoint simple polygons;
	// a polygon pair can intersect in multiple disconnected pieces.
	Intersect(p, q Polygon) ([]Polygon, error)

	// Equal reports whether two polygons enclose the identical
	// region, regardless of vertex order, starting vertex, or
	// collinear vertices.
	Equal(p, q Polygon) (bool, error)

	// Classify returns the position of each point with respect to
	// polygon q. A point exactly on an edge is Boundary, not Inside
	// or Outside.
	Classify(points []vec.Vec2, q Polygon) ([]Position, error)

	// RectInside reports whether the axis-aligned rectangle with
	// corners r0 and r1 lies entirely inside p.
	RectInside(r0, r1 vec.Vec2, p Polygon) (bool, error)

	// PolygonInside reports whether p lies entirely inside q.
	PolygonInside(p, q Polygon) (bool, error)
}

// NewKernel returns the default Kernel, backed by Vatti polygon
// clipping over scaled integer coordinates.
func NewKernel() Kernel {
	return clipKernel{}
}

// Errors returned by Kernel operations.
var (
	// ErrSizeMismatchP indicates a malformed or empty first polygon
	// operand (fewer than 3 distinct vertices), or an empty point
	// list.
	ErrSizeMismatchP = errors.New("geometry: first operand is malformed")

	// ErrSizeMismatchQ indicates a malformed or empty second polygon
	// operand.
	ErrSizeMismatchQ = errors.New("geometry: second operand is malformed")

	// ErrNonSimple indicates a self-intersecting input to an
	// operation that requires simple polygons.
	ErrNonSimple = errors.New("geometry: polygon is not simple")

	// ErrUnbounded indicates a numerically degenerate result from the
	// clipping engine. It cannot occur for two well-formed bounded
	// polygons.
	ErrUnbounded = errors.New("geometry: intersection is not bounded")
)

// Status codes preserved for interop with callers that branch on the
// original integer protocol: 0 is success (an empty result), n>0 is
// success with n intersection components, negative values are errors.
const (
	StatusOK            = 0
	StatusSizeMismatchP = -1
	StatusSizeMismatchQ = -2
	StatusNonSimple     = -3
	StatusUnbounded     = -4
	StatusInternal      = -5
)

// Code translates an error from a Kernel operation into the integer
// status protocol. A nil error maps to StatusOK; the number of
// intersection components is the length of the result slice.
func Code(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrSizeMismatchP):
		return StatusSizeMismatchP
	case errors.Is(err, ErrSizeMismatchQ):
		return StatusSizeMismatchQ
	case errors.Is(err, ErrNonSimple):
		return StatusNonSimple
	case errors.Is(err, ErrUnbounded):
		return StatusUnbounded
	}
	return StatusInternal
}
