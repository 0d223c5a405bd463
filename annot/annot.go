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

// Package annot represents named slide annotations and clips image
// tiles against them.
//
// An annotation is a tagged value: a single dot, an ordered point set,
// or a closed polygon, all sharing the same coordinate payload.
// Coordinate transforms mutate the object in place; an Object is owned
// exclusively by the caller holding it, and Duplicate makes an
// independent copy.
package annot

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wsi/geometry"
)

// Kind discriminates the annotation variants.
type Kind int

const (
	KindDot      Kind = iota // a single position
	KindPointSet             // an ordered, possibly open point sequence
	KindPolygon              // a closed contour
)

func (k Kind) String() string {
	switch k {
	case KindDot:
		return "DOT"
	case KindPointSet:
		return "POINTSET"
	case KindPolygon:
		return "POLYGON"
	}
	return "INVALID"
}

// Object is a named annotation. The zero value is not useful; use the
// New* constructors.
type Object struct {
	Name string
	Kind Kind
	XY   []vec.Vec2
}

// NewDot returns a dot annotation at (x, y). An empty name defaults to
// the kind tag.
func NewDot(x, y float64, name string) *Object {
	if name == "" {
		name = KindDot.String()
	}
	return &Object{
		Name: name,
		Kind: KindDot,
		XY:   []vec.Vec2{{X: x, Y: y}},
	}
}

// NewPointSet returns a point-set annotation. The points are copied.
func NewPointSet(points []vec.Vec2, name string) *Object {
	if name == "" {
		name = KindPointSet.String()
	}
	return &Object{
		Name: name,
		Kind: KindPointSet,
		XY:   slices.Clone(points),
	}
}

// NewPolygon returns a polygon annotation. The points are copied, and
// the contour is closed by repeating the first vertex if needed.
func NewPolygon(points []vec.Vec2, name string) *Object {
	if name == "" {
		name = KindPolygon.String()
	}
	xy := slices.Clone(points)
	if len(xy) > 0 && xy[0] != xy[len(xy)-1] {
		xy = append(xy, xy[0])
	}
	return &Object{
		Name: name,
		Kind: KindPolygon,
		XY:   xy,
	}
}

// Duplicate returns an independent copy of the object.
func (o *Object) Duplicate() *Object {
	return &Object{
		Name: o.Name,
		Kind: o.Kind,
		XY:   slices.Clone(o.XY),
	}
}

// Size returns the number of points defining the object, including the
// repeated closing vertex for polygons.
func (o *Object) Size() int {
	return len(o.XY)
}

// Polygon views a polygon annotation's coordinates as a
// geometry.Polygon. The returned slice shares the object's backing
// array.
func (o *Object) Polygon() geometry.Polygon {
	return geometry.Polygon(o.XY)
}

// BoundingBox returns the axis-aligned bounding box of the object.
func (o *Object) BoundingBox() rect.Rect {
	if len(o.XY) == 0 {
		return rect.Rect{}
	}
	v := o.XY[0]
	r := rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
	for _, v := range o.XY[1:] {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// Translate moves all points by (dx, dy), in place.
func (o *Object) Translate(dx, dy float64) {
	for i := range o.XY {
		o.XY[i].X += dx
		o.XY[i].Y += dy
	}
}

// Scale multiplies all coordinates by (sx, sy), in place.
func (o *Object) Scale(sx, sy float64) {
	for i := range o.XY {
		o.XY[i].X *= sx
		o.XY[i].Y *= sy
	}
}

// Transform applies an affine transformation to all points, in place:
// x' = m[0]*x + m[2]*y + m[4], y' = m[1]*x + m[3]*y + m[5].
func (o *Object) Transform(m matrix.Matrix) {
	for i, v := range o.XY {
		o.XY[i] = vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}
}

func (o *Object) String() string {
	return fmt.Sprintf("%s <%s>: %d points", o.Kind, o.Name, len(o.XY))
}
