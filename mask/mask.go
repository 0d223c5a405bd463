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

// Package mask rasterizes polygons into binary pixel grids and applies
// those grids to multi-channel pixel buffers.
//
// The boundary convention is fixed here and asserted in the tests: a
// pixel (x, y) belongs to a polygon iff its centre (x+0.5, y+0.5) lies
// inside the polygon, with centres exactly on the boundary resolved
// half-open: for an axis-aligned box, the left and top edges claim the
// centres lying on them and the right and bottom edges do not. With
// this convention the number of mask cells converges to the polygon's
// shoelace area, a square with integer corners (0,0)-(n,n) rasterizes
// to exactly the n×n block of pixels with top-left corner (0,0), and
// abutting polygons partition pixels with no overlap and no gap.
package mask

import (
	"math"
	"slices"

	"seehuhn.de/go/wsi/geometry"
)

// Mask is a binary pixel grid. Cells are stored in row-major order and
// valued 0 (outside) or 1 (inside).
type Mask struct {
	Pix           []uint8
	Width, Height int
}

// New returns an all-zero mask of the given size.
func New(width, height int) *Mask {
	return &Mask{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// Rasterize fills a polygon into a fresh mask of the given size. If
// the polygon's first and last vertices differ it is implicitly
// closed.
func Rasterize(p geometry.Polygon, width, height int) *Mask {
	m := New(width, height)
	m.AddRegion(p)
	return m
}

// edge is a non-horizontal polygon edge in pixel coordinates, with the
// inverse slope precomputed for x-intercept calculation.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// horizontalEdgeThreshold is the minimum vertical extent for an edge
// to contribute scanline crossings. Edges below this are horizontal
// and covered by their neighbours.
const horizontalEdgeThreshold = 1e-10

// collectEdges builds the edge list for a polygon, implicitly closing
// it and skipping horizontal edges.
func collectEdges(p geometry.Polygon) []edge {
	if len(p) < 2 {
		return nil
	}
	pts := p
	if p[0] != p[len(p)-1] {
		pts = make(geometry.Polygon, 0, len(p)+1)
		pts = append(pts, p...)
		pts = append(pts, p[0])
	}

	edges := make([]edge, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dy := b.Y - a.Y
		if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
			continue
		}
		edges = append(edges, edge{
			x0: a.X, y0: a.Y,
			x1: b.X, y1: b.Y,
			dxdy: (b.X - a.X) / dy,
		})
	}
	return edges
}

// AddRegion sets to 1 all cells inside the polygon, leaving existing
// 1s untouched. Repeated calls accumulate the union of the masked
// regions. The mask is modified in place.
func (m *Mask) AddRegion(p geometry.Polygon) {
	edges := collectEdges(p)
	if len(edges) == 0 {
		return
	}

	// scanline range touched by any edge, clamped to the grid
	yMinF, yMaxF := edges[0].y0, edges[0].y0
	for i := range edges {
		e := &edges[i]
		yMinF = min(yMinF, min(e.y0, e.y1))
		yMaxF = max(yMaxF, max(e.y0, e.y1))
	}
	yMin := max(int(math.Floor(yMinF)), 0)
	yMax := min(int(math.Floor(yMaxF))+1, m.Height)

	var crossings []float64
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		crossings = crossings[:0]
		for i := range edges {
			e := &edges[i]
			// an edge endpoint exactly at yc counts only at the
			// smaller-y end, making rows half-open like the x spans
			if (e.y0 > yc) == (e.y1 > yc) {
				continue
			}
			crossings = append(crossings, e.x0+e.dxdy*(yc-e.y0))
		}
		if len(crossings) < 2 {
			continue
		}
		slices.Sort(crossings)

		// fill spans between crossing pairs (even-odd rule); spans are
		// half-open, a pixel centre exactly on the left crossing is
		// filled and one exactly on the right crossing is not
		row := m.Pix[y*m.Width : (y+1)*m.Width]
		for i := 0; i+1 < len(crossings); i += 2 {
			x0 := max(int(math.Ceil(crossings[i]-0.5)), 0)
			x1 := min(int(math.Ceil(crossings[i+1]-0.5))-1, m.Width-1)
			for x := x0; x <= x1; x++ {
				row[x] = 1
			}
		}
	}
}

// Count returns the number of non-zero cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// At returns the cell value at (x, y).
func (m *Mask) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}
