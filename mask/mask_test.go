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

package mask

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/wsi/geometry"
)

func square(x0, y0, size float64) geometry.Polygon {
	return geometry.Polygon{
		{X: x0, Y: y0},
		{X: x0 + size, Y: y0},
		{X: x0 + size, Y: y0 + size},
		{X: x0, Y: y0 + size},
	}
}

// TestSquareBlock checks integer-aligned squares on an 8x8 grid: a
// closed square with corners (x0,y0)-(x0+4,y0+4) must produce exactly
// the 4x4 block of pixels whose top-left pixel is (x0,y0).
func TestSquareBlock(t *testing.T) {
	tests := []struct {
		name   string
		p      geometry.Polygon
		x0, y0 int
	}{
		{
			"origin",
			geometry.Polygon{
				{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
			},
			0, 0,
		},
		{"offset", square(2, 2, 4), 2, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Rasterize(tc.p, 8, 8)
			for y := range 8 {
				for x := range 8 {
					want := uint8(0)
					if x >= tc.x0 && x < tc.x0+4 && y >= tc.y0 && y < tc.y0+4 {
						want = 1
					}
					if got := m.At(x, y); got != want {
						t.Errorf("pixel (%d,%d): got %d, want %d", x, y, got, want)
					}
				}
			}
			if got := m.Count(); got != 16 {
				t.Errorf("Count() = %d, want 16", got)
			}
		})
	}
}

// TestBoundaryCentres pins down the half-open rule on a square whose
// edges pass exactly through pixel centres (half-integer corners are
// exact in float64): the left and top edges claim their centres, the
// right and bottom edges do not, so (2.5,2.5)-(6.5,6.5) covers the
// same 4x4 block in both directions.
func TestBoundaryCentres(t *testing.T) {
	m := Rasterize(square(2.5, 2.5, 4), 10, 10)
	for y := range 10 {
		for x := range 10 {
			want := uint8(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 1
			}
			if got := m.At(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
	if got := m.Count(); got != 16 {
		t.Errorf("Count() = %d, want 16", got)
	}

	// abutting squares partition pixels along their shared edge:
	// no overlap, no gap
	m = New(12, 8)
	m.AddRegion(square(1.5, 1.5, 4))
	m.AddRegion(square(5.5, 1.5, 4))
	if got := m.Count(); got != 32 {
		t.Errorf("Count() of two abutting squares = %d, want 32", got)
	}
	for x := 1; x <= 8; x++ {
		if got := m.At(x, 2); got != 1 {
			t.Errorf("pixel (%d,2) = %d, want 1", x, got)
		}
	}
}

// TestOpenPolygonClosed verifies that an open vertex list produces the
// same mask as its explicitly closed form.
func TestOpenPolygonClosed(t *testing.T) {
	open := geometry.Polygon{{X: 1, Y: 1}, {X: 6, Y: 1}, {X: 3, Y: 6}}
	closed := append(append(geometry.Polygon{}, open...), open[0])

	a := Rasterize(open, 8, 8)
	b := Rasterize(closed, 8, 8)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d differs: open %d, closed %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

// TestCountMatchesArea checks that the mask cell count agrees with the
// shoelace area up to the polygon's perimeter, the natural bound for
// boundary pixel effects.
func TestCountMatchesArea(t *testing.T) {
	polys := []geometry.Polygon{
		{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 30}},
		{{X: 3.5, Y: 2.25}, {X: 57.5, Y: 8}, {X: 50, Y: 60}, {X: 10, Y: 45}},
		square(0.5, 0.5, 55),
	}
	for i, p := range polys {
		m := Rasterize(p, 64, 64)
		area := math.Abs(p.Area())
		perim := 0.0
		for j := range p {
			k := (j + 1) % len(p)
			perim += math.Hypot(p[k].X-p[j].X, p[k].Y-p[j].Y)
		}
		if diff := math.Abs(float64(m.Count()) - area); diff > perim {
			t.Errorf("polygon %d: count %d vs area %g, diff %g > perimeter %g",
				i, m.Count(), area, diff, perim)
		}
	}
}

// TestHalfPixelShift verifies centre sampling: a square covering less
// than half of the boundary pixels does not claim them.
func TestHalfPixelShift(t *testing.T) {
	// (1.6, 1.6)-(4.4, 4.4): pixel centres 2.5 and 3.5 are covered in
	// each direction, 1.5 and 4.5 are not
	m := Rasterize(square(1.6, 1.6, 2.8), 8, 8)
	for y := range 8 {
		for x := range 8 {
			want := uint8(0)
			if x >= 2 && x <= 3 && y >= 2 && y <= 3 {
				want = 1
			}
			if got := m.At(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestAddRegionUnion(t *testing.T) {
	m := New(16, 16)
	m.AddRegion(square(0, 0, 4))
	m.AddRegion(square(8, 8, 4))
	if got := m.Count(); got != 32 {
		t.Errorf("Count() after two disjoint regions = %d, want 32", got)
	}

	// overlapping region must not double-count
	m.AddRegion(square(2, 2, 4))
	if got := m.Count(); got != 16+12+16 {
		t.Errorf("Count() after overlap = %d, want %d", got, 16+12+16)
	}
}

func TestAddRegionClipped(t *testing.T) {
	// polygon partly outside the grid
	m := Rasterize(square(-4, -4, 8), 8, 8)
	for y := range 8 {
		for x := range 8 {
			want := uint8(0)
			if x < 4 && y < 4 {
				want = 1
			}
			if got := m.At(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDegenerateRegions(t *testing.T) {
	m := New(8, 8)
	m.AddRegion(nil)
	m.AddRegion(geometry.Polygon{{X: 1, Y: 1}})
	m.AddRegion(geometry.Polygon{{X: 1, Y: 1}, {X: 5, Y: 1}}) // horizontal line
	if got := m.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestApply(t *testing.T) {
	buf := NewBuffer(8, 8, 3)
	for i := range buf.Pix {
		buf.Pix[i] = 9
	}

	m := Rasterize(square(2, 2, 4), 8, 8)
	if err := m.Apply(buf); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	for y := range 8 {
		for x := range 8 {
			want := uint8(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 9
			}
			for c := range 3 {
				if got := buf.At(x, y, c); got != want {
					t.Errorf("pixel (%d,%d) channel %d: got %d, want %d",
						x, y, c, got, want)
				}
			}
		}
	}
}

func TestApplyBinarizes(t *testing.T) {
	m := New(2, 2)
	m.Pix = []uint8{0, 1, 3, 255}
	buf := NewBuffer(2, 2, 1)
	for i := range buf.Pix {
		buf.Pix[i] = 7
	}
	if err := m.Apply(buf); err != nil {
		t.Fatal(err)
	}
	wantMask := []uint8{0, 1, 1, 1}
	wantBuf := []uint8{0, 7, 7, 7}
	for i := range wantMask {
		if m.Pix[i] != wantMask[i] {
			t.Errorf("mask[%d] = %d, want %d", i, m.Pix[i], wantMask[i])
		}
		if buf.Pix[i] != wantBuf[i] {
			t.Errorf("buf[%d] = %d, want %d", i, buf.Pix[i], wantBuf[i])
		}
	}
}

func TestApplyShapeMismatch(t *testing.T) {
	m := New(8, 8)
	buf := NewBuffer(8, 4, 3)
	if err := m.Apply(buf); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Apply() error = %v, want ErrShapeMismatch", err)
	}
}

func TestBufferClone(t *testing.T) {
	buf := NewBuffer(2, 2, 2)
	buf.Set(1, 1, 1, 42)
	cl := buf.Clone()
	cl.Set(1, 1, 1, 7)
	if got := buf.At(1, 1, 1); got != 42 {
		t.Errorf("original modified through clone: got %d", got)
	}
}
