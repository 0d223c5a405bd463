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

package annot

import (
	"image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wsi/geometry"
	"seehuhn.de/go/wsi/mask"
)

// Clipper masks tile buffers against annotation regions. The zero
// value uses the default geometry kernel and leaves pixels outside all
// regions at zero.
type Clipper struct {
	// Kernel is the geometric engine. A nil Kernel selects
	// geometry.NewKernel().
	Kernel geometry.Kernel

	// OutsideValue, if non-zero, is added to every channel of pixels
	// outside all regions after masking, so that background can be
	// distinguished from genuinely black tissue.
	OutsideValue uint8
}

func (c *Clipper) kernel() geometry.Kernel {
	if c.Kernel != nil {
		return c.Kernel
	}
	return geometry.NewKernel()
}

// ClipTile masks the tile buffer buf, which covers the region of
// interest roi in slide coordinates, against the given annotation
// regions. Pixels outside all regions are zeroed (and then offset by
// OutsideValue); pixels inside at least one region are unchanged.
//
// If some region polygon contains the whole tile, the buffer is left
// untouched and no clipping arithmetic is performed. Otherwise each
// polygon is intersected with the tile rectangle and the intersection
// components are rasterized into a shared mask.
//
// The buffer is modified in place.
func (c *Clipper) ClipTile(buf *mask.Buffer, roi image.Rectangle, regions map[string][]geometry.Polygon) error {
	w, h := roi.Dx(), roi.Dy()
	if buf.Width != w || buf.Height != h {
		return mask.ErrShapeMismatch
	}

	k := c.kernel()
	r0 := vec.Vec2{X: float64(roi.Min.X), Y: float64(roi.Min.Y)}
	r1 := vec.Vec2{X: float64(roi.Max.X), Y: float64(roi.Max.Y)}
	roiPoly := geometry.RectPolygon(r0, r1)

	m := mask.New(w, h)
	for _, polys := range regions {
		for _, p := range polys {
			inside, err := k.RectInside(r0, r1, p)
			if err != nil {
				return err
			}
			if inside {
				// the whole tile is annotated, nothing to mask out
				return nil
			}

			comps, err := k.Intersect(roiPoly, p)
			if err != nil {
				return err
			}
			for _, comp := range comps {
				local := make(geometry.Polygon, len(comp))
				for i, v := range comp {
					local[i] = vec.Vec2{X: v.X - r0.X, Y: v.Y - r0.Y}
				}
				m.AddRegion(local)
			}
		}
	}

	if err := m.Apply(buf); err != nil {
		return err
	}
	if c.OutsideValue != 0 {
		for i, v := range m.Pix {
			if v == 0 {
				base := i * buf.Channels
				for ch := range buf.Channels {
					buf.Pix[base+ch] += c.OutsideValue
				}
			}
		}
	}
	return nil
}

// SetOutside returns a new buffer in which every pixel outside the
// polygon p (given in tile-local coordinates) is set to value in all
// channels, while pixels inside p are copied from src. The source
// buffer is not modified.
func SetOutside(src *mask.Buffer, p geometry.Polygon, value uint8) *mask.Buffer {
	dst := mask.NewBuffer(src.Width, src.Height, src.Channels)
	for i := range dst.Pix {
		dst.Pix[i] = value
	}

	m := mask.Rasterize(p, src.Width, src.Height)
	for i, v := range m.Pix {
		if v != 0 {
			base := i * src.Channels
			copy(dst.Pix[base:base+src.Channels], src.Pix[base:base+src.Channels])
		}
	}
	return dst
}

// CopyRegion copies the pixels inside polygon p (in tile-local
// coordinates) from src to dst, leaving the rest of dst unchanged.
// The buffers must have identical shapes.
func CopyRegion(src, dst *mask.Buffer, p geometry.Polygon) error {
	if src.Width != dst.Width || src.Height != dst.Height || src.Channels != dst.Channels {
		return mask.ErrShapeMismatch
	}
	m := mask.Rasterize(p, src.Width, src.Height)
	for i, v := range m.Pix {
		if v != 0 {
			base := i * src.Channels
			copy(dst.Pix[base:base+src.Channels], src.Pix[base:base+src.Channels])
		}
	}
	return nil
}
