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

package wsi

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// MapToLevel converts points from physical slide coordinates into
// pixel coordinates at the given pyramid level. The source argument
// names the vendor coordinate system the points were recorded in and
// must match the slide's vendor.
//
// Per axis, with the slide's centre offset and microns-per-pixel
// scale, the mapping is
//
//	pixel = floor(((physical - offset) / (1000*mpp) + level0Extent/2) / 2^level)
//
// The returned coordinates are integer-valued floats, relative to the
// upper-left corner of the requested level.
func (s *SlideInfo) MapToLevel(points []vec.Vec2, source string, level int) ([]vec.Vec2, error) {
	if source != s.Vendor {
		return nil, fmt.Errorf("%w: annotation is %q, slide is %q",
			ErrVendorMismatch, source, s.Vendor)
	}
	if level < 0 || level >= len(s.Levels) {
		return nil, fmt.Errorf("%w: level %d of %d", ErrLevelOutOfRange, level, len(s.Levels))
	}

	d := float64(int64(1) << uint(level))
	halfW := float64(s.Levels[0].Width) / 2
	halfH := float64(s.Levels[0].Height) / 2

	out := make([]vec.Vec2, len(points))
	for i, p := range points {
		x := (p.X - s.XOffset) / (1000 * s.MPPX)
		y := (p.Y - s.YOffset) / (1000 * s.MPPY)
		px := math.Floor((x + halfW) / d)
		py := math.Floor((y + halfH) / d)
		if px < 0 || py < 0 {
			return nil, fmt.Errorf("%w: point %d maps to (%g, %g)",
				ErrNegativeCoordinate, i, px, py)
		}
		out[i] = vec.Vec2{X: px, Y: py}
	}
	return out, nil
}
