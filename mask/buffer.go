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
	"slices"
)

// ErrShapeMismatch is returned when a buffer operation receives
// operands of differing shapes.
var ErrShapeMismatch = errors.New("mask: shape mismatch")

// Buffer is a multi-channel pixel buffer as handed over by an image
// decoder. Pixels are stored row-major with channels interleaved:
// the value of channel c at (x, y) is Pix[(y*Width+x)*Channels+c].
type Buffer struct {
	Pix                     []uint8
	Width, Height, Channels int
}

// NewBuffer returns an all-zero buffer of the given shape.
func NewBuffer(width, height, channels int) *Buffer {
	return &Buffer{
		Pix:      make([]uint8, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// At returns the value of channel c at (x, y).
func (b *Buffer) At(x, y, c int) uint8 {
	return b.Pix[(y*b.Width+x)*b.Channels+c]
}

// Set stores v as the value of channel c at (x, y).
func (b *Buffer) Set(x, y, c int, v uint8) {
	b.Pix[(y*b.Width+x)*b.Channels+c] = v
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Pix:      slices.Clone(b.Pix),
		Width:    b.Width,
		Height:   b.Height,
		Channels: b.Channels,
	}
}

// sameShape reports whether two buffers have identical dimensions.
func (b *Buffer) sameShape(o *Buffer) bool {
	return b.Width == o.Width && b.Height == o.Height && b.Channels == o.Channels
}

// Apply zeroes every channel value of b at positions where the mask is
// 0, leaving positions with mask 1 unchanged. A non-binary mask is
// binarized first by clamping values above 1.
//
// Both the mask and the buffer are modified in place; callers that
// need the original data must copy before calling.
func (m *Mask) Apply(b *Buffer) error {
	if b.Width != m.Width || b.Height != m.Height {
		return ErrShapeMismatch
	}
	for i, v := range m.Pix {
		if v > 1 {
			m.Pix[i] = 1
		}
	}
	ch := b.Channels
	for i, v := range m.Pix {
		if v == 0 {
			base := i * ch
			for c := range ch {
				b.Pix[base+c] = 0
			}
		}
	}
	return nil
}
