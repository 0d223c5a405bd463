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
	"image"
)

// WindowSpec configures a SlidingWindow.
type WindowSpec struct {
	// Window is the window width and height. Both must be at least 2.
	Window image.Point

	// Start is the top-left corner of the first window.
	Start image.Point

	// Step is the horizontal and vertical step size. Both must be at
	// least 1. The zero value means (1, 1).
	Step image.Point
}

// SlidingWindow enumerates rectangular windows covering an image
// extent, advancing horizontally first, then to the next row. All
// valid top-left corners are precomputed at construction time, so the
// enumeration is deterministic and supports forward and backward
// navigation.
//
// A SlidingWindow is not safe for concurrent use.
type SlidingWindow struct {
	imageW, imageH int
	window         image.Point
	corners        []image.Point
	k              int
}

// NewSlidingWindow creates a window enumerator over an image of the
// given size. Construction fails if the window is smaller than 2x2 or
// does not fit inside the image from the start offset.
func NewSlidingWindow(imageWidth, imageHeight int, spec WindowSpec) (*SlidingWindow, error) {
	w, h := spec.Window.X, spec.Window.Y
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("wsi: window size %dx%d too small", w, h)
	}
	if spec.Start.X+w > imageWidth || spec.Start.Y+h > imageHeight {
		return nil, fmt.Errorf("wsi: start position and/or window size outside image")
	}

	step := spec.Step
	if step == (image.Point{}) {
		step = image.Point{X: 1, Y: 1}
	}
	if step.X < 1 || step.Y < 1 {
		return nil, fmt.Errorf("wsi: step size %dx%d too small", step.X, step.Y)
	}

	nx := (imageWidth-w-spec.Start.X)/step.X + 1
	ny := (imageHeight-h-spec.Start.Y)/step.Y + 1
	corners := make([]image.Point, 0, nx*ny)
	for y := spec.Start.Y; y <= imageHeight-h; y += step.Y {
		for x := spec.Start.X; x <= imageWidth-w; x += step.X {
			corners = append(corners, image.Point{X: x, Y: y})
		}
	}

	return &SlidingWindow{
		imageW:  imageWidth,
		imageH:  imageHeight,
		window:  spec.Window,
		corners: corners,
	}, nil
}

// TotalSteps returns the number of windows in the enumeration.
func (s *SlidingWindow) TotalSteps() int {
	return len(s.corners)
}

// Here returns the window at the current position without changing it.
// The window is clipped to the image bounds. Here fails with
// ErrOutOfBounds when the position is outside [0, TotalSteps()),
// which happens after the iteration has been exhausted.
func (s *SlidingWindow) Here() (image.Rectangle, error) {
	if s.k < 0 || s.k >= len(s.corners) {
		return image.Rectangle{}, ErrOutOfBounds
	}
	c := s.corners[s.k]
	x1 := min(c.X+s.window.X, s.imageW)
	y1 := min(c.Y+s.window.Y, s.imageH)
	return image.Rect(c.X, c.Y, x1, y1), nil
}

// Next returns the window at the current position and advances by one.
// Once all windows have been consumed, Next returns ErrExhausted.
func (s *SlidingWindow) Next() (image.Rectangle, error) {
	if s.k >= len(s.corners) {
		return image.Rectangle{}, ErrExhausted
	}
	r, err := s.Here()
	if err != nil {
		return image.Rectangle{}, err
	}
	s.k++
	return r, nil
}

// Prev steps back by one and returns the window there. Prev returns
// ErrExhausted when the position is already at the start.
func (s *SlidingWindow) Prev() (image.Rectangle, error) {
	if s.k < 1 {
		return image.Rectangle{}, ErrExhausted
	}
	s.k--
	return s.Here()
}

// Last jumps to the final position and returns its window. Last fails
// with ErrOutOfBounds on an empty enumeration.
func (s *SlidingWindow) Last() (image.Rectangle, error) {
	if len(s.corners) == 0 {
		return image.Rectangle{}, ErrOutOfBounds
	}
	s.k = len(s.corners) - 1
	return s.Here()
}

// Reset moves the position back to the first window.
func (s *SlidingWindow) Reset() {
	s.k = 0
}
