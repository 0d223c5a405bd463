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
	"errors"
	"image"
	"testing"
)

func TestWindowTotalSteps(t *testing.T) {
	tests := []struct {
		imageW, imageH int
		spec           WindowSpec
		want           int
	}{
		{
			100, 80,
			WindowSpec{Window: image.Pt(10, 10), Start: image.Pt(3, 2), Step: image.Pt(5, 7)},
			18 * 10, // ((100-10-3)/5+1) * ((80-10-2)/7+1)
		},
		{
			6, 6,
			WindowSpec{Window: image.Pt(2, 2), Step: image.Pt(2, 2)},
			9,
		},
		{
			8, 8,
			WindowSpec{Window: image.Pt(8, 8)},
			1,
		},
		{
			5, 5,
			WindowSpec{Window: image.Pt(3, 3)}, // default step (1,1)
			9,
		},
	}
	for i, tc := range tests {
		s, err := NewSlidingWindow(tc.imageW, tc.imageH, tc.spec)
		if err != nil {
			t.Fatalf("case %d: NewSlidingWindow() error: %v", i, err)
		}
		if got := s.TotalSteps(); got != tc.want {
			t.Errorf("case %d: TotalSteps() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestWindowOrder(t *testing.T) {
	s, err := NewSlidingWindow(6, 6, WindowSpec{
		Window: image.Pt(2, 2),
		Step:   image.Pt(2, 2),
	})
	if err != nil {
		t.Fatal(err)
	}

	// rows first, left to right within a row
	want := []image.Rectangle{
		image.Rect(0, 0, 2, 2), image.Rect(2, 0, 4, 2), image.Rect(4, 0, 6, 2),
		image.Rect(0, 2, 2, 4), image.Rect(2, 2, 4, 4), image.Rect(4, 2, 6, 4),
		image.Rect(0, 4, 2, 6), image.Rect(2, 4, 4, 6), image.Rect(4, 4, 6, 6),
	}
	for i, w := range want {
		got, err := s.Next()
		if err != nil {
			t.Fatalf("step %d: Next() error: %v", i, err)
		}
		if got != w {
			t.Errorf("step %d: got %v, want %v", i, got, w)
		}
	}

	if _, err := s.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() after last window: error = %v, want ErrExhausted", err)
	}
	if _, err := s.Here(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Here() after exhaustion: error = %v, want ErrOutOfBounds", err)
	}

	// step back onto the last window
	got, err := s.Prev()
	if err != nil {
		t.Fatalf("Prev() error: %v", err)
	}
	if got != want[len(want)-1] {
		t.Errorf("Prev() = %v, want %v", got, want[len(want)-1])
	}

	s.Reset()
	got, err = s.Here()
	if err != nil {
		t.Fatalf("Here() after Reset: %v", err)
	}
	if got != want[0] {
		t.Errorf("Here() after Reset = %v, want %v", got, want[0])
	}
}

func TestWindowPrevAtStart(t *testing.T) {
	s, err := NewSlidingWindow(4, 4, WindowSpec{Window: image.Pt(2, 2)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Prev(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Prev() at start: error = %v, want ErrExhausted", err)
	}
}

func TestWindowLast(t *testing.T) {
	s, err := NewSlidingWindow(10, 10, WindowSpec{
		Window: image.Pt(4, 4),
		Step:   image.Pt(3, 3),
	})
	if err != nil {
		t.Fatal(err)
	}
	// corners at x,y in {0, 3, 6}
	got, err := s.Last()
	if err != nil {
		t.Fatalf("Last() error: %v", err)
	}
	if want := image.Rect(6, 6, 10, 10); got != want {
		t.Errorf("Last() = %v, want %v", got, want)
	}
	// Next after Last consumes the final window, then stops
	if _, err := s.Next(); err != nil {
		t.Errorf("Next() after Last: %v", err)
	}
	if _, err := s.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("second Next() after Last: error = %v, want ErrExhausted", err)
	}
}

func TestWindowSpecErrors(t *testing.T) {
	bad := []WindowSpec{
		{Window: image.Pt(1, 2)},                          // window too narrow
		{Window: image.Pt(2, 1)},                          // window too short
		{Window: image.Pt(20, 2)},                         // wider than the image
		{Window: image.Pt(2, 2), Start: image.Pt(9, 0)},   // start leaves no room
		{Window: image.Pt(2, 2), Step: image.Pt(0, 1)},    // zero x step
		{Window: image.Pt(2, 2), Step: image.Pt(1, -1)},   // negative y step
	}
	for i, spec := range bad {
		if _, err := NewSlidingWindow(10, 10, spec); err == nil {
			t.Errorf("case %d: NewSlidingWindow(%+v) succeeded, want error", i, spec)
		}
	}
}
