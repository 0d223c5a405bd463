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

import "errors"

var (
	// ErrVendorMismatch is returned when annotation coordinates from
	// one scanner vendor are mapped against a pyramid from another.
	ErrVendorMismatch = errors.New("wsi: annotation vendor does not match slide vendor")

	// ErrLevelOutOfRange is returned for a pyramid level outside
	// [0, LevelCount).
	ErrLevelOutOfRange = errors.New("wsi: pyramid level out of range")

	// ErrNegativeCoordinate is returned when mapping produces a
	// negative pixel coordinate, indicating malformed input.
	ErrNegativeCoordinate = errors.New("wsi: negative pixel coordinate")

	// ErrOutOfBounds is returned by SlidingWindow.Here when the
	// current position is outside the valid range. Unlike
	// ErrExhausted this indicates a usage error.
	ErrOutOfBounds = errors.New("wsi: window position outside bounds")

	// ErrExhausted signals the normal end of a window iteration.
	// It is not an error to be logged; callers use it to terminate
	// their loop.
	ErrExhausted = errors.New("wsi: no more windows")
)
