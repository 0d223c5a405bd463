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

// Package wsi restricts pixel processing of multi-resolution slide
// images to polygonal regions of interest.
//
// The package holds the parts that need to know about the image
// pyramid: slide metadata, the mapping from physical slide coordinates
// to pixel coordinates at a given level, and a sliding-window
// enumerator over an image extent. Polygon predicates live in
// wsi/geometry, rasterization in wsi/mask, and annotation objects
// together with the tile clipping operators in wsi/annot.
//
// The package never opens files: pyramid metadata and pixel buffers
// are supplied by external readers.
package wsi

// Vendor identifiers as reported by slide scanners. Annotation files
// record coordinates in vendor-specific units, so the mapper refuses
// to mix vendors.
const (
	VendorHamamatsu = "hamamatsu"
	VendorAperio    = "aperio"
	VendorGeneric   = "generic-tiff"
)

// LevelInfo describes one level of the image pyramid.
type LevelInfo struct {
	Width  int // pixel width of the level
	Height int // pixel height of the level

	// Downsample is the ratio of level-0 resolution to this level's
	// resolution. Level 0 has Downsample 1.
	Downsample float64

	// TileWidth and TileHeight give the on-disk tile geometry of the
	// level, if known. Zero means unknown.
	TileWidth  int
	TileHeight int
}

// SlideInfo holds the pyramid metadata needed to map annotation
// coordinates into pixel space. It is filled in by an external slide
// reader and treated as read-only here, so a single SlideInfo may be
// shared across workers.
type SlideInfo struct {
	Vendor    string  // scanner vendor, see the Vendor constants
	MPPX      float64 // microns per pixel at level 0, x axis
	MPPY      float64 // microns per pixel at level 0, y axis
	Objective int     // objective power, informational only

	// XOffset and YOffset give the physical position of the slide
	// centre in slide units. Zero for most vendors; Hamamatsu scanners
	// record annotation coordinates relative to the slide centre.
	XOffset float64
	YOffset float64

	// Levels is ordered by increasing downsample factor, level 0 first.
	Levels []LevelInfo
}

// LevelCount returns the number of pyramid levels.
func (s *SlideInfo) LevelCount() int {
	return len(s.Levels)
}
