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
	"context"
	"errors"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/wsi"
	"seehuhn.de/go/wsi/geometry"
	"seehuhn.de/go/wsi/mask"
)

// FetchFunc loads the pixel data for one tile. The returned buffer is
// owned by the caller and may be modified.
type FetchFunc func(ctx context.Context, roi image.Rectangle) (*mask.Buffer, error)

// EmitFunc receives one clipped tile. ClipEach calls emit from several
// goroutines concurrently; implementations must be safe for that.
type EmitFunc func(roi image.Rectangle, buf *mask.Buffer) error

// ClipEach enumerates all windows, fetches each tile, clips it against
// the annotation regions and passes the result to emit. Tiles are
// processed concurrently by at most workers goroutines; workers <= 0
// means no limit. The first error cancels the remaining work.
//
// The window is reset before use and must not be touched by other
// goroutines while ClipEach runs.
func (c *Clipper) ClipEach(ctx context.Context, win *wsi.SlidingWindow, regions map[string][]geometry.Polygon, fetch FetchFunc, emit EmitFunc, workers int) error {
	win.Reset()

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for {
		roi, err := win.Next()
		if errors.Is(err, wsi.ErrExhausted) {
			break
		} else if err != nil {
			return err
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := fetch(ctx, roi)
			if err != nil {
				return fmt.Errorf("tile %v: %w", roi, err)
			}
			if err := c.ClipTile(buf, roi, regions); err != nil {
				return fmt.Errorf("tile %v: %w", roi, err)
			}
			return emit(roi, buf)
		})
	}
	return g.Wait()
}
