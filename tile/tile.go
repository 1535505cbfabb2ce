// seehuhn.de/go/compose - geometry for tiled window compositing
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

// Package tile maps a viewport onto a set of fixed backing-store tiles.
//
// A tiled framebuffer keeps its content in a number of independent tiles.
// To show a viewport, the compositor finds the tiles visible in the viewport
// and, for each of them, copies the visible sub-rectangle of the tile to the
// matching position in the destination.
package tile

import (
	"fmt"

	"seehuhn.de/go/compose/geom"
)

// Tile is one backing-store region of a tiled framebuffer.
type Tile struct {
	Frame geom.Rect
}

func (t Tile) String() string {
	return fmt.Sprintf("Tile(%s)", t.Frame)
}

// Segment is the visible part of one tile within a viewport.
//
// Viewport and Local describe the same pixels: Viewport relative to the
// viewport origin, Local relative to the tile origin. Both always have the
// same size.
type Segment struct {
	Viewport geom.Rect
	Local    geom.Rect

	// Index is the position of the tile in the list passed to
	// VisibleInViewport.
	Index int

	// Tile points into the slice passed to VisibleInViewport and must
	// be treated as read-only.
	Tile *Tile
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%s / %s within %s)", s.Viewport, s.Local, s.Tile)
}

// VisibleInViewport returns the visible segment of every tile which
// intersects the viewport, in the order of tiles. Tiles which do not
// intersect the viewport, including those which only touch its edge, are
// left out.
func VisibleInViewport(tiles []Tile, viewport geom.Rect) []Segment {
	var out []Segment
	for i := range tiles {
		t := &tiles[i]
		overlap, ok := viewport.AreaOverlappingWith(t.Frame)
		if !ok {
			continue
		}
		out = append(out, Segment{
			Viewport: geom.RectFromParts(overlap.Origin.Sub(viewport.Origin), overlap.Size),
			Local:    geom.RectFromParts(overlap.Origin.Sub(t.Frame.Origin), overlap.Size),
			Index:    i,
			Tile:     t,
		})
	}
	return out
}

// NewGrid divides the canvas area into tiles of the given size, in
// row-major order starting at the top left. Tiles in the last column and
// row are cut short when the canvas is not a multiple of the tile size.
// The result is empty if either size is not positive.
func NewGrid(canvas, tileSize geom.Size) []Tile {
	if canvas.Width <= 0 || canvas.Height <= 0 || tileSize.Width <= 0 || tileSize.Height <= 0 {
		return nil
	}

	tilesX := (canvas.Width + tileSize.Width - 1) / tileSize.Width
	tilesY := (canvas.Height + tileSize.Height - 1) / tileSize.Height

	tiles := make([]Tile, 0, tilesX*tilesY)
	for ty := range tilesY {
		for tx := range tilesX {
			x := tx * tileSize.Width
			y := ty * tileSize.Height
			w := min(tileSize.Width, canvas.Width-x)
			h := min(tileSize.Height, canvas.Height-y)
			tiles = append(tiles, Tile{Frame: geom.NewRect(x, y, w, h)})
		}
	}
	return tiles
}

// Covering returns the indices of all tiles which intersect r.
func Covering(tiles []Tile, r geom.Rect) []int {
	var idx []int
	for i, t := range tiles {
		if t.Frame.IntersectsWith(r) {
			idx = append(idx, i)
		}
	}
	return idx
}
