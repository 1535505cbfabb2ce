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

package framebuffer

import (
	"fmt"

	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/internal/logging"
	"seehuhn.de/go/compose/shape"
	"seehuhn.de/go/compose/tile"
)

// TiledStore keeps the content of a canvas in a grid of backing tiles.
type TiledStore struct {
	canvas geom.Size
	tiles  []tile.Tile
	bufs   []*Framebuffer
}

// NewTiledStore allocates the backing tiles for a canvas.
func NewTiledStore(canvas, tileSize geom.Size) (*TiledStore, error) {
	if err := geom.RectWithSize(canvas).Check(); err != nil {
		return nil, fmt.Errorf("canvas size %s: %w", canvas, err)
	}
	tiles := tile.NewGrid(canvas, tileSize)
	if tiles == nil {
		return nil, fmt.Errorf("canvas %s with tiles %s: %w", canvas, tileSize, ErrEmpty)
	}

	s := &TiledStore{
		canvas: canvas,
		tiles:  tiles,
		bufs:   make([]*Framebuffer, len(tiles)),
	}
	for i, t := range tiles {
		fb, err := New(t.Frame.Size)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		s.bufs[i] = fb
	}
	return s, nil
}

// Canvas returns the size of the canvas.
func (s *TiledStore) Canvas() geom.Size {
	return s.canvas
}

// Tiles returns the tile layout, in row-major order.
// The slice must not be modified.
func (s *TiledStore) Tiles() []tile.Tile {
	return s.tiles
}

// Tile returns the framebuffer holding tile i, in tile-local coordinates.
func (s *TiledStore) Tile(i int) *Framebuffer {
	return s.bufs[i]
}

// Draw calls paint once for every tile. The surface passed to paint uses
// canvas coordinates and clips to the tile.
func (s *TiledStore) Draw(paint func(shape.Surface)) {
	for i := range s.tiles {
		paint(s.canvasView(i))
	}
}

// DrawArea is like Draw, but only visits the tiles which intersect area.
// It returns the number of tiles visited.
func (s *TiledStore) DrawArea(area geom.Rect, paint func(shape.Surface)) int {
	idx := tile.Covering(s.tiles, area)
	for _, i := range idx {
		paint(s.canvasView(i))
	}
	return len(idx)
}

// canvasView returns a view of tile i which uses canvas coordinates.
func (s *TiledStore) canvasView(i int) *Framebuffer {
	fb := s.bufs[i]
	return fb.Slice(geom.RectFromParts(geom.Point{}.Sub(s.tiles[i].Frame.Origin), s.canvas))
}

// Composite copies the viewport, given in canvas coordinates, into dst.
// The top left corner of the viewport is placed at the origin of dst.
// The returned segments describe the copied pieces.
func (s *TiledStore) Composite(dst *Framebuffer, viewport geom.Rect) []tile.Segment {
	segs := tile.VisibleInViewport(s.tiles, viewport)
	for _, seg := range segs {
		src := s.bufs[seg.Index].Image()
		dst.blit(seg.Viewport, src, seg.Local.Origin.Image())
	}
	logging.Logger().Debug("composite",
		"viewport", viewport.String(),
		"segments", len(segs))
	return segs
}

// CompositeDamage is like Composite, but only copies the given damage
// rectangles, which are in viewport coordinates. Damage outside the
// viewport is ignored. It returns the number of pixels copied.
func (s *TiledStore) CompositeDamage(dst *Framebuffer, viewport geom.Rect, damage []geom.Rect) int {
	local := geom.RectWithSize(viewport.Size)
	copied := 0
	for _, d := range damage {
		d, ok := d.AreaOverlappingWith(local)
		if !ok {
			continue
		}
		part := d.AddOrigin(viewport.Origin)
		for _, seg := range tile.VisibleInViewport(s.tiles, part) {
			src := s.bufs[seg.Index].Image()
			dst.blit(seg.Viewport.AddOrigin(d.Origin), src, seg.Local.Origin.Image())
			copied += seg.Viewport.Area()
		}
	}
	logging.Logger().Debug("composite damage",
		"viewport", viewport.String(),
		"rects", len(damage),
		"pixels", copied)
	return copied
}
