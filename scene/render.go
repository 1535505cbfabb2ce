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

package scene

import (
	"seehuhn.de/go/compose/damage"
	"seehuhn.de/go/compose/framebuffer"
	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/internal/logging"
	"seehuhn.de/go/compose/shape"
)

// Render draws the scene into a tiled store and composites the viewport
// into a new framebuffer of the viewport's size.
func (s *Scene) Render() (*framebuffer.Framebuffer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	store, err := framebuffer.NewTiledStore(s.Canvas.geom(), s.Tile.geom())
	if err != nil {
		return nil, err
	}
	bg, _ := parseColor(s.Background, shape.Black())
	for i := range store.Tiles() {
		store.Tile(i).Clear(bg)
	}
	store.Draw(func(dst shape.Surface) {
		for i := range s.Shapes {
			s.Shapes[i].draw(dst)
		}
	})

	viewport := geom.RectWithSize(s.Canvas.geom())
	if s.Viewport != nil {
		viewport = s.Viewport.geom()
	}
	out, err := framebuffer.New(viewport.Size)
	if err != nil {
		return nil, err
	}
	out.Clear(bg)

	log := logging.Logger()
	if s.Damage == nil {
		segs := store.Composite(out, viewport)
		log.Debug("scene rendered",
			"shapes", len(s.Shapes),
			"tiles", len(store.Tiles()),
			"segments", len(segs))
		return out, nil
	}

	tr := damage.NewTracker(geom.RectWithSize(viewport.Size))
	for _, d := range s.Damage {
		tr.Add(d.geom())
	}
	n := store.CompositeDamage(out, viewport, tr.Rects())
	log.Debug("scene rendered",
		"shapes", len(s.Shapes),
		"tiles", len(store.Tiles()),
		"damage", len(tr.Rects()),
		"pixels", n)
	return out, nil
}

// Polygons returns the contours of a polygon or rect shape.
func (sh *Shape) Polygons() []shape.Polygon {
	switch sh.Kind {
	case KindPolygon:
		out := make([]shape.Polygon, len(sh.Contours))
		for i, c := range sh.Contours {
			pts := make([]geom.PointF, len(c))
			for j, p := range c {
				pts[j] = geom.PtF(p[0], p[1])
			}
			out[i] = shape.NewPolygon(pts...)
		}
		return out
	case KindRect:
		r := sh.Rect.geom().Float()
		return []shape.Polygon{shape.NewPolygon(
			geom.PtF(r.MinX(), r.MinY()),
			geom.PtF(r.MaxX(), r.MinY()),
			geom.PtF(r.MaxX(), r.MaxY()),
			geom.PtF(r.MinX(), r.MaxY()),
		)}
	}
	return nil
}

func (sh *Shape) draw(dst shape.Surface) {
	c, _ := parseColor(sh.Color, shape.White())
	switch sh.Kind {
	case KindPolygon:
		mode, _ := parseFill(sh.Fill)
		polys := sh.Polygons()
		if len(polys) == 1 && mode == shape.EvenOdd {
			polys[0].Fill(dst, c)
			return
		}
		shape.NewPolygonStack(polys...).Fill(dst, c, mode)
	case KindRect:
		shape.NewPolygonStack(sh.Polygons()...).Fill(dst, c, shape.NonZero)
	case KindLine:
		l := shape.NewLine(geom.Pt(sh.From[0], sh.From[1]), geom.Pt(sh.To[0], sh.To[1]))
		l.Draw(dst, c, sh.Thickness)
	}
}
