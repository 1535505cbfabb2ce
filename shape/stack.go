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

package shape

import (
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/compose/geom"
)

// PolygonStack is a set of contours which are filled together, for
// example the outer outline of a glyph and the outlines of its holes.
type PolygonStack struct {
	Polygons []Polygon
}

// NewPolygonStack returns a stack of the given contours.
func NewPolygonStack(polygons ...Polygon) PolygonStack {
	return PolygonStack{Polygons: polygons}
}

// BoundingBox returns the union of the bounding boxes of all contours.
// Contours without edges are ignored. The result is the zero rectangle if
// no contour has edges.
func (s PolygonStack) BoundingBox() geom.RectF {
	var box geom.RectF
	first := true
	for _, p := range s.Polygons {
		if len(p.Points) < 2 {
			continue
		}
		b := p.BoundingBox()
		if first {
			box = b
			first = false
		} else {
			box = box.Union(b)
		}
	}
	return box
}

// Edges returns the edges of all contours, in order.
func (s PolygonStack) Edges() []LineF {
	var edges []LineF
	for _, p := range s.Polygons {
		edges = append(edges, p.Edges()...)
	}
	return edges
}

// Fill hands the whole stack to the surface, which resolves the fill rule
// across contours.
func (s PolygonStack) Fill(dst Surface, c Color, mode FillMode) {
	dst.FillPolygonStack(s, c, mode)
}

// Path returns all contours as subpaths of one path.
// Contours without edges are left out.
func (s PolygonStack) Path() *path.Data {
	d := &path.Data{}
	for _, p := range s.Polygons {
		if len(p.Points) < 2 {
			continue
		}
		d = p.appendPath(d)
	}
	return d
}
