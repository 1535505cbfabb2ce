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
	"fmt"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/compose/geom"
)

// Polygon is a closed outline through a sequence of points.
// The last point is implicitly joined back to the first.
//
// A polygon with fewer than two points has no edges. It has a zero
// bounding box and drawing it has no effect.
type Polygon struct {
	Points []geom.PointF
}

// NewPolygon returns the polygon through the given points.
// The points are copied.
func NewPolygon(points ...geom.PointF) Polygon {
	return Polygon{Points: slices.Clone(points)}
}

// Edges returns the consecutive segments of the outline, ending with the
// closing segment from the last point to the first.
func (p Polygon) Edges() []LineF {
	n := len(p.Points)
	if n < 2 {
		return nil
	}
	edges := make([]LineF, n)
	for i := range n {
		edges[i] = LineF{P1: p.Points[i], P2: p.Points[(i+1)%n]}
	}
	return edges
}

// BoundingBox returns the union of the bounding boxes of all edges.
func (p Polygon) BoundingBox() geom.RectF {
	return BoundingBoxFromEdges(p.Edges())
}

// ScaleBy scales all points by sx horizontally and sy vertically.
func (p Polygon) ScaleBy(sx, sy float64) Polygon {
	out := make([]geom.PointF, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Mul(geom.PtF(sx, sy))
	}
	return Polygon{Points: out}
}

// DrawOutline draws every edge of p as a one pixel wide line.
func (p Polygon) DrawOutline(s Surface, c Color) {
	for _, e := range p.Edges() {
		e.Draw(s, c)
	}
}

// Fill paints the interior of p onto s, using the even-odd rule.
func (p Polygon) Fill(s Surface, c Color) {
	for _, span := range FillSpans(p.Edges()) {
		span.Draw(s, c)
	}
}

// Path returns the outline as a closed path.
// The result is nil if p has no edges.
func (p Polygon) Path() *path.Data {
	if len(p.Points) < 2 {
		return nil
	}
	return p.appendPath(&path.Data{})
}

func (p Polygon) appendPath(d *path.Data) *path.Data {
	d = d.MoveTo(p.Points[0].Vec2())
	for _, pt := range p.Points[1:] {
		d = d.LineTo(pt.Vec2())
	}
	return d.Close()
}

func (p Polygon) String() string {
	return fmt.Sprintf("Polygon%v", p.Points)
}
