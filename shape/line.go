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

	"seehuhn.de/go/compose/geom"
)

// Line is a directed segment between two integer points.
type Line struct {
	P1, P2 geom.Point
}

// NewLine returns the segment from p1 to p2.
func NewLine(p1, p2 geom.Point) Line {
	return Line{P1: p1, P2: p2}
}

func (l Line) MinX() int { return min(l.P1.X, l.P2.X) }
func (l Line) MinY() int { return min(l.P1.Y, l.P2.Y) }
func (l Line) MaxX() int { return max(l.P1.X, l.P2.X) }
func (l Line) MaxY() int { return max(l.P1.Y, l.P2.Y) }

// Add translates the line by d.
func (l Line) Add(d geom.Point) Line {
	return Line{P1: l.P1.Add(d), P2: l.P2.Add(d)}
}

// Float converts l to floating point coordinates.
func (l Line) Float() LineF {
	return LineF{P1: l.P1.Float(), P2: l.P2.Float()}
}

// Intersection returns the point where l and other cross.
//
// Touching end points count as an intersection. Parallel segments,
// including collinear ones which overlap, never intersect.
func (l Line) Intersection(other Line) (geom.PointF, bool) {
	r := l.P2.Sub(l.P1)
	s := other.P2.Sub(other.P1).Float()
	rxs := r.Cross(s)
	if rxs == 0 {
		return geom.PointF{}, false
	}

	qp := other.P1.Sub(l.P1)
	t := qp.Cross(s) / rxs
	u := qp.Cross(r.Float()) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return geom.PointF{}, false
	}
	return l.P1.Float().Add(r.Float().Scale(t)), true
}

// IntersectsWith reports whether l and other have an intersection point.
func (l Line) IntersectsWith(other Line) bool {
	_, ok := l.Intersection(other)
	return ok
}

// Draw rasterises the line onto s.
//
// A thickness greater than one draws that many parallel copies.
// A vertical line grows to the right and a horizontal line grows
// downward, so the line itself is the left or top edge of the result.
// Border insets rely on this. Diagonal lines are offset along x, centred
// on the line.
func (l Line) Draw(s Surface, c Color, thickness int) {
	if thickness <= 1 {
		l.drawStrip(s, c)
		return
	}

	off := thickness / 2
	for i := range thickness {
		var d geom.Point
		switch {
		case l.P1.X == l.P2.X:
			d.X = i
		case l.P1.Y == l.P2.Y:
			d.Y = i
		default:
			d.X = off - i
		}
		l.Add(d).drawStrip(s, c)
	}
}

func (l Line) drawStrip(s Surface, c Color) {
	for p := range strip(l.P1, l.P2) {
		s.PutPixel(p, c)
	}
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%s, %s)", l.P1, l.P2)
}
