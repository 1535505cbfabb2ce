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
	"iter"
	"slices"

	"seehuhn.de/go/compose/geom"
)

// LineF is a directed segment between two floating point positions.
type LineF struct {
	P1, P2 geom.PointF
}

// NewLineF returns the segment from p1 to p2.
func NewLineF(p1, p2 geom.PointF) LineF {
	return LineF{P1: p1, P2: p2}
}

func (l LineF) MinX() float64 { return min(l.P1.X, l.P2.X) }
func (l LineF) MinY() float64 { return min(l.P1.Y, l.P2.Y) }
func (l LineF) MaxX() float64 { return max(l.P1.X, l.P2.X) }
func (l LineF) MaxY() float64 { return max(l.P1.Y, l.P2.Y) }

// BoundingBox returns the smallest rectangle containing both end points.
func (l LineF) BoundingBox() geom.RectF {
	return geom.NewRectF(l.MinX(), l.MinY(), l.MaxX()-l.MinX(), l.MaxY()-l.MinY())
}

// Round converts l to integer coordinates.
func (l LineF) Round() Line {
	return Line{P1: l.P1.Round(), P2: l.P2.Round()}
}

// Intersection returns the point where l and other cross, with the same
// conventions as [Line.Intersection].
func (l LineF) Intersection(other LineF) (geom.PointF, bool) {
	r := l.P2.Sub(l.P1)
	s := other.P2.Sub(other.P1)
	rxs := r.Cross(s)
	if rxs == 0 {
		return geom.PointF{}, false
	}

	qp := other.P1.Sub(l.P1)
	t := qp.Cross(s) / rxs
	u := qp.Cross(r) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return geom.PointF{}, false
	}
	return l.P1.Add(r.Scale(t)), true
}

// Pixels returns the pixels on the line between the rounded end points,
// both included.
func (l LineF) Pixels() iter.Seq[geom.Point] {
	return bresenham(l.P1.Round(), l.P2.Round())
}

// RenderedPixels is like Pixels, but yields floating point positions.
func (l LineF) RenderedPixels() iter.Seq[geom.PointF] {
	return func(yield func(geom.PointF) bool) {
		for p := range l.Pixels() {
			if !yield(p.Float()) {
				return
			}
		}
	}
}

// ComputeRenderedPixels collects the sequence [LineF.RenderedPixels].
func (l LineF) ComputeRenderedPixels() []geom.PointF {
	return slices.Collect(l.RenderedPixels())
}

// Draw plots every pixel of l onto s.
func (l LineF) Draw(s Surface, c Color) {
	for p := range l.Pixels() {
		s.PutPixel(p, c)
	}
}

func (l LineF) String() string {
	return fmt.Sprintf("LineF(%s, %s)", l.P1, l.P2)
}
