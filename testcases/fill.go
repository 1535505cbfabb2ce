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

package testcases

import (
	"math"

	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/shape"
)

var fillCases = []TestCase{
	{
		Name:     "triangle_nonzero",
		Contours: []shape.Polygon{triangle(10, 50, 32, 10, 54, 50)},
		Width:    64,
		Height:   64,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(32, 40), px(20, 47), px(32, 15)},
		Outside:  []geom.Point{px(5, 5), px(60, 30), px(32, 56)},
	},
	{
		Name:     "triangle_evenodd",
		Contours: []shape.Polygon{triangle(10, 50, 32, 10, 54, 50)},
		Width:    64,
		Height:   64,
		Rule:     shape.EvenOdd,
		Inside:   []geom.Point{px(32, 40), px(20, 47), px(32, 15)},
		Outside:  []geom.Point{px(5, 5), px(60, 30), px(32, 56)},
	},
	{
		Name:     "star_nonzero",
		Contours: []shape.Polygon{fivePointStar(32, 32, 25)},
		Width:    64,
		Height:   64,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(32, 15), px(32, 32)},
		Outside:  []geom.Point{px(32, 50), px(5, 5), px(60, 5)},
	},
	{
		Name:     "star_evenodd",
		Contours: []shape.Polygon{fivePointStar(32, 32, 25)},
		Width:    64,
		Height:   64,
		Rule:     shape.EvenOdd,
		Inside:   []geom.Point{px(32, 15)},
		Outside:  []geom.Point{px(32, 32), px(32, 50), px(5, 5)},
	},
	{
		Name:     "rectangle",
		Contours: []shape.Polygon{rectangle(10, 10, 44, 44)},
		Width:    64,
		Height:   64,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(10, 10), px(20, 20), px(43, 43)},
		Outside:  []geom.Point{px(8, 8), px(47, 20), px(20, 47)},
	},
}

// triangle returns the triangle through three points.
func triangle(x1, y1, x2, y2, x3, y3 float64) shape.Polygon {
	return shape.NewPolygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// fivePointStar returns a self-intersecting five-pointed star, drawn by
// connecting every second corner of a regular pentagon.
func fivePointStar(cx, cy, r float64) shape.Polygon {
	var corners [5]geom.PointF
	for i := range corners {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	order := []int{0, 2, 4, 1, 3}
	pts := make([]geom.PointF, len(order))
	for i, k := range order {
		pts[i] = corners[k]
	}
	return shape.NewPolygon(pts...)
}
