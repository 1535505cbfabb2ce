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
	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/shape"
)

var subpathCases = []TestCase{
	{
		Name: "two_triangles",
		Contours: []shape.Polygon{
			triangle(16, 20, 28, 44, 4, 44),
			triangle(48, 20, 60, 44, 36, 44),
		},
		Width:   64,
		Height:  64,
		Rule:    shape.NonZero,
		Inside:  []geom.Point{px(16, 38), px(48, 38)},
		Outside: []geom.Point{px(32, 32), px(16, 15), px(48, 50)},
	},
	{
		Name: "overlapping_rect_nonzero",
		Contours: []shape.Polygon{
			rectangle(10, 10, 40, 40),
			rectangle(24, 24, 54, 54),
		},
		Width:   64,
		Height:  64,
		Rule:    shape.NonZero,
		Inside:  []geom.Point{px(15, 15), px(30, 30), px(50, 50)},
		Outside: []geom.Point{px(50, 15), px(15, 50), px(5, 5)},
	},
	{
		Name: "overlapping_rect_evenodd",
		Contours: []shape.Polygon{
			rectangle(10, 10, 40, 40),
			rectangle(24, 24, 54, 54),
		},
		Width:   64,
		Height:  64,
		Rule:    shape.EvenOdd,
		Inside:  []geom.Point{px(15, 15), px(50, 50)},
		Outside: []geom.Point{px(30, 30), px(50, 15), px(15, 50)},
	},
	{
		Name:     "ring_shape",
		Contours: ring(32, 32, 25, 12, false),
		Width:    64,
		Height:   64,
		Rule:     shape.EvenOdd,
		Inside:   []geom.Point{px(10, 32), px(32, 52)},
		Outside:  []geom.Point{px(32, 32), px(3, 3), px(60, 60)},
	},
	{
		Name:     "ring_shape_nonzero",
		Contours: ring(32, 32, 25, 12, true),
		Width:    64,
		Height:   64,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(10, 32), px(32, 52)},
		Outside:  []geom.Point{px(32, 32), px(3, 3)},
	},
	{
		Name: "multiple_rings",
		Contours: append(append(
			ring(34, 34, 20, 10, false),
			ring(94, 34, 20, 10, false)...),
			ring(64, 94, 25, 12, false)...),
		Width:   128,
		Height:  128,
		Rule:    shape.EvenOdd,
		Inside:  []geom.Point{px(18, 34), px(78, 34), px(44, 94)},
		Outside: []geom.Point{px(34, 34), px(94, 34), px(64, 94), px(64, 10)},
	},
	{
		Name:     "many_small_shapes",
		Contours: smallSquares(8, 8),
		Width:    128,
		Height:   128,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(8, 8), px(120, 120), px(56, 72)},
		Outside:  []geom.Point{px(1, 1), px(16, 8), px(8, 16), px(126, 126)},
	},
}

// ring returns a square outline with a square hole, both centred on
// (cx, cy). If reverse is set, the hole is wound against the outline, so
// that it stays clear under the nonzero rule as well.
func ring(cx, cy, outer, inner float64, reverse bool) []shape.Polygon {
	hole := rectangle(cx-inner, cy-inner, cx+inner, cy+inner)
	if reverse {
		hole = reversed(hole)
	}
	return []shape.Polygon{
		rectangle(cx-outer, cy-outer, cx+outer, cy+outer),
		hole,
	}
}

// smallSquares returns a grid of 10×10 squares in cells of 16×16 pixels.
func smallSquares(rows, cols int) []shape.Polygon {
	var out []shape.Polygon
	for row := range rows {
		for col := range cols {
			x := float64(col*16 + 3)
			y := float64(row*16 + 3)
			out = append(out, rectangle(x, y, x+10, y+10))
		}
	}
	return out
}
