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

// scaledCases are built from smaller outlines with Polygon.ScaleBy.
var scaledCases = []TestCase{
	{
		Name:     "scale_2x",
		Contours: []shape.Polygon{triangle(5, 25, 16, 5, 27, 25).ScaleBy(2, 2)},
		Width:    64,
		Height:   64,
		Rule:     shape.EvenOdd,
		Inside:   []geom.Point{px(32, 40), px(20, 47), px(32, 15)},
		Outside:  []geom.Point{px(5, 5), px(60, 30), px(32, 56)},
	},
	{
		Name:     "scale_half",
		Contours: []shape.Polygon{rectangle(20, 20, 108, 108).ScaleBy(0.5, 0.5)},
		Width:    64,
		Height:   64,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(10, 10), px(32, 32), px(53, 53)},
		Outside:  []geom.Point{px(7, 7), px(57, 32), px(32, 57)},
	},
	{
		Name: "scale_ring",
		Contours: []shape.Polygon{
			rectangle(8, 8, 56, 56).ScaleBy(2, 2),
			reversed(rectangle(20, 20, 44, 44)).ScaleBy(2, 2),
		},
		Width:   128,
		Height:  128,
		Rule:    shape.NonZero,
		Inside:  []geom.Point{px(20, 64), px(64, 100)},
		Outside: []geom.Point{px(64, 64), px(8, 8), px(120, 120)},
	},
}
