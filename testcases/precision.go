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

var precisionCases = []TestCase{
	subpixelCase("subpixel_offset_00", 0),
	subpixelCase("subpixel_offset_25", 0.25),
	subpixelCase("subpixel_offset_50", 0.5),
	subpixelCase("subpixel_offset_75", 0.75),
	{
		Name:     "thin_sliver",
		Contours: []shape.Polygon{rectangle(4, 20, 60, 22)},
		Width:    64,
		Height:   64,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(10, 20), px(50, 21)},
		Outside:  []geom.Point{px(10, 18), px(10, 24)},
	},
	{
		Name:     "small_shape",
		Contours: []shape.Polygon{rectangle(30, 30, 33, 33)},
		Width:    64,
		Height:   64,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(31, 31)},
		Outside:  []geom.Point{px(27, 31), px(36, 31), px(31, 27), px(31, 36)},
	},
	{
		Name:     "narrow_wedge",
		Contours: []shape.Polygon{triangle(2, 30, 62, 28, 62, 34)},
		Width:    64,
		Height:   64,
		Rule:     shape.EvenOdd,
		Inside:   []geom.Point{px(55, 30), px(58, 31)},
		Outside:  []geom.Point{px(10, 36), px(40, 24)},
	},
}

// subpixelCase fills a 20×20 square whose corners are shifted by offset
// in both directions.
func subpixelCase(name string, offset float64) TestCase {
	return TestCase{
		Name:     name,
		Contours: []shape.Polygon{rectangle(10+offset, 10+offset, 30+offset, 30+offset)},
		Width:    40,
		Height:   40,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(12, 12), px(20, 20), px(28, 28)},
		Outside:  []geom.Point{px(8, 8), px(32, 20), px(20, 32)},
	}
}
