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

// largeCases have bounding boxes above the dense limit of the rasteriser,
// so that stack fills take the sweep path.
var largeCases = []TestCase{
	{
		Name:     "large_rectangle",
		Contours: []shape.Polygon{rectangle(50, 50, 462, 462)},
		Width:    512,
		Height:   512,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(256, 256), px(50, 50), px(461, 461)},
		Outside:  []geom.Point{px(40, 40), px(470, 470)},
	},
	{
		Name:     "large_concentric_nonzero",
		Contours: concentric(256, 256, 200, 100),
		Width:    512,
		Height:   512,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(256, 256), px(100, 256)},
		Outside:  []geom.Point{px(30, 30), px(480, 256)},
	},
	{
		Name:     "large_concentric_evenodd",
		Contours: concentric(256, 256, 200, 100),
		Width:    512,
		Height:   512,
		Rule:     shape.EvenOdd,
		Inside:   []geom.Point{px(100, 256), px(256, 420)},
		Outside:  []geom.Point{px(256, 256), px(30, 30)},
	},
	{
		Name:     "large_diamond",
		Contours: []shape.Polygon{diamond(256, 256, 180)},
		Width:    512,
		Height:   512,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(256, 256), px(256, 100), px(400, 256)},
		Outside:  []geom.Point{px(100, 100), px(500, 256), px(256, 10)},
	},
	{
		Name:     "large_grid",
		Contours: grid(8, 64, 4),
		Width:    512,
		Height:   512,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(32, 32), px(480, 480), px(300, 160)},
		Outside:  []geom.Point{px(64, 32), px(32, 64), px(511, 511)},
	},
	{
		Name:     "large_clipped",
		Contours: []shape.Polygon{rectangle(-100, 100, 612, 400)},
		Width:    512,
		Height:   512,
		Rule:     shape.NonZero,
		Inside:   []geom.Point{px(0, 256), px(511, 256), px(256, 101)},
		Outside:  []geom.Point{px(256, 50), px(256, 450)},
	},
}

// concentric returns two squares around (cx, cy) with the same winding.
func concentric(cx, cy, outer, inner float64) []shape.Polygon {
	return []shape.Polygon{
		rectangle(cx-outer, cy-outer, cx+outer, cy+outer),
		rectangle(cx-inner, cy-inner, cx+inner, cy+inner),
	}
}

// diamond returns a square rotated by 45 degrees, with corners at
// distance r from the centre.
func diamond(cx, cy, r float64) shape.Polygon {
	return shape.NewPolygon(
		pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy),
	)
}

// grid returns n×n squares on a lattice with the given cell size.
// Neighbouring squares are separated by gap pixels.
func grid(n int, cell, gap float64) []shape.Polygon {
	var out []shape.Polygon
	h := gap / 2
	for row := range n {
		for col := range n {
			x := float64(col) * cell
			y := float64(row) * cell
			out = append(out, rectangle(x+h, y+h, x+cell-h, y+cell-h))
		}
	}
	return out
}
