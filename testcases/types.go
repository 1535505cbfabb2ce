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

// Package testcases holds polygon fills used by the tests, the benchmarks
// and the reference image generator.
package testcases

import (
	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/shape"
)

// TestCase defines a single fill test.
type TestCase struct {
	Name     string          // lowercase a-z, 0-9 and _ only
	Contours []shape.Polygon // the outline, one polygon per contour
	Width    int             // canvas width in pixels
	Height   int             // canvas height in pixels
	Rule     shape.FillMode  // how the contours combine

	// Inside lists pixels which must be painted, Outside pixels which must
	// stay clear. The points are chosen away from the outline, so that
	// they hold for every fill strategy.
	Inside  []geom.Point
	Outside []geom.Point
}

// Stack returns the contours as a polygon stack.
func (tc TestCase) Stack() shape.PolygonStack {
	return shape.NewPolygonStack(tc.Contours...)
}

// pt is shorthand for geom.PtF(x, y).
func pt(x, y float64) geom.PointF {
	return geom.PtF(x, y)
}

// px is shorthand for geom.Pt(x, y).
func px(x, y int) geom.Point {
	return geom.Pt(x, y)
}

// rectangle returns the rectangle between (x1, y1) and (x2, y2), wound
// clockwise on screen.
func rectangle(x1, y1, x2, y2 float64) shape.Polygon {
	return shape.NewPolygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// reversed returns p with the opposite winding.
func reversed(p shape.Polygon) shape.Polygon {
	n := len(p.Points)
	out := make([]geom.PointF, n)
	for i, q := range p.Points {
		out[n-1-i] = q
	}
	return shape.Polygon{Points: out}
}
