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
	"iter"

	"seehuhn.de/go/compose/geom"
)

// bresenham returns the pixels on the segment from p0 to p1, including
// both end points. The sequence has max(|dx|, |dy|)+1 elements and can be
// iterated any number of times.
func bresenham(p0, p1 geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		dx := abs(p1.X - p0.X)
		dy := -abs(p1.Y - p0.Y)
		sx := sign(p1.X - p0.X)
		sy := sign(p1.Y - p0.Y)
		e := dx + dy

		p := p0
		for {
			if !yield(p) {
				return
			}
			if p == p1 {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				p.X += sx
			}
			if e2 <= dx {
				e += dx
				p.Y += sy
			}
		}
	}
}

// strip returns the pixels of a one pixel wide line from p0 to p1.
//
// Each axis keeps its own integer error term. The loop runs along the
// axis with the larger extent and emits max(|dx|, |dy|)+1 pixels, starting
// at p0 and ending at p1.
func strip(p0, p1 geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		dx := abs(p1.X - p0.X)
		dy := abs(p1.Y - p0.Y)
		incX := sign(p1.X - p0.X)
		incY := sign(p1.Y - p0.Y)
		distance := max(dx, dy)

		cursor := p0
		errX := distance / 2
		errY := distance / 2
		for range distance + 1 {
			if !yield(cursor) {
				return
			}

			errX += dx
			errY += dy
			if errX >= distance {
				errX -= distance
				cursor.X += incX
			}
			if errY >= distance {
				errY -= distance
				cursor.Y += incY
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
