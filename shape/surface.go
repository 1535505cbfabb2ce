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

// Package shape implements line and polygon geometry together with the
// rasterisation of lines and filled polygons onto a pixel surface.
//
// Shapes draw onto any [Surface]. The package never inspects the surface
// beyond the two operations of that interface.
package shape

import (
	"fmt"

	"seehuhn.de/go/compose/geom"
)

// Surface is the capability a pixel target has to provide.
//
// Out-of-bounds writes are the concern of the implementation: it may clip
// them or ignore them, but must not fail.
type Surface interface {
	// PutPixel sets the pixel at p to colour c.
	PutPixel(p geom.Point, c Color)

	// FillPolygonStack fills all contours of s together with the given
	// rule. This is used for multi-contour shapes, like glyphs with holes,
	// where the interaction between contours depends on the fill rule.
	FillPolygonStack(s PolygonStack, c Color, mode FillMode)
}

// FillMode selects how overlapping contours combine when filling.
type FillMode int

const (
	// EvenOdd fills points enclosed by an odd number of contours.
	EvenOdd FillMode = iota

	// NonZero fills points with a non-zero winding number.
	NonZero
)

func (m FillMode) String() string {
	switch m {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	}
	return fmt.Sprintf("FillMode(%d)", int(m))
}
