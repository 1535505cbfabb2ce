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

package geom

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// RectF is an axis-aligned rectangle with floating point coordinates.
type RectF struct {
	Origin PointF
	Size   SizeF
}

// NewRectF returns the rectangle with origin (x, y) and the given size.
func NewRectF(x, y, width, height float64) RectF {
	return RectF{Origin: PointF{X: x, Y: y}, Size: SizeF{Width: width, Height: height}}
}

func (r RectF) MinX() float64   { return r.Origin.X }
func (r RectF) MinY() float64   { return r.Origin.Y }
func (r RectF) MaxX() float64   { return r.Origin.X + r.Size.Width }
func (r RectF) MaxY() float64   { return r.Origin.Y + r.Size.Height }
func (r RectF) Width() float64  { return r.Size.Width }
func (r RectF) Height() float64 { return r.Size.Height }

// IsZero reports whether r is the zero rectangle.
func (r RectF) IsZero() bool {
	return r == RectF{}
}

// Union returns the smallest rectangle enclosing both r and other.
func (r RectF) Union(other RectF) RectF {
	origin := PointF{X: min(r.MinX(), other.MinX()), Y: min(r.MinY(), other.MinY())}
	return RectF{
		Origin: origin,
		Size: SizeF{
			Width:  max(r.MaxX(), other.MaxX()) - origin.X,
			Height: max(r.MaxY(), other.MaxY()) - origin.Y,
		},
	}
}

// Round converts r to integer coordinates by rounding origin and size
// separately.
func (r RectF) Round() Rect {
	return Rect{Origin: r.Origin.Round(), Size: r.Size.Round()}
}

// Box converts r to a seehuhn.de/go/geom rectangle.
// The "lower left" corner of the result is the corner with the smallest
// coordinates, which is the top-left corner on screen.
func (r RectF) Box() rect.Rect {
	return rect.Rect{LLx: r.MinX(), LLy: r.MinY(), URx: r.MaxX(), URy: r.MaxY()}
}

// RectFFromBox converts a seehuhn.de/go/geom rectangle to a RectF.
func RectFFromBox(b rect.Rect) RectF {
	return RectF{
		Origin: PointF{X: b.LLx, Y: b.LLy},
		Size:   SizeF{Width: b.URx - b.LLx, Height: b.URy - b.LLy},
	}
}

// Float converts r to floating point coordinates.
func (r Rect) Float() RectF {
	return RectF{
		Origin: r.Origin.Float(),
		Size:   SizeF{Width: float64(r.Size.Width), Height: float64(r.Size.Height)},
	}
}

func (r RectF) String() string {
	return fmt.Sprintf("(%s, %s)", r.Origin, r.Size)
}
