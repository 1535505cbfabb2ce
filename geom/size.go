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
	"math"
)

// Size is the extent of a rectangle.
//
// Well-formed sizes are non-negative, but intermediate results of the
// rectangle algebra may transiently have negative components.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Add returns the component-wise sum of s and t.
func (s Size) Add(t Size) Size {
	return Size{Width: s.Width + t.Width, Height: s.Height + t.Height}
}

// Sub returns the component-wise difference of s and t.
func (s Size) Sub(t Size) Size {
	return Size{Width: s.Width - t.Width, Height: s.Height - t.Height}
}

// Area returns Width*Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// MidX returns half the width, truncated toward zero.
func (s Size) MidX() int {
	return s.Width / 2
}

// MidY returns half the height, truncated toward zero.
func (s Size) MidY() int {
	return s.Height / 2
}

func (s Size) String() string {
	return fmt.Sprintf("(%d, %d)", s.Width, s.Height)
}

// SizeF is the extent of a floating point rectangle.
type SizeF struct {
	Width, Height float64
}

// Area returns Width*Height.
func (s SizeF) Area() float64 {
	return s.Width * s.Height
}

// Round converts s to integer components, rounding half away from zero.
func (s SizeF) Round() Size {
	return Size{Width: int(math.Round(s.Width)), Height: int(math.Round(s.Height))}
}

func (s SizeF) String() string {
	return fmt.Sprintf("(%.02f, %.02f)", s.Width, s.Height)
}

// Insets describes how far each edge of a rectangle is moved inward.
type Insets struct {
	Left, Top, Right, Bottom int
}

// UniformInsets returns insets moving all four edges by d.
func UniformInsets(d int) Insets {
	return Insets{Left: d, Top: d, Right: d, Bottom: d}
}

// Add returns the edge-wise sum of in and other.
func (in Insets) Add(other Insets) Insets {
	return Insets{
		Left:   in.Left + other.Left,
		Top:    in.Top + other.Top,
		Right:  in.Right + other.Right,
		Bottom: in.Bottom + other.Bottom,
	}
}
