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

import "fmt"

// Color is an opaque RGB colour.
type Color struct {
	R, G, B uint8
}

// RGB returns the colour with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

func Black() Color     { return RGB(0, 0, 0) }
func White() Color     { return RGB(255, 255, 255) }
func Gray() Color      { return RGB(127, 127, 127) }
func DarkGray() Color  { return RGB(80, 80, 80) }
func LightGray() Color { return RGB(120, 120, 120) }
func Red() Color       { return RGB(255, 0, 0) }
func Green() Color     { return RGB(0, 255, 0) }
func Blue() Color      { return RGB(0, 0, 255) }
func Yellow() Color    { return RGB(255, 234, 0) }

// SwapOrder exchanges the red and blue components, converting between
// RGB and BGR byte order.
func (c Color) SwapOrder() Color {
	return Color{R: c.B, G: c.G, B: c.R}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d)", c.R, c.G, c.B)
}
