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

// The U32 types exchange coordinates with environments which use unsigned
// fixed-width values, such as shared-memory framebuffer descriptors.
// Conversion into these types truncates: negative values and values above
// math.MaxUint32 wrap around. Conversions happen only at such boundaries.

// PointU32 is a point with unsigned 32-bit coordinates.
type PointU32 struct {
	X, Y uint32
}

// SizeU32 is a size with unsigned 32-bit components.
type SizeU32 struct {
	Width, Height uint32
}

// RectU32 is a rectangle with unsigned 32-bit coordinates.
type RectU32 struct {
	Origin PointU32
	Size   SizeU32
}

// PointU32From converts p by truncating each coordinate to 32 bits.
func PointU32From(p Point) PointU32 {
	return PointU32{X: uint32(p.X), Y: uint32(p.Y)}
}

// SizeU32From converts s by truncating each component to 32 bits.
func SizeU32From(s Size) SizeU32 {
	return SizeU32{Width: uint32(s.Width), Height: uint32(s.Height)}
}

// RectU32From converts r by truncating origin and size to 32 bits.
func RectU32From(r Rect) RectU32 {
	return RectU32{Origin: PointU32From(r.Origin), Size: SizeU32From(r.Size)}
}

// ToPoint widens p to a Point. On 64-bit platforms this is lossless.
func (p PointU32) ToPoint() Point {
	return Point{X: int(p.X), Y: int(p.Y)}
}

// ToSize widens s to a Size.
func (s SizeU32) ToSize() Size {
	return Size{Width: int(s.Width), Height: int(s.Height)}
}

// ToRect widens r to a Rect.
func (r RectU32) ToRect() Rect {
	return Rect{Origin: r.Origin.ToPoint(), Size: r.Size.ToSize()}
}
