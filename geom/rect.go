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
	"errors"
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle.
//
// The rectangle covers the half-open ranges [MinX, MaxX) and [MinY, MaxY).
// A rectangle with zero width or height is degenerate: it is a valid value
// which covers no pixels. The zero value Rect{} is used as the canonical
// "nothing here" rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect returns the rectangle with origin (x, y) and the given size.
func NewRect(x, y, width, height int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// RectFromParts returns the rectangle with the given origin and size.
func RectFromParts(origin Point, size Size) Rect {
	return Rect{Origin: origin, Size: size}
}

// RectWithSize returns a rectangle of the given size at the origin.
func RectWithSize(size Size) Rect {
	return Rect{Size: size}
}

// RectWithOrigin returns a zero-sized rectangle at the given origin.
func RectWithOrigin(origin Point) Rect {
	return Rect{Origin: origin}
}

// ReplaceOrigin returns r moved to the given origin.
func (r Rect) ReplaceOrigin(origin Point) Rect {
	return Rect{Origin: origin, Size: r.Size}
}

// ReplaceSize returns r with its size replaced.
func (r Rect) ReplaceSize(size Size) Rect {
	return Rect{Origin: r.Origin, Size: size}
}

// AddOrigin returns r translated by d.
func (r Rect) AddOrigin(d Point) Rect {
	return Rect{Origin: r.Origin.Add(d), Size: r.Size}
}

// InsetBy moves each edge of r inward by the given amount.
// Negative values move the edge outward.
//
// The arguments go clockwise from the left edge. This differs from the
// bottom, left, right, top order used by some older callers; convert
// such values through [Insets] and [Rect.ApplyInsets].
func (r Rect) InsetBy(left, top, right, bottom int) Rect {
	return Rect{
		Origin: r.Origin.Add(Point{X: left, Y: top}),
		Size:   r.Size.Sub(Size{Width: left + right, Height: top + bottom}),
	}
}

// ApplyInsets is like InsetBy, with the amounts taken from in.
func (r Rect) ApplyInsets(in Insets) Rect {
	return r.InsetBy(in.Left, in.Top, in.Right, in.Bottom)
}

func (r Rect) MinX() int   { return r.Origin.X }
func (r Rect) MinY() int   { return r.Origin.Y }
func (r Rect) MaxX() int   { return r.Origin.X + r.Size.Width }
func (r Rect) MaxY() int   { return r.Origin.Y + r.Size.Height }
func (r Rect) Width() int  { return r.Size.Width }
func (r Rect) Height() int { return r.Size.Height }

// MidX returns the x coordinate halfway across r, truncated toward the origin.
func (r Rect) MidX() int {
	return r.Origin.X + r.Size.Width/2
}

// MidY returns the y coordinate halfway down r, truncated toward the origin.
func (r Rect) MidY() int {
	return r.Origin.Y + r.Size.Height/2
}

// Midpoint returns (MidX, MidY).
func (r Rect) Midpoint() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Center is the same as Midpoint.
func (r Rect) Center() Point {
	return r.Midpoint()
}

// Area returns the number of pixels covered by r.
func (r Rect) Area() int {
	return r.Size.Area()
}

// IsZero reports whether r is the zero rectangle, with zero origin and size.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// IsDegenerate reports whether r has zero width or zero height.
func (r Rect) IsDegenerate() bool {
	return r.Size.Width == 0 || r.Size.Height == 0
}

// Contains reports whether p lies inside r, using half-open ranges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.Y >= r.MinY() && p.X < r.MaxX() && p.Y < r.MaxY()
}

// Encloses reports whether other lies entirely within r.
// Shared edges are allowed.
func (r Rect) Encloses(other Rect) bool {
	return other.MinX() >= r.MinX() &&
		other.MinY() >= r.MinY() &&
		other.MaxX() <= r.MaxX() &&
		other.MaxY() <= r.MaxY()
}

// TranslatePoint converts p into the coordinate system of r.
func (r Rect) TranslatePoint(p Point) Point {
	return p.Sub(r.Origin)
}

// Constrain clips a child frame to the extent of r.
//
// The child is given in the local coordinates of r, i.e. relative to
// r.Origin. The child keeps its origin and is shortened where it extends
// past the right or bottom edge of r. If the child starts at or beyond
// these edges, the zero rectangle is returned.
func (r Rect) Constrain(child Rect) Rect {
	if child.MinX() >= r.Width() || child.MinY() >= r.Height() {
		return Rect{}
	}

	width := child.Width()
	if child.MaxX() > r.Width() {
		width -= child.MaxX() - r.Width()
	}
	height := child.Height()
	if child.MaxY() > r.Height() {
		height -= child.MaxY() - r.Height()
	}
	return Rect{Origin: child.Origin, Size: Size{Width: width, Height: height}}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		Origin: Point{X: r.Min.X, Y: r.Min.Y},
		Size:   Size{Width: r.Dx(), Height: r.Dy()},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("((%d, %d), (%d, %d))", r.MinX(), r.MinY(), r.Width(), r.Height())
}

// Errors returned by [Rect.Check].
var (
	ErrNegativeSize = errors.New("geom: negative rectangle size")
	ErrOverflow     = errors.New("geom: rectangle coordinates overflow")
)

// Check verifies that r is well-formed: the size is non-negative and
// MaxX and MaxY can be computed without overflowing int.
func (r Rect) Check() error {
	if r.Size.Width < 0 || r.Size.Height < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeSize, r)
	}
	if r.Origin.X > math.MaxInt-r.Size.Width || r.Origin.Y > math.MaxInt-r.Size.Height {
		return fmt.Errorf("%w: %s", ErrOverflow, r)
	}
	if r.Size.Height != 0 && r.Size.Width > math.MaxInt/r.Size.Height {
		return fmt.Errorf("%w: %s", ErrOverflow, r)
	}
	return nil
}
