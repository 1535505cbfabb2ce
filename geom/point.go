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

// Package geom implements the integer and floating point primitives used by
// the compositor: points, sizes and axis-aligned rectangles, together with
// the rectangle algebra needed for damage tracking.
//
// The coordinate system has y increasing downward. All types are plain
// values; operations never modify their receiver.
//
// Integer coordinates use int. Arithmetic on coordinates close to the range
// limits of int is a precondition violation and is not checked by the
// individual operations; use [Rect.Check] at the boundary where untrusted
// values enter the system.
package geom

import (
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a location with integer coordinates.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p == Point{}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the component-wise product of p and q.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Scale returns p multiplied by the scalar k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Cross returns the 2D cross product of p and q, both treated as vectors.
func (p Point) Cross(q PointF) float64 {
	return float64(p.X)*q.Y - float64(p.Y)*q.X
}

// Div returns p divided by d, in floating point.
func (p Point) Div(d float64) PointF {
	return PointF{X: float64(p.X) / d, Y: float64(p.Y) / d}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Float converts p to floating point coordinates.
func (p Point) Float() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// PointF is a location with floating point coordinates.
type PointF struct {
	X, Y float64
}

// PtF is shorthand for PointF{X: x, Y: y}.
func PtF(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

// Add returns p+q.
func (p PointF) Add(q PointF) PointF {
	return PointF{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p PointF) Sub(q PointF) PointF {
	return PointF{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the component-wise product of p and q.
func (p PointF) Mul(q PointF) PointF {
	return PointF{X: p.X * q.X, Y: p.Y * q.Y}
}

// Scale returns p multiplied by the scalar k.
func (p PointF) Scale(k float64) PointF {
	return PointF{X: p.X * k, Y: p.Y * k}
}

// Cross returns the 2D cross product of p and q, both treated as vectors.
func (p PointF) Cross(q PointF) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Div returns p divided by d.
func (p PointF) Div(d float64) PointF {
	return PointF{X: p.X / d, Y: p.Y / d}
}

// Distance returns the Euclidean distance between p and q.
func (p PointF) Distance(q PointF) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Round converts p to integer coordinates, rounding half away from zero.
func (p PointF) Round() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Vec2 converts p to a vector for use with the seehuhn.de/go/geom packages.
func (p PointF) Vec2() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// PointFFromVec2 converts a vector to a PointF.
func PointFFromVec2(v vec.Vec2) PointF {
	return PointF{X: v.X, Y: v.Y}
}

func (p PointF) String() string {
	return fmt.Sprintf("(%6.02f, %6.02f)", p.X, p.Y)
}
