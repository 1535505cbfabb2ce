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
	"image"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestInsetBy(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	if got := r.InsetBy(0, 0, 0, 0); got != r {
		t.Errorf("zero inset: got %s, want %s", got, r)
	}
	if got, want := r.InsetBy(10, 10, 10, 10), NewRect(10, 10, 80, 80); got != want {
		t.Errorf("uniform inset: got %s, want %s", got, want)
	}
	if got, want := r.InsetBy(10, 10, 40, 10), NewRect(10, 10, 50, 80); got != want {
		t.Errorf("right inset: got %s, want %s", got, want)
	}
	if got, want := r.InsetBy(0, 0, 0, 30), NewRect(0, 0, 100, 70); got != want {
		t.Errorf("bottom inset: got %s, want %s", got, want)
	}
	if got, want := r.InsetBy(0, 30, 0, 0), NewRect(0, 30, 100, 70); got != want {
		t.Errorf("top inset: got %s, want %s", got, want)
	}
	if got, want := r.ApplyInsets(UniformInsets(5).Add(Insets{Bottom: 5})), NewRect(5, 5, 90, 85); got != want {
		t.Errorf("ApplyInsets: got %s, want %s", got, want)
	}
}

func TestContainsHalfOpen(t *testing.T) {
	r := NewRect(10, 20, 5, 5)
	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(14, 24), true},
		{Pt(15, 20), false},
		{Pt(10, 25), false},
		{Pt(9, 22), false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("%s.Contains(%s) = %t, want %t", r, c.p, got, c.want)
		}
	}
	if NewRect(0, 0, 0, 10).Contains(Pt(0, 0)) {
		t.Error("degenerate rect contains a point")
	}
}

func TestAccessors(t *testing.T) {
	r := NewRect(-10, 4, 7, 9)
	if r.MaxX() != -3 || r.MaxY() != 13 {
		t.Errorf("max corner of %s: (%d, %d)", r, r.MaxX(), r.MaxY())
	}
	if got, want := r.Midpoint(), Pt(-7, 8); got != want || r.Center() != want {
		t.Errorf("midpoint of %s: got %s, want %s", r, got, want)
	}
	if got := r.TranslatePoint(Pt(0, 0)); got != Pt(10, -4) {
		t.Errorf("TranslatePoint: got %s", got)
	}
	if r.String() != "((-10, 4), (7, 9))" {
		t.Errorf("String: got %q", r.String())
	}
}

func TestZeroAndDegenerate(t *testing.T) {
	if !(Rect{}).IsZero() || !(Rect{}).IsDegenerate() {
		t.Error("zero rect not recognised")
	}
	r := NewRect(5, 5, 0, 10)
	if r.IsZero() || !r.IsDegenerate() {
		t.Errorf("%s: IsZero=%t IsDegenerate=%t", r, r.IsZero(), r.IsDegenerate())
	}
	if NewRect(0, 0, 1, 1).IsDegenerate() {
		t.Error("unit rect is degenerate")
	}
}

func TestConstrain(t *testing.T) {
	parent := NewRect(100, 100, 50, 40)
	cases := []struct {
		child, want Rect
	}{
		{NewRect(0, 0, 10, 10), NewRect(0, 0, 10, 10)},
		{NewRect(45, 0, 10, 50), NewRect(45, 0, 5, 40)},
		{NewRect(50, 0, 10, 10), Rect{}},
		{NewRect(0, 40, 10, 10), Rect{}},

		// The child is local to the parent: x=120 lies past the parent's
		// width even though it is left of the parent's MaxX in parent
		// coordinates.
		{NewRect(120, 0, 10, 10), Rect{}},
		{NewRect(49, 39, 10, 10), NewRect(49, 39, 1, 1)},
	}
	for _, c := range cases {
		if got := parent.Constrain(c.child); got != c.want {
			t.Errorf("Constrain(%s) = %s, want %s", c.child, got, c.want)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := NewRect(0, 0, 10, 10).Check(); err != nil {
		t.Errorf("valid rect: %v", err)
	}
	if err := NewRect(0, 0, -1, 10).Check(); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("negative width: got %v", err)
	}
	if err := NewRect(math.MaxInt-5, 0, 10, 1).Check(); !errors.Is(err, ErrOverflow) {
		t.Errorf("overflowing max x: got %v", err)
	}
	if err := NewRect(0, 0, math.MaxInt/2, 3).Check(); !errors.Is(err, ErrOverflow) {
		t.Errorf("overflowing area: got %v", err)
	}
}

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(-1, 2)
	if p.Add(q) != Pt(2, 6) || p.Sub(q) != Pt(4, 2) || p.Mul(q) != Pt(-3, 8) || p.Scale(2) != Pt(6, 8) {
		t.Error("integer point arithmetic")
	}
	if d := Pt(0, 0).Distance(p); d != 5 {
		t.Errorf("distance: got %g", d)
	}
	if c := p.Cross(PtF(1, 0)); c != -4 {
		t.Errorf("cross: got %g", c)
	}
	if PtF(1, 2).Cross(PtF(3, 4)) != -2 {
		t.Error("float cross")
	}
	if PtF(2.5, -2.5).Round() != Pt(3, -3) {
		t.Errorf("rounding: got %s", PtF(2.5, -2.5).Round())
	}
	if p.Div(2) != PtF(1.5, 2) {
		t.Error("div")
	}
	if !(Point{}).IsZero() || p.IsZero() {
		t.Error("IsZero")
	}
}

func TestRectFUnion(t *testing.T) {
	a := NewRectF(10, 10, 5, 5)
	b := NewRectF(20, 0, 5, 5)
	if got, want := a.Union(b), NewRectF(10, 0, 15, 15); got != want {
		t.Errorf("union: got %s, want %s", got, want)
	}
}

func TestConversions(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	if got := RectFromImage(r.Image()); got != r {
		t.Errorf("image round trip: got %s", got)
	}
	if r.Image() != image.Rect(1, 2, 4, 6) {
		t.Errorf("image: got %v", r.Image())
	}
	if got := RectFFromBox(r.Float().Box()).Round(); got != r {
		t.Errorf("box round trip: got %s", got)
	}
	if b := r.Float().Box(); b != (rect.Rect{LLx: 1, LLy: 2, URx: 4, URy: 6}) {
		t.Errorf("box: got %v", b)
	}
	if PointFFromVec2(vec.Vec2{X: 1, Y: 2}) != PtF(1, 2) || PtF(1, 2).Vec2() != (vec.Vec2{X: 1, Y: 2}) {
		t.Error("vec conversion")
	}
}

func TestU32Truncates(t *testing.T) {
	r := RectU32From(NewRect(-1, 5, 10, 20))
	if r.Origin.X != math.MaxUint32 || r.Origin.Y != 5 {
		t.Errorf("truncation: got %+v", r.Origin)
	}
	if got := RectU32From(NewRect(1, 2, 3, 4)).ToRect(); got != NewRect(1, 2, 3, 4) {
		t.Errorf("round trip: got %s", got)
	}
}
