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

package framebuffer

import (
	"errors"
	"testing"

	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/shape"
)

var _ shape.Surface = (*Framebuffer)(nil)

func square(x, y, n float64) shape.Polygon {
	return shape.NewPolygon(
		geom.PtF(x, y),
		geom.PtF(x+n, y),
		geom.PtF(x+n, y+n),
		geom.PtF(x, y+n),
	)
}

func mustNew(t *testing.T, w, h int) *Framebuffer {
	t.Helper()
	fb, err := New(geom.Sz(w, h))
	if err != nil {
		t.Fatal(err)
	}
	return fb
}

func TestNew(t *testing.T) {
	if _, err := New(geom.Sz(0, 10)); !errors.Is(err, ErrEmpty) {
		t.Errorf("zero width: got %v", err)
	}
	if _, err := New(geom.Sz(-1, 10)); !errors.Is(err, geom.ErrNegativeSize) {
		t.Errorf("negative width: got %v", err)
	}

	fb := mustNew(t, 4, 3)
	if got := fb.Bounds(); got != geom.NewRect(0, 0, 4, 3) {
		t.Errorf("bounds %s", got)
	}
	img := fb.Image()
	for y := range 3 {
		for x := range 4 {
			if c := img.RGBAAt(x, y); c.R != 0 || c.G != 0 || c.B != 0 || c.A != 0xff {
				t.Fatalf("pixel (%d, %d) is %v", x, y, c)
			}
		}
	}
}

func TestPutPixel(t *testing.T) {
	fb := mustNew(t, 4, 4)
	fb.PutPixel(geom.Pt(1, 2), shape.Red())
	fb.PutPixel(geom.Pt(-1, 0), shape.Red())
	fb.PutPixel(geom.Pt(4, 0), shape.Red())

	if c := fb.At(geom.Pt(1, 2)); c != shape.Red() {
		t.Errorf("got %s", c)
	}
	if c := fb.At(geom.Pt(100, 100)); c != shape.Black() {
		t.Errorf("outside read %s", c)
	}
}

func TestFillRect(t *testing.T) {
	fb := mustNew(t, 10, 10)
	fb.FillRect(geom.NewRect(7, 7, 10, 10), shape.Blue())
	for _, p := range []geom.Point{{X: 7, Y: 7}, {X: 9, Y: 9}} {
		if c := fb.At(p); c != shape.Blue() {
			t.Errorf("%s: got %s", p, c)
		}
	}
	if c := fb.At(geom.Pt(6, 9)); c != shape.Black() {
		t.Errorf("(6, 9): got %s", c)
	}

	fb.Clear(shape.White())
	if c := fb.At(geom.Pt(0, 0)); c != shape.White() {
		t.Errorf("after clear: got %s", c)
	}
}

func TestSlice(t *testing.T) {
	fb := mustNew(t, 10, 10)
	s := fb.Slice(geom.NewRect(2, 3, 4, 4))
	if got := s.Bounds(); got != geom.NewRect(0, 0, 4, 4) {
		t.Errorf("slice bounds %s", got)
	}

	s.PutPixel(geom.Pt(0, 0), shape.Red())
	s.PutPixel(geom.Pt(4, 0), shape.Red())
	if c := fb.At(geom.Pt(2, 3)); c != shape.Red() {
		t.Errorf("slice origin: got %s", c)
	}
	if c := fb.At(geom.Pt(6, 3)); c != shape.Black() {
		t.Errorf("write outside slice landed: got %s", c)
	}

	inner := s.Slice(geom.NewRect(1, 1, 10, 10))
	if got := inner.Bounds(); got != geom.NewRect(0, 0, 3, 3) {
		t.Errorf("nested slice bounds %s", got)
	}
	inner.Clear(shape.Green())
	if c := fb.At(geom.Pt(3, 4)); c != shape.Green() {
		t.Errorf("nested slice origin: got %s", c)
	}
	if c := fb.At(geom.Pt(6, 7)); c != shape.Black() {
		t.Errorf("nested clear escaped: got %s", c)
	}

	outside := fb.Slice(geom.NewRect(20, 20, 5, 5))
	if outside.Size().Area() != 0 {
		t.Errorf("slice outside has size %s", outside.Size())
	}
	outside.PutPixel(geom.Pt(0, 0), shape.Red())
	outside.Clear(shape.Red())
}

func TestFillPolygonStack(t *testing.T) {
	stack := shape.NewPolygonStack(square(0, 0, 6), square(3, 3, 6))

	cases := []struct {
		mode    shape.FillMode
		overlap shape.Color
	}{
		{shape.NonZero, shape.Red()},
		{shape.EvenOdd, shape.Black()},
	}
	for _, c := range cases {
		t.Run(c.mode.String(), func(t *testing.T) {
			fb := mustNew(t, 10, 10)
			stack.Fill(fb, shape.Red(), c.mode)

			if got := fb.At(geom.Pt(1, 1)); got != shape.Red() {
				t.Errorf("first square: got %s", got)
			}
			if got := fb.At(geom.Pt(8, 8)); got != shape.Red() {
				t.Errorf("second square: got %s", got)
			}
			if got := fb.At(geom.Pt(4, 4)); got != c.overlap {
				t.Errorf("overlap: got %s, want %s", got, c.overlap)
			}
			if got := fb.At(geom.Pt(9, 1)); got != shape.Black() {
				t.Errorf("outside: got %s", got)
			}
		})
	}
}

func TestFillPolygonStackInSlice(t *testing.T) {
	fb := mustNew(t, 10, 10)
	s := fb.Slice(geom.NewRect(5, 5, 5, 5))
	shape.NewPolygonStack(square(-2, -2, 4)).Fill(s, shape.Yellow(), shape.NonZero)

	if c := fb.At(geom.Pt(5, 5)); c != shape.Yellow() {
		t.Errorf("(5, 5): got %s", c)
	}
	if c := fb.At(geom.Pt(6, 6)); c != shape.Yellow() {
		t.Errorf("(6, 6): got %s", c)
	}
	for _, p := range []geom.Point{{X: 4, Y: 4}, {X: 7, Y: 5}, {X: 3, Y: 3}} {
		if c := fb.At(p); c != shape.Black() {
			t.Errorf("%s: got %s", p, c)
		}
	}
}

func TestLinesAndPolygons(t *testing.T) {
	fb := mustNew(t, 10, 10)
	shape.NewLine(geom.Pt(0, 9), geom.Pt(9, 9)).Draw(fb, shape.Green(), 1)
	square(1, 1, 3).Fill(fb, shape.Blue())

	if c := fb.At(geom.Pt(5, 9)); c != shape.Green() {
		t.Errorf("line: got %s", c)
	}
	if c := fb.At(geom.Pt(2, 2)); c != shape.Blue() {
		t.Errorf("polygon: got %s", c)
	}
}
