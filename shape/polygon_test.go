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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/compose/geom"
)

func square(x, y, n float64) Polygon {
	return NewPolygon(
		geom.PtF(x, y),
		geom.PtF(x+n, y),
		geom.PtF(x+n, y+n),
		geom.PtF(x, y+n),
	)
}

func TestFillSpansSquare(t *testing.T) {
	for _, n := range []int{1, 4, 10, 33} {
		spans := FillSpans(square(0, 0, float64(n)).Edges())
		if len(spans) != n {
			t.Errorf("side %d: %d spans", n, len(spans))
			continue
		}
		for i, s := range spans {
			y := float64(i)
			want := NewLineF(geom.PtF(0, y), geom.PtF(float64(n)+1, y))
			if s != want {
				t.Errorf("side %d, row %d: got %s, want %s", n, i, s, want)
			}
		}
	}
}

func TestFillSpansTriangle(t *testing.T) {
	tri := NewPolygon(geom.PtF(0, 0), geom.PtF(10, 0), geom.PtF(0, 10))
	spans := FillSpans(tri.Edges())
	if len(spans) != 10 {
		t.Fatalf("got %d spans, want 10", len(spans))
	}
	for i, s := range spans {
		y := float64(i)
		if s.P1.Y != y || s.P2.Y != y {
			t.Errorf("row %d: span %s is not on its row", i, s)
		}
		if s.P1.X != 0 {
			t.Errorf("row %d: span starts at %g", i, s.P1.X)
		}
		if want := 11 - y; math.Abs(s.P2.X-want) > 1e-9 {
			t.Errorf("row %d: span ends at %g, want %g", i, s.P2.X, want)
		}
	}
}

func TestFillSpansHole(t *testing.T) {
	// A square with a square hole, filled with the even-odd rule.
	stack := NewPolygonStack(square(0, 0, 10), square(3, 3, 4))
	spans := FillSpans(stack.Edges())

	rows := make(map[float64][]LineF)
	for _, s := range spans {
		rows[s.P1.Y] = append(rows[s.P1.Y], s)
	}
	if len(rows[1]) != 1 {
		t.Errorf("row 1: %v", rows[1])
	}
	want := []LineF{
		NewLineF(geom.PtF(0, 5), geom.PtF(4, 5)),
		NewLineF(geom.PtF(7, 5), geom.PtF(11, 5)),
	}
	if len(rows[5]) != len(want) {
		t.Fatalf("row 5: got %v, want %v", rows[5], want)
	}
	for i, s := range rows[5] {
		if s.P1.Distance(want[i].P1) > 1e-9 || s.P2.Distance(want[i].P2) > 1e-9 {
			t.Errorf("row 5, span %d: got %s, want %s", i, s, want[i])
		}
	}
}

func TestFillSpansEmpty(t *testing.T) {
	if got := FillSpans(nil); got != nil {
		t.Errorf("got %v", got)
	}
	if got := BoundingBoxFromEdges(nil); !got.IsZero() {
		t.Errorf("got %s", got)
	}
}

func TestPolygonEdges(t *testing.T) {
	a, b, c := geom.PtF(0, 0), geom.PtF(10, 0), geom.PtF(0, 10)
	got := NewPolygon(a, b, c).Edges()
	want := []LineF{NewLineF(a, b), NewLineF(b, c), NewLineF(c, a)}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := NewPolygon(geom.PtF(1, 2), geom.PtF(5, 3), geom.PtF(2, 7))
	if got, want := p.BoundingBox(), geom.NewRectF(1, 2, 4, 5); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := p.ScaleBy(2, 3).BoundingBox(), geom.NewRectF(2, 6, 8, 15); got != want {
		t.Errorf("scaled: got %s, want %s", got, want)
	}
}

func TestPolygonCopiesPoints(t *testing.T) {
	pts := []geom.PointF{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	p := NewPolygon(pts...)
	pts[0] = geom.PtF(100, 100)
	if p.Points[0] != (geom.PointF{}) {
		t.Error("polygon shares its points with the caller")
	}
}

func TestPolygonTooFewPoints(t *testing.T) {
	for _, p := range []Polygon{NewPolygon(), NewPolygon(geom.PtF(3, 4))} {
		if e := p.Edges(); e != nil {
			t.Errorf("%s: edges %v", p, e)
		}
		if b := p.BoundingBox(); !b.IsZero() {
			t.Errorf("%s: bounding box %s", p, b)
		}
		if p.Path() != nil {
			t.Errorf("%s: non-nil path", p)
		}

		s := newRecorder()
		p.Fill(s, Red())
		p.DrawOutline(s, Red())
		if len(s.order) != 0 {
			t.Errorf("%s: drew %d pixels", p, len(s.order))
		}
	}
}

func TestPolygonFill(t *testing.T) {
	s := newRecorder()
	square(0, 0, 3).Fill(s, Green())

	// Every row runs one column past the right edge.
	if len(s.pixels) != 15 {
		t.Errorf("painted %d pixels, want 15", len(s.pixels))
	}
	for y := range 3 {
		for x := range 5 {
			if c, ok := s.pixels[geom.Pt(x, y)]; !ok || c != Green() {
				t.Errorf("pixel %s not painted", geom.Pt(x, y))
			}
		}
	}
}

func TestPolygonDrawOutline(t *testing.T) {
	s := newRecorder()
	square(0, 0, 2).DrawOutline(s, Yellow())
	if len(s.pixels) != 8 {
		t.Errorf("painted %d pixels, want 8", len(s.pixels))
	}
	if _, ok := s.pixels[geom.Pt(1, 1)]; ok {
		t.Error("outline painted the centre")
	}
}

func TestPolygonPath(t *testing.T) {
	p := NewPolygon(geom.PtF(0, 0), geom.PtF(4, 0), geom.PtF(0, 3))
	d := p.Path()
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if !slices.Equal(d.Cmds, wantCmds) {
		t.Errorf("commands: got %v, want %v", d.Cmds, wantCmds)
	}
	if len(d.Coords) != 3 || d.Coords[1] != geom.PtF(4, 0).Vec2() {
		t.Errorf("coordinates: got %v", d.Coords)
	}
}

func TestPolygonStack(t *testing.T) {
	stack := NewPolygonStack(
		square(0, 0, 4),
		NewPolygon(geom.PtF(-100, -100)),
		square(10, 10, 2),
	)

	if got, want := stack.BoundingBox(), geom.NewRectF(0, 0, 12, 12); got != want {
		t.Errorf("bounding box: got %s, want %s", got, want)
	}
	if got := len(stack.Edges()); got != 8 {
		t.Errorf("got %d edges, want 8", got)
	}
	if b := NewPolygonStack().BoundingBox(); !b.IsZero() {
		t.Errorf("empty stack: bounding box %s", b)
	}

	d := stack.Path()
	moves := 0
	for _, c := range d.Cmds {
		if c == path.CmdMoveTo {
			moves++
		}
	}
	if moves != 2 || len(d.Coords) != 8 {
		t.Errorf("path has %d subpaths and %d points", moves, len(d.Coords))
	}

	s := newRecorder()
	stack.Fill(s, Blue(), NonZero)
	if len(s.stacks) != 1 {
		t.Fatalf("surface saw %d stack fills", len(s.stacks))
	}
	call := s.stacks[0]
	if call.color != Blue() || call.mode != NonZero || len(call.stack.Polygons) != 3 {
		t.Errorf("unexpected call %+v", call)
	}
	if len(s.order) != 0 {
		t.Error("stack fill bypassed the surface")
	}
}
