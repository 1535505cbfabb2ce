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
	"math/rand/v2"
	"slices"
	"testing"
)

func TestIntersectsWith(t *testing.T) {
	cases := []struct {
		a, b Rect
		want bool
	}{
		{NewRect(0, 0, 300, 300), NewRect(0, 300, 300, 300), false},
		{NewRect(0, 0, 300, 300), NewRect(300, 0, 300, 300), false},
		{NewRect(0, 0, 300, 300), NewRect(0, 0, 300, 300), true},
		{NewRect(0, 0, 300, 300), NewRect(299, 299, 10, 10), true},
		{NewRect(0, 0, 10, 10), NewRect(20, 20, 10, 10), false},
		// the test alone does not reject degenerate rects
		{NewRect(0, 0, 10, 10), NewRect(5, 5, 0, 0), true},
	}
	for _, c := range cases {
		if got := c.a.IntersectsWith(c.b); got != c.want {
			t.Errorf("%s.IntersectsWith(%s) = %t, want %t", c.a, c.b, got, c.want)
		}
		if got := c.b.IntersectsWith(c.a); got != c.want {
			t.Errorf("%s.IntersectsWith(%s) = %t, want %t", c.b, c.a, got, c.want)
		}
	}
}

func TestAreaOverlappingWith(t *testing.T) {
	cases := []struct {
		a, b Rect
		want Rect
		ok   bool
	}{
		{NewRect(0, 0, 100, 100), NewRect(50, 0, 100, 100), NewRect(50, 0, 50, 100), true},
		{NewRect(0, 0, 300, 300), NewRect(0, 150, 300, 300), NewRect(0, 150, 300, 150), true},
		{NewRect(10, 10, 30, 30), NewRect(10, 10, 30, 30), NewRect(10, 10, 30, 30), true},
		{NewRect(0, 0, 100, 100), NewRect(20, 30, 10, 10), NewRect(20, 30, 10, 10), true},
		{NewRect(0, 0, 300, 300), NewRect(0, 300, 300, 300), Rect{}, false},
		{NewRect(0, 0, 10, 10), NewRect(5, 5, 0, 0), Rect{}, false},
	}
	for _, c := range cases {
		for _, order := range [][2]Rect{{c.a, c.b}, {c.b, c.a}} {
			got, ok := order[0].AreaOverlappingWith(order[1])
			if ok != c.ok || got != c.want {
				t.Errorf("%s.AreaOverlappingWith(%s) = %s, %t, want %s, %t",
					order[0], order[1], got, ok, c.want, c.ok)
			}
		}
	}
}

func TestAreaExcludingRect(t *testing.T) {
	cases := []struct {
		name          string
		main, exclude Rect
		want          []Rect
	}{
		{
			name:    "disjoint",
			main:    NewRect(0, 0, 300, 300),
			exclude: NewRect(0, 300, 300, 300),
			want:    nil,
		},
		{
			name:    "lower_half_remains",
			main:    NewRect(0, 150, 300, 300),
			exclude: NewRect(0, 0, 300, 300),
			want:    []Rect{NewRect(0, 300, 300, 150)},
		},
		{
			name:    "left_and_right",
			main:    NewRect(0, 100, 400, 50),
			exclude: NewRect(50, 0, 300, 300),
			want:    []Rect{NewRect(0, 100, 50, 50), NewRect(350, 100, 50, 50)},
		},
		{
			name:    "right_only",
			main:    NewRect(0, 100, 400, 50),
			exclude: NewRect(0, 0, 300, 300),
			want:    []Rect{NewRect(300, 100, 100, 50)},
		},
		{
			name:    "notch_from_top",
			main:    NewRect(300, 200, 300, 100),
			exclude: NewRect(400, 100, 100, 150),
			want: []Rect{
				NewRect(300, 200, 100, 100),
				NewRect(500, 200, 100, 100),
				NewRect(400, 250, 100, 50),
			},
		},
		{
			name:    "vertical_bar_through_horizontal",
			main:    NewRect(0, 50, 200, 50),
			exclude: NewRect(50, 0, 100, 200),
			want:    []Rect{NewRect(0, 50, 50, 50), NewRect(150, 50, 50, 50)},
		},
		{
			name:    "horizontal_bar_through_vertical",
			main:    NewRect(50, 0, 100, 200),
			exclude: NewRect(0, 50, 200, 50),
			want:    []Rect{NewRect(50, 100, 100, 100), NewRect(50, 0, 100, 50)},
		},
		{
			name:    "four_way",
			main:    NewRect(0, 0, 200, 200),
			exclude: NewRect(50, 50, 100, 100),
			want: []Rect{
				NewRect(0, 0, 50, 200),
				NewRect(150, 0, 50, 200),
				NewRect(50, 150, 100, 50),
				NewRect(50, 0, 100, 50),
			},
		},
		{
			name:    "corner",
			main:    NewRect(200, 200, 100, 130),
			exclude: NewRect(250, 250, 100, 130),
			want:    []Rect{NewRect(200, 200, 50, 130), NewRect(250, 200, 50, 50)},
		},
		{
			name:    "fully_covered",
			main:    NewRect(10, 10, 10, 10),
			exclude: NewRect(0, 0, 100, 100),
			want:    nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.main.AreaExcludingRect(c.exclude)
			if !slices.Equal(got, c.want) {
				t.Errorf("%s.AreaExcludingRect(%s) = %v, want %v", c.main, c.exclude, got, c.want)
			}
		})
	}
}

func randomRect(rng *rand.Rand) Rect {
	return NewRect(rng.IntN(200)-100, rng.IntN(200)-100, rng.IntN(150)+1, rng.IntN(150)+1)
}

func TestUnionEncloses(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		a, b := randomRect(rng), randomRect(rng)
		u := a.Union(b)
		if !u.Encloses(a) || !u.Encloses(b) {
			t.Fatalf("%s does not enclose %s and %s", u, a, b)
		}
		// every edge of the union touches one of the inputs
		if u.MinX() != min(a.MinX(), b.MinX()) || u.MaxX() != max(a.MaxX(), b.MaxX()) ||
			u.MinY() != min(a.MinY(), b.MinY()) || u.MaxY() != max(a.MaxY(), b.MaxY()) {
			t.Fatalf("%s is not the smallest rect enclosing %s and %s", u, a, b)
		}
	}
}

func TestOverlapSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		a, b := randomRect(rng), randomRect(rng)
		ab, okAB := a.AreaOverlappingWith(b)
		ba, okBA := b.AreaOverlappingWith(a)
		if ab != ba || okAB != okBA {
			t.Fatalf("overlap(%s, %s) = %s, %t but overlap(%s, %s) = %s, %t",
				a, b, ab, okAB, b, a, ba, okBA)
		}
		if okAB != a.IntersectsWith(b) {
			t.Fatalf("overlap and IntersectsWith disagree for %s and %s", a, b)
		}
	}
}

func TestSubtractionConservesArea(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 2000 {
		a, b := randomRect(rng), randomRect(rng)
		if !a.IntersectsWith(b) {
			if pieces := a.AreaExcludingRect(b); len(pieces) != 0 {
				t.Fatalf("disjoint %s minus %s gave %v", a, b, pieces)
			}
			continue
		}
		overlap, _ := a.AreaOverlappingWith(b)
		pieces := a.AreaExcludingRect(b)

		total := overlap.Area()
		for i, p := range pieces {
			if p.IsDegenerate() {
				t.Fatalf("%s minus %s: degenerate piece %s", a, b, p)
			}
			if !a.Encloses(p) {
				t.Fatalf("%s minus %s: piece %s outside", a, b, p)
			}
			if p.IntersectsWith(b) {
				t.Fatalf("%s minus %s: piece %s overlaps excluded area", a, b, p)
			}
			for _, q := range pieces[i+1:] {
				if p.IntersectsWith(q) {
					t.Fatalf("%s minus %s: pieces %s and %s overlap", a, b, p, q)
				}
			}
			total += p.Area()
		}
		if total != a.Area() {
			t.Fatalf("%s minus %s: pieces %v plus overlap %s cover %d pixels, want %d",
				a, b, pieces, overlap, total, a.Area())
		}
	}
}
