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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/compose/shape"
)

// Coverage accumulation
//
// Every pixel of a row has two accumulators. cover holds the signed
// vertical extent of the segments crossing the pixel, with downward
// segments counting positive. area holds the same contribution weighted
// by the fraction of the pixel to the right of the crossing.
//
// Integrating a row from left to right, the coverage of pixel i is the
// sum of cover over all pixels left of i, plus area[i]. This is the signed
// covered area of the pixel, which is folded into [0, 1] by the fill rule.

// accumulate adds the part of s inside row y to the accumulators.
// The accumulators are indexed by x-lo; contributions left of lo are
// added to the first pixel, those at or right of hi are dropped.
func (r *Rasteriser) accumulate(s *segment, y int, cover, area []float32, lo, hi int) {
	y0 := max(float64(y), s.top())
	y1 := min(float64(y+1), s.bottom())
	if y1 <= y0 {
		return
	}

	dir := float32(1)
	if s.b.Y < s.a.Y {
		dir = -1
	}

	xa, xb := s.xAt(y0), s.xAt(y1)
	if xa > xb {
		xa, xb = xb, xa
	}
	pa := int(math.Floor(xa))
	pb := int(math.Floor(xb))

	switch {
	case pb < lo:
		c := dir * float32(y1-y0)
		cover[0] += c
		area[0] += c
		return
	case pa >= hi:
		return
	case pa == pb:
		deposit(s, y0, y1, dir, pa, cover, area, lo, hi)
		return
	}

	// The segment crosses pixel boundaries within the row. Split it at
	// every integer x and deposit each piece into its own pixel.
	r.crossings = append(r.crossings[:0], y0, y1)
	for x := pa + 1; x <= pb; x++ {
		yx := s.a.Y + (float64(x)-s.a.X)/s.dxdy
		if yx > y0 && yx < y1 {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		ya, yb := r.crossings[i], r.crossings[i+1]
		if yb <= ya {
			continue
		}
		pix := int(math.Floor(s.xAt((ya + yb) / 2)))
		deposit(s, ya, yb, dir, pix, cover, area, lo, hi)
	}
}

// deposit adds the piece of s between heights y0 and y1, which lies
// within pixel column pix, to the accumulators.
func deposit(s *segment, y0, y1 float64, dir float32, pix int, cover, area []float32, lo, hi int) {
	c := dir * float32(y1-y0)
	if pix < lo {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= hi {
		return
	}

	frac := s.xAt((y0+y1)/2) - float64(pix)
	cover[pix-lo] += c
	area[pix-lo] += c * float32(1-frac)
}

// integrate turns the accumulators for one row into coverage values,
// which are stored in cover.
func integrate(cover, area []float32, mode shape.FillMode) {
	var sum float32
	for i := range cover {
		v := sum + area[i]
		sum += cover[i]
		if v < 0 {
			v = -v
		}

		if mode == shape.NonZero {
			cover[i] = min(v, 1)
			continue
		}
		m := v - 2*float32(int(v/2))
		if m > 1 {
			m = 2 - m
		}
		cover[i] = m
	}
}

// trim strips zero coverage from both ends of a row.
// The result is nil if the whole row is zero.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}
