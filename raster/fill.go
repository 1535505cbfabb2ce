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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/compose/shape"
)

// fillDense rasterises the collected segments using one accumulator row
// per scanline of the bounding box.
func (r *Rasteriser) fillDense(xMin, xMax, yMin, yMax int, mode shape.FillMode, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)

	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.rowUsed)

	for i := range r.segs {
		s := &r.segs[i]
		first := max(int(math.Floor(s.top())), yMin)
		last := min(int(math.Floor(s.bottom()))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * w
			r.accumulate(s, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			if s.reaches(y) {
				r.rowUsed[row] = true
			}
		}
	}

	for row := range h {
		if !r.rowUsed[row] {
			continue
		}
		off := row * w
		cov := r.cover[off : off+w]
		integrate(cov, r.area[off:off+w], mode)
		if t, k := trim(cov); t != nil {
			emit(yMin+row, xMin+k, t)
		}
	}
}

// fillSweep rasterises the collected segments one scanline at a time,
// keeping a list of the segments which cross the current scanline.
func (r *Rasteriser) fillSweep(xMin, xMax, yMin, yMax int, mode shape.FillMode, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.segs) && r.segs[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			s := &r.segs[r.active[i]]
			if s.bottom() <= yf {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(s, y, r.cover, r.area, xMin, xMax)
			if s.reaches(y) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, mode)
		if t, k := trim(r.cover); t != nil {
			emit(y, xMin+k, t)
		}
	}
}

// reaches reports whether s has a non-zero vertical extent within row y.
func (s *segment) reaches(y int) bool {
	y0 := max(float64(y), s.top())
	y1 := min(float64(y+1), s.bottom())
	return y1 > y0
}
