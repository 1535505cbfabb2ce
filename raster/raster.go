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

// Package raster computes exact area coverage for filled outlines.
//
// Outlines are given as seehuhn.de/go/geom paths. Straight segments are
// used as they are; for curve segments only the chord to the end point is
// used. Coverage is delivered one row at a time through a callback, so
// that callers can composite directly into their own pixel store.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/compose/shape"
)

// EmitFunc receives the coverage of one row.
// coverage[i] is the fraction of pixel (xMin+i, y) covered by the shape,
// in the range [0, 1]. The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// segment is one edge of the outline in device space.
type segment struct {
	a, b vec.Vec2
	dxdy float64 // (b.X-a.X)/(b.Y-a.Y)
}

func (s *segment) top() float64    { return min(s.a.Y, s.b.Y) }
func (s *segment) bottom() float64 { return max(s.a.Y, s.b.Y) }

// xAt returns the x coordinate of the segment's line at height y.
func (s *segment) xAt(y float64) float64 {
	return s.a.X + s.dxdy*(y-s.a.Y)
}

// Rasteriser converts outlines to pixel coverage.
// One Rasteriser can be used for any number of fills; its buffers are
// kept between calls. A Rasteriser must not be used concurrently.
type Rasteriser struct {
	// CTM maps outline coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device-space region where coverage is computed.
	// The corners must lie on integer coordinates.
	Clip rect.Rect

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterised with a full 2D accumulation buffer. Larger outlines are
	// swept row by row with an active segment list.
	denseLimit int

	segs      []segment
	active    []int
	cover     []float32
	area      []float32
	rowUsed   []bool
	crossings []float64

	box      rect.Rect
	boxEmpty bool
}

// New returns a Rasteriser with the identity transformation and the given
// clip rectangle.
func New(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		denseLimit: defaultDenseLimit,
	}
}

// Reset restores the identity transformation and sets a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.segs = r.segs[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
}

// Fill rasterises p with the given fill rule.
func (r *Rasteriser) Fill(p *path.Data, mode shape.FillMode, emit EmitFunc) {
	if p == nil {
		return
	}
	xMin, xMax, yMin, yMax, ok := r.collect(p)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.fillDense(xMin, xMax, yMin, yMax, mode, emit)
	} else {
		r.fillSweep(xMin, xMax, yMin, yMax, mode, emit)
	}
}

// FillNonZero rasterises p with the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, shape.NonZero, emit)
}

// FillEvenOdd rasterises p with the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.Fill(p, shape.EvenOdd, emit)
}

// collect converts p into device-space segments and returns their pixel
// bounding box, clipped to r.Clip.
func (r *Rasteriser) collect(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.segs = r.segs[:0]
	r.boxEmpty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.add(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.add(cur, p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.add(cur, p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.add(cur, start)
			}
			cur = start
		}
	}
	if len(r.segs) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.box.LLx)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.box.URx))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.box.LLy)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.box.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// add appends the segment from a to b, given in outline coordinates.
func (r *Rasteriser) add(a, b vec.Vec2) {
	a = r.apply(a)
	b = r.apply(b)

	dy := b.Y - a.Y
	if math.Abs(dy) < flatEpsilon {
		return
	}
	r.segs = append(r.segs, segment{a: a, b: b, dxdy: (b.X - a.X) / dy})

	lo := vec.Vec2{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi := vec.Vec2{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	if r.boxEmpty {
		r.box = rect.Rect{LLx: lo.X, LLy: lo.Y, URx: hi.X, URy: hi.Y}
		r.boxEmpty = false
		return
	}
	r.box.LLx = min(r.box.LLx, lo.X)
	r.box.LLy = min(r.box.LLy, lo.Y)
	r.box.URx = max(r.box.URx, hi.X)
	r.box.URy = max(r.box.URy, hi.Y)
}

func (r *Rasteriser) apply(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

const (
	// flatEpsilon is the smallest vertical extent of a segment which
	// contributes coverage.
	flatEpsilon = 1e-10

	// defaultDenseLimit selects between the two fill strategies.
	defaultDenseLimit = 65536
)
