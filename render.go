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

// Package compose provides the geometry for a tiled window compositor:
// integer rectangles and their algebra, tile grids, line and polygon
// rasterisation, damage tracking and a framebuffer to draw into.
//
// The sub-packages hold the individual pieces.  This package ties them
// together for the reference test cases in [testcases].
package compose

//go:generate go run ./testcases/export

import (
	"log/slog"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/internal/logging"
	"seehuhn.de/go/compose/raster"
	"seehuhn.de/go/compose/shape"
	"seehuhn.de/go/compose/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
//
// A single even-odd contour is filled by the scanline filler, which
// paints whole pixels.  Everything else goes through the rasteriser and
// keeps its anti-aliased coverage.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	s := &graySurface{buf: buf, width: width, height: height, stride: stride}
	if len(tc.Contours) == 1 && tc.Rule == shape.EvenOdd {
		tc.Contours[0].Fill(s, shape.White())
		return
	}
	tc.Stack().Fill(s, shape.White(), tc.Rule)
}

// SetLogger sets the logger used by all packages of the module.
// A nil logger silences the output, which is also the default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// graySurface is a [shape.Surface] backed by an 8-bit coverage buffer.
// Colours are ignored: every painted pixel is fully opaque.
type graySurface struct {
	buf           []byte
	width, height int
	stride        int
	rast          *raster.Rasteriser
}

func (s *graySurface) PutPixel(p geom.Point, _ shape.Color) {
	if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y >= s.height {
		return
	}
	s.buf[p.Y*s.stride+p.X] = 255
}

func (s *graySurface) FillPolygonStack(ps shape.PolygonStack, _ shape.Color, mode shape.FillMode) {
	clip := rect.Rect{URx: float64(s.width), URy: float64(s.height)}
	if s.rast == nil {
		s.rast = raster.New(clip)
	} else {
		s.rast.Reset(clip)
	}
	s.rast.Fill(ps.Path(), mode, func(y, xMin int, coverage []float32) {
		row := s.buf[y*s.stride+xMin:]
		for i, c := range coverage {
			row[i] = max(row[i], uint8(min(c, 1)*255+0.5))
		}
	})
}
