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

// Package framebuffer provides pixel surfaces backed by RGBA images.
//
// A [Framebuffer] implements [shape.Surface]. Multi-contour fills are
// computed by the coverage rasteriser of package raster, and every pixel
// which is at least half covered is painted; there is no anti-aliasing.
//
// A [TiledStore] keeps a canvas in a grid of framebuffers and composites
// viewports, or damaged parts of viewports, into a destination.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/raster"
	"seehuhn.de/go/compose/shape"
)

// Framebuffer is a rectangular pixel surface.
//
// Coordinates passed to the methods are local to the framebuffer. For a
// framebuffer returned by [New] these are the image coordinates. A
// framebuffer returned by [Framebuffer.Slice] shares its pixels with the
// parent and has its own coordinate origin and clip rectangle.
type Framebuffer struct {
	img *image.RGBA

	// offset maps local coordinates to image coordinates.
	offset geom.Point

	// clip is the writable region, in image coordinates.
	clip geom.Rect

	rast *raster.Rasteriser
}

// New allocates a framebuffer of the given size, cleared to black.
func New(size geom.Size) (*Framebuffer, error) {
	r := geom.RectWithSize(size)
	if err := r.Check(); err != nil {
		return nil, fmt.Errorf("framebuffer size %s: %w", size, err)
	}
	if r.IsDegenerate() {
		return nil, fmt.Errorf("framebuffer size %s: %w", size, ErrEmpty)
	}

	fb := &Framebuffer{
		img:  image.NewRGBA(r.Image()),
		clip: r,
	}
	fb.Clear(shape.Black())
	return fb, nil
}

// view returns a framebuffer sharing img, with the given local origin
// (in image coordinates) and clip.
func view(img *image.RGBA, origin geom.Point, clip geom.Rect) *Framebuffer {
	return &Framebuffer{img: img, offset: origin, clip: clip}
}

// Slice returns a view of the area r, given in local coordinates.
// The local origin of the view is r.Origin and all writes are clipped to
// r. The view shares its pixels with fb.
func (fb *Framebuffer) Slice(r geom.Rect) *Framebuffer {
	abs := r.AddOrigin(fb.offset)
	clip, ok := abs.AreaOverlappingWith(fb.clip)
	if !ok {
		clip = geom.RectWithOrigin(abs.Origin)
	}
	return view(fb.img, abs.Origin, clip)
}

// Bounds returns the writable area in local coordinates.
func (fb *Framebuffer) Bounds() geom.Rect {
	return fb.clip.AddOrigin(geom.Point{}.Sub(fb.offset))
}

// Size returns the size of the writable area.
func (fb *Framebuffer) Size() geom.Size {
	return fb.clip.Size
}

// Image returns the image holding the pixels.
// For a slice this is the image of the root framebuffer.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// At returns the colour of the pixel at p.
// Pixels outside the writable area read as black.
func (fb *Framebuffer) At(p geom.Point) shape.Color {
	q := p.Add(fb.offset)
	if !fb.clip.Contains(q) {
		return shape.Black()
	}
	c := fb.img.RGBAAt(q.X, q.Y)
	return shape.RGB(c.R, c.G, c.B)
}

// PutPixel implements [shape.Surface].
// Pixels outside the writable area are ignored.
func (fb *Framebuffer) PutPixel(p geom.Point, c shape.Color) {
	q := p.Add(fb.offset)
	if !fb.clip.Contains(q) {
		return
	}
	fb.img.SetRGBA(q.X, q.Y, rgba(c))
}

// FillRect paints the rectangle r, given in local coordinates.
func (fb *Framebuffer) FillRect(r geom.Rect, c shape.Color) {
	area, ok := r.AddOrigin(fb.offset).AreaOverlappingWith(fb.clip)
	if !ok {
		return
	}
	draw.Draw(fb.img, area.Image(), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

// Clear paints the whole writable area.
func (fb *Framebuffer) Clear(c shape.Color) {
	draw.Draw(fb.img, fb.clip.Image(), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

// FillPolygonStack implements [shape.Surface].
func (fb *Framebuffer) FillPolygonStack(s shape.PolygonStack, c shape.Color, mode shape.FillMode) {
	if fb.rast == nil {
		fb.rast = raster.New(fb.clip.Float().Box())
	} else {
		fb.rast.Reset(fb.clip.Float().Box())
	}
	fb.rast.CTM = matrix.Identity.Translate(float64(fb.offset.X), float64(fb.offset.Y))

	col := rgba(c)
	fb.rast.Fill(s.Path(), mode, func(y, xMin int, coverage []float32) {
		for i, v := range coverage {
			if v >= coverageThreshold {
				fb.img.SetRGBA(xMin+i, y, col)
			}
		}
	})
}

// blit copies the pixels of src starting at sp into the local rectangle r.
func (fb *Framebuffer) blit(r geom.Rect, src image.Image, sp image.Point) {
	abs := r.AddOrigin(fb.offset)
	area, ok := abs.AreaOverlappingWith(fb.clip)
	if !ok {
		return
	}
	sp = sp.Add(area.Origin.Sub(abs.Origin).Image())
	draw.Draw(fb.img, area.Image(), src, sp, draw.Src)
}

func rgba(c shape.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// coverageThreshold is the coverage from which a pixel counts as painted.
const coverageThreshold = 0.5

// ErrEmpty is returned when a framebuffer would have no pixels.
var ErrEmpty = errors.New("empty framebuffer")
