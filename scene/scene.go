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

// Package scene reads scene descriptions and renders them through a tiled
// backing store.
//
// A scene is a YAML document:
//
//	canvas: {width: 640, height: 480}
//	tile: {width: 256, height: 256}
//	viewport: {x: 0, y: 0, width: 640, height: 480}
//	background: [0, 0, 0]
//	damage:
//	  - {x: 0, y: 0, width: 10, height: 10}
//	shapes:
//	  - kind: polygon
//	    contours: [[[10, 10], [100, 10], [50, 90]]]
//	    fill: evenodd
//	    color: [255, 0, 0]
//	  - kind: line
//	    from: [0, 0]
//	    to: [100, 50]
//	    thickness: 3
//	    color: [255, 255, 255]
//	  - kind: rect
//	    rect: {x: 5, y: 5, width: 20, height: 10}
//	    color: [0, 0, 255]
//
// Only canvas is required. The tile size defaults to 256×256, the
// viewport to the whole canvas and colours to black (background) and
// white (shapes). If damage is given, only the damaged parts of the
// viewport are composited.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/shape"
)

// Scene is a parsed scene description.
type Scene struct {
	Canvas     Size    `yaml:"canvas"`
	Tile       Size    `yaml:"tile,omitempty"`
	Viewport   *Rect   `yaml:"viewport,omitempty"`
	Background []int   `yaml:"background,omitempty"`
	Damage     []Rect  `yaml:"damage,omitempty"`
	Shapes     []Shape `yaml:"shapes,omitempty"`
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (s Size) geom() geom.Size {
	return geom.Sz(s.Width, s.Height)
}

// Rect is a rectangle in pixels.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (r Rect) geom() geom.Rect {
	return geom.NewRect(r.X, r.Y, r.Width, r.Height)
}

// Shape is one element of a scene. Which fields are used depends on Kind.
type Shape struct {
	Kind  string `yaml:"kind"`
	Color []int  `yaml:"color,omitempty"`

	// polygon
	Contours [][][]float64 `yaml:"contours,omitempty"`
	Fill     string        `yaml:"fill,omitempty"`

	// line
	From      []int `yaml:"from,omitempty"`
	To        []int `yaml:"to,omitempty"`
	Thickness int   `yaml:"thickness,omitempty"`

	// rect
	Rect *Rect `yaml:"rect,omitempty"`
}

// Shape kinds.
const (
	KindPolygon = "polygon"
	KindLine    = "line"
	KindRect    = "rect"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid scene")

const defaultTileSize = 256

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if s.Tile == (Size{}) {
		s.Tile = Size{Width: defaultTileSize, Height: defaultTileSize}
	}
	if s.Viewport == nil {
		s.Viewport = &Rect{Width: s.Canvas.Width, Height: s.Canvas.Height}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scene for errors. Parse calls Validate after
// filling in defaults.
func (s *Scene) Validate() error {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %s", ErrInvalid, s.Canvas.geom())
	}
	if err := geom.RectWithSize(s.Canvas.geom()).Check(); err != nil {
		return fmt.Errorf("%w: canvas: %w", ErrInvalid, err)
	}
	if s.Tile.Width <= 0 || s.Tile.Height <= 0 {
		return fmt.Errorf("%w: tile size %s", ErrInvalid, s.Tile.geom())
	}
	if s.Viewport != nil {
		v := s.Viewport.geom()
		if err := v.Check(); err != nil {
			return fmt.Errorf("%w: viewport: %w", ErrInvalid, err)
		}
		if v.IsDegenerate() {
			return fmt.Errorf("%w: empty viewport %s", ErrInvalid, v)
		}
	}
	if _, err := parseColor(s.Background, shape.Black()); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	for i, d := range s.Damage {
		if err := d.geom().Check(); err != nil {
			return fmt.Errorf("%w: damage %d: %w", ErrInvalid, i, err)
		}
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].validate(); err != nil {
			return fmt.Errorf("%w: shape %d: %w", ErrInvalid, i, err)
		}
	}
	return nil
}

func (sh *Shape) validate() error {
	if _, err := parseColor(sh.Color, shape.White()); err != nil {
		return err
	}

	switch sh.Kind {
	case KindPolygon:
		if len(sh.Contours) == 0 {
			return errors.New("polygon without contours")
		}
		for j, c := range sh.Contours {
			if len(c) < 3 {
				return fmt.Errorf("contour %d has %d points, need at least 3", j, len(c))
			}
			for k, p := range c {
				if len(p) != 2 {
					return fmt.Errorf("contour %d, point %d: need 2 coordinates, got %d", j, k, len(p))
				}
			}
		}
		if _, err := parseFill(sh.Fill); err != nil {
			return err
		}
	case KindLine:
		if len(sh.From) != 2 || len(sh.To) != 2 {
			return errors.New("line end points need 2 coordinates")
		}
		if sh.Thickness < 0 {
			return fmt.Errorf("negative line thickness %d", sh.Thickness)
		}
	case KindRect:
		if sh.Rect == nil {
			return errors.New("rect shape without rect")
		}
		if err := sh.Rect.geom().Check(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
	return nil
}

func parseColor(c []int, def shape.Color) (shape.Color, error) {
	if c == nil {
		return def, nil
	}
	if len(c) != 3 {
		return shape.Color{}, fmt.Errorf("colour needs 3 components, got %d", len(c))
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return shape.Color{}, fmt.Errorf("colour component %d out of range", v)
		}
	}
	return shape.RGB(uint8(c[0]), uint8(c[1]), uint8(c[2])), nil
}

func parseFill(s string) (shape.FillMode, error) {
	switch s {
	case "", "evenodd":
		return shape.EvenOdd, nil
	case "nonzero":
		return shape.NonZero, nil
	}
	return 0, fmt.Errorf("unknown fill rule %q", s)
}
