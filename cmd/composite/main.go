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

// Command composite renders a YAML scene description to a PNG file.
//
// Usage:
//
//	composite -scene scene.yaml [-o out.png] [-scale n] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/compose"
	"seehuhn.de/go/compose/internal/logging"
	"seehuhn.de/go/compose/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene description (YAML)")
	outPath := flag.String("o", "out.png", "output file")
	scale := flag.Int("scale", 1, "integer magnification of the output")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		compose.SetLogger(slog.New(h))
	}

	if err := run(*scenePath, *outPath, *scale); err != nil {
		fmt.Fprintln(os.Stderr, "composite:", err)
		os.Exit(1)
	}
}

func run(scenePath, outPath string, scale int) error {
	if scenePath == "" {
		flag.Usage()
		return errors.New("missing -scene")
	}
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}

	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	fb, err := s.Render()
	if err != nil {
		return err
	}

	var img image.Image = fb.Image()
	if scale > 1 {
		b := img.Bounds()
		big := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(big, big.Bounds(), img, b, xdraw.Src, nil)
		img = big
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	b := img.Bounds()
	logging.Logger().Info("wrote image", "file", outPath, "width", b.Dx(), "height", b.Dy())
	return nil
}
