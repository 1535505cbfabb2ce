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

// Command export writes the test case definitions to testdata/testcases.json
// and renders a reference image for each of them into testdata/reference.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/compose"
	"seehuhn.de/go/compose/shape"
	"seehuhn.de/go/compose/testcases"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run() error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	refDir := filepath.Join("testdata", "reference")
	if err := os.MkdirAll(refDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			out.TestCases = append(out.TestCases, jtc)
			if err := writeReference(filepath.Join(refDir, jtc.Name+".png"), tc); err != nil {
				return err
			}
		}
	}

	f, err := os.Create(filepath.Join("testdata", "testcases.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonTestCase struct {
	Name     string         `json:"name"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Contours [][][2]float64 `json:"contours"`
	FillRule string         `json:"fill_rule"`
	Inside   [][2]int       `json:"inside,omitempty"`
	Outside  [][2]int       `json:"outside,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		FillRule: "nonzero",
	}
	if tc.Rule == shape.EvenOdd {
		jtc.FillRule = "evenodd"
	}
	for _, poly := range tc.Contours {
		contour := make([][2]float64, len(poly.Points))
		for i, p := range poly.Points {
			contour[i] = [2]float64{p.X, p.Y}
		}
		jtc.Contours = append(jtc.Contours, contour)
	}
	for _, p := range tc.Inside {
		jtc.Inside = append(jtc.Inside, [2]int{p.X, p.Y})
	}
	for _, p := range tc.Outside {
		jtc.Outside = append(jtc.Outside, [2]int{p.X, p.Y})
	}
	return jtc
}

func writeReference(name string, tc testcases.TestCase) error {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	compose.RenderExample(tc, img.Pix, tc.Width, tc.Height, img.Stride)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
