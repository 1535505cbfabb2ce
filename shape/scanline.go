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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/compose/geom"
)

// BoundingBoxFromEdges returns the union of the bounding boxes of the
// given edges, or the zero rectangle if there are none.
func BoundingBoxFromEdges(edges []LineF) geom.RectF {
	if len(edges) == 0 {
		return geom.RectF{}
	}
	box := edges[0].BoundingBox()
	for _, e := range edges[1:] {
		box = box.Union(e.BoundingBox())
	}
	return box
}

type crossing struct {
	edge LineF
	at   geom.PointF
}

// FillSpans computes the horizontal spans which fill the area enclosed by
// the edges, using the even-odd rule.
//
// Rows are sampled at integer y from floor(minY) up to, but excluding,
// ceil(maxY). An edge takes part in row y if minY <= y < maxY, so
// horizontal edges never do. Every span runs from the left crossing to
// one unit past the right crossing, so that the pixel column of the right
// crossing is painted as well.
func FillSpans(edges []LineF) []LineF {
	if len(edges) == 0 {
		return nil
	}

	box := BoundingBoxFromEdges(edges)
	yMin := int(math.Floor(box.MinY()))
	yMax := int(math.Ceil(box.MaxY()))

	var spans []LineF
	var hits []crossing
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		probe := LineF{P1: geom.PtF(box.MinX(), yf), P2: geom.PtF(box.MaxX(), yf)}

		hits = hits[:0]
		for _, e := range edges {
			if yf < e.MinY() || yf >= e.MaxY() {
				continue
			}
			if at, ok := probe.Intersection(e); ok {
				hits = append(hits, crossing{edge: e, at: at})
			}
		}
		slices.SortStableFunc(hits, func(a, b crossing) int {
			return cmp.Compare(a.at.X, b.at.X)
		})

		inside := false
		for i := 0; i+1 < len(hits); i++ {
			inside = !inside
			if !inside {
				continue
			}
			left, right := hits[i].at, hits[i+1].at
			spans = append(spans, LineF{P1: left, P2: geom.PtF(right.X+1, right.Y)})
		}
	}
	return spans
}
