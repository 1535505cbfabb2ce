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

// Package damage keeps track of the screen areas which need to be redrawn.
package damage

import (
	"slices"

	"seehuhn.de/go/compose/geom"
	"seehuhn.de/go/compose/internal/logging"
	"seehuhn.de/go/compose/tile"
)

// DefaultMaxRects is the number of stored rectangles above which a new
// Tracker gives up and marks its whole area as damaged.
const DefaultMaxRects = 64

// Tracker accumulates damage as a set of non-overlapping rectangles.
// A Tracker must not be used concurrently.
type Tracker struct {
	// MaxRects limits the number of stored rectangles. When an Add would
	// exceed the limit, the whole area is marked as damaged instead.
	MaxRects int

	bounds geom.Rect
	rects  []geom.Rect
	full   bool
}

// NewTracker returns an empty tracker for the given area.
func NewTracker(bounds geom.Rect) *Tracker {
	return &Tracker{
		MaxRects: DefaultMaxRects,
		bounds:   bounds,
	}
}

// Bounds returns the area covered by the tracker.
func (t *Tracker) Bounds() geom.Rect {
	return t.bounds
}

// Add marks r as damaged. The part of r outside the tracker bounds is
// ignored, as is the part which is already damaged.
func (t *Tracker) Add(r geom.Rect) {
	if t.full {
		return
	}
	r, ok := r.AreaOverlappingWith(t.bounds)
	if !ok {
		return
	}

	pieces := []geom.Rect{r}
	for _, old := range t.rects {
		var next []geom.Rect
		for _, p := range pieces {
			if !p.IntersectsWith(old) {
				next = append(next, p)
				continue
			}
			next = append(next, p.AreaExcludingRect(old)...)
		}
		pieces = next
		if len(pieces) == 0 {
			return
		}
	}

	if len(t.rects)+len(pieces) > t.MaxRects {
		logging.Logger().Debug("damage: switching to full redraw",
			"rects", len(t.rects)+len(pieces),
			"limit", t.MaxRects)
		t.InvalidateAll()
		return
	}
	t.rects = append(t.rects, pieces...)
}

// InvalidateAll marks the whole area as damaged.
func (t *Tracker) InvalidateAll() {
	t.full = true
	t.rects = t.rects[:0]
	if !t.bounds.IsDegenerate() {
		t.rects = append(t.rects, t.bounds)
	}
}

// Full reports whether the whole area is damaged.
func (t *Tracker) Full() bool {
	return t.full
}

// Rects returns the damaged rectangles. They do not overlap.
func (t *Tracker) Rects() []geom.Rect {
	return slices.Clone(t.rects)
}

// Area returns the number of damaged pixels.
func (t *Tracker) Area() int {
	total := 0
	for _, r := range t.rects {
		total += r.Area()
	}
	return total
}

// Tiles returns, in increasing order, the indices of the tiles which
// intersect the damaged area.
func (t *Tracker) Tiles(tiles []tile.Tile) []int {
	var idx []int
	for _, r := range t.rects {
		idx = append(idx, tile.Covering(tiles, r)...)
	}
	slices.Sort(idx)
	return slices.Compact(idx)
}

// Reset clears all damage.
func (t *Tracker) Reset() {
	t.full = false
	t.rects = t.rects[:0]
}
