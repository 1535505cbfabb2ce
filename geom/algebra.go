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

package geom

// IntersectsWith reports whether r and other share interior area.
// Rectangles which only touch along an edge do not intersect.
func (r Rect) IntersectsWith(other Rect) bool {
	return r.MaxX() > other.MinX() &&
		r.MinX() < other.MaxX() &&
		r.MaxY() > other.MinY() &&
		r.MinY() < other.MaxY()
}

// AreaOverlappingWith returns the rectangle covered by both r and other.
// The second return value is false if the rectangles do not intersect.
func (r Rect) AreaOverlappingWith(other Rect) (Rect, bool) {
	if !r.IntersectsWith(other) {
		return Rect{}, false
	}
	if r == other {
		return r, true
	}

	origin := Point{X: max(r.MinX(), other.MinX()), Y: max(r.MinY(), other.MinY())}
	corner := Point{X: min(r.MaxX(), other.MaxX()), Y: min(r.MaxY(), other.MaxY())}
	if origin.X >= corner.X || origin.Y >= corner.Y {
		return Rect{}, false
	}
	return Rect{Origin: origin, Size: Size{Width: corner.X - origin.X, Height: corner.Y - origin.Y}}, true
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	origin := Point{X: min(r.MinX(), other.MinX()), Y: min(r.MinY(), other.MinY())}
	return Rect{
		Origin: origin,
		Size: Size{
			Width:  max(r.MaxX(), other.MaxX()) - origin.X,
			Height: max(r.MaxY(), other.MaxY()) - origin.Y,
		},
	}
}

// AreaExcludingRect cuts the part covered by exclude out of r, and returns
// what is left as a list of non-overlapping rectangles.
//
// The pieces are emitted in a fixed order: the strip left of exclude, the
// strip right of it, the strip below it (larger y) and finally the strip
// above it. Each cut is applied to what remains after the previous cuts.
//
// If r and exclude do not intersect, the result is empty, not []Rect{r}.
// Callers which need r back in this case must check IntersectsWith first.
func (r Rect) AreaExcludingRect(exclude Rect) []Rect {
	var out []Rect
	if !r.IntersectsWith(exclude) {
		return out
	}
	rest := r

	if overlap := exclude.MinX() - rest.MinX(); overlap > 0 {
		out = append(out, Rect{
			Origin: rest.Origin,
			Size:   Size{Width: overlap, Height: rest.Height()},
		})
		rest.Origin.X += overlap
		rest.Size.Width -= overlap
	}
	if !rest.IntersectsWith(exclude) {
		return out
	}

	if overlap := rest.MaxX() - exclude.MaxX(); overlap > 0 {
		out = append(out, Rect{
			Origin: Point{X: exclude.MaxX(), Y: rest.MinY()},
			Size:   Size{Width: overlap, Height: rest.Height()},
		})
		rest.Size.Width -= overlap
	}
	if !rest.IntersectsWith(exclude) {
		return out
	}

	if overlap := rest.MaxY() - exclude.MaxY(); overlap > 0 {
		out = append(out, Rect{
			Origin: Point{X: rest.MinX(), Y: exclude.MaxY()},
			Size:   Size{Width: rest.Width(), Height: overlap},
		})
		rest.Size.Height -= overlap
	}
	if !rest.IntersectsWith(exclude) {
		return out
	}

	if overlap := exclude.MinY() - rest.MinY(); overlap > 0 {
		out = append(out, Rect{
			Origin: rest.Origin,
			Size:   Size{Width: rest.Width(), Height: overlap},
		})
	}
	return out
}
