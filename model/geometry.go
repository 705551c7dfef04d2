package model

import "math"

// Rect is an axis-aligned bounding box in page space. The origin is the
// top-left corner of the page and Y grows downward, so Y0 is the top edge
// and Y1 the bottom edge.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from its corner coordinates
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Overlaps reports whether two rectangles share interior area on both axes.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return !(r.X1 <= other.X0 || other.X1 <= r.X0 ||
		r.Y1 <= other.Y0 || other.Y1 <= r.Y0)
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// IsEmpty reports whether the rectangle has no area. A rectangle that
// collapses to a line or a point is empty.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// IsValid returns true if all coordinates are finite and the rectangle is not
// inverted. It says nothing about area; see IsEmpty.
func (r Rect) IsValid() bool {
	for _, v := range [4]float64{r.X0, r.Y0, r.X1, r.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.X1 >= r.X0 && r.Y1 >= r.Y0
}

// UnionAll returns the union of all rectangles, or the zero Rect if none are given
func UnionAll(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	out := rects[0]
	for _, r := range rects[1:] {
		out = out.Union(r)
	}
	return out
}
