// Package geom provides the rectangle arithmetic for the quadrant tree.
//
// Rectangles live in a plane where Y grows downward: Top is the start
// coordinate Y and Bottom is Y+H. All overlap predicates in this package
// keep that polarity; tree routing and query results depend on it.
package geom

import "fmt"

// Rect is an axis-aligned rectangle, positioned at (X,Y) with extent (W,H).
//
// The geometry fields are immutable by convention. Overlapped is mutable
// bookkeeping: any successful rect-vs-rect overlap test marks the tested
// rectangle, and external visualization reads the mark. It is reset only
// by a tree-wide clear, never by the tests themselves.
type Rect struct {
	X, Y, W, H float64
	Overlapped bool
}

// New creates a rectangle at (x,y) with width w and height h.
//
// Degenerate extents (zero or negative) are accepted; such rectangles
// simply fail most overlap tests.
func New(x, y, w, h float64) *Rect {
	return &Rect{X: x, Y: y, W: w, H: h}
}

// Top returns the smaller Y edge (Y grows downward).
func (r *Rect) Top() float64 { return r.Y }

// Bottom returns the larger Y edge.
func (r *Rect) Bottom() float64 { return r.Y + r.H }

// Left returns the smaller X edge.
func (r *Rect) Left() float64 { return r.X }

// Right returns the larger X edge.
func (r *Rect) Right() float64 { return r.X + r.W }

// CenterX returns the horizontal midpoint.
func (r *Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical midpoint.
func (r *Rect) CenterY() float64 { return r.Y + r.H/2 }

// OverlapsEdges reports whether the box given by four edge coordinates
// overlaps r. This is the routing test for item bounds: edges touching on
// the X axis count as overlap, edges touching on the Y axis do not.
//
// OverlapsEdges has no side effect on r.
func (r *Rect) OverlapsEdges(left, top, right, bottom float64) bool {
	if top >= r.Bottom() || bottom <= r.Top() {
		return false
	}
	return left <= r.Right() && right >= r.Left()
}

// Overlaps reports whether query rectangle q overlaps r.
//
// A passing test marks r as Overlapped before returning. Touching edges
// count as overlap on both axes, unlike OverlapsEdges.
func (r *Rect) Overlaps(q *Rect) bool {
	if q.Right() < r.Left() || q.Left() > r.Right() {
		return false
	}
	if q.Top() > r.Bottom() || q.Bottom() < r.Top() {
		return false
	}
	r.Overlapped = true
	return true
}

// Quadrants splits r into its four equal quadrants, ordered top-left,
// top-right, bottom-left, bottom-right. The quadrants partition r
// exactly, with no gaps and no overlaps.
func (r *Rect) Quadrants() [4]*Rect {
	hw := r.W / 2
	hh := r.H / 2
	return [4]*Rect{
		New(r.X, r.Y, hw, hh),
		New(r.X+hw, r.Y, hw, hh),
		New(r.X, r.Y+hh, hw, hh),
		New(r.X+hw, r.Y+hh, hw, hh),
	}
}

func (r *Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}
