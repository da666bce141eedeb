// Package collision holds the pure geometry used by the simulation: axis-aligned
// rectangles, circles and their overlap tests. Touching edges never count as
// a collision.
package collision

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Circle is centered at X, Y.
type Circle struct {
	X, Y, R float64
}

// Overlap is the penetration depth of two rectangles on each axis.
type Overlap struct {
	DX, DY float64
}

// ResolveOnX reports whether the minimum translation runs along the X axis.
func (o Overlap) ResolveOnX() bool {
	return o.DX < o.DY
}

// RectOverlap reports whether a and b share a non-zero area.
func RectOverlap(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// PointInRect reports whether (x, y) lies strictly inside r.
func PointInRect(x, y float64, r Rect) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// CircleOverlap reports whether two circles intersect. Tangent circles do not.
func CircleOverlap(a, b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rs := a.R + b.R
	return dx*dx+dy*dy < rs*rs
}

// RectCircleOverlap tests the circle against the point of r closest to its center.
func RectCircleOverlap(r Rect, c Circle) bool {
	nearestX := math.Max(r.X, math.Min(c.X, r.Right()))
	nearestY := math.Max(r.Y, math.Min(c.Y, r.Bottom()))
	dx := c.X - nearestX
	dy := c.Y - nearestY
	return dx*dx+dy*dy < c.R*c.R
}

// OverlapAmount returns how far a and b interpenetrate on each axis. Both
// components are zero or positive.
func OverlapAmount(a, b Rect) Overlap {
	dx := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	dy := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	return Overlap{DX: math.Max(0, dx), DY: math.Max(0, dy)}
}

// Separate returns the offset that pushes a out of b along the axis of
// smaller penetration. It is zero when the rectangles do not overlap.
func Separate(a, b Rect) (dx, dy float64) {
	if !RectOverlap(a, b) {
		return 0, 0
	}
	o := OverlapAmount(a, b)
	if o.ResolveOnX() {
		if a.CenterX() < b.CenterX() {
			return -o.DX, 0
		}
		return o.DX, 0
	}
	if a.CenterY() < b.CenterY() {
		return 0, -o.DY
	}
	return 0, o.DY
}
