// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It has no external dependencies
// (especially no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in integer field units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height (H may be zero or negative for degenerate rects)
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect, and an empty
// rectangle never intersects anything.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CenteredRect builds a w×h rectangle centered on (cx, cy).
// Half extents use integer division, so odd sizes lean toward the bottom-right.
func CenteredRect(cx, cy, w, h int) Rect {
	return NewRect(cx-w/2, cy-h/2, w, h)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
