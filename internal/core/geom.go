// Package core provides fundamental types and utilities for the pong platform.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Vec2 is a 2D vector in simulation space.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Half returns v / 2.
func (v Vec2) Half() Vec2 {
	return v.Scale(0.5)
}

// Box is an axis-aligned bounding box described by its center and full size.
// The box extends Size/2 in each direction from Center.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at center with the given full size.
func NewBox(center, size Vec2) Box {
	return Box{Center: center, Size: size}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Size.Half())
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Size.Half())
}

// Intersects returns true if the two boxes overlap with a non-zero area.
// Touching edges do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	return bMin.X < oMax.X && bMax.X > oMin.X && bMin.Y < oMax.Y && bMax.Y > oMin.Y
}

// Rect represents an integer axis-aligned rectangle on the screen grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
