package core

import "math"

// CollisionSide classifies which edge of the other box was penetrated.
type CollisionSide int

const (
	CollisionNone   CollisionSide = iota
	CollisionLeft                 // moving box entered through the other's left edge
	CollisionRight                // moving box entered through the other's right edge
	CollisionTop                  // moving box entered through the other's top edge
	CollisionBottom               // moving box entered through the other's bottom edge
	CollisionInside               // no single edge: spans or sits inside the other box on both axes
)

// String returns a human-readable name for the side.
func (c CollisionSide) String() string {
	switch c {
	case CollisionNone:
		return "None"
	case CollisionLeft:
		return "Left"
	case CollisionRight:
		return "Right"
	case CollisionTop:
		return "Top"
	case CollisionBottom:
		return "Bottom"
	case CollisionInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Horizontal reports whether the side reflects the x component of velocity.
func (c CollisionSide) Horizontal() bool {
	return c == CollisionLeft || c == CollisionRight
}

// Vertical reports whether the side reflects the y component of velocity.
func (c CollisionSide) Vertical() bool {
	return c == CollisionTop || c == CollisionBottom
}

// Penetration describes an overlap between two boxes, axis by axis.
// An axis where the moving box spans or sits inside the other box is
// classed CollisionInside with an infinite depth.
type Penetration struct {
	X      CollisionSide // CollisionLeft, CollisionRight or CollisionInside
	Y      CollisionSide // CollisionTop, CollisionBottom or CollisionInside
	DepthX float64
	DepthY float64
}

// Overlap tests box a (the moving box) against box b.
// Returns false when the boxes do not overlap.
func Overlap(a, b Box) (Penetration, bool) {
	if !a.Intersects(b) {
		return Penetration{}, false
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	p := Penetration{
		X:      CollisionInside,
		Y:      CollisionInside,
		DepthX: math.Inf(1),
		DepthY: math.Inf(1),
	}

	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		p.X, p.DepthX = CollisionLeft, aMax.X-bMin.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		p.X, p.DepthX = CollisionRight, bMax.X-aMin.X
	}

	// y grows upwards: Bottom means a sits below b.
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		p.Y, p.DepthY = CollisionBottom, aMax.Y-bMin.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		p.Y, p.DepthY = CollisionTop, bMax.Y-aMin.Y
	}

	return p, true
}

// Classify picks the contact side: the axis with the least penetration wins.
// On equal depths the axis the moving box travels faster along wins, and
// when the velocity components are equal too the vertical axis wins.
func (p Penetration) Classify(vel Vec2) CollisionSide {
	if p.X == CollisionInside && p.Y == CollisionInside {
		return CollisionInside
	}
	switch {
	case p.DepthX < p.DepthY:
		return p.X
	case p.DepthY < p.DepthX:
		return p.Y
	case math.Abs(vel.X) > math.Abs(vel.Y):
		return p.X
	default:
		return p.Y
	}
}

// Collide tests a moving box against a static one and classifies the contact.
// Returns CollisionNone when the boxes do not overlap.
func Collide(a, b Box, vel Vec2) CollisionSide {
	p, ok := Overlap(a, b)
	if !ok {
		return CollisionNone
	}
	return p.Classify(vel)
}
