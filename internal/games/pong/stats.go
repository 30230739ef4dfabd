package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Stats counts resolved ball contacts by side.
type Stats struct {
	Left, Right, Top, Bottom, Inside int
}

// Record adds the contacts of one tick.
func (s *Stats) Record(contacts []Contact) {
	for _, c := range contacts {
		switch c.Side {
		case core.CollisionLeft:
			s.Left++
		case core.CollisionRight:
			s.Right++
		case core.CollisionTop:
			s.Top++
		case core.CollisionBottom:
			s.Bottom++
		case core.CollisionInside:
			s.Inside++
		}
	}
}

// Total returns the number of contacts of any side.
func (s Stats) Total() int {
	return s.Left + s.Right + s.Top + s.Bottom + s.Inside
}
