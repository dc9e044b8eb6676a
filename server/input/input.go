// Package input is the handoff between perception and the simulation: it turns
// tracked hands into at most one paddle sample per side per frame.
package input

import (
	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/vector"
)

// Samples holds the paddle samples gathered for one frame.
// The zero value is an empty frame.
type Samples struct {
	pos [2]vector.Vec2
	has [2]bool
}

// Offer records pos for side unless that side already has a sample this frame
func (s *Samples) Offer(side arena.Side, pos vector.Vec2) bool {
	if side > arena.Right || s.has[side] {
		return false
	}
	s.pos[side] = pos
	s.has[side] = true
	return true
}

func (s Samples) Get(side arena.Side) (vector.Vec2, bool) {
	if side > arena.Right {
		return vector.Vec2{}, false
	}
	return s.pos[side], s.has[side]
}

func (s Samples) Len() int {
	n := 0
	for _, ok := range s.has {
		if ok {
			n++
		}
	}
	return n
}

// SideOf picks the half of the display an x coordinate falls in
func SideOf(x, displayWidth float64) arena.Side {
	if x < displayWidth/2 {
		return arena.Left
	}
	return arena.Right
}

// Route assigns points to sides by display half. The first point seen for a
// side wins; non-finite points are dropped.
func Route(points []vector.Vec2, displayWidth float64) Samples {
	var s Samples
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		s.Offer(SideOf(p.X, displayWidth), p)
		if s.Len() == 2 {
			break
		}
	}
	return s
}
