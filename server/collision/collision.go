// Package collision resolves puck contacts against the table walls and the
// paddles, and senses goals. Bodies are borrowed for the duration of a call only.
package collision

import (
	"errors"

	"github.com/mo-shahab/go-hockey/server/vector"
)

var (
	// ErrDegenerateGeometry reports coincident centers; the fallback normal was used
	ErrDegenerateGeometry = errors.New("collision normal undefined for coincident centers")
	// ErrUnresolvable reports a contact that was detected but left alone this frame
	ErrUnresolvable = errors.New("collision impulse is not finite")
)

// DefaultRestitution is the puck-paddle coefficient of restitution
const DefaultRestitution = 0.95

// centers closer than this (squared) share a position for normal purposes
const degenerateDistanceSq = 1e-12

// Params tunes disk-disk response
type Params struct {
	Restitution    float64
	FallbackNormal vector.Vec2
}

var DefaultParams = Params{
	Restitution:    DefaultRestitution,
	FallbackNormal: vector.Vec2{X: 1, Y: 0},
}

func (p Params) fallback() vector.Vec2 {
	n := p.FallbackNormal.Unit()
	if n == (vector.Vec2{}) || !n.IsFinite() {
		return DefaultParams.FallbackNormal
	}
	return n
}
