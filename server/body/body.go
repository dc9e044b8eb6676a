// Package body holds the kinematic state shared by the puck and the paddles
package body

import (
	"errors"
	"math"

	"github.com/mo-shahab/go-hockey/server/vector"
)

var ErrInvalidRadius = errors.New("body radius must be positive and finite")

// DefaultMass gives the equal-mass impulse split the collision formula assumes
const DefaultMass = 1.0

// Body is a circular entity moving in table space.
// Radius is fixed at construction; only Position and Velocity change.
type Body struct {
	Position vector.Vec2
	Velocity vector.Vec2

	radius float64
	mass   float64
}

func New(position vector.Vec2, radius float64) (Body, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Body{}, ErrInvalidRadius
	}
	return Body{Position: position, radius: radius, mass: DefaultMass}, nil
}

func (b *Body) Radius() float64 {
	return b.radius
}

// SetMass changes the mass used by impulse resolution.
// math.Inf(1) makes the body immovable by impulses.
func (b *Body) SetMass(m float64) {
	if m <= 0 || math.IsNaN(m) {
		m = DefaultMass
	}
	b.mass = m
}

func (b *Body) Mass() float64 {
	if b.mass == 0 {
		return DefaultMass
	}
	return b.mass
}

// InverseMass is 0 for an infinitely heavy body
func (b *Body) InverseMass() float64 {
	m := b.Mass()
	if math.IsInf(m, 1) {
		return 0
	}
	return 1 / m
}

// Advance integrates position over dt seconds
func (b *Body) Advance(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Speed is the magnitude of the velocity
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}
