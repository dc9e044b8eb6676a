package collision

import (
	"math"

	"github.com/mo-shahab/go-hockey/server/body"
	"github.com/mo-shahab/go-hockey/server/vector"
)

// Contact describes two overlapping disks
type Contact struct {
	// Normal is the unit vector from b's center toward a's center
	Normal   vector.Vec2
	Distance float64
	// Depth is how far the disks interpenetrate
	Depth float64
}

// Detect reports whether a and b touch or overlap. The distance test is done on
// squared lengths; the square root is only taken on contact.
func Detect(a, b *body.Body, p Params) (Contact, bool, error) {
	d := a.Position.Sub(b.Position)
	distSq := d.LenSq()
	sum := a.Radius() + b.Radius()
	if distSq > sum*sum {
		return Contact{}, false, nil
	}

	if distSq <= degenerateDistanceSq {
		return Contact{Normal: p.fallback(), Distance: 0, Depth: sum}, true, ErrDegenerateGeometry
	}

	dist := math.Sqrt(distSq)
	return Contact{
		Normal:   d.Scale(1 / dist),
		Distance: dist,
		Depth:    sum - dist,
	}, true, nil
}

// ResolveEntity bounces the puck off a paddle.
//
// The impulse along the contact normal n is
//
//	j = -(1+e) (v_puck - v_paddle)·n / ((n·n) (1/m_puck + 1/m_paddle))
//
// and only the puck receives it; the paddle is positioned externally. With the
// default unit masses the mass term is 2. Afterwards both disks are pushed apart
// by half the overlap each.
//
// The bool reports whether a contact was resolved. ErrDegenerateGeometry
// accompanies a resolved contact whose normal came from the fallback;
// ErrUnresolvable means the contact was skipped.
func ResolveEntity(puck, paddle *body.Body, p Params) (bool, error) {
	c, hit, derr := Detect(puck, paddle, p)
	if !hit {
		return false, nil
	}

	n := c.Normal
	relative := puck.Velocity.Sub(paddle.Velocity)
	massTerm := n.Dot(n) * (puck.InverseMass() + paddle.InverseMass())
	impulse := -(1 + p.Restitution) * relative.Dot(n) / massTerm
	if math.IsNaN(impulse) || math.IsInf(impulse, 0) {
		return false, ErrUnresolvable
	}

	puck.Velocity = puck.Velocity.Add(n.Scale(impulse))

	correction := n.Scale(0.5 * c.Depth)
	puck.Position = puck.Position.Add(correction)
	paddle.Position = paddle.Position.Sub(correction)

	return true, derr
}
