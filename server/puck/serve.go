package puck

import (
	"math"
	"math/rand"

	"github.com/mo-shahab/go-hockey/server/vector"
)

// Serve puts the puck back on center and launches it in a random direction.
// A zero speed leaves the puck at rest until a paddle strikes it.
func (p *Puck) Serve(center vector.Vec2, speed float64, rng *rand.Rand) {
	p.Position = center

	angle := rng.Float64() * 2 * math.Pi
	p.Velocity = vector.FromAngle(angle, speed)
}
