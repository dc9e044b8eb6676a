package paddle

import (
	"errors"
	"time"

	"github.com/mo-shahab/go-hockey/server/vector"
)

// DefaultSampleInterval is the assumed spacing between perception samples.
// It is independent of the render frame delta.
const DefaultSampleInterval = time.Second / 30

var (
	ErrInvalidSample       = errors.New("paddle sample is not finite")
	ErrNonPositiveInterval = errors.New("paddle sample interval must be positive")
)

// UpdatePosition moves the paddle to sample and estimates its velocity by
// finite difference over interval. A rejected sample leaves the paddle untouched.
func (p *Paddle) UpdatePosition(sample vector.Vec2, interval time.Duration) error {
	if !sample.IsFinite() {
		return ErrInvalidSample
	}
	if interval <= 0 {
		return ErrNonPositiveInterval
	}

	p.PreviousPosition = p.Position
	p.Position = sample
	p.Velocity = p.Position.Sub(p.PreviousPosition).Scale(1 / interval.Seconds())
	return nil
}
