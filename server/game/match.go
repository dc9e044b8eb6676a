package game

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/collision"
	"github.com/mo-shahab/go-hockey/server/input"
	"github.com/mo-shahab/go-hockey/server/paddle"
	"github.com/mo-shahab/go-hockey/server/puck"
)

var ErrNonPositiveTimestep = errors.New("frame delta must be positive")

// Match is the simulation context for one game. It owns the puck and both
// paddles; only Step mutates them.
type Match struct {
	Arena   arena.Arena
	Puck    *puck.Puck
	Paddles [2]*paddle.Paddle

	settings Settings
	rng      *rand.Rand
	frame    uint64
}

func NewMatch(a arena.Arena, s Settings) (*Match, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if s.SampleInterval <= 0 {
		return nil, paddle.ErrNonPositiveInterval
	}
	if 2*s.PuckRadius >= a.Bounds.Width() || 2*s.PuckRadius >= a.Bounds.Height() {
		return nil, fmt.Errorf("%w: puck does not fit on the table", arena.ErrInvalidGeometry)
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p, err := puck.New(PuckColor, s.PuckRadius, a.Center())
	if err != nil {
		return nil, fmt.Errorf("puck: %w", err)
	}
	p.SetMass(s.PuckMass)

	m := &Match{
		Arena:    a,
		Puck:     p,
		settings: s,
		rng:      rand.New(rand.NewSource(seed)),
	}

	for _, cp := range []struct {
		side  arena.Side
		color color.RGBA
	}{{arena.Left, LeftPaddleColor}, {arena.Right, RightPaddleColor}} {
		pd, err := paddle.New(cp.color, s.PaddleRadius, a.HomePosition(cp.side))
		if err != nil {
			return nil, fmt.Errorf("%s paddle: %w", cp.side, err)
		}
		pd.SetMass(s.PaddleMass)
		m.Paddles[cp.side] = pd
	}

	m.Puck.Serve(a.Center(), s.ServeSpeed, m.rng)
	return m, nil
}

func (m *Match) Paddle(s arena.Side) *paddle.Paddle {
	return m.Paddles[s]
}

func (m *Match) Frame() uint64 {
	return m.frame
}

// ClampFrameDelta bounds a measured frame delta. Non-positive deltas are
// refused; anything longer than max is cut down to max.
func ClampFrameDelta(frame, max time.Duration) (time.Duration, error) {
	if frame <= 0 {
		return 0, ErrNonPositiveTimestep
	}
	if max > 0 && frame > max {
		return max, nil
	}
	return frame, nil
}

// Step advances the match by one frame:
// paddle samples, puck integration, walls, left paddle, right paddle, goals.
// A non-positive frame delta still applies the samples but skips the physics
// and returns ErrNonPositiveTimestep.
func (m *Match) Step(frame time.Duration, samples input.Samples) (StepResult, error) {
	res := StepResult{Frame: m.frame}
	res.Warnings = m.applySamples(samples)

	dt, err := ClampFrameDelta(frame, m.settings.MaxFrameDelta)
	if err != nil {
		return res, err
	}
	m.frame++
	res.Frame = m.frame

	pk := &m.Puck.Body
	pk.Advance(dt.Seconds())

	res.WallHit = collision.ResolveWall(pk, m.Arena.Bounds)

	for _, side := range []arena.Side{arena.Left, arena.Right} {
		hit, err := collision.ResolveEntity(pk, &m.Paddles[side].Body, m.settings.Collision)
		res.PaddleHits[side] = hit
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Errorf("%s paddle: %w", side, err))
		}
	}

	if side, ok := collision.CheckGoal(pk, m.Arena); ok {
		res.Goal = m.scoreGoal(side)
	}
	return res, nil
}

func (m *Match) applySamples(samples input.Samples) []error {
	var warnings []error
	for _, side := range []arena.Side{arena.Left, arena.Right} {
		pos, ok := samples.Get(side)
		if !ok {
			continue
		}
		if err := m.Paddles[side].UpdatePosition(pos, m.settings.SampleInterval); err != nil {
			warnings = append(warnings, fmt.Errorf("%s sample: %w", side, err))
		}
	}
	return warnings
}

// scoreGoal credits the opponent of the side that conceded and re-serves
func (m *Match) scoreGoal(conceded arena.Side) *GoalEvent {
	scorer := conceded.Opponent()
	m.Paddles[scorer].Score++

	speed := m.settings.ServeSpeed
	if m.settings.KeepSpeedOnReset {
		speed = m.Puck.Speed()
	}
	m.Puck.Serve(m.Arena.Center(), speed, m.rng)

	return &GoalEvent{
		Side:       conceded,
		Scorer:     scorer,
		LeftScore:  m.Paddles[arena.Left].Score,
		RightScore: m.Paddles[arena.Right].Score,
	}
}

// Snapshot copies the state renderers and scoreboards read
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Frame: m.frame,
		Puck: BodyView{
			Position: m.Puck.Position,
			Velocity: m.Puck.Velocity,
			Radius:   m.Puck.Radius(),
			Color:    m.Puck.Color,
		},
		Left:  paddleView(m.Paddles[arena.Left]),
		Right: paddleView(m.Paddles[arena.Right]),
	}
}

func paddleView(p *paddle.Paddle) PaddleView {
	return PaddleView{
		BodyView: BodyView{
			Position: p.Position,
			Velocity: p.Velocity,
			Radius:   p.Radius(),
			Color:    p.Color,
		},
		Score: p.Score,
	}
}
