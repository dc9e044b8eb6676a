package game

import (
	"image/color"
	"time"

	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/collision"
	"github.com/mo-shahab/go-hockey/server/paddle"
	"github.com/mo-shahab/go-hockey/server/vector"
)

// Settings tunes a match; geometry lives in the arena
type Settings struct {
	PuckRadius   float64
	PaddleRadius float64
	PuckMass     float64
	PaddleMass   float64

	Collision collision.Params

	// SampleInterval is the spacing assumed between paddle samples
	SampleInterval time.Duration
	// MaxFrameDelta caps the integration step after a stall
	MaxFrameDelta time.Duration

	// ServeSpeed is the puck speed after a serve. KeepSpeedOnReset serves
	// at the speed the puck had when the goal went in instead.
	ServeSpeed       float64
	KeepSpeedOnReset bool

	// Seed for serve directions; 0 seeds from the clock
	Seed int64
}

func DefaultSettings() Settings {
	return Settings{
		PuckRadius:     25,
		PaddleRadius:   40,
		PuckMass:       1,
		PaddleMass:     1,
		Collision:      collision.DefaultParams,
		SampleInterval: paddle.DefaultSampleInterval,
		MaxFrameDelta:  time.Second / 15,
	}
}

var (
	PuckColor        = color.RGBA{A: 255}
	LeftPaddleColor  = color.RGBA{R: 255, A: 255}
	RightPaddleColor = color.RGBA{B: 255, A: 255}
)

// BodyView is a read-only copy of a body for renderers
type BodyView struct {
	Position vector.Vec2
	Velocity vector.Vec2
	Radius   float64
	Color    color.RGBA
}

type PaddleView struct {
	BodyView
	Score int
}

// Snapshot is the state handed to rendering and scoring after a step
type Snapshot struct {
	Frame uint64
	Puck  BodyView
	Left  PaddleView
	Right PaddleView
}

// GoalEvent is raised on the frame a goal goes in
type GoalEvent struct {
	// Side whose goal the puck entered
	Side arena.Side
	// Scorer is the side credited with the point
	Scorer     arena.Side
	LeftScore  int
	RightScore int
}

// StepResult reports what happened during one step
type StepResult struct {
	Frame      uint64
	WallHit    bool
	PaddleHits [2]bool
	Goal       *GoalEvent
	// Warnings are conditions the step absorbed without failing
	Warnings []error
}
