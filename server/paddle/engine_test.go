package paddle

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/mo-shahab/go-hockey/server/vector"
)

func newTestPaddle(t *testing.T) *Paddle {
	t.Helper()
	p, err := New(color.RGBA{R: 255, A: 255}, 40, vector.Vec2{X: 100, Y: 100})
	if err != nil {
		t.Fatalf("new paddle: %v", err)
	}
	return p
}

func TestUpdatePositionEstimatesVelocity(t *testing.T) {
	p := newTestPaddle(t)
	if err := p.UpdatePosition(vector.Vec2{X: 110, Y: 95}, DefaultSampleInterval); err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.PreviousPosition != (vector.Vec2{X: 100, Y: 100}) {
		t.Fatalf("previous position: got %+v", p.PreviousPosition)
	}
	if p.Position != (vector.Vec2{X: 110, Y: 95}) {
		t.Fatalf("position: got %+v", p.Position)
	}
	// 10px over 1/30s is 300px/s
	if math.Abs(p.Velocity.X-300) > 1e-3 || math.Abs(p.Velocity.Y+150) > 1e-3 {
		t.Fatalf("velocity: got %+v want (300,-150)", p.Velocity)
	}
}

func TestPreviousPositionIsACopy(t *testing.T) {
	p := newTestPaddle(t)
	_ = p.UpdatePosition(vector.Vec2{X: 120, Y: 100}, DefaultSampleInterval)
	p.Position.X = 999
	if p.PreviousPosition.X != 100 {
		t.Fatalf("previous position aliased current position: %+v", p.PreviousPosition)
	}
}

func TestRejectsNonFiniteSample(t *testing.T) {
	p := newTestPaddle(t)
	p.Velocity = vector.Vec2{X: 5, Y: 5}
	before := *p

	err := p.UpdatePosition(vector.Vec2{X: math.NaN(), Y: 1}, DefaultSampleInterval)
	if err != ErrInvalidSample {
		t.Fatalf("expected ErrInvalidSample, got %v", err)
	}
	if p.Position != before.Position || p.Velocity != before.Velocity || p.PreviousPosition != before.PreviousPosition {
		t.Fatalf("rejected sample mutated paddle")
	}
}

func TestRejectsNonPositiveInterval(t *testing.T) {
	p := newTestPaddle(t)
	if err := p.UpdatePosition(vector.Vec2{X: 1, Y: 1}, 0); err != ErrNonPositiveInterval {
		t.Fatalf("expected ErrNonPositiveInterval, got %v", err)
	}
	if p.Position != (vector.Vec2{X: 100, Y: 100}) {
		t.Fatalf("paddle moved on rejected interval")
	}
}

func TestSameSampleStopsPaddle(t *testing.T) {
	p := newTestPaddle(t)
	_ = p.UpdatePosition(vector.Vec2{X: 130, Y: 100}, time.Second/60)
	_ = p.UpdatePosition(vector.Vec2{X: 130, Y: 100}, time.Second/60)
	if p.Velocity != (vector.Vec2{}) {
		t.Fatalf("expected zero velocity for repeated sample, got %+v", p.Velocity)
	}
}
