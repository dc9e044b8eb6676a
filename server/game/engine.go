package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/input"
	"github.com/mo-shahab/go-hockey/server/vector"
)

// Broadcaster receives every frame the engine produces
type Broadcaster interface {
	BroadcastFrame(snap Snapshot, res StepResult)
}

// BroadcasterFunc adapts a function to Broadcaster
type BroadcasterFunc func(Snapshot, StepResult)

func (f BroadcasterFunc) BroadcastFrame(s Snapshot, r StepResult) { f(s, r) }

type sampleMsg struct {
	side arena.Side
	pos  vector.Vec2
}

// Engine drives one Match on a fixed-rate ticker. The match is touched only by
// the loop goroutine; samples reach it through the inbox and are consumed at
// the next tick, first sample per side winning.
type Engine struct {
	match       *Match
	broadcaster Broadcaster
	tickRate    time.Duration
	now         func() time.Time

	inbox   chan sampleMsg
	pending input.Samples

	mu      sync.RWMutex
	last    Snapshot
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

const inboxSize = 64

func NewEngine(m *Match, frameRate int, b Broadcaster) *Engine {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &Engine{
		match:       m,
		broadcaster: b,
		tickRate:    time.Second / time.Duration(frameRate),
		now:         time.Now,
		inbox:       make(chan sampleMsg, inboxSize),
		last:        m.Snapshot(),
	}
}

// Submit queues a paddle sample for the next frame. It never blocks; when the
// inbox is full the sample is dropped.
func (e *Engine) Submit(side arena.Side, pos vector.Vec2) bool {
	select {
	case e.inbox <- sampleMsg{side: side, pos: pos}:
		return true
	default:
		log.Printf("Dropping %s sample, engine inbox full", side)
		return false
	}
}

// SubmitSamples queues every sample present in s
func (e *Engine) SubmitSamples(s input.Samples) {
	for _, side := range []arena.Side{arena.Left, arena.Right} {
		if pos, ok := s.Get(side); ok {
			e.Submit(side, pos)
		}
	}
}

// Snapshot returns the state after the latest frame
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last
}

// Start runs the loop in its own goroutine
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})
	e.running = true
	e.mu.Unlock()

	log.Println("Starting game engine")
	go func() {
		defer close(e.done)
		e.Run(ctx)
	}()
}

// Stop cancels the loop and waits for it to exit
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	cancel, done := e.cancel, e.done
	e.mu.Unlock()

	cancel()
	<-done
	log.Println("Game engine stopped")
}

// Run ticks the match until ctx is cancelled
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()

	prev := e.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s := <-e.inbox:
			e.pending.Offer(s.side, s.pos)
		case <-ticker.C:
			t := e.now()
			e.tick(t.Sub(prev))
			prev = t
		}
	}
}

func (e *Engine) tick(frame time.Duration) {
	samples := e.pending
	e.pending = input.Samples{}

	res, err := e.match.Step(frame, samples)
	if err != nil {
		log.Printf("Skipping frame %d: %v", e.match.Frame(), err)
	}
	for _, w := range res.Warnings {
		log.Printf("Frame %d: %v", res.Frame, w)
	}
	if res.Goal != nil {
		log.Printf("%s player scored! Score: %d-%d",
			res.Goal.Scorer, res.Goal.LeftScore, res.Goal.RightScore)
	}

	snap := e.match.Snapshot()
	e.mu.Lock()
	e.last = snap
	e.mu.Unlock()

	if e.broadcaster != nil {
		e.broadcaster.BroadcastFrame(snap, res)
	}
}
