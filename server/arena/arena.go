// Package arena describes the table: its collision bounds and the two goal mouths.
// Geometry is fixed when a match starts.
package arena

import (
	"errors"
	"fmt"
	"math"

	"github.com/mo-shahab/go-hockey/server/vector"
)

var ErrInvalidGeometry = errors.New("invalid arena geometry")

// Side identifies a half of the table, its goal and its paddle
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Rect is an axis-aligned rectangle with Y growing downward
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect builds a rectangle from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsFinite reports whether every edge is a finite number
func (r Rect) IsFinite() bool {
	for _, v := range [...]float64{r.Left, r.Top, r.Right, r.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (r Rect) Center() vector.Vec2 {
	return vector.Vec2{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Arena is the table plus the goal-sensing regions
type Arena struct {
	Bounds    Rect
	LeftGoal  Rect
	RightGoal Rect
}

// New checks the goals sit inside the horizontal extent of bounds and apart from each other
func New(bounds, leftGoal, rightGoal Rect) (Arena, error) {
	a := Arena{Bounds: bounds, LeftGoal: leftGoal, RightGoal: rightGoal}
	if err := a.Validate(); err != nil {
		return Arena{}, err
	}
	return a, nil
}

func (a Arena) Validate() error {
	for name, r := range map[string]Rect{"bounds": a.Bounds, "left goal": a.LeftGoal, "right goal": a.RightGoal} {
		if !r.IsFinite() {
			return fmt.Errorf("%w: %s has a non-finite edge", ErrInvalidGeometry, name)
		}
		if r.Width() <= 0 || r.Height() <= 0 {
			return fmt.Errorf("%w: %s has no area", ErrInvalidGeometry, name)
		}
	}
	if a.LeftGoal.Left < a.Bounds.Left || a.LeftGoal.Right > a.Bounds.Right ||
		a.RightGoal.Left < a.Bounds.Left || a.RightGoal.Right > a.Bounds.Right {
		return fmt.Errorf("%w: goals exceed table width", ErrInvalidGeometry)
	}
	if a.LeftGoal.Right > a.RightGoal.Left {
		return fmt.Errorf("%w: goals overlap", ErrInvalidGeometry)
	}
	return nil
}

// Center is where the puck is served from
func (a Arena) Center() vector.Vec2 {
	return a.Bounds.Center()
}

// HomePosition is where a side's paddle waits before its first sample:
// a quarter of the table in from its own end, at mid height.
func (a Arena) HomePosition(s Side) vector.Vec2 {
	w := a.Bounds.Width()
	y := a.Bounds.Top + a.Bounds.Height()/2
	if s == Left {
		return vector.Vec2{X: a.Bounds.Left + w/4, Y: y}
	}
	return vector.Vec2{X: a.Bounds.Left + w*3/4, Y: y}
}

// Goal returns the goal region guarded by side s
func (a Arena) Goal(s Side) Rect {
	if s == Left {
		return a.LeftGoal
	}
	return a.RightGoal
}

// Layout derives the table from a display: the table is inset by padding on every
// edge, and each goal is goalDepth wide and goalFraction of the table height tall,
// centered vertically against its end wall.
func Layout(displayWidth, displayHeight, padding, goalDepth, goalFraction float64) (Arena, error) {
	tabW := displayWidth - 2*padding
	tabH := displayHeight - 2*padding
	bounds := NewRect(padding, padding, tabW, tabH)

	goalH := tabH * goalFraction
	goalY := bounds.Top + tabH/2 - goalH/2

	left := NewRect(bounds.Left, goalY, goalDepth, goalH)
	right := NewRect(bounds.Right-goalDepth, goalY, goalDepth, goalH)
	return New(bounds, left, right)
}
