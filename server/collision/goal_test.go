package collision

import (
	"testing"

	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/vector"
)

func testArena(t *testing.T) arena.Arena {
	t.Helper()
	a, err := arena.Layout(1000, 540, 20, 10, 1.0/3)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return a
}

func TestGoalLeft(t *testing.T) {
	a := testArena(t)
	b := mustBody(t, vector.Vec2{X: 54, Y: 270}, 25)
	side, ok := CheckGoal(b, a)
	if !ok || side != arena.Left {
		t.Fatalf("expected left goal, got side=%v ok=%v", side, ok)
	}
}

func TestGoalRight(t *testing.T) {
	a := testArena(t)
	b := mustBody(t, vector.Vec2{X: 946, Y: 300}, 25)
	side, ok := CheckGoal(b, a)
	if !ok || side != arena.Right {
		t.Fatalf("expected right goal, got side=%v ok=%v", side, ok)
	}
}

func TestNoGoalOutsideBand(t *testing.T) {
	a := testArena(t)
	// against the left wall but above the goal mouth
	b := mustBody(t, vector.Vec2{X: 45, Y: 100}, 25)
	if _, ok := CheckGoal(b, a); ok {
		t.Fatalf("unexpected goal above the mouth")
	}
	// center exactly on the band edge is not inside
	b.Position.Y = a.LeftGoal.Top
	if _, ok := CheckGoal(b, a); ok {
		t.Fatalf("unexpected goal on band edge")
	}
}

func TestNoGoalAtCenter(t *testing.T) {
	a := testArena(t)
	b := mustBody(t, a.Center(), 25)
	if _, ok := CheckGoal(b, a); ok {
		t.Fatalf("unexpected goal at table center")
	}
}

func TestLeftGoalWinsOnDegenerateGeometry(t *testing.T) {
	bounds := arena.NewRect(0, 0, 100, 100)
	a, err := arena.New(bounds, arena.NewRect(0, 0, 50, 100), arena.NewRect(50, 0, 50, 100))
	if err != nil {
		t.Fatalf("arena: %v", err)
	}
	b := mustBody(t, vector.Vec2{X: 50, Y: 50}, 25)
	side, ok := CheckGoal(b, a)
	if !ok || side != arena.Left {
		t.Fatalf("expected left priority, got side=%v ok=%v", side, ok)
	}
}
