package vector

import (
	"math"
	"testing"
)

func TestDotAndLength(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	if got := a.Len(); got != 5 {
		t.Fatalf("len: got=%f want=5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Fatalf("lenSq: got=%f want=25", got)
	}
	if got := a.Dot(Vec2{X: 1, Y: -1}); got != -1 {
		t.Fatalf("dot: got=%f want=-1", got)
	}
}

func TestUnitOfZeroIsZero(t *testing.T) {
	if u := (Vec2{}).Unit(); u != (Vec2{}) {
		t.Fatalf("expected zero unit for zero vector, got %+v", u)
	}
	u := Vec2{X: 0, Y: -7}.Unit()
	if u.X != 0 || u.Y != -1 {
		t.Fatalf("unit: got %+v want (0,-1)", u)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec2{X: 1, Y: 2}).IsFinite() {
		t.Fatalf("expected finite")
	}
	if (Vec2{X: math.NaN()}).IsFinite() {
		t.Fatalf("NaN reported finite")
	}
	if (Vec2{Y: math.Inf(-1)}).IsFinite() {
		t.Fatalf("-Inf reported finite")
	}
}

func TestFromAngleLength(t *testing.T) {
	v := FromAngle(1.234, 10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Fatalf("length: got=%f want=10", v.Len())
	}
}
