package collision

import (
	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/body"
)

// CheckGoal returns the side whose goal the puck has entered. The puck is in a
// goal once its outer edge passes the goal's inner boundary while its center
// is strictly inside the goal's vertical span. The left goal is tested first,
// so at most one side is ever reported.
func CheckGoal(b *body.Body, a arena.Arena) (arena.Side, bool) {
	x, y, r := b.Position.X, b.Position.Y, b.Radius()

	lg := a.LeftGoal
	if lg.Right > x-r && lg.Top < y && y < lg.Bottom {
		return arena.Left, true
	}

	rg := a.RightGoal
	if rg.Left < x+r && rg.Top < y && y < rg.Bottom {
		return arena.Right, true
	}

	return arena.Left, false
}
