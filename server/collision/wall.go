package collision

import (
	"math"

	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/body"
)

// ResolveWall keeps b inside bounds. On each axis the near wall is tested before
// the far one; an edge past a wall is clamped onto it and the velocity along that
// axis is turned back into the table with its magnitude kept.
// The velocity is pointed away from the wall rather than negated, so a body
// found past a wall while already moving away keeps its heading.
// Calling it again on a resolved body changes nothing.
func ResolveWall(b *body.Body, bounds arena.Rect) bool {
	r := b.Radius()
	hit := false

	if b.Position.X-r < bounds.Left {
		b.Position.X = bounds.Left + r
		b.Velocity.X = math.Abs(b.Velocity.X)
		hit = true
	} else if b.Position.X+r > bounds.Right {
		b.Position.X = bounds.Right - r
		b.Velocity.X = -math.Abs(b.Velocity.X)
		hit = true
	}

	if b.Position.Y-r < bounds.Top {
		b.Position.Y = bounds.Top + r
		b.Velocity.Y = math.Abs(b.Velocity.Y)
		hit = true
	} else if b.Position.Y+r > bounds.Bottom {
		b.Position.Y = bounds.Bottom - r
		b.Velocity.Y = -math.Abs(b.Velocity.Y)
		hit = true
	}

	return hit
}
