package paddle

import (
	"image/color"

	"github.com/mo-shahab/go-hockey/server/body"
	"github.com/mo-shahab/go-hockey/server/vector"
)

// Paddle is a player's mallet. Its position comes from perception samples,
// never from integration.
type Paddle struct {
	body.Body
	PreviousPosition vector.Vec2
	Score            int
	Color            color.RGBA
}

func New(c color.RGBA, radius float64, home vector.Vec2) (*Paddle, error) {
	b, err := body.New(home, radius)
	if err != nil {
		return nil, err
	}
	return &Paddle{Body: b, PreviousPosition: home, Color: c}, nil
}
