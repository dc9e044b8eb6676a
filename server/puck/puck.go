package puck

import (
	"image/color"

	"github.com/mo-shahab/go-hockey/server/body"
	"github.com/mo-shahab/go-hockey/server/vector"
)

// Puck is the free body driven by the simulation
type Puck struct {
	body.Body
	Color color.RGBA
}

func New(c color.RGBA, radius float64, position vector.Vec2) (*Puck, error) {
	b, err := body.New(position, radius)
	if err != nil {
		return nil, err
	}
	return &Puck{Body: b, Color: c}, nil
}
