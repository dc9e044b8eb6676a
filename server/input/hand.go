package input

import "github.com/mo-shahab/go-hockey/server/vector"

// Landmark is a hand keypoint in normalized image coordinates, [0,1] on both axes
type Landmark struct {
	X, Y float64
}

// Landmark indices used to place a paddle
const (
	Wrist     = 0
	MiddleMCP = 9
)

// HandCenter places a paddle between the wrist and the middle-finger knuckle,
// scaled to display pixels. Coordinates stay fractional; they are not floored
// to whole pixels.
func HandCenter(wrist, middleMCP Landmark, displayWidth, displayHeight float64) vector.Vec2 {
	return vector.Vec2{
		X: (wrist.X + middleMCP.X) * displayWidth / 2,
		Y: (wrist.Y + middleMCP.Y) * displayHeight / 2,
	}
}

// HandCenters converts every tracked hand, keeping perception order
func HandCenters(hands [][2]Landmark, displayWidth, displayHeight float64) []vector.Vec2 {
	out := make([]vector.Vec2, 0, len(hands))
	for _, h := range hands {
		out = append(out, HandCenter(h[0], h[1], displayWidth, displayHeight))
	}
	return out
}
