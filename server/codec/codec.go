// Package codec encodes the messages exchanged with perception and render clients.
// Two binary encodings share one message shape: protobuf (a structpb.Struct
// envelope) and msgpack.
package codec

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/mo-shahab/go-hockey/server/game"
	"github.com/mo-shahab/go-hockey/server/input"
)

var (
	ErrUnknownCodec   = errors.New("unknown codec")
	ErrUnknownCommand = errors.New("unknown message type")
)

// Message types. Clients send the first group, the server the second.
const (
	MsgCreateRoom = "create_room"
	MsgJoinRoom   = "join_room"
	MsgSample     = "sample"
	MsgHands      = "hands"

	MsgRoomCreated = "room_created"
	MsgJoined      = "joined"
	MsgState       = "state"
	MsgGoal        = "goal"
	MsgError       = "error"
)

// Message is the wire envelope; Type selects which fields are meaningful
type Message struct {
	Type       string `msgpack:"type"`
	RoomID     string `msgpack:"room_id,omitempty"`
	ClientID   string `msgpack:"client_id,omitempty"`
	MaxPlayers int    `msgpack:"max_players,omitempty"`
	Error      string `msgpack:"error,omitempty"`

	// sample, in display pixels
	X float64 `msgpack:"x,omitempty"`
	Y float64 `msgpack:"y,omitempty"`

	// hands: wrist x, wrist y, middle knuckle x, middle knuckle y; normalized
	Hands [][4]float64 `msgpack:"hands,omitempty"`

	State *State `msgpack:"state,omitempty"`
	Goal  *Goal  `msgpack:"goal,omitempty"`
}

type Disk struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	VX     float64 `msgpack:"vx"`
	VY     float64 `msgpack:"vy"`
	Radius float64 `msgpack:"radius"`
	Color  uint32  `msgpack:"color"`
}

type Paddle struct {
	Disk  `msgpack:",inline"`
	Score int `msgpack:"score"`
}

type State struct {
	Frame uint64 `msgpack:"frame"`
	Puck  Disk   `msgpack:"puck"`
	Left  Paddle `msgpack:"left"`
	Right Paddle `msgpack:"right"`
}

type Goal struct {
	Side       string `msgpack:"side"`
	Scorer     string `msgpack:"scorer"`
	LeftScore  int    `msgpack:"left_score"`
	RightScore int    `msgpack:"right_score"`
}

// Codec turns messages into websocket payloads and back
type Codec interface {
	Name() string
	Marshal(m *Message) ([]byte, error)
	Unmarshal(data []byte, m *Message) error
}

func New(name string) (Codec, error) {
	switch name {
	case "proto", "protobuf":
		return ProtoCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// Validate checks an inbound client message
func Validate(m *Message) error {
	switch m.Type {
	case MsgCreateRoom, MsgJoinRoom, MsgSample, MsgHands:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, m.Type)
}

// StateMessage wraps a snapshot for render clients
func StateMessage(s game.Snapshot) *Message {
	return &Message{
		Type: MsgState,
		State: &State{
			Frame: s.Frame,
			Puck:  diskFrom(s.Puck),
			Left:  Paddle{Disk: diskFrom(s.Left.BodyView), Score: s.Left.Score},
			Right: Paddle{Disk: diskFrom(s.Right.BodyView), Score: s.Right.Score},
		},
	}
}

func GoalMessage(g *game.GoalEvent) *Message {
	return &Message{
		Type: MsgGoal,
		Goal: &Goal{
			Side:       g.Side.String(),
			Scorer:     g.Scorer.String(),
			LeftScore:  g.LeftScore,
			RightScore: g.RightScore,
		},
	}
}

func ErrorMessage(text string) *Message {
	return &Message{Type: MsgError, Error: text}
}

// Landmarks unpacks the hands field into perception landmarks
func (m *Message) Landmarks() [][2]input.Landmark {
	out := make([][2]input.Landmark, 0, len(m.Hands))
	for _, h := range m.Hands {
		out = append(out, [2]input.Landmark{{X: h[0], Y: h[1]}, {X: h[2], Y: h[3]}})
	}
	return out
}

func diskFrom(b game.BodyView) Disk {
	return Disk{
		X:      b.Position.X,
		Y:      b.Position.Y,
		VX:     b.Velocity.X,
		VY:     b.Velocity.Y,
		Radius: b.Radius,
		Color:  PackColor(b.Color),
	}
}

// PackColor stores a color as 0xRRGGBBAA
func PackColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
