package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoCodec carries messages as a protobuf Struct
type ProtoCodec struct{}

func (ProtoCodec) Name() string { return "proto" }

func (ProtoCodec) Marshal(m *Message) ([]byte, error) {
	s, err := structpb.NewStruct(toFields(m))
	if err != nil {
		return nil, fmt.Errorf("build %s message: %w", m.Type, err)
	}
	return proto.Marshal(s)
}

func (ProtoCodec) Unmarshal(data []byte, m *Message) error {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(data, s); err != nil {
		return err
	}
	f := s.GetFields()

	*m = Message{
		Type:       f["type"].GetStringValue(),
		RoomID:     f["room_id"].GetStringValue(),
		ClientID:   f["client_id"].GetStringValue(),
		MaxPlayers: int(f["max_players"].GetNumberValue()),
		Error:      f["error"].GetStringValue(),
		X:          f["x"].GetNumberValue(),
		Y:          f["y"].GetNumberValue(),
	}

	for _, hv := range f["hands"].GetListValue().GetValues() {
		var h [4]float64
		for i, v := range hv.GetListValue().GetValues() {
			if i < len(h) {
				h[i] = v.GetNumberValue()
			}
		}
		m.Hands = append(m.Hands, h)
	}

	if st := f["state"].GetStructValue(); st != nil {
		sf := st.GetFields()
		m.State = &State{
			Frame: uint64(sf["frame"].GetNumberValue()),
			Puck:  diskFromStruct(sf["puck"].GetStructValue()),
			Left:  paddleFromStruct(sf["left"].GetStructValue()),
			Right: paddleFromStruct(sf["right"].GetStructValue()),
		}
	}

	if g := f["goal"].GetStructValue(); g != nil {
		gf := g.GetFields()
		m.Goal = &Goal{
			Side:       gf["side"].GetStringValue(),
			Scorer:     gf["scorer"].GetStringValue(),
			LeftScore:  int(gf["left_score"].GetNumberValue()),
			RightScore: int(gf["right_score"].GetNumberValue()),
		}
	}
	return nil
}

func toFields(m *Message) map[string]any {
	out := map[string]any{"type": m.Type}
	setString(out, "room_id", m.RoomID)
	setString(out, "client_id", m.ClientID)
	setString(out, "error", m.Error)
	if m.MaxPlayers != 0 {
		out["max_players"] = m.MaxPlayers
	}
	if m.X != 0 || m.Y != 0 {
		out["x"] = m.X
		out["y"] = m.Y
	}

	if len(m.Hands) > 0 {
		hands := make([]any, 0, len(m.Hands))
		for _, h := range m.Hands {
			hands = append(hands, []any{h[0], h[1], h[2], h[3]})
		}
		out["hands"] = hands
	}

	if s := m.State; s != nil {
		out["state"] = map[string]any{
			"frame": float64(s.Frame),
			"puck":  diskFields(s.Puck),
			"left":  paddleFields(s.Left),
			"right": paddleFields(s.Right),
		}
	}

	if g := m.Goal; g != nil {
		out["goal"] = map[string]any{
			"side":        g.Side,
			"scorer":      g.Scorer,
			"left_score":  g.LeftScore,
			"right_score": g.RightScore,
		}
	}
	return out
}

func setString(out map[string]any, key, v string) {
	if v != "" {
		out[key] = v
	}
}

func diskFields(d Disk) map[string]any {
	return map[string]any{
		"x":      d.X,
		"y":      d.Y,
		"vx":     d.VX,
		"vy":     d.VY,
		"radius": d.Radius,
		"color":  float64(d.Color),
	}
}

func paddleFields(p Paddle) map[string]any {
	f := diskFields(p.Disk)
	f["score"] = p.Score
	return f
}

func diskFromStruct(s *structpb.Struct) Disk {
	f := s.GetFields()
	return Disk{
		X:      f["x"].GetNumberValue(),
		Y:      f["y"].GetNumberValue(),
		VX:     f["vx"].GetNumberValue(),
		VY:     f["vy"].GetNumberValue(),
		Radius: f["radius"].GetNumberValue(),
		Color:  uint32(f["color"].GetNumberValue()),
	}
}

func paddleFromStruct(s *structpb.Struct) Paddle {
	return Paddle{
		Disk:  diskFromStruct(s),
		Score: int(s.GetFields()["score"].GetNumberValue()),
	}
}
