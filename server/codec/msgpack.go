package codec

import "github.com/vmihailenco/msgpack/v5"

type MsgpackCodec struct{}

func (MsgpackCodec) Name() string { return "msgpack" }

func (MsgpackCodec) Marshal(m *Message) ([]byte, error) {
	return msgpack.Marshal(m)
}

func (MsgpackCodec) Unmarshal(data []byte, m *Message) error {
	return msgpack.Unmarshal(data, m)
}
