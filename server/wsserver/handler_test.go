package wsserver

import (
	"context"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-hockey/server/arena"
	"github.com/mo-shahab/go-hockey/server/codec"
	"github.com/mo-shahab/go-hockey/server/game"
	"github.com/mo-shahab/go-hockey/server/room"
)

func testFactory() (*game.Match, error) {
	a, err := arena.Layout(1000, 540, 20, 10, 1.0/3)
	if err != nil {
		return nil, err
	}
	s := game.DefaultSettings()
	s.Seed = 1
	return game.NewMatch(a, s)
}

func newTestServer(t *testing.T, c codec.Codec) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	rm := room.NewRoomManager(ctx, testFactory, room.Options{
		Codec:     c,
		FrameRate: 120,
	})
	wsh := NewWebSocketHandler(rm, Options{
		Codec:         c,
		DisplayWidth:  1000,
		DisplayHeight: 540,
		SendQueueSize: 256,
	})
	srv := httptest.NewServer(wsh)
	t.Cleanup(func() {
		srv.Close()
		rm.Shutdown()
		cancel()
	})
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, c codec.Codec, m *codec.Message) {
	t.Helper()
	b, err := c.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// readUntil reads messages until match accepts one or the deadline passes
func readUntil(t *testing.T, conn *websocket.Conn, c codec.Codec, match func(codec.Message) bool) codec.Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		_, b, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var m codec.Message
		if err := c.Unmarshal(b, &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if match(m) {
			return m
		}
	}
}

func ofType(want string) func(codec.Message) bool {
	return func(m codec.Message) bool { return m.Type == want }
}

func TestSampleMovesLeftPaddle(t *testing.T) {
	c := codec.ProtoCodec{}
	srv := newTestServer(t, c)
	conn := dial(t, srv)

	send(t, conn, c, &codec.Message{Type: codec.MsgCreateRoom, MaxPlayers: 2})
	created := readUntil(t, conn, c, ofType(codec.MsgRoomCreated))
	if created.RoomID == "" || created.ClientID == "" {
		t.Fatalf("room_created missing ids: %+v", created)
	}

	send(t, conn, c, &codec.Message{Type: codec.MsgSample, X: 300, Y: 200})
	readUntil(t, conn, c, func(m codec.Message) bool {
		return m.Type == codec.MsgState && m.State.Left.X == 300 && m.State.Left.Y == 200
	})
}

func TestHandsRouteToRightPaddle(t *testing.T) {
	c := codec.MsgpackCodec{}
	srv := newTestServer(t, c)
	conn := dial(t, srv)

	send(t, conn, c, &codec.Message{Type: codec.MsgCreateRoom})
	readUntil(t, conn, c, ofType(codec.MsgRoomCreated))

	send(t, conn, c, &codec.Message{Type: codec.MsgHands, Hands: [][4]float64{{0.7, 0.5, 0.7, 0.3}}})
	readUntil(t, conn, c, func(m codec.Message) bool {
		if m.Type != codec.MsgState {
			return false
		}
		r := m.State.Right
		return math.Abs(r.X-700) < 1e-6 && math.Abs(r.Y-216) < 1e-6
	})
}

func TestSecondClientJoinsRoom(t *testing.T) {
	c := codec.ProtoCodec{}
	srv := newTestServer(t, c)
	host := dial(t, srv)
	guest := dial(t, srv)

	send(t, host, c, &codec.Message{Type: codec.MsgCreateRoom})
	created := readUntil(t, host, c, ofType(codec.MsgRoomCreated))

	send(t, guest, c, &codec.Message{Type: codec.MsgJoinRoom, RoomID: created.RoomID})
	joined := readUntil(t, guest, c, ofType(codec.MsgJoined))
	if joined.RoomID != created.RoomID {
		t.Fatalf("joined room: got=%q want=%q", joined.RoomID, created.RoomID)
	}
	readUntil(t, guest, c, ofType(codec.MsgState))
}

func TestErrorsAreReported(t *testing.T) {
	c := codec.ProtoCodec{}
	srv := newTestServer(t, c)
	conn := dial(t, srv)

	send(t, conn, c, &codec.Message{Type: codec.MsgSample, X: 1, Y: 1})
	readUntil(t, conn, c, ofType(codec.MsgError))

	send(t, conn, c, &codec.Message{Type: codec.MsgJoinRoom, RoomID: "nope"})
	m := readUntil(t, conn, c, ofType(codec.MsgError))
	if m.Error != room.ErrRoomNotFound.Error() {
		t.Fatalf("error text: %q", m.Error)
	}

	send(t, conn, c, &codec.Message{Type: "dance"})
	readUntil(t, conn, c, ofType(codec.MsgError))

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0xff, 0x00}); err != nil {
		t.Fatalf("write: %v", err)
	}
	m = readUntil(t, conn, c, ofType(codec.MsgError))
	if !strings.Contains(m.Error, "proto") {
		t.Fatalf("error text: %q", m.Error)
	}
}
