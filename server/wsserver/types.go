package wsserver

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-hockey/server/client"
	"github.com/mo-shahab/go-hockey/server/codec"
	"github.com/mo-shahab/go-hockey/server/room"
)

type WebSocketHandler struct {
	Upgrader    websocket.Upgrader
	Mu          sync.Mutex
	Connections map[string]*client.Client
	ConnToId    map[*websocket.Conn]string
	RoomManager *room.RoomManager
	Codec       codec.Codec

	displayWidth  float64
	displayHeight float64
	queueSize     int
}

// Options configures a WebSocketHandler
type Options struct {
	Codec codec.Codec

	// display size the perception coordinates are expressed in
	DisplayWidth  float64
	DisplayHeight float64
	SendQueueSize int
}
