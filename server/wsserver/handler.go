package wsserver

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-hockey/server/client"
	"github.com/mo-shahab/go-hockey/server/codec"
	"github.com/mo-shahab/go-hockey/server/input"
	"github.com/mo-shahab/go-hockey/server/room"
	"github.com/mo-shahab/go-hockey/server/vector"
)

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(rm *room.RoomManager, opts Options) *WebSocketHandler {
	if opts.Codec == nil {
		opts.Codec = codec.ProtoCodec{}
	}
	if opts.SendQueueSize <= 0 {
		opts.SendQueueSize = 100
	}
	return &WebSocketHandler{
		Upgrader:      websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		Connections:   make(map[string]*client.Client),
		ConnToId:      make(map[*websocket.Conn]string),
		RoomManager:   rm,
		Codec:         opts.Codec,
		displayWidth:  opts.DisplayWidth,
		displayHeight: opts.DisplayHeight,
		queueSize:     opts.SendQueueSize,
	}
}

// ServeHTTP handles WebSocket connections
func (wsh *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := wsh.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error %s when connecting to the socket", err)
		return
	}

	c := client.New(conn, uuid.New().String(), wsh.queueSize)

	wsh.Mu.Lock()
	wsh.Connections[c.ID] = c
	wsh.ConnToId[conn] = c.ID
	log.Printf("Client %s connected, total connections: %d", c.ID, len(wsh.Connections))
	wsh.Mu.Unlock()

	go wsh.writePump(c)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Handle incoming messages
	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			wsh.disconnectPlayer(c)
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		var message codec.Message
		if err := wsh.Codec.Unmarshal(p, &message); err != nil {
			log.Printf("Error unmarshalling %s message: %v", wsh.Codec.Name(), err)
			wsh.sendError(c, "Invalid "+wsh.Codec.Name()+" format")
			continue
		}
		if err := codec.Validate(&message); err != nil {
			wsh.sendError(c, err.Error())
			continue
		}

		wsh.handleMessage(c, &message)
	}
}

// handleMessage processes incoming messages
func (wsh *WebSocketHandler) handleMessage(c *client.Client, message *codec.Message) {
	switch message.Type {
	case codec.MsgCreateRoom:
		wsh.handleRoomCreateRequest(c, message)

	case codec.MsgJoinRoom:
		wsh.handleRoomJoinRequest(c, message)

	case codec.MsgSample:
		wsh.handleSample(c, []vector.Vec2{{X: message.X, Y: message.Y}})

	case codec.MsgHands:
		points := input.HandCenters(message.Landmarks(), wsh.displayWidth, wsh.displayHeight)
		wsh.handleSample(c, points)
	}
}

// handleSample routes perception points to paddles by display half
func (wsh *WebSocketHandler) handleSample(c *client.Client, points []vector.Vec2) {
	rm, exists := wsh.RoomManager.GetRoom(c.RoomID)
	if !exists {
		wsh.sendError(c, "Join a room before sending samples")
		return
	}
	samples := input.Route(points, wsh.displayWidth)
	if samples.Len() == 0 {
		return
	}
	rm.Engine.SubmitSamples(samples)
}

// handleRoomCreateRequest handles room creation requests
func (wsh *WebSocketHandler) handleRoomCreateRequest(c *client.Client, req *codec.Message) {
	wsh.leaveRoom(c)

	roomId, err := wsh.RoomManager.CreateRoom(c, req.MaxPlayers)
	if err != nil {
		log.Printf("Client %s failed to create a room: %v", c.ID, err)
		wsh.sendError(c, "Could not create room")
		return
	}

	wsh.sendMessage(c, &codec.Message{Type: codec.MsgRoomCreated, RoomID: roomId, ClientID: c.ID})
	log.Printf("Room %s created by client %s", roomId, c.ID)
}

// handleRoomJoinRequest handles room join requests
func (wsh *WebSocketHandler) handleRoomJoinRequest(c *client.Client, req *codec.Message) {
	if c.RoomID == req.RoomID && c.RoomID != "" {
		wsh.sendMessage(c, &codec.Message{Type: codec.MsgJoined, RoomID: c.RoomID, ClientID: c.ID})
		return
	}
	previous := c.RoomID

	if err := wsh.RoomManager.JoinRoom(req.RoomID, c); err != nil {
		wsh.sendError(c, err.Error())
		log.Printf("Client %s failed to join room %s: %v", c.ID, req.RoomID, err)
		return
	}
	if previous != "" {
		wsh.RoomManager.RemoveClient(previous, c.ID)
	}

	wsh.sendMessage(c, &codec.Message{Type: codec.MsgJoined, RoomID: req.RoomID, ClientID: c.ID})
}

func (wsh *WebSocketHandler) leaveRoom(c *client.Client) {
	if c.RoomID == "" {
		return
	}
	wsh.RoomManager.RemoveClient(c.RoomID, c.ID)
	c.RoomID = ""
}

// disconnectPlayer handles player disconnection
func (wsh *WebSocketHandler) disconnectPlayer(c *client.Client) {
	wsh.Mu.Lock()
	_, exists := wsh.Connections[c.ID]
	if exists {
		delete(wsh.Connections, c.ID)
		delete(wsh.ConnToId, c.Conn)
	}
	wsh.Mu.Unlock()
	if !exists {
		return
	}

	if c.RoomID != "" {
		wsh.RoomManager.RemoveClient(c.RoomID, c.ID)
	}

	c.Close()
	c.Conn.Close()
	log.Printf("Client %s disconnected", c.ID)
}
