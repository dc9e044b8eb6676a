package room

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mo-shahab/go-hockey/server/client"
	"github.com/mo-shahab/go-hockey/server/codec"
	"github.com/mo-shahab/go-hockey/server/game"
)

var (
	ErrRoomNotFound = errors.New("room id is invalid")
	ErrRoomFull     = errors.New("room is full")
)

// MatchFactory builds the match a new room plays
type MatchFactory func() (*game.Match, error)

// Room is one table: a running engine and the clients attached to it
type Room struct {
	ID         string
	Clients    map[string]*client.Client
	MaxPlayers int
	Engine     *game.Engine
	Mu         sync.Mutex

	codec codec.Codec
	idle  *IdleState
}

// state of all the rooms
type RoomManager struct {
	Rooms map[string]*Room
	Mu    sync.Mutex

	ctx         context.Context
	newMatch    MatchFactory
	codec       codec.Codec
	frameRate   int
	maxClients  int
	idleTimeout time.Duration
}

// Options configures a RoomManager
type Options struct {
	Codec       codec.Codec
	FrameRate   int
	MaxClients  int
	IdleTimeout time.Duration
}

// NewRoomManager creates rooms whose engines live until ctx is cancelled
func NewRoomManager(ctx context.Context, newMatch MatchFactory, opts Options) *RoomManager {
	if opts.Codec == nil {
		opts.Codec = codec.ProtoCodec{}
	}
	if opts.MaxClients <= 0 {
		opts.MaxClients = 2
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	return &RoomManager{
		Rooms:       make(map[string]*Room),
		ctx:         ctx,
		newMatch:    newMatch,
		codec:       opts.Codec,
		frameRate:   opts.FrameRate,
		maxClients:  opts.MaxClients,
		idleTimeout: opts.IdleTimeout,
	}
}

// helpers
func generateRoomId() string {
	return uuid.New().String()[:6]
}

// CreateRoom starts a new table with host attached and returns its id
func (rm *RoomManager) CreateRoom(host *client.Client, maxPlayers int) (string, error) {
	match, err := rm.newMatch()
	if err != nil {
		return "", fmt.Errorf("create match: %w", err)
	}
	if maxPlayers <= 0 || maxPlayers > rm.maxClients {
		maxPlayers = rm.maxClients
	}

	rm.Mu.Lock()
	roomId := generateRoomId()
	for _, taken := rm.Rooms[roomId]; taken; _, taken = rm.Rooms[roomId] {
		roomId = generateRoomId()
	}

	room := &Room{
		ID:         roomId,
		Clients:    map[string]*client.Client{host.ID: host},
		MaxPlayers: maxPlayers,
		codec:      rm.codec,
	}
	room.Engine = game.NewEngine(match, rm.frameRate, room)
	rm.Rooms[roomId] = room
	host.RoomID = roomId
	rm.Mu.Unlock()

	room.Engine.Start(rm.ctx)
	log.Printf("Created Room with room id: %s, with host: %s", roomId, host.ID)

	return roomId, nil
}

func (rm *RoomManager) JoinRoom(roomId string, c *client.Client) error {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]
	if !exists {
		return ErrRoomNotFound
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if len(room.Clients) >= room.MaxPlayers {
		return ErrRoomFull
	}

	room.stopIdle()
	room.Clients[c.ID] = c
	c.RoomID = roomId
	log.Printf("Client %s joined the Room with room id: %s", c.ID, roomId)

	return nil
}

// RemoveClient detaches a client; an emptied room starts its idle countdown
func (rm *RoomManager) RemoveClient(roomId string, clientId string) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]
	if !exists {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	delete(room.Clients, clientId)
	log.Printf("Client %s left room %s, %d remaining", clientId, roomId, len(room.Clients))

	if len(room.Clients) == 0 {
		rm.watchIdle(room)
	}
}

func (rm *RoomManager) GetRoom(roomId string) (*Room, bool) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]

	return room, exists
}

// CloseRoom stops a room's engine and forgets it. Attached clients are told why.
func (rm *RoomManager) CloseRoom(roomId string, reason string) {
	rm.Mu.Lock()
	room, exists := rm.Rooms[roomId]
	if !exists {
		rm.Mu.Unlock()
		return
	}
	delete(rm.Rooms, roomId)
	rm.Mu.Unlock()

	room.Mu.Lock()
	room.stopIdle()
	room.Mu.Unlock()

	room.Engine.Stop()

	if encoded, err := room.codec.Marshal(codec.ErrorMessage("room closed: " + reason)); err == nil {
		room.broadcast(encoded)
	}
	log.Printf("Room %s closed: %s", roomId, reason)
}

// Shutdown closes every room
func (rm *RoomManager) Shutdown() {
	rm.Mu.Lock()
	ids := make([]string, 0, len(rm.Rooms))
	for id := range rm.Rooms {
		ids = append(ids, id)
	}
	rm.Mu.Unlock()

	for _, id := range ids {
		rm.CloseRoom(id, "server shutting down")
	}
}

func (r *Room) NumClients() int {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return len(r.Clients)
}

// BroadcastFrame implements game.Broadcaster: it sends the snapshot, and the
// goal when one went in, to every client in the room.
func (r *Room) BroadcastFrame(snap game.Snapshot, res game.StepResult) {
	encoded, err := r.codec.Marshal(codec.StateMessage(snap))
	if err != nil {
		log.Printf("Failed to encode state message: %v", err)
		return
	}
	r.broadcast(encoded)

	if res.Goal == nil {
		return
	}
	encoded, err = r.codec.Marshal(codec.GoalMessage(res.Goal))
	if err != nil {
		log.Printf("Failed to encode goal message: %v", err)
		return
	}
	r.broadcast(encoded)
}

func (r *Room) broadcast(message []byte) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	for _, c := range r.Clients {
		if !c.Send(message) {
			log.Printf("Dropping message, send queue full for client %s", c.ID)
		}
	}
}
