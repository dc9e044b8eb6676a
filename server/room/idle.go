package room

import (
	"context"
	"log"
	"time"
)

// DefaultIdleTimeout is how long an empty room waits for someone to join
const DefaultIdleTimeout = 90 * time.Second

// IdleState is the countdown of an empty room
type IdleState struct {
	Ctx    context.Context
	Cancel context.CancelFunc
}

// watchIdle starts the countdown; the caller holds room.Mu
func (rm *RoomManager) watchIdle(room *Room) {
	room.stopIdle()

	ctx, cancel := context.WithTimeout(rm.ctx, rm.idleTimeout)
	room.idle = &IdleState{Ctx: ctx, Cancel: cancel}
	log.Printf("Room %s is empty, closing in %v unless someone joins", room.ID, rm.idleTimeout)

	go rm.runIdle(room.ID, ctx)
}

func (rm *RoomManager) runIdle(roomId string, ctx context.Context) {
	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		return
	}

	room, exists := rm.GetRoom(roomId)
	if !exists || room.NumClients() > 0 {
		return
	}
	rm.CloseRoom(roomId, "idle")
}

// stopIdle cancels a pending countdown; the caller holds room.Mu
func (r *Room) stopIdle() {
	if r.idle != nil {
		r.idle.Cancel()
		r.idle = nil
	}
}
