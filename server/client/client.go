package client

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one websocket peer: a perception feed, a renderer, or both
type Client struct {
	Conn      *websocket.Conn
	SendQueue chan []byte
	ID        string
	RoomID    string

	done      chan struct{}
	closeOnce sync.Once
}

func New(conn *websocket.Conn, id string, queueSize int) *Client {
	return &Client{
		Conn:      conn,
		SendQueue: make(chan []byte, queueSize),
		ID:        id,
		done:      make(chan struct{}),
	}
}

// Send queues msg without blocking. It reports false when the queue is full
// or the client is closed.
func (c *Client) Send(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.SendQueue <- msg:
		return true
	default:
		return false
	}
}

// Done is closed once the client has been closed
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close marks the client closed. The send queue is left open so concurrent
// senders never write to a closed channel.
func (c *Client) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
