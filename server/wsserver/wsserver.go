package wsserver

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-hockey/server/client"
	"github.com/mo-shahab/go-hockey/server/codec"
)

// connection keepalive
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1 << 16
)

// writePump drains a client's send queue onto its socket and keeps it alive
// with pings. On a write failure it closes the socket and leaves cleanup to
// the read loop.
func (wsh *WebSocketHandler) writePump(c *client.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.Done():
			return
		case msg := <-c.SendQueue:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				log.Printf("Binary message write error: %v", err)
				c.Conn.Close()
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Conn.Close()
				return
			}
		}
	}
}

func (wsh *WebSocketHandler) sendMessage(c *client.Client, m *codec.Message) {
	encoded, err := wsh.Codec.Marshal(m)
	if err != nil {
		log.Printf("Failed to marshal %s message: %v", m.Type, err)
		return
	}
	if !c.Send(encoded) {
		log.Printf("Dropping %s message, send queue full for client %s", m.Type, c.ID)
	}
}

// sendError sends an error message to a client
func (wsh *WebSocketHandler) sendError(c *client.Client, errorMsg string) {
	wsh.sendMessage(c, codec.ErrorMessage(errorMsg))
}
