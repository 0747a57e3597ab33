// File: server/broadcaster_actor.go
package server

import (
	"log"
	"time"

	"github.com/lguibr/pongai/bollywood"
	"golang.org/x/net/websocket"
)

const writeTimeout = 250 * time.Millisecond

// BroadcasterActor owns the set of spectator connections and writes every
// published frame to each of them.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	selfPID *bollywood.PID
}

func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
		}
	}
}

func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
			log.Printf("broadcaster %s: spectator %s joined (%d watching)", a.selfPID, remoteAddr(msg.Conn), len(a.clients))
		}

	case RemoveClient:
		if msg.Conn != nil && a.clients[msg.Conn] {
			a.drop(msg.Conn)
		}

	case BroadcastState:
		a.broadcastState(msg)

	case countClients:
		msg.reply <- len(a.clients)

	case bollywood.Stopping:
		for conn := range a.clients {
			a.drop(conn)
		}

	case bollywood.Stopped:

	default:
		log.Printf("broadcaster %s: unknown message %T", a.selfPID, msg)
	}
}

// broadcastState writes the frame to every spectator; a failed write drops
// that spectator.
func (a *BroadcasterActor) broadcastState(msg BroadcastState) {
	for conn := range a.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := websocket.JSON.Send(conn, &msg.State); err != nil {
			log.Printf("broadcaster %s: write to %s failed: %v", a.selfPID, remoteAddr(conn), err)
			a.drop(conn)
		}
	}
}

func (a *BroadcasterActor) drop(conn *websocket.Conn) {
	delete(a.clients, conn)
	_ = conn.Close()
	log.Printf("broadcaster %s: spectator %s left (%d watching)", a.selfPID, remoteAddr(conn), len(a.clients))
}

func remoteAddr(conn *websocket.Conn) string {
	if conn == nil || conn.Request() == nil {
		return "unknown"
	}
	return conn.Request().RemoteAddr
}
