package server

import (
	"github.com/lguibr/pongai/game"
	"golang.org/x/net/websocket"
)

// AddClient registers a spectator connection with the broadcaster.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient unregisters a spectator connection and closes it.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastState fans a frame out to every registered spectator.
type BroadcastState struct {
	State game.GameState
}

// countClients asks the broadcaster how many spectators are connected.
type countClients struct {
	reply chan int
}
