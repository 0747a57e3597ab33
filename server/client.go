package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lguibr/pongai/game"
	"golang.org/x/net/websocket"
)

// Watch connects to a spectator endpoint and calls onState for every frame
// received. It returns nil when ctx is cancelled or the server closes the
// stream.
func Watch(ctx context.Context, url string, onState func(game.GameState)) error {
	ws, err := websocket.Dial(url, "", originFor(url))
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = ws.Close()
		case <-done:
			_ = ws.Close()
		}
	}()

	for {
		var state game.GameState
		if err := websocket.JSON.Receive(ws, &state); err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("receive frame: %w", err)
		}
		onState(state)
	}
}

// originFor maps ws://host/path to http://host, which is what the server's
// handshake expects in the Origin header.
func originFor(url string) string {
	origin := strings.Replace(url, "ws", "http", 1)
	if i := strings.Index(origin, "://"); i >= 0 {
		if j := strings.Index(origin[i+3:], "/"); j >= 0 {
			origin = origin[:i+3+j]
		}
	}
	return origin
}
