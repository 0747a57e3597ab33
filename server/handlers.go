// File: server/handlers.go
package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"golang.org/x/net/websocket"
)

// HandleSubscribe registers the connection as a spectator and holds it open
// until the peer goes away. Anything the peer sends is ignored.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("server: panic in subscribe handler: %v\n%s", r, debug.Stack())
			}
			s.engine.Send(s.broadcasterPID, RemoveClient{Conn: ws}, nil)
		}()

		s.engine.Send(s.broadcasterPID, AddClient{Conn: ws}, nil)
		s.readLoop(ws)
	}
}

// readLoop drains the connection until it errors, which is how a closed
// spectator shows up.
func (s *Server) readLoop(ws *websocket.Conn) {
	for {
		var discard []byte
		if err := websocket.Message.Receive(ws, &discard); err != nil {
			return
		}
	}
}

// HandleGetState serves the latest published frame as JSON.
func (s *Server) HandleGetState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		state := s.Latest()
		if state == nil {
			http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(state); err != nil {
			log.Printf("server: write state: %v", err)
		}
	}
}
