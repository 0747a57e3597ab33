package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/lguibr/pongai/bollywood"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/utils"
	"golang.org/x/net/websocket"
)

// Server streams game frames to spectators over websocket and serves the
// latest frame over plain HTTP.
type Server struct {
	engine         *bollywood.Engine
	broadcasterPID *bollywood.PID
	latest         atomic.Value // []byte, JSON of the last published frame
}

// New spawns the broadcaster on engine.
func New(engine *bollywood.Engine) *Server {
	return &Server{
		engine:         engine,
		broadcasterPID: engine.Spawn(bollywood.NewProps(NewBroadcasterProducer())),
	}
}

// Publish records state as the latest frame and forwards it to spectators.
// It never blocks the caller on network I/O.
func (s *Server) Publish(state game.GameState) {
	data, err := state.ToJson()
	if err != nil {
		log.Printf("server: encode frame %d: %v", state.Frame, err)
		return
	}
	s.latest.Store(data)
	s.engine.Send(s.broadcasterPID, BroadcastState{State: state}, nil)
}

// Latest returns the JSON of the last published frame, or nil.
func (s *Server) Latest() []byte {
	data, _ := s.latest.Load().([]byte)
	return data
}

// ClientCount asks the broadcaster for the number of connected spectators.
// It returns -1 if the broadcaster does not answer in time.
func (s *Server) ClientCount(timeout time.Duration) int {
	reply := make(chan int, 1)
	s.engine.Send(s.broadcasterPID, countClients{reply: reply}, nil)
	select {
	case n := <-reply:
		return n
	case <-time.After(timeout):
		return -1
	}
}

// Handler routes the spectator endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(utils.SpectatorStatePath, s.HandleGetState())
	mux.Handle(utils.SpectatorSubscribePath, websocket.Handler(s.HandleSubscribe()))
	return mux
}

// ListenAndServe serves the spectator endpoints on addr until ctx is
// cancelled, then shuts down the HTTP server and the broadcaster.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("server: shutdown: %v", err)
		}
	}()

	log.Printf("server: spectators can watch on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Close stops the broadcaster, which disconnects every spectator.
func (s *Server) Close() {
	s.engine.Stop(s.broadcasterPID)
	s.engine.Wait(s.broadcasterPID, utils.ShutdownTimeout)
}
