// File: session/session.go
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/render"
	"github.com/lguibr/pongai/utils"
)

// SoundPlayer plays the effects for one frame.
type SoundPlayer interface {
	Play(events game.FrameEvents)
}

// Publisher receives a snapshot of every frame.
type Publisher interface {
	Publish(state game.GameState)
}

// Options configures a Session. Sounds and Publisher are optional.
type Options struct {
	FPS        int
	HoldWindow time.Duration
	Sounds     SoundPlayer
	Publisher  Publisher
}

// Session runs one match on a terminal screen.
type Session struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *render.Renderer
	input    *Input
	opts     Options
}

func New(screen tcell.Screen, g *game.Game, opts Options) *Session {
	if opts.FPS <= 0 {
		opts.FPS = utils.DefaultFPS
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = utils.KeyHoldWindow
	}
	return &Session{
		screen:   screen,
		game:     g,
		renderer: render.NewRenderer(screen),
		input:    NewInput(opts.HoldWindow),
		opts:     opts,
	}
}

// Run initializes the screen and plays until the quit key, the screen going
// away, or ctx being cancelled. The screen is finalized on return.
func (s *Session) Run(ctx context.Context) error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.screen.Fini()
	s.screen.HideCursor()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go s.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.FPS))
	defer ticker.Stop()

	s.renderer.Draw(s.game.State())

	for {
		select {
		case <-ctx.Done():
			log.Printf("session: stopping at frame %d: %v", s.game.Frame(), ctx.Err())
			return nil

		case ev := <-events:
			if ev == nil {
				log.Printf("session: screen closed at frame %d", s.game.Frame())
				return nil
			}
			if s.handleEvent(ev, time.Now()) {
				log.Printf("session: quit at frame %d, score %d-%d", s.game.Frame(), s.game.Score.Player, s.game.Score.AI)
				return nil
			}

		case now := <-ticker.C:
			s.tick(now)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized.
func (s *Session) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.screen.PollEvent()
		select {
		case events <- ev:
		case <-done:
			return
		}
		if ev == nil {
			return
		}
	}
}

func (s *Session) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.input.HandleKey(ev, now)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

// tick advances the game one frame and hands the result to every output.
func (s *Session) tick(now time.Time) {
	events := s.game.Step(s.input.Intent(now))
	if s.opts.Sounds != nil {
		s.opts.Sounds.Play(events)
	}

	state := s.game.State()
	s.renderer.Draw(state)
	if s.opts.Publisher != nil {
		s.opts.Publisher.Publish(state)
	}
}
