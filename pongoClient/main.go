package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/render"
	"github.com/lguibr/pongai/server"
)

var serverURL = flag.String("url", "ws://localhost:3001/subscribe", "spectator feed to watch")

// viewer draws frames received from a running game until the user quits.
type viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	frames   chan game.GameState
}

func newViewer(screen tcell.Screen) *viewer {
	return &viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		frames:   make(chan game.GameState, 1),
	}
}

// offer hands a frame to the draw loop, replacing one that was not drawn yet.
func (v *viewer) offer(state game.GameState) {
	for {
		select {
		case v.frames <- state:
			return
		default:
		}
		select {
		case <-v.frames:
		default:
		}
	}
}

// run draws frames on an initialized screen until Esc or q, the screen
// closing, or ctx ending.
func (v *viewer) run(ctx context.Context) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
			if ev == nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case state := <-v.frames:
			v.renderer.Draw(state)
		case ev := <-events:
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		}
	}
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}

	v := newViewer(screen)
	watchErr := make(chan error, 1)
	go func() {
		watchErr <- server.Watch(ctx, *serverURL, v.offer)
		cancel()
	}()

	v.run(ctx)
	cancel()
	screen.Fini()

	if err := <-watchErr; err != nil {
		fmt.Fprintf(os.Stderr, "watch %s: %v\n", *serverURL, err)
		os.Exit(1)
	}
}
