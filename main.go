package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pongai/audio"
	"github.com/lguibr/pongai/bollywood"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/server"
	"github.com/lguibr/pongai/session"
	"github.com/lguibr/pongai/utils"
)

var (
	configPath = flag.String("config", "config.json", "path to the JSON config file")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/pong.log")
	muteFlag   = flag.Bool("mute", false, "disable sound effects")
	spectate   = flag.String("spectate", "", "address to serve the spectator feed on, e.g. :3001 (empty disables it)")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	log.Printf("config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	opts := session.Options{FPS: cfg.FPS}

	if !*muteFlag {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio: disabled: %v", err)
		} else {
			defer sounds.Cleanup()
			opts.Sounds = sounds
		}
	}

	if *spectate != "" {
		engine := bollywood.NewEngine()
		defer engine.Shutdown(utils.ShutdownTimeout)

		feed := server.New(engine)
		opts.Publisher = feed

		serveCtx, cancelServe := context.WithCancel(ctx)
		defer cancelServe()
		go func() {
			if err := feed.ListenAndServe(serveCtx, *spectate); err != nil {
				log.Printf("server: %v", err)
			}
		}()
	}

	g := game.NewGame(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	return session.New(screen, g, opts).Run(ctx)
}
