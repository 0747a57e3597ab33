// File: game/game.go
package game

import (
	"encoding/json"
	"log"

	"github.com/lguibr/pongai/utils"
)

// Intent is the player's input for a single frame.
type Intent struct {
	Up   bool
	Down bool
}

// Direction folds the intent into one of utils.Directions. Holding both keys
// cancels out.
func (i Intent) Direction() string {
	switch {
	case i.Up && !i.Down:
		return utils.Directions.Up
	case i.Down && !i.Up:
		return utils.Directions.Down
	}
	return utils.Directions.None
}

// FrameEvents reports what happened during one Step, for sound and logging.
type FrameEvents struct {
	WallBounce bool
	Outcome    Outcome
}

// GameState is an immutable snapshot of a frame, drawn by the renderer and
// streamed to spectators.
type GameState struct {
	Frame  uint64 `json:"frame"`
	Arena  Arena  `json:"arena"`
	Ball   Ball   `json:"ball"`
	Player Paddle `json:"player"`
	AI     Paddle `json:"ai"`
	Score  Score  `json:"score"`
}

func (s GameState) ToJson() ([]byte, error) {
	return json.Marshal(s)
}

// Game owns every entity of a session. It is not safe for concurrent use; the
// frame loop is its only caller.
type Game struct {
	Arena  Arena
	Ball   *Ball
	Player *Paddle
	AI     *Paddle
	Score  Score
	frame  uint64
	rng    utils.Rand
}

// NewGame lays out a fresh match from cfg: ball in the center, the player
// paddle flush with the left edge, the AI paddle flush with the right edge.
func NewGame(cfg utils.Config, rng utils.Rand) *Game {
	arena := NewArena(cfg.WindowWidth, cfg.WindowHeight)
	centerX, centerY := arena.Center()
	paddleWidth := float64(cfg.PaddleWidth)
	paddleHeight := float64(cfg.PaddleHeight)

	return &Game{
		Arena:  arena,
		Ball:   NewBall(centerX, centerY, cfg.BallSize, cfg.BallSpeed, rng),
		Player: NewPaddle(0, paddleWidth, paddleHeight, cfg.PaddleSpeed, arena.Height),
		AI:     NewPaddle(arena.Width-paddleWidth, paddleWidth, paddleHeight, cfg.PaddleSpeed, arena.Height),
		rng:    rng,
	}
}

// Step advances the game by one frame: player input, AI, ball motion, then
// collision resolution.
func (g *Game) Step(intent Intent) FrameEvents {
	g.frame++

	g.Player.Move(intent.Direction(), g.Arena.Height)
	TrackBall(g.AI, g.Ball.Y, g.Arena.Height)
	bounced := g.Ball.Move(g.Arena.Height)
	outcome := ResolveCollisions(g.Ball, g.Player, g.AI, &g.Score, g.Arena, g.rng)

	if outcome.Scored() {
		log.Printf("game: frame %d %s, score %d-%d", g.frame, outcome, g.Score.Player, g.Score.AI)
	}

	return FrameEvents{WallBounce: bounced, Outcome: outcome}
}

func (g *Game) Frame() uint64 {
	return g.frame
}

// State copies the current frame into a GameState.
func (g *Game) State() GameState {
	return GameState{
		Frame:  g.frame,
		Arena:  g.Arena,
		Ball:   *g.Ball,
		Player: *g.Player,
		AI:     *g.AI,
		Score:  g.Score,
	}
}
