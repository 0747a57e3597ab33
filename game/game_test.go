package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/lguibr/pongai/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	cfg := utils.DefaultConfig()
	game := NewGame(cfg, &sequenceRand{values: []int{0, 1}})

	assert.Equal(t, Arena{Width: 800, Height: 600}, game.Arena)
	assert.Equal(t, 400.0, game.Ball.X)
	assert.Equal(t, 300.0, game.Ball.Y)
	assert.Equal(t, cfg.BallSize, game.Ball.Radius)
	assertBallSpeed(t, game.Ball)

	assert.Equal(t, 0.0, game.Player.X)
	assert.Equal(t, 790.0, game.AI.X)
	assert.Equal(t, 250.0, game.Player.Y)
	assert.Equal(t, 250.0, game.AI.Y)
	assert.Equal(t, 100.0, game.Player.Height)
	assert.Equal(t, cfg.PaddleSpeed, game.AI.Speed)
	assert.Equal(t, Score{}, game.Score)
	assert.Equal(t, uint64(0), game.Frame())
}

func TestNewGame_FromConfigSizes(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.BallSize = 99
	cfg.PaddleHeight = 150

	game := NewGame(cfg, rand.New(rand.NewSource(1)))
	assert.Equal(t, 99.0, game.Ball.Radius)
	assert.Equal(t, 150.0, game.Player.Height)
	assert.Equal(t, 150.0, game.AI.Height)
}

func TestIntent_Direction(t *testing.T) {
	assert.Equal(t, utils.Directions.Up, Intent{Up: true}.Direction())
	assert.Equal(t, utils.Directions.Down, Intent{Down: true}.Direction())
	assert.Equal(t, utils.Directions.None, Intent{}.Direction())
	assert.Equal(t, utils.Directions.None, Intent{Up: true, Down: true}.Direction())
}

func TestGame_StepAppliesIntent(t *testing.T) {
	game := NewGame(utils.DefaultConfig(), &sequenceRand{values: []int{1, 1}})

	game.Step(Intent{Up: true})
	assert.Equal(t, 243.0, game.Player.Y)

	game.Step(Intent{Down: true})
	game.Step(Intent{Down: true})
	assert.Equal(t, 257.0, game.Player.Y)
	assert.Equal(t, uint64(3), game.Frame())
}

func TestGame_StepMovesAIThenBall(t *testing.T) {
	game := NewGame(utils.DefaultConfig(), &sequenceRand{values: []int{1, 1}})
	game.Ball.Y = 500

	events := game.Step(Intent{})

	assert.Equal(t, 257.0, game.AI.Y, "AI tracks the ball position from before it moves")
	assert.Equal(t, 405.0, game.Ball.X)
	assert.Equal(t, 505.0, game.Ball.Y)
	assert.Equal(t, FrameEvents{}, events)
}

func TestGame_StepReportsEvents(t *testing.T) {
	game := NewGame(utils.DefaultConfig(), &sequenceRand{values: []int{1, 1}})

	game.Ball.X, game.Ball.Y = 400, 12
	game.Ball.Vx, game.Ball.Vy = 5, -5
	events := game.Step(Intent{})
	assert.True(t, events.WallBounce)
	assert.Equal(t, OutcomeNone, events.Outcome)

	game.Player.Y = 0
	game.Ball.X, game.Ball.Y = 20, 500
	game.Ball.Vx, game.Ball.Vy = -5, 5
	events = game.Step(Intent{})
	assert.Equal(t, OutcomeAIPoint, events.Outcome)
	assert.Equal(t, Score{AI: 1}, game.Score)
	assert.Equal(t, 400.0, game.Ball.X)
	assert.Equal(t, 300.0, game.Ball.Y)
}

func TestGame_LongRunStaysInBounds(t *testing.T) {
	cfg := utils.DefaultConfig()
	rng := rand.New(rand.NewSource(99))
	game := NewGame(cfg, rng)
	inputs := rand.New(rand.NewSource(100))

	maxY := game.Arena.Height - float64(cfg.PaddleHeight)
	previous := game.Score
	for frame := 0; frame < 20000; frame++ {
		intent := Intent{Up: inputs.Intn(3) == 0, Down: inputs.Intn(3) == 0}
		events := game.Step(intent)

		for _, paddle := range []*Paddle{game.Player, game.AI} {
			if paddle.Y < 0 || paddle.Y > maxY {
				t.Fatalf("frame %d: paddle y=%v outside [0, %v]", frame, paddle.Y, maxY)
			}
		}
		assertBallSpeed(t, game.Ball)

		if events.Outcome.Scored() {
			require.Equal(t, previous.Total()+1, game.Score.Total(), "a point adds exactly one")
			x, y := game.Arena.Center()
			require.Equal(t, x, game.Ball.X)
			require.Equal(t, y, game.Ball.Y)
		} else {
			require.Equal(t, previous, game.Score)
		}
		previous = game.Score
	}
	assert.Positive(t, game.Score.Total(), "a long random match should produce points")
}

func TestGame_State(t *testing.T) {
	game := NewGame(utils.DefaultConfig(), &sequenceRand{values: []int{1, 0}})
	game.Step(Intent{})
	state := game.State()

	assert.Equal(t, uint64(1), state.Frame)
	assert.Equal(t, *game.Ball, state.Ball)
	assert.Equal(t, *game.Player, state.Player)

	game.Ball.X = 1
	assert.NotEqual(t, game.Ball.X, state.Ball.X, "state is a copy")

	data, err := state.ToJson()
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"frame", "arena", "ball", "player", "ai", "score"} {
		assert.Contains(t, decoded, key)
	}

	var roundTrip GameState
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, state, roundTrip)
}
