// File: game/helpers_test.go
package game

import (
	"testing"

	"github.com/lguibr/pongai/utils"
)

// sequenceRand replays a fixed list of values modulo n.
type sequenceRand struct {
	values []int
	next   int
}

func (r *sequenceRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)] % n
	r.next++
	return v
}

func newTestPaddles() (player, ai *Paddle) {
	player = &Paddle{X: 0, Y: 250, Width: 10, Height: 100, Speed: 7}
	ai = &Paddle{X: 790, Y: 250, Width: 10, Height: 100, Speed: 7}
	return player, ai
}

func testArena() Arena {
	return Arena{Width: 800, Height: 600}
}

func assertBallSpeed(t *testing.T, ball *Ball) {
	t.Helper()
	if utils.Abs(ball.Vx) != ball.Speed || utils.Abs(ball.Vy) != ball.Speed {
		t.Errorf("ball velocity (%v, %v) does not match speed %v", ball.Vx, ball.Vy, ball.Speed)
	}
}
