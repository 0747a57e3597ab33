package game

import (
	"github.com/lguibr/pongai/utils"
)

// Outcome is what collision resolution did with the ball this frame.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerReturn
	OutcomeAIReturn
	OutcomePlayerPoint
	OutcomeAIPoint
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerReturn:
		return "player-return"
	case OutcomeAIReturn:
		return "ai-return"
	case OutcomePlayerPoint:
		return "player-point"
	case OutcomeAIPoint:
		return "ai-point"
	}
	return "none"
}

// Scored reports whether the outcome awarded a point.
func (o Outcome) Scored() bool {
	return o == OutcomePlayerPoint || o == OutcomeAIPoint
}

// ResolveCollisions checks the ball against the player (left) and AI (right)
// paddles. A ball whose leading edge reaches a paddle plane either bounces off
// the paddle, ending just outside it, or scores for the opponent and is reset.
func ResolveCollisions(ball *Ball, player, ai *Paddle, score *Score, arena Arena, rng utils.Rand) Outcome {
	if ball.CollidesLeftPlane(player) {
		if ball.OverlapsPaddleSpan(player) {
			ball.HandleCollideLeft()
			ball.X = player.X + player.Width + ball.Radius
			return OutcomePlayerReturn
		}
		score.AI++
		ball.Reset(arena.Width/2, arena.Height/2, rng)
		return OutcomeAIPoint
	}

	if ball.CollidesRightPlane(ai) {
		if ball.OverlapsPaddleSpan(ai) {
			ball.HandleCollideRight()
			ball.X = ai.X - ball.Radius
			return OutcomeAIReturn
		}
		score.Player++
		ball.Reset(arena.Width/2, arena.Height/2, rng)
		return OutcomePlayerPoint
	}

	return OutcomeNone
}

// CollidesLeftPlane reports whether a left-moving ball has reached the outer
// face of a paddle on the left side.
func (ball *Ball) CollidesLeftPlane(paddle *Paddle) bool {
	return ball.Vx < 0 && ball.X-ball.Radius <= paddle.X+paddle.Width
}

// CollidesRightPlane reports whether a right-moving ball has reached the
// outer face of a paddle on the right side.
func (ball *Ball) CollidesRightPlane(paddle *Paddle) bool {
	return ball.Vx > 0 && ball.X+ball.Radius >= paddle.X
}

// OverlapsPaddleSpan is inclusive on both ends, so an edge touching the
// paddle's first or last row counts.
func (ball *Ball) OverlapsPaddleSpan(paddle *Paddle) bool {
	return utils.CheckPointWithinBounds(ball.Y, paddle.Y-ball.Radius, paddle.Y+paddle.Height+ball.Radius)
}
