package game

import (
	"github.com/lguibr/pongai/utils"
)

type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`
}

// NewBall places a ball at (x, y) with random velocity signs on both axes.
func NewBall(x, y, radius, speed float64, rng utils.Rand) *Ball {
	ball := &Ball{Radius: radius, Speed: speed}
	ball.Reset(x, y, rng)
	return ball
}

// Move advances the ball by one frame and reflects it off the top and bottom
// walls. It reports whether a reflection happened.
func (ball *Ball) Move(boundsHeight float64) bool {
	ball.X += ball.Vx
	ball.Y += ball.Vy

	if ball.CollidesTopWall() && ball.Vy < 0 {
		ball.HandleCollideTop()
		return true
	}
	if ball.CollidesBottomWall(boundsHeight) && ball.Vy > 0 {
		ball.HandleCollideBottom()
		return true
	}
	return false
}

// Reset moves the ball back to the center and redraws the sign of each
// velocity component.
func (ball *Ball) Reset(centerX, centerY float64, rng utils.Rand) {
	ball.X = centerX
	ball.Y = centerY
	ball.Vx = utils.RandomSign(rng, ball.Speed)
	ball.Vy = utils.RandomSign(rng, ball.Speed)
}

func (ball *Ball) CollidesTopWall() bool {
	return ball.Y < ball.Radius
}

func (ball *Ball) CollidesBottomWall(boundsHeight float64) bool {
	return ball.Y > boundsHeight-ball.Radius
}

func (ball *Ball) HandleCollideTop() {
	ball.Vy = utils.Abs(ball.Vy)
}

func (ball *Ball) HandleCollideBottom() {
	ball.Vy = -utils.Abs(ball.Vy)
}

func (ball *Ball) HandleCollideLeft() {
	ball.Vx = utils.Abs(ball.Vx)
}

func (ball *Ball) HandleCollideRight() {
	ball.Vx = -utils.Abs(ball.Vx)
}

// Bounds returns the ball's axis-aligned bounding box.
func (ball *Ball) Bounds() (left, top, right, bottom float64) {
	return ball.X - ball.Radius, ball.Y - ball.Radius, ball.X + ball.Radius, ball.Y + ball.Radius
}
