// File: game/paddle.go
package game

import "github.com/lguibr/pongai/utils"

type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
}

// NewPaddle creates a paddle at column x, vertically centered in boundsHeight.
func NewPaddle(x, width, height, speed, boundsHeight float64) *Paddle {
	return &Paddle{
		X:      x,
		Y:      boundsHeight/2 - height/2,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

func (paddle *Paddle) MoveUp(boundsHeight float64) {
	paddle.Y -= paddle.Speed
	paddle.clamp(boundsHeight)
}

func (paddle *Paddle) MoveDown(boundsHeight float64) {
	paddle.Y += paddle.Speed
	paddle.clamp(boundsHeight)
}

// Move applies a direction from utils.Directions; anything else is a no-op.
func (paddle *Paddle) Move(direction string, boundsHeight float64) {
	switch direction {
	case utils.Directions.Up:
		paddle.MoveUp(boundsHeight)
	case utils.Directions.Down:
		paddle.MoveDown(boundsHeight)
	}
}

func (paddle *Paddle) Center() float64 {
	return paddle.Y + paddle.Height/2
}

func (paddle *Paddle) clamp(boundsHeight float64) {
	paddle.Y = utils.Clamp(paddle.Y, 0, boundsHeight-paddle.Height)
}
