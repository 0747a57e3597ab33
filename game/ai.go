package game

// TrackBall moves the AI paddle one step toward the ball's height. There is no
// prediction and no dead zone; when the paddle center is exactly level with
// the ball it stays put, otherwise it may overshoot by up to one step.
func TrackBall(ai *Paddle, ballY, boundsHeight float64) {
	center := ai.Center()
	if center < ballY {
		ai.MoveDown(boundsHeight)
	} else if center > ballY {
		ai.MoveUp(boundsHeight)
	}
}
