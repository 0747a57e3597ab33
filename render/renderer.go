package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pongai/game"
)

// Minimum terminal size that can show both paddles, the divider and scores.
const (
	MinCols = 20
	MinRows = 6

	scoreOffsetY = 20.0
)

// Renderer draws game snapshots onto a tcell screen, scaled to whatever size
// the terminal currently has.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame and flushes it to the terminal.
func (r *Renderer) Draw(state game.GameState) {
	cols, rows := r.screen.Size()
	r.screen.Fill(emptyGlyph, backgroundStyle)

	if cols < MinCols || rows < MinRows {
		r.drawText(0, 0, "terminal too small", scoreStyle)
		r.screen.Show()
		return
	}

	view := newViewport(cols, rows, state.Arena.Width, state.Arena.Height)

	r.drawDivider(view, state.Arena)
	r.drawScores(view, state)
	r.drawPaddle(view, state.Player)
	r.drawPaddle(view, state.AI)
	r.drawBall(view, state.Ball)

	r.screen.Show()
}

func (r *Renderer) drawDivider(view viewport, arena game.Arena) {
	col := view.col(arena.Width / 2)
	for row := 0; row < view.rows; row++ {
		r.screen.SetContent(col, row, dividerGlyph, nil, dividerStyle)
	}
}

// Scores sit over the center of each half, player on the left.
func (r *Renderer) drawScores(view viewport, state game.GameState) {
	row := clampInt(view.row(scoreOffsetY), 1, view.rows-1)
	r.drawCentered(view.col(state.Arena.Width/4), row, strconv.Itoa(state.Score.Player))
	r.drawCentered(view.col(state.Arena.Width*3/4), row, strconv.Itoa(state.Score.AI))
}

func (r *Renderer) drawPaddle(view viewport, paddle game.Paddle) {
	r.fillRect(view, paddle.X, paddle.Y, paddle.X+paddle.Width, paddle.Y+paddle.Height)
}

// The ball is drawn as its bounding square, the same box used as its hitbox.
func (r *Renderer) drawBall(view viewport, ball game.Ball) {
	left, top, right, bottom := ball.Bounds()
	r.fillRect(view, left, top, right, bottom)
}

func (r *Renderer) fillRect(view viewport, left, top, right, bottom float64) {
	firstCol, lastCol := span(left, right, view.cols, view.worldWidth)
	firstRow, lastRow := span(top, bottom, view.rows, view.worldHeight)
	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			r.screen.SetContent(col, row, blockGlyph, nil, entityStyle)
		}
	}
}

func (r *Renderer) drawCentered(col, row int, text string) {
	r.drawText(col-len(text)/2, row, text, scoreStyle)
}

func (r *Renderer) drawText(col, row int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(col+i, row, ch, nil, style)
	}
}
