package session

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/utils"
)

// Input turns key presses into a per-frame paddle intent. Terminals send a
// press and its auto-repeats but never a release, so a direction stays held
// for holdWindow after its most recent press.
type Input struct {
	holdWindow time.Duration
	lastUp     time.Time
	lastDown   time.Time
}

func NewInput(holdWindow time.Duration) *Input {
	return &Input{holdWindow: holdWindow}
}

// HandleKey records a key press at now and reports whether it asks to quit.
func (in *Input) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		in.press(utils.Directions.Up, now)
	case tcell.KeyDown:
		in.press(utils.Directions.Down, now)
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'q' || r == 'Q' {
			return true
		}
		in.press(utils.DirectionFromString(string(ev.Rune())), now)
	}
	return false
}

// press holds direction and releases the opposite one.
func (in *Input) press(direction string, now time.Time) {
	switch direction {
	case utils.Directions.Up:
		in.lastUp = now
		in.lastDown = time.Time{}
	case utils.Directions.Down:
		in.lastDown = now
		in.lastUp = time.Time{}
	}
}

// Intent reports which directions are held at now.
func (in *Input) Intent(now time.Time) game.Intent {
	return game.Intent{
		Up:   in.held(in.lastUp, now),
		Down: in.held(in.lastDown, now),
	}
}

func (in *Input) held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < in.holdWindow
}
