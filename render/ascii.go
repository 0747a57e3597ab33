package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used to draw the playfield.
const (
	blockGlyph   = '█'
	dividerGlyph = '│'
	emptyGlyph   = ' '
)

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	entityStyle     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	dividerStyle    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	scoreStyle      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
)

// viewport maps world coordinates onto a grid of terminal cells.
type viewport struct {
	cols, rows              int
	worldWidth, worldHeight float64
}

func newViewport(cols, rows int, worldWidth, worldHeight float64) viewport {
	return viewport{cols: cols, rows: rows, worldWidth: worldWidth, worldHeight: worldHeight}
}

func (v viewport) col(x float64) int {
	return clampInt(int(math.Floor(toCells(x, v.cols, v.worldWidth))), 0, v.cols-1)
}

func (v viewport) row(y float64) int {
	return clampInt(int(math.Floor(toCells(y, v.rows, v.worldHeight))), 0, v.rows-1)
}

// toCells multiplies before dividing so whole-cell boundaries stay exact.
func toCells(value float64, cells int, world float64) float64 {
	if world <= 0 {
		return 0
	}
	return value * float64(cells) / world
}

// span converts a world interval into an inclusive cell interval. Every
// non-empty interval covers at least one cell.
func span(low, high float64, cells int, world float64) (int, int) {
	first := int(math.Floor(toCells(low, cells, world)))
	last := int(math.Ceil(toCells(high, cells, world))) - 1
	if last < first {
		last = first
	}
	return clampInt(first, 0, cells-1), clampInt(last, 0, cells-1)
}

func clampInt(value, min, max int) int {
	if max < min {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
