package game

// Arena is the playfield in world units (the configured window size).
type Arena struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewArena(width, height int) Arena {
	return Arena{Width: float64(width), Height: float64(height)}
}

func (a Arena) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}
