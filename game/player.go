package game

// Score counts points for each side. Counters only ever grow.
type Score struct {
	Player int `json:"player"`
	AI     int `json:"ai"`
}

func (s Score) Total() int {
	return s.Player + s.AI
}
