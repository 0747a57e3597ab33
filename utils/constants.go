package utils

import "time"

const (
	DefaultFPS = 60

	// Terminals only report key presses, so a direction stays held for this
	// long after its last press or auto-repeat event.
	KeyHoldWindow = 120 * time.Millisecond

	SpectatorStatePath     = "/state"
	SpectatorSubscribePath = "/subscribe"

	ShutdownTimeout = 2 * time.Second
)

var Directions = struct {
	None string
	Up   string
	Down string
}{
	None: "",
	Up:   "up",
	Down: "down",
}
