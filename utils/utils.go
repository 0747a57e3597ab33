package utils

import "strings"

// Rand is the subset of *math/rand.Rand the game needs.
type Rand interface {
	Intn(n int) int
}

func DirectionFromString(direction string) string {
	switch strings.ToLower(direction) {
	case "w", "arrowup", "up":
		return Directions.Up
	case "s", "arrowdown", "down":
		return Directions.Down
	}
	return Directions.None
}

func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RandomSign returns -magnitude or +magnitude with equal probability.
func RandomSign(rng Rand, magnitude float64) float64 {
	if rng.Intn(2) == 0 {
		return -magnitude
	}
	return magnitude
}

func CheckPointWithinBounds(value, low, high float64) bool {
	return value >= low && value <= high
}
