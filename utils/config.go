// File: utils/config.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

var (
	ErrMissingKey    = errors.New("missing config key")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds the game geometry and speeds loaded from the JSON config file.
type Config struct {
	// Window
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// Ball
	BallSize  float64 `json:"ball_size"`  // Radius of the ball
	BallSpeed float64 `json:"ball_speed"` // Per-axis speed, |vx| == |vy| == BallSpeed

	// Paddles
	PaddleWidth  int     `json:"paddle_width"`
	PaddleHeight int     `json:"paddle_height"`
	PaddleSpeed  float64 `json:"paddle_speed"`

	// Timing, optional
	FPS int `json:"fps"`
}

// RequiredKeys lists the keys every config file must define. There are no
// defaults for them.
var RequiredKeys = []string{
	"window_width",
	"window_height",
	"ball_size",
	"paddle_width",
	"paddle_height",
	"ball_speed",
	"paddle_speed",
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a JSON config document, requiring every key in
// RequiredKeys and filling optional keys with their defaults.
func ParseConfig(data []byte) (Config, error) {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	var missing []string
	for _, key := range RequiredKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Config{}, fmt.Errorf("%w: %v", ErrMissingKey, missing)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.FPS == 0 {
		cfg.FPS = DefaultFPS
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects geometry the game loop cannot run with.
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	case c.BallSize <= 0:
		return fmt.Errorf("%w: ball_size must be positive, got %v", ErrInvalidConfig, c.BallSize)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %dx%d", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleHeight > c.WindowHeight:
		return fmt.Errorf("%w: paddle_height %d exceeds window_height %d", ErrInvalidConfig, c.PaddleHeight, c.WindowHeight)
	case 2*c.PaddleWidth >= c.WindowWidth:
		return fmt.Errorf("%w: paddles leave no room in window_width %d", ErrInvalidConfig, c.WindowWidth)
	case c.BallSpeed < 0 || c.PaddleSpeed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	case c.FPS < 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	return nil
}

// DefaultConfig mirrors the shipped config.json. Tests build on it.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 600,
		BallSize:     10,
		BallSpeed:    5,
		PaddleWidth:  10,
		PaddleHeight: 100,
		PaddleSpeed:  7,
		FPS:          DefaultFPS,
	}
}
