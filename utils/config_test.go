package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `{
  "window_width": 800,
  "window_height": 600,
  "ball_size": 99,
  "paddle_width": 10,
  "paddle_height": 150,
  "ball_speed": 5,
  "paddle_speed": 7
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 600, cfg.WindowHeight)
	assert.Equal(t, 99.0, cfg.BallSize)
	assert.Equal(t, 150, cfg.PaddleHeight)
	assert.Equal(t, 10, cfg.PaddleWidth)
	assert.Equal(t, 5.0, cfg.BallSpeed)
	assert.Equal(t, 7.0, cfg.PaddleSpeed)
	assert.Equal(t, DefaultFPS, cfg.FPS, "fps falls back to the default when absent")
}

func TestLoadConfig_ShippedFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseConfig_MissingKey(t *testing.T) {
	for _, key := range RequiredKeys {
		t.Run(key, func(t *testing.T) {
			raw := map[string]any{
				"window_width":  800,
				"window_height": 600,
				"ball_size":     10,
				"paddle_width":  10,
				"paddle_height": 100,
				"ball_speed":    5,
				"paddle_speed":  7,
			}
			delete(raw, key)
			data := mustJSON(t, raw)

			_, err := ParseConfig(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingKey)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := ParseConfig([]byte(`{"window_width": 800,`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingKey)

	_, err = ParseConfig([]byte(`{"window_width": "wide", "window_height": 600, "ball_size": 10,
		"paddle_width": 10, "paddle_height": 100, "ball_speed": 5, "paddle_speed": 7}`))
	require.Error(t, err, "wrong value type must be rejected")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.WindowWidth = 0 }},
		{"negative height", func(c *Config) { c.WindowHeight = -1 }},
		{"zero ball", func(c *Config) { c.BallSize = 0 }},
		{"zero paddle", func(c *Config) { c.PaddleHeight = 0 }},
		{"paddle taller than window", func(c *Config) { c.PaddleHeight = c.WindowHeight + 1 }},
		{"paddles fill width", func(c *Config) { c.PaddleWidth = c.WindowWidth / 2 }},
		{"negative speed", func(c *Config) { c.BallSpeed = -1 }},
		{"negative fps", func(c *Config) { c.FPS = -30 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
