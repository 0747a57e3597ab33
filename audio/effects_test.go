package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/lguibr/pongai/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to completion and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %v", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestSoundFor_Silent(t *testing.T) {
	s, err := SoundFor(sampleRate, game.FrameEvents{})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSoundFor_Durations(t *testing.T) {
	testCases := []struct {
		name    string
		events  game.FrameEvents
		samples int
	}{
		{"wall", game.FrameEvents{WallBounce: true}, sampleRate.N(wallDuration)},
		{"player return", game.FrameEvents{Outcome: game.OutcomePlayerReturn}, sampleRate.N(returnDuration)},
		{"ai return beats wall", game.FrameEvents{WallBounce: true, Outcome: game.OutcomeAIReturn}, sampleRate.N(returnDuration)},
		{"point", game.FrameEvents{Outcome: game.OutcomeAIPoint}, sampleRate.N(pointHighDuration) + sampleRate.N(pointLowDuration)},
		{"point beats wall", game.FrameEvents{WallBounce: true, Outcome: game.OutcomePlayerPoint}, sampleRate.N(pointHighDuration) + sampleRate.N(pointLowDuration)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := SoundFor(sampleRate, tc.events)
			require.NoError(t, err)
			require.NotNil(t, s)
			assert.Equal(t, tc.samples, drain(t, s))
		})
	}
}

func TestBlip_RejectsFrequencyAboveNyquist(t *testing.T) {
	_, err := blip(beep.SampleRate(8000), 5000, wallDuration)
	assert.Error(t, err)
}

func TestSoundManager_PlayBeforeInitialize(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.Play(game.FrameEvents{WallBounce: true})
		sm.Cleanup()
	})
	assert.Equal(t, 0, sm.mixer.Len())
}
