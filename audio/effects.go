package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lguibr/pongai/game"
)

// Tone frequencies and lengths, loosely after the arcade cabinet.
const (
	wallFrequency   = 226.0
	returnFrequency = 459.0
	pointHighFreq   = 490.0
	pointLowFreq    = 245.0

	wallDuration      = 30 * time.Millisecond
	returnDuration    = 50 * time.Millisecond
	pointHighDuration = 80 * time.Millisecond
	pointLowDuration  = 220 * time.Millisecond

	toneVolume = -1.5
)

// blip returns a sine tone of the given length, attenuated to toneVolume.
func blip(rate beep.SampleRate, freq float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(duration), sine),
		Base:     2,
		Volume:   toneVolume,
	}, nil
}

// SoundFor picks the effect for a frame. Points take priority over paddle
// returns, which take priority over wall bounces. It returns nil when the
// frame was silent.
func SoundFor(rate beep.SampleRate, events game.FrameEvents) (beep.Streamer, error) {
	switch {
	case events.Outcome.Scored():
		high, err := blip(rate, pointHighFreq, pointHighDuration)
		if err != nil {
			return nil, err
		}
		low, err := blip(rate, pointLowFreq, pointLowDuration)
		if err != nil {
			return nil, err
		}
		return beep.Seq(high, low), nil
	case events.Outcome == game.OutcomePlayerReturn || events.Outcome == game.OutcomeAIReturn:
		return blip(rate, returnFrequency, returnDuration)
	case events.WallBounce:
		return blip(rate, wallFrequency, wallDuration)
	}
	return nil, nil
}
