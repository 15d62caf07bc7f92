package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundArrow
	SoundMenuNavigate
	SoundMenuSelect
)

// WaveForm selects how a cue is synthesized.
type WaveForm int

const (
	WaveNoise WaveForm = iota // decaying white noise, swept low-pass
	WaveSine
	WaveSquare
)

// CueDef describes a synthesized sound effect.
type CueDef struct {
	Wave      WaveForm
	Frequency float64 // Hz, ignored for noise
	Duration  time.Duration
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to cue definitions
type SoundConfig struct {
	Cues map[SoundID]CueDef
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Cues: map[SoundID]CueDef{
			SoundArrow:        {Wave: WaveNoise, Duration: 120 * time.Millisecond, Volume: 0.6},
			SoundMenuNavigate: {Wave: WaveSquare, Frequency: 660, Duration: 40 * time.Millisecond, Volume: 0.3},
			SoundMenuSelect:   {Wave: WaveSine, Frequency: 880, Duration: 90 * time.Millisecond, Volume: 0.5},
		},
	}
}
