package assets

import (
	"fmt"
	"math"
	"math/rand"

	cfg "github.com/automoto/wee-archer/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound cues and caches the PCM per sound.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a cue and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for the cue each time, so overlapping
// plays don't cut each other off.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if data, ok := l.sfxCache[id]; ok {
		return data, nil
	}
	cue, ok := cfg.Sound.Cues[id]
	if !ok {
		return nil, fmt.Errorf("no cue for sound %d", id)
	}
	data, err := Synthesize(cue, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("synthesize sound %d: %w", id, err)
	}
	l.sfxCache[id] = data
	return data, nil
}

// Synthesize renders a cue as 16-bit little-endian stereo PCM, the format
// ebiten's audio players expect. Every cue fades out linearly.
func Synthesize(cue cfg.CueDef, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if cue.Duration <= 0 {
		return nil, fmt.Errorf("invalid cue duration %v", cue.Duration)
	}
	if cue.Wave != cfg.WaveNoise && cue.Frequency <= 0 {
		return nil, fmt.Errorf("invalid cue frequency %v", cue.Frequency)
	}

	n := int(cue.Duration.Seconds() * float64(sampleRate))
	out := make([]byte, n*4)

	// Fixed seed keeps a cue identical across runs.
	rng := rand.New(rand.NewSource(1))
	var lowpass float64

	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := 1 - float64(i)/float64(n)

		var s float64
		switch cue.Wave {
		case cfg.WaveNoise:
			// The filter closes as the cue decays, giving a whoosh.
			alpha := 0.15 + 0.6*env
			lowpass += alpha * (rng.Float64()*2 - 1 - lowpass)
			s = lowpass
		case cfg.WaveSine:
			s = math.Sin(2 * math.Pi * cue.Frequency * t)
		case cfg.WaveSquare:
			if math.Sin(2*math.Pi*cue.Frequency*t) >= 0 {
				s = 1
			} else {
				s = -1
			}
		default:
			return nil, fmt.Errorf("unknown wave form %d", cue.Wave)
		}

		v := int16(s * env * cue.Volume * math.MaxInt16)
		out[4*i] = byte(v)
		out[4*i+1] = byte(v >> 8)
		out[4*i+2] = byte(v)
		out[4*i+3] = byte(v >> 8)
	}
	return out, nil
}
