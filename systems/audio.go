package systems

import (
	"log"
	"sync"

	"github.com/automoto/wee-archer/assets"
	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes every cue up front so the first shot doesn't stall.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Cues {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the cues queued since the last tick. Playback is fire
// and forget; nothing waits on it.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}

	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if cfg.Audio.DefaultSFXVol <= 0 {
		return
	}
	initGlobalAudio()

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Printf("Warning: could not play sound %d: %v", soundID, err)
		return
	}

	player.SetVolume(cfg.Audio.DefaultSFXVol)
	player.Play()
}

// PlaySFX queues a sound effect to be played on the next audio update
func PlaySFX(e *ecs.ECS, soundID cfg.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, soundID)
}

// getOrCreateAudio returns the singleton Audio component, creating if needed
func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
