package systems

import (
	"testing"

	"github.com/automoto/wee-archer/components"
	cfg "github.com/automoto/wee-archer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type menuCalls struct {
	started, quit int
}

func newTestMenu(t *testing.T) (*ecs.ECS, ecs.System, *menuCalls) {
	t.Helper()
	// Muted so direct cues never open an audio device.
	vol := cfg.Audio.DefaultSFXVol
	cfg.Audio.DefaultSFXVol = 0
	t.Cleanup(func() { cfg.Audio.DefaultSFXVol = vol })

	calls := &menuCalls{}
	update := NewUpdateMenu(func() { calls.started++ }, func() { calls.quit++ })
	return ecs.NewECS(donburi.NewWorld()), update, calls
}

// tap presses then releases actions over two ticks.
func tap(e *ecs.ECS, update ecs.System, actions ...cfg.ActionID) {
	hold(e, actions...)
	update(e)
	hold(e)
	update(e)
}

func TestMenuListsPlayCreditsExit(t *testing.T) {
	e, _, _ := newTestMenu(t)
	menu := GetOrCreateMenu(e)
	assert.Equal(t, []components.MainMenuOption{
		components.MainMenuPlay, components.MainMenuCredits, components.MainMenuExit,
	}, menu.Options)
	assert.Equal(t, "Credits", optionLabel(components.MainMenuCredits))
}

func TestMenuCreditsOpenAndClose(t *testing.T) {
	e, update, calls := newTestMenu(t)
	menu := GetOrCreateMenu(e)

	tap(e, update, cfg.ActionDown)
	require.Equal(t, 1, menu.SelectedIndex)

	hold(e, cfg.ActionMenuSelect)
	update(e)
	assert.False(t, menu.ShowCredits, "opens on release, not press")
	hold(e)
	update(e)
	assert.True(t, menu.ShowCredits)

	// Navigation is ignored while credits are shown.
	tap(e, update, cfg.ActionDown)
	assert.Equal(t, 1, menu.SelectedIndex)
	assert.True(t, menu.ShowCredits)

	tap(e, update, cfg.ActionMenuSelect)
	assert.False(t, menu.ShowCredits)
	assert.Zero(t, calls.started)
	assert.Zero(t, calls.quit)
}

func TestMenuBackClosesCreditsBeforeQuitting(t *testing.T) {
	e, update, calls := newTestMenu(t)
	menu := GetOrCreateMenu(e)
	menu.SelectedIndex = 1
	tap(e, update, cfg.ActionMenuSelect)
	require.True(t, menu.ShowCredits)

	tap(e, update, cfg.ActionMenuBack)
	assert.False(t, menu.ShowCredits)
	assert.Zero(t, calls.quit)

	tap(e, update, cfg.ActionMenuBack)
	assert.Equal(t, 1, calls.quit)
}

func TestMenuPlayStartsOnRelease(t *testing.T) {
	e, update, calls := newTestMenu(t)

	hold(e, cfg.ActionAttack)
	update(e)
	assert.Zero(t, calls.started, "attack still held")

	hold(e)
	update(e)
	assert.Equal(t, 1, calls.started)
	// The select cue is played directly, not left in this world's queue.
	assert.NotContains(t, getOrCreateAudio(e).PendingSFX, cfg.SoundMenuSelect)
}

func TestMenuExitQuits(t *testing.T) {
	e, update, calls := newTestMenu(t)

	tap(e, update, cfg.ActionUp)
	require.Equal(t, 2, GetOrCreateMenu(e).SelectedIndex)

	tap(e, update, cfg.ActionMenuSelect)
	assert.Equal(t, 1, calls.quit)
	assert.Zero(t, calls.started)
}
