package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatchedFile(t *testing.T) (string, *TuningWatcher) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 100\n"), 0o644))

	w, err := NewTuningWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return path, w
}

func TestTuningWatcherReportsAfterBurstSettles(t *testing.T) {
	path, w := newWatchedFile(t)

	// Truncate then write, the way many editors save.
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("player:\n  speed: 250\n"), 0o644))

	select {
	case got := <-w.Events:
		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, abs, got)

		data, err := os.ReadFile(got)
		require.NoError(t, err)
		assert.Contains(t, string(data), "speed: 250")
	case <-time.After(2 * time.Second):
		t.Fatal("no reload reported")
	}

	select {
	case <-w.Events:
		t.Fatal("burst reported more than once")
	case <-time.After(3 * tuningSettle):
	}
}

func TestTuningWatcherIgnoresOtherFiles(t *testing.T) {
	path, w := newWatchedFile(t)

	other := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("x: 1\n"), 0o644))

	select {
	case <-w.Events:
		t.Fatal("reported a change to another file")
	case <-time.After(3 * tuningSettle):
	}
}

func TestTuningWatcherCloseIsIdempotent(t *testing.T) {
	_, w := newWatchedFile(t)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
