package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_NotifiesOnWatchedFileChange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "run.txt")
	require.NoError(t, os.WriteFile(input, []byte("NSteps 100\n"), 0o644))

	w, err := New(Config{Paths: []string{input}, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	changes, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(input, []byte("NSteps 200\n"), 0o644))

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestWatcher_IgnoresOtherFilesInDirectory(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "run.txt")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("a\n"), 0o644))

	w, err := New(Config{Paths: []string{input}, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	changes, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(other, []byte("noise\n"), 0o644))

	select {
	case <-changes:
		t.Fatal("unwatched sibling file must not notify")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "run.txt")
	require.NoError(t, os.WriteFile(input, []byte("a\n"), 0o644))

	w, err := New(Config{Paths: []string{input}, DebounceDur: 150 * time.Millisecond})
	require.NoError(t, err)
	defer w.Stop()

	changes, err := w.Start()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(input, []byte("burst\n"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected one coalesced notification")
	}

	// The burst collapses to a single signal.
	select {
	case <-changes:
		t.Fatal("burst produced more than one notification")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_StopTerminates(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "run.txt")
	require.NoError(t, os.WriteFile(input, []byte("a\n"), 0o644))

	w, err := New(Config{Paths: []string{input}, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)

	_, err = w.Start()
	require.NoError(t, err)
	require.NoError(t, w.Stop())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("a.txt", "b.yaml")
	require.Equal(t, []string{"a.txt", "b.yaml"}, cfg.Paths)
	require.Equal(t, 500*time.Millisecond, cfg.DebounceDur)
}
