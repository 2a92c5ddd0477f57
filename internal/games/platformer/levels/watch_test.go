package levels

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case path := <-w.Events:
		return path
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
	return ""
}

func TestWatcherReportsPackFileWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.json")
	writeFile(t, path, `[["@o"]]`)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// Writes to other files in the same directory are filtered out.
	writeFile(t, filepath.Join(dir, "other.json"), `[["@o"]]`)
	require.NoError(t, os.WriteFile(path, []byte(`[["o@"]]`), 0o644))

	got := waitEvent(t, w)
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}

func TestWatcherDirectoryFiltersExtensions(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, filepath.Join(dir, "readme.txt"), "skip")
	writeFile(t, filepath.Join(dir, "new.yaml"), "levels:\n  - rows: [\"@o\"]\n")

	got := waitEvent(t, w)
	assert.Equal(t, "new.yaml", filepath.Base(got))
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Events not closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcherReportsBurstOnceAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.json")
	writeFile(t, path, `[["@o"]]`)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`[["@o", "v1"]]`), 0o644))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`[["@o", "v2"]]`), 0o644))
	lastWrite := time.Now()

	waitEvent(t, w)
	assert.GreaterOrEqual(t, time.Since(lastWrite), debounce/2, "event should wait for the burst to settle")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[["@o", "v2"]]`, string(data))

	select {
	case extra := <-w.Events:
		t.Fatalf("unexpected second event for %s", extra)
	case <-time.After(3 * debounce):
	}
}
