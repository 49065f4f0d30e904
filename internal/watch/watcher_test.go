package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case change, ok := <-w.Changes():
		require.True(t, ok, "changes channel closed unexpectedly")
		return change
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for a change")
	}
	return Change{}
}

func drain(w *Watcher) {
	for {
		select {
		case <-w.Changes():
		case <-time.After(200 * time.Millisecond):
			return
		}
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(dir))
	require.NoError(t, w.Start())
	defer w.Stop()
	assert.True(t, w.IsRunning())
	assert.Equal(t, dir, w.Dir())

	path := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	change := waitForChange(t, w)
	assert.Equal(t, dir, change.Dir)
	assert.Equal(t, path, change.Path)
	assert.True(t, change.Op.Has(fsnotify.Create) || change.Op.Has(fsnotify.Write))
}

func TestWatcherSwitchesDirectory(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, w.Watch(second))
	assert.Equal(t, second, w.Dir())
	drain(w)

	require.NoError(t, os.Mkdir(filepath.Join(second, "sub"), 0755))
	change := waitForChange(t, w)
	assert.Equal(t, second, change.Dir)
	assert.Equal(t, filepath.Join(second, "sub"), change.Path)
}

func TestWatcherErrors(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Watch("/nonexistent/path"))

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	err = w.Watch(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")

	require.NoError(t, w.Start())
	assert.Error(t, w.Start(), "a watcher starts once")
}

func TestWatcherStop(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Watch(t.TempDir()))
	require.NoError(t, w.Start())

	w.Stop()
	assert.False(t, w.IsRunning())
	_, ok := <-w.Changes()
	assert.False(t, ok, "stop closes the changes channel")

	w.Stop()
}
