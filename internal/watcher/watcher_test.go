package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/restodesk/internal/watcher"
)

func start(t *testing.T, path string) <-chan struct{} {
	t.Helper()
	w, err := watcher.New(path, 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	ch, err := w.Start()
	require.NoError(t, err)
	return ch
}

func TestWatcher_CoalescesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: {}\n"), 0600))
	changed := start(t, path)

	for i := range 10 {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("ui: {page_size: %d}\n", i+1)), 0600))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}
	select {
	case <-changed:
		t.Fatal("writes in one burst should notify once")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	changed := start(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "traces.jsonl"), []byte("{}"), 0600))

	select {
	case <-changed:
		t.Fatal("sibling file should not notify")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_SeesAtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	changed := start(t, path)

	tmp := filepath.Join(dir, ".config.yaml.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("ui: {page_size: 5}\n"), 0600))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("rename onto the file should notify")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := watcher.New(filepath.Join(t.TempDir(), "nope", "config.yaml"), 0)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()
	_, err = w.Start()
	require.Error(t, err)
}
