package watcher_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/storybook/internal/pubsub"
	"github.com/zjrosen/storybook/internal/watcher"
)

func startWatcher(t *testing.T, path string) <-chan pubsub.Event[string] {
	t.Helper()
	w, err := watcher.New(watcher.Config{Path: path, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	events := w.Subscribe(ctx)

	require.NoError(t, w.Start())
	return events
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o600))

	events := startWatcher(t, path)

	for i := range 10 {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("title: a%d\n", i)), 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case ev := <-events:
		require.Equal(t, pubsub.ChangedEvent, ev.Type)
		require.Equal(t, path, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case ev := <-events:
		t.Fatalf("unexpected second notification: %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "story.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o600))
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))

	events := startWatcher(t, path)

	require.NoError(t, os.WriteFile(other, []byte("changed"), 0o600))

	select {
	case ev := <-events:
		t.Fatalf("unexpected notification for unrelated file: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_RenameOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "story.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o600))

	events := startWatcher(t, path)

	tmp := filepath.Join(dir, ".story.yaml.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("title: b\n"), 0o600))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case ev := <-events:
		require.Equal(t, pubsub.ChangedEvent, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("expected notification after rename")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	w, err := watcher.New(watcher.DefaultConfig(path))
	require.NoError(t, err)
	require.NoError(t, w.Start())

	events := w.Subscribe(context.Background())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		require.False(t, ok, "subscription should close with the watcher")
	case <-time.After(time.Second):
		t.Fatal("subscription did not close")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(filepath.Join(t.TempDir(), "missing", "story.yaml")))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	require.Error(t, w.Start())
}

func TestDefaultConfig(t *testing.T) {
	cfg := watcher.DefaultConfig("/tmp/story.yaml")
	require.Equal(t, "/tmp/story.yaml", cfg.Path)
	require.Equal(t, watcher.DefaultDebounce, cfg.Debounce)
}
