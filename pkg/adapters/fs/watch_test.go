package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jotter/pkg/core"
)

// waitFor returns the first event matching want, failing after a timeout.
func waitFor(t *testing.T, events <-chan core.Event, want core.EventType, name string) core.Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case e, ok := <-events:
			require.True(t, ok, "event channel closed early")
			if e.Type == want && e.Name == name {
				return e
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s %s", want, name)
		}
	}
}

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, dir := setupRepo(t)
	_, err := repo.Initialize(ctx)
	require.NoError(t, err)

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	path := writeNote(t, dir, "external", "dropped in by another program")
	e := waitFor(t, events, core.EventCreate, "external")
	assert.NotZero(t, e.Timestamp)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0644))

	require.NoError(t, os.Remove(path))
	waitFor(t, events, core.EventDelete, "external")

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond, "expected channel to close after cancel")
}

func TestWatch_MissingDirectory(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.Watch(context.Background())
	assert.Error(t, err)
}
