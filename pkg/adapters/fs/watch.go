package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jotter/pkg/core"
)

// Watch reports note files created, modified or removed in the notes directory.
// The channel is closed when ctx is cancelled. Watching never touches the
// metadata store; callers reconcile by calling LoadAll on their own control flow.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	dir := r.Dir()
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, 16)
	r.setWatcherActive(true)
	logger := r.config.Logger

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					if ctx.Err() != nil {
						return nil
					}
					return fmt.Errorf("watcher events channel closed")
				}
				e, ok := mapEvent(event)
				if !ok {
					continue
				}
				logger.Debug("note changed externally", "type", e.Type, "name", e.Name)
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}

			case wErr, ok := <-watcher.Errors:
				if !ok {
					if ctx.Err() != nil {
						return nil
					}
					return fmt.Errorf("watcher errors channel closed")
				}
				logger.Error("fsnotify error", "error", wErr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

// mapEvent converts a filesystem event on a note file into a core.Event.
// Temp files of atomic writes and anything that is not a note are ignored.
func mapEvent(event fsnotify.Event) (core.Event, bool) {
	base := filepath.Base(event.Name)
	if matched, err := doublestar.Match(notePattern, base); err != nil || !matched {
		return core.Event{}, false
	}
	name, ok := noteName(base)
	if !ok {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case event.Has(fsnotify.Create):
		t = core.EventCreate
	case event.Has(fsnotify.Write):
		t = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      t,
		Name:      name,
		Timestamp: time.Now().Unix(),
	}, true
}
