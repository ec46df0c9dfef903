package platform

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/jotter/internal/config"
	"github.com/aretw0/jotter/pkg/adapters/fs"
	"github.com/aretw0/jotter/pkg/core"
)

// New wires a note service.
//
//	svc, err := jotter.New(jotter.WithNotesDirectory("./notes"))
//
// Nothing is read from disk until the first service call, except the
// preferences file when preferences are not injected.
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	sandbox := o.devSafety && IsDevRun()
	if sandbox {
		logger.Debug("running in SAFE mode (dev sandbox enabled)")
	}

	prefs, err := resolvePreferences(o, sandbox)
	if err != nil {
		return nil, err
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Preferences: prefs,
			Logger:      logger,
		})
	}

	store := o.store
	if store == nil {
		path := o.storePath
		if path == "" {
			path = config.DefaultStorePath()
		}
		store = fs.NewMetadataStore(ResolvePath(path, sandbox), logger)
	}

	return core.NewService(repo, store, prefs, logger), nil
}

func resolvePreferences(o *options, sandbox bool) (core.Preferences, error) {
	if o.preferences != nil {
		return o.preferences, nil
	}

	if o.preferencesPath == "" && o.notesDirectory != "" {
		return sandboxed(config.New(ResolvePath(o.notesDirectory, sandbox)), sandbox), nil
	}

	path := o.preferencesPath
	if path == "" {
		path = config.DefaultPath()
	}

	prefs, err := config.Load(ResolvePath(path, sandbox))
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if o.notesDirectory != "" {
		prefs.NotesDir = o.notesDirectory
	}
	prefs.NotesDir = ResolvePath(prefs.NotesDir, sandbox)
	return sandboxed(prefs, sandbox), nil
}

func sandboxed(prefs core.Preferences, sandbox bool) core.Preferences {
	if !sandbox {
		return prefs
	}
	return sandboxedPreferences{Preferences: prefs}
}
