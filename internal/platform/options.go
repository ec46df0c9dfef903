package platform

import (
	"log/slog"

	"github.com/aretw0/jotter/pkg/core"
)

// options holds the internal configuration for the Jotter service.
type options struct {
	logger          *slog.Logger
	notesDirectory  string
	storePath       string
	preferencesPath string
	preferences     core.Preferences
	repository      core.Repository
	store           core.MetadataStore
	devSafety       bool
}

// Option defines a functional option for configuring Jotter.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger shared by the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNotesDirectory overrides the notes directory for this session.
// Without a preferences path the directory is kept in memory only.
func WithNotesDirectory(dir string) Option {
	return func(o *options) {
		o.notesDirectory = dir
	}
}

// WithStorePath sets the metadata store file. Defaults to config.DefaultStorePath.
func WithStorePath(path string) Option {
	return func(o *options) {
		o.storePath = path
	}
}

// WithPreferencesPath sets the preferences file. Defaults to config.DefaultPath.
func WithPreferencesPath(path string) Option {
	return func(o *options) {
		o.preferencesPath = path
	}
}

// WithPreferences injects the preferences used to locate the notes directory.
// Preference paths and notes directory options are ignored.
func WithPreferences(prefs core.Preferences) Option {
	return func(o *options) {
		o.preferences = prefs
	}
}

// WithRepository allows injecting a custom storage adapter for note files.
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithMetadataStore allows injecting a custom metadata store.
func WithMetadataStore(store core.MetadataStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true), paths outside the system temp directory are re-rooted
// under a temporary directory so development runs never touch real notes.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
