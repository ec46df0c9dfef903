package jotter

import (
	"log/slog"

	"github.com/aretw0/jotter/internal/platform"
	"github.com/aretw0/jotter/pkg/adapters/fs"
	"github.com/aretw0/jotter/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// NoteMetadata is a public alias for the per-note display preferences.
type NoteMetadata = core.NoteMetadata

// Event is a public alias for an external change to the notes directory.
type Event = core.Event

// Service is a public alias for the note service.
type Service = core.Service

// ServiceState is the snapshot returned by Service.State.
type ServiceState = core.ServiceState

// --- Errors ---

var (
	ErrInvalidName  = core.ErrInvalidName
	ErrCorruptStore = core.ErrCorruptStore
	ErrNotFound     = core.ErrNotFound
)

// --- Configuration ---

// Option defines a functional option for configuring Jotter.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithNotesDirectory overrides the notes directory for this session.
func WithNotesDirectory(dir string) Option {
	return platform.WithNotesDirectory(dir)
}

// WithStorePath sets the metadata store file.
func WithStorePath(path string) Option {
	return platform.WithStorePath(path)
}

// WithPreferencesPath sets the preferences file.
func WithPreferencesPath(path string) Option {
	return platform.WithPreferencesPath(path)
}

// WithPreferences injects the preferences used to locate the notes directory.
func WithPreferences(prefs core.Preferences) Option {
	return platform.WithPreferences(prefs)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithMetadataStore allows injecting a custom metadata store.
func WithMetadataStore(store core.MetadataStore) Option {
	return platform.WithMetadataStore(store)
}

// WithDevSafety controls the sandbox used under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New creates a new note Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// --- Safety & Utils ---

// NextAvailableName returns path, or the first "name (n).ext" variant of it that does not exist yet.
func NextAvailableName(path string) string {
	return fs.NextAvailableName(path)
}

// MoveAll moves the note files of oldDir, archived ones included, into newDir.
// It returns the number of files moved.
func MoveAll(oldDir, newDir string, logger *slog.Logger) (int, error) {
	return fs.MoveAll(oldDir, newDir, logger)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
