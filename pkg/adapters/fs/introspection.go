package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	WatcherActive bool       `json:"watcher_active"`
	LastMigration *time.Time `json:"last_migration,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:          r.Dir(),
		WatcherActive: r.watcherActive,
		LastMigration: r.lastMigration,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordMigration() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastMigration = &now
}

// MetadataStoreState exposes internal state for observability.
type MetadataStoreState struct {
	Path      string     `json:"path"`
	Entries   int        `json:"entries"`
	Version   int        `json:"version"`
	Loaded    bool       `json:"loaded"`
	Migrated  bool       `json:"migrated"`
	LastSaved *time.Time `json:"last_saved,omitempty"`
}

// State implements introspection.Introspectable.
func (s *MetadataStore) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return MetadataStoreState{
		Path:      s.Path,
		Entries:   len(s.entries),
		Version:   metadataVersion,
		Loaded:    s.loaded,
		Migrated:  s.migrated,
		LastSaved: s.lastSaved,
	}
}

// ComponentType implements introspection.Component.
func (s *MetadataStore) ComponentType() string {
	return "metadata-store"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
var _ introspection.Introspectable = (*MetadataStore)(nil)
var _ introspection.Component = (*MetadataStore)(nil)
