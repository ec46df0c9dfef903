package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	NotesDirectory  string `json:"notes_directory"`
	MetadataEntries int    `json:"metadata_entries"`
	RepositoryType  string `json:"repository_type"`
	StoreType       string `json:"store_type"`
	Repository      any    `json:"repository,omitempty"`
	Store           any    `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	state := ServiceState{
		NotesDirectory:  s.prefs.NotesDirectory(),
		MetadataEntries: s.store.Count(),
		RepositoryType:  componentType(s.repo, "repository"),
		StoreType:       componentType(s.store, "store"),
	}
	if intro, ok := s.repo.(introspection.Introspectable); ok {
		state.Repository = intro.State()
	}
	if intro, ok := s.store.(introspection.Introspectable); ok {
		state.Store = intro.State()
	}
	return state
}

func componentType(v any, fallback string) string {
	if comp, ok := v.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return fallback
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
