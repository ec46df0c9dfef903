// Package config handles user preferences.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/aretw0/jotter/internal/atomicfile"
)

// Preferences holds user settings. It implements core.Preferences.
type Preferences struct {
	// NotesDir is the directory holding the note files.
	NotesDir string `toml:"notes_directory"`

	path string
	mu   sync.RWMutex
}

// persistedPreferences omits empty values from the file.
type persistedPreferences struct {
	NotesDir *string `toml:"notes_directory,omitempty"`
}

// New returns preferences for dir that are kept in memory only.
func New(dir string) *Preferences {
	return &Preferences{NotesDir: dir}
}

// Load loads the preferences stored at path.
// A missing file yields defaults, which are not written until the first change.
func Load(path string) (*Preferences, error) {
	p := &Preferences{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		p.NotesDir = DefaultNotesDirectory()
		return p, nil
	}

	if _, err := toml.DecodeFile(path, p); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %s: %w", path, err)
	}
	if strings.TrimSpace(p.NotesDir) == "" {
		p.NotesDir = DefaultNotesDirectory()
	}
	return p, nil
}

// Path returns the file the preferences persist to, or "" for in-memory preferences.
func (p *Preferences) Path() string {
	return p.path
}

// NotesDirectory returns the configured notes directory.
func (p *Preferences) NotesDirectory() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.NotesDir
}

// SetNotesDirectory changes the notes directory and persists the preferences.
func (p *Preferences) SetNotesDirectory(dir string) error {
	p.mu.Lock()
	p.NotesDir = dir
	p.mu.Unlock()
	return p.Save()
}

// Save writes the preferences atomically. In-memory preferences are not written.
func (p *Preferences) Save() error {
	if p.path == "" {
		return nil
	}

	p.mu.RLock()
	out := persistedPreferences{}
	if dir := strings.TrimSpace(p.NotesDir); dir != "" {
		out.NotesDir = &dir
	}
	p.mu.RUnlock()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := atomicfile.WriteFile(p.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", p.path, err)
	}
	return nil
}
