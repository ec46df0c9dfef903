package core

import (
	"context"
	"fmt"
	"time"
)

// File is a note file as found in the notes directory.
type File struct {
	Name    string
	Path    string
	Text    string
	ModTime time.Time
}

// Repository defines the contract for storing note text.
// Adhering to this interface keeps the service independent of the
// underlying storage mechanism.
type Repository interface {
	// Initialize ensures the notes directory exists. It reports whether the
	// directory had to be created.
	Initialize(ctx context.Context) (created bool, err error)

	// Exists reports whether a note with the given name exists, ignoring case.
	Exists(ctx context.Context, name string) (bool, error)

	// Create creates an empty note file and returns its path.
	Create(ctx context.Context, name string) (string, error)

	// Write replaces the contents of the note file at path.
	Write(ctx context.Context, path, text string) error

	// Rename moves the note file at oldPath to the file backing newName and returns the new path.
	Rename(ctx context.Context, oldPath, newName string) (string, error)

	// Archive moves the note file at path into the archive without overwriting
	// previously archived notes, and returns the archived path.
	Archive(ctx context.Context, path string) (string, error)

	// Delete removes the note file at path.
	Delete(ctx context.Context, path string) error

	// List returns every note file of the notes directory with its contents.
	List(ctx context.Context) ([]File, error)

	// MoveAll migrates every note, archived ones included, from oldDir into the current notes directory.
	MoveAll(ctx context.Context, oldDir string) error
}

// MetadataStore is the persisted mapping from note name to display preferences.
// It is loaded once, mutated in memory and rewritten wholesale by Save.
type MetadataStore interface {
	// LoadOrCreate reads the persisted mapping, creating an empty one if none exists.
	LoadOrCreate() error
	// Save replaces the persisted mapping with the in-memory one.
	Save() error

	Add(name string, metadata *NoteMetadata)
	Remove(name string)
	Contains(name string) bool
	Get(name string) (*NoteMetadata, bool)
	Clear()
	Count() int

	// RemoveMissing deletes every entry whose name is not in valid and reports how many were removed.
	RemoveMissing(valid []string) int

	// DistinctFonts returns the sorted set of font families in use.
	DistinctFonts() []string
	// DistinctFontSizes returns the sorted set of font sizes in use.
	DistinctFontSizes() []int
	// SetFontForAll changes the font family of every entry in memory.
	SetFontForAll(font string)
	// SetFontSizeForAll changes the font size of every entry in memory.
	SetFontSizeForAll(size int)
}

// Preferences supplies the user-configurable notes directory.
type Preferences interface {
	NotesDirectory() string
	SetNotesDirectory(dir string) error
}

// EventType represents the type of change in the notes directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a note file changed by another program.
type Event struct {
	Type      EventType
	Name      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Name)
}

// Watchable is implemented by repositories that can report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
