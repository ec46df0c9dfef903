package core

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
)

var sampleNotes = []struct {
	name string
	text string
}{
	{"sample note 1", "Since you don't have any notes yet we've created a few for you."},
	{"sample note 2", "Another sample note."},
}

// Service handles note persistence: note files through the Repository and
// display preferences through the MetadataStore.
//
// A Service is meant to be driven by a single control flow; no two of its
// operations may run concurrently.
type Service struct {
	repo   Repository
	store  MetadataStore
	prefs  Preferences
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger discards all output.
func NewService(repo Repository, store MetadataStore, prefs Preferences, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		repo:   repo,
		store:  store,
		prefs:  prefs,
		logger: logger,
	}
}

// validateName trims name and rejects names that cannot back a file in the notes directory.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return "", fmt.Errorf("%w: name contains a path separator", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	return name, nil
}

func (s *Service) ensureAvailable(ctx context.Context, name string) error {
	exists, err := s.repo.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check note name: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: a note with the same name already exists", ErrInvalidName)
	}
	return nil
}

func (s *Service) saveStore() error {
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}
	return nil
}

// Create creates an empty note with the given display preferences.
func (s *Service) Create(ctx context.Context, name, fontFamily string, fontSize int) (*Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, name); err != nil {
		return nil, err
	}

	path, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	note := &Note{
		Name:     name,
		FilePath: path,
		Metadata: NewNoteMetadata(fontFamily, fontSize),
	}

	s.store.Add(note.Name, note.Metadata)
	if err := s.saveStore(); err != nil {
		return nil, err
	}

	s.logger.Debug("note created", "name", name, "path", path)
	return note, nil
}

// Update renames note to newName, moving its metadata entry and its file.
//
// An identical name is a no-op. A name differing only in case skips the
// duplicate check, so the case of a note's name can always be changed; the
// repository still refuses to replace a different file of that spelling.
// When the file cannot be renamed the metadata store is restored.
func (s *Service) Update(ctx context.Context, newName string, note *Note) (*Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	newName, err := validateName(newName)
	if err != nil {
		return nil, err
	}
	if newName == note.Name {
		return note, nil
	}
	if !strings.EqualFold(newName, note.Name) {
		if err := s.ensureAvailable(ctx, newName); err != nil {
			return nil, err
		}
	}

	metadata := metadataOf(note)
	displaced, hadDisplaced := s.store.Get(newName)
	s.store.Remove(note.Name)
	s.store.Add(newName, metadata)
	if err := s.saveStore(); err != nil {
		return nil, err
	}

	path, err := s.repo.Rename(ctx, note.FilePath, newName)
	if err != nil {
		// The file kept its old name; so must its metadata.
		s.store.Remove(newName)
		if hadDisplaced {
			s.store.Add(newName, displaced)
		}
		s.store.Add(note.Name, metadata)
		if saveErr := s.saveStore(); saveErr != nil {
			s.logger.Error("failed to restore metadata after rename", "name", note.Name, "error", saveErr)
		}
		return nil, err
	}

	s.logger.Debug("note renamed", "from", note.Name, "to", newName)
	note.Name = newName
	note.FilePath = path
	return note, nil
}

// Archive moves the note into the archive directory and forgets its metadata.
// It returns the archived file path.
func (s *Service) Archive(ctx context.Context, note *Note) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	archived, err := s.repo.Archive(ctx, note.FilePath)
	if err != nil {
		return "", err
	}

	s.store.Remove(note.Name)
	if err := s.saveStore(); err != nil {
		return "", err
	}

	s.logger.Debug("note archived", "name", note.Name, "path", archived)
	return archived, nil
}

// Delete removes the note file and its metadata.
func (s *Service) Delete(ctx context.Context, note *Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, note.FilePath); err != nil {
		return err
	}

	s.store.Remove(note.Name)
	if err := s.saveStore(); err != nil {
		return err
	}

	s.logger.Debug("note deleted", "name", note.Name)
	return nil
}

// SaveAll rewrites every note file with its in-memory text, dirty or not.
func (s *Service) SaveAll(ctx context.Context, notes []*Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, n := range notes {
		if err := s.repo.Write(ctx, n.FilePath, n.Text); err != nil {
			return err
		}
	}
	s.logger.Debug("notes saved", "count", len(notes))
	return nil
}

// SaveDirtyWithMetadata rebuilds the metadata store from notes and persists it,
// then rewrites only the note files flagged dirty.
func (s *Service) SaveDirtyWithMetadata(ctx context.Context, notes []*Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.store.Clear()
	for _, n := range notes {
		s.store.Add(n.Name, metadataOf(n))
	}
	if err := s.saveStore(); err != nil {
		return err
	}

	written := 0
	for _, n := range notes {
		if !n.IsDirty {
			continue
		}
		if err := s.repo.Write(ctx, n.FilePath, n.Text); err != nil {
			return err
		}
		written++
	}

	s.logger.Debug("dirty notes saved", "written", written, "total", len(notes))
	return nil
}

// LoadAll reconciles the notes directory with the metadata store and returns
// every note, most recently modified first.
//
// Workflow:
//  1. Load (or create) the metadata store.
//  2. A missing or empty notes directory is populated with sample notes.
//  3. Files without metadata get default metadata.
//  4. Metadata of files that no longer exist is pruned.
//  5. The reconciled store is persisted.
func (s *Service) LoadAll(ctx context.Context) ([]*Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.store.LoadOrCreate(); err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}

	created, err := s.repo.Initialize(ctx)
	if err != nil {
		return nil, err
	}
	if created {
		return s.createSampleNotes(ctx)
	}

	files, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return s.createSampleNotes(ctx)
	}

	slices.SortStableFunc(files, func(a, b File) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	notes := make([]*Note, 0, len(files))
	names := make([]string, 0, len(files))
	untracked := 0
	for _, f := range files {
		metadata, ok := s.store.Get(f.Name)
		if !ok {
			metadata = DefaultMetadata()
			s.store.Add(f.Name, metadata)
			untracked++
		}
		notes = append(notes, &Note{
			Name:     f.Name,
			FilePath: f.Path,
			Text:     f.Text,
			Metadata: metadata,
		})
		names = append(names, f.Name)
	}

	pruned := 0
	if len(notes) != s.store.Count() {
		pruned = s.store.RemoveMissing(names)
	}

	if err := s.saveStore(); err != nil {
		return nil, err
	}

	if untracked > 0 || pruned > 0 {
		s.logger.Info("metadata reconciled", "notes", len(notes), "added", untracked, "pruned", pruned)
	}
	return notes, nil
}

func (s *Service) createSampleNotes(ctx context.Context) ([]*Note, error) {
	s.store.Clear()

	notes := make([]*Note, 0, len(sampleNotes))
	for _, sample := range sampleNotes {
		path, err := s.repo.Create(ctx, sample.name)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Write(ctx, path, sample.text); err != nil {
			return nil, err
		}

		note := &Note{
			Name:     sample.name,
			FilePath: path,
			Text:     sample.text,
			Metadata: DefaultMetadata(),
		}
		s.store.Add(note.Name, note.Metadata)
		notes = append(notes, note)
	}

	if err := s.saveStore(); err != nil {
		return nil, err
	}

	s.logger.Info("sample notes created", "dir", s.prefs.NotesDirectory())
	return notes, nil
}

// MoveAll migrates every note file, archived ones included, from oldDirectory
// into the current notes directory.
func (s *Service) MoveAll(ctx context.Context, oldDirectory string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	newDirectory := s.prefs.NotesDirectory()
	if filepath.Clean(oldDirectory) == filepath.Clean(newDirectory) {
		return nil
	}
	if err := s.repo.MoveAll(ctx, oldDirectory); err != nil {
		return err
	}
	s.logger.Info("notes directory migrated", "from", oldDirectory, "to", newDirectory)
	return nil
}

// ChangeNotesDirectory points the preferences at dir and migrates the notes of
// the previous directory there.
func (s *Service) ChangeNotesDirectory(ctx context.Context, dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return errors.New("notes directory cannot be empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve notes directory: %w", err)
	}

	old := s.prefs.NotesDirectory()
	if filepath.Clean(old) == abs {
		return nil
	}
	if err := s.prefs.SetNotesDirectory(abs); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return s.MoveAll(ctx, old)
}

// Find loads every note and returns the one named name, ignoring case.
func (s *Service) Find(ctx context.Context, name string) (*Note, error) {
	notes, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return FindNote(notes, name)
}

// FontThatAllNotesUse returns the font family shared by every note.
// With no notes it returns the default font; ok is false when fonts are mixed.
func (s *Service) FontThatAllNotesUse() (font string, ok bool) {
	fonts := s.store.DistinctFonts()
	switch len(fonts) {
	case 0:
		return DefaultFontFamily, true
	case 1:
		return fonts[0], true
	}
	return "", false
}

// FontSizeThatAllNotesUse returns the font size shared by every note.
// With no notes it returns the default size; ok is false when sizes are mixed.
func (s *Service) FontSizeThatAllNotesUse() (size int, ok bool) {
	sizes := s.store.DistinctFontSizes()
	switch len(sizes) {
	case 0:
		return DefaultFontSize, true
	case 1:
		return sizes[0], true
	}
	return 0, false
}

// SetFontForAll changes the font family of every note in memory. Call SaveMetadata to persist it.
func (s *Service) SetFontForAll(font string) {
	s.store.SetFontForAll(font)
}

// SetFontSizeForAll changes the font size of every note in memory. Call SaveMetadata to persist it.
func (s *Service) SetFontSizeForAll(size int) {
	s.store.SetFontSizeForAll(size)
}

// SaveMetadata persists the metadata store as it is in memory.
func (s *Service) SaveMetadata(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.saveStore()
}

// Watch observes changes made to the notes directory by other programs, if the repository supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}
