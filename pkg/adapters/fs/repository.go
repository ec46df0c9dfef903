package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/jotter/internal/atomicfile"
	"github.com/aretw0/jotter/pkg/core"
)

// notePattern matches note files directly inside a directory.
const notePattern = "*" + core.NoteExt

// Repository implements core.Repository over a directory of plain-text files.
// The directory is read from Preferences on every call, so it follows
// runtime changes of the user's settings.
type Repository struct {
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastMigration *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Preferences core.Preferences
	Logger      *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{config: config}
}

// Dir returns the current notes directory.
func (r *Repository) Dir() string {
	return r.config.Preferences.NotesDirectory()
}

func (r *Repository) notePath(name string) string {
	return filepath.Join(r.Dir(), name+core.NoteExt)
}

// Initialize creates the notes directory if it is missing.
func (r *Repository) Initialize(ctx context.Context) (bool, error) {
	dir := r.Dir()
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("notes path is not a directory: %s", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat notes directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create notes directory: %w", err)
	}
	r.config.Logger.Debug("notes directory created", "dir", dir)
	return true, nil
}

// Exists reports whether a note file named name exists, comparing names
// case-insensitively regardless of the filesystem's own rules.
func (r *Repository) Exists(ctx context.Context, name string) (bool, error) {
	entries, err := os.ReadDir(r.Dir())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read notes directory: %w", err)
	}

	want := name + core.NoteExt
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(e.Name(), want) {
			return true, nil
		}
	}
	return false, nil
}

// Create creates an empty note file. It fails if the file already exists.
func (r *Repository) Create(ctx context.Context, name string) (string, error) {
	path := r.notePath(name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create note file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close note file: %w", err)
	}
	return path, nil
}

// Write replaces the contents of a note file atomically.
func (r *Repository) Write(ctx context.Context, path, text string) error {
	if err := atomicfile.WriteFile(path, []byte(text), 0); err != nil {
		return fmt.Errorf("failed to write note %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Rename moves a note file to the path of newName inside the notes directory.
func (r *Repository) Rename(ctx context.Context, oldPath, newName string) (string, error) {
	newPath := r.notePath(newName)
	if oldPath == newPath {
		return newPath, nil
	}
	if err := ensureNotOccupied(oldPath, newPath); err != nil {
		return "", err
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("failed to rename note file: %w", err)
	}
	return newPath, nil
}

// Archive moves a note file into the archive subdirectory, numbering the
// destination when an archived note of the same name already exists.
func (r *Repository) Archive(ctx context.Context, path string) (string, error) {
	archiveDir := filepath.Join(r.Dir(), core.ArchiveDirName)
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	dest := NextAvailableName(filepath.Join(archiveDir, filepath.Base(path)))
	if err := moveFile(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive note: %w", err)
	}
	return dest, nil
}

// Delete removes a note file.
func (r *Repository) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// List reads every note file of the notes directory.
func (r *Repository) List(ctx context.Context) ([]core.File, error) {
	dir := r.Dir()
	paths, err := noteFiles(dir)
	if err != nil {
		return nil, err
	}

	files := make([]core.File, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat note: %w", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read note: %w", err)
		}
		name, _ := noteName(filepath.Base(path))
		files = append(files, core.File{
			Name:    name,
			Path:    path,
			Text:    string(data),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

// MoveAll migrates the notes of oldDir into the current notes directory.
func (r *Repository) MoveAll(ctx context.Context, oldDir string) error {
	moved, err := MoveAll(oldDir, r.Dir(), r.config.Logger)
	if err != nil {
		return err
	}
	r.recordMigration()
	r.config.Logger.Debug("notes moved", "from", oldDir, "to", r.Dir(), "count", moved)
	return nil
}

// ensureNotOccupied fails when dst exists and is another file than src.
// On case-insensitive filesystems a case-only rename finds src itself at dst.
func ensureNotOccupied(src, dst string) error {
	dstInfo, err := os.Lstat(dst)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dst, err)
	}
	srcInfo, err := os.Lstat(src)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("destination already exists: %s", dst)
	}
	return nil
}

// noteName derives a note name from a file base name. Files named only
// by the extension have no name and are not notes.
func noteName(base string) (string, bool) {
	name := strings.TrimSuffix(base, core.NoteExt)
	return name, name != ""
}

// noteFiles returns the absolute paths of the regular note files directly inside dir.
func noteFiles(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), notePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes in %s: %w", dir, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := noteName(filepath.Base(m)); !ok {
			continue
		}
		path := filepath.Join(dir, filepath.FromSlash(m))
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
