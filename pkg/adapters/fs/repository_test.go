package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/aretw0/jotter/pkg/adapters/fs"
)

// dirPrefs is a fixed notes directory.
type dirPrefs struct{ dir string }

func (p *dirPrefs) NotesDirectory() string { return p.dir }

func (p *dirPrefs) SetNotesDirectory(dir string) error {
	p.dir = dir
	return nil
}

// setupRepo helps create a repository for testing.
// It returns the repository and the notes directory, which does not exist yet.
func setupRepo(t *testing.T) (*fs.Repository, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "notes")
	repo := fs.NewRepository(fs.Config{Preferences: &dirPrefs{dir: dir}})
	return repo, dir
}

func writeNote(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	return path
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory if Missing", func(t *testing.T) {
		repo, dir := setupRepo(t)

		created, err := repo.Initialize(context.Background())
		if err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		if !created {
			t.Error("expected created=true for a missing directory")
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("expected directory to be created at %s", dir)
		}
	})

	t.Run("Reports Existing Directory", func(t *testing.T) {
		repo, dir := setupRepo(t)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}

		created, err := repo.Initialize(context.Background())
		if err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		if created {
			t.Error("expected created=false for an existing directory")
		}
	})

	t.Run("Fails if Path Is a File", func(t *testing.T) {
		repo, dir := setupRepo(t)
		if err := os.WriteFile(dir, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := repo.Initialize(context.Background()); err == nil {
			t.Error("expected Initialize to fail when the notes path is a file")
		}
	})
}

func TestCreateAndExists(t *testing.T) {
	ctx := context.Background()
	repo, dir := setupRepo(t)
	if _, err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	path, err := repo.Create(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if path != filepath.Join(dir, "Groceries.txt") {
		t.Errorf("unexpected path %s", path)
	}
	if info, err := os.Stat(path); err != nil || info.Size() != 0 {
		t.Errorf("expected an empty file at %s", path)
	}

	for _, name := range []string{"Groceries", "groceries", "GROCERIES"} {
		exists, err := repo.Exists(ctx, name)
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if !exists {
			t.Errorf("expected %q to exist", name)
		}
	}

	if exists, _ := repo.Exists(ctx, "Groceries list"); exists {
		t.Error("expected different name not to exist")
	}

	if _, err := repo.Create(ctx, "Groceries"); err == nil {
		t.Error("expected Create to refuse an existing file")
	}
}

func TestWriteAndList(t *testing.T) {
	ctx := context.Background()
	repo, dir := setupRepo(t)
	if _, err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	path := writeNote(t, dir, "a", "old")
	writeNote(t, dir, "b", "bee")
	if err := os.WriteFile(filepath.Join(dir, "ignored.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "folder.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := repo.Write(ctx, path, "new text"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	files, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		if f.Name == "a" && f.Text != "new text" {
			t.Errorf("expected written text, got %q", f.Text)
		}
		if f.ModTime.IsZero() {
			t.Errorf("expected mod time for %s", f.Name)
		}
	}
	slices.Sort(names)
	if !slices.Equal(names, []string{"a", "b"}) {
		t.Errorf("expected only note files, got %v", names)
	}

	t.Run("Skips File Without a Name", func(t *testing.T) {
		writeNote(t, dir, "", "only an extension")

		files, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		for _, f := range files {
			if f.Name == "" {
				t.Errorf("expected %s to be skipped", f.Path)
			}
		}
		if len(files) != 2 {
			t.Errorf("expected 2 notes, got %d", len(files))
		}
	})
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	repo, dir := setupRepo(t)
	if _, err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	old := writeNote(t, dir, "draft", "body")

	newPath, err := repo.Rename(ctx, old, "final")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if newPath != filepath.Join(dir, "final.txt") {
		t.Errorf("unexpected path %s", newPath)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("expected old file to be gone")
	}
	if got, _ := os.ReadFile(newPath); string(got) != "body" {
		t.Errorf("expected content preserved, got %q", got)
	}
}

func TestRename_RefusesOccupiedDestination(t *testing.T) {
	ctx := context.Background()
	repo, dir := setupRepo(t)
	if _, err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	old := writeNote(t, dir, "draft", "mine")
	other := writeNote(t, dir, "other", "precious")

	if _, err := repo.Rename(ctx, old, "other"); err == nil {
		t.Fatal("expected Rename to refuse an existing destination")
	}
	if got, _ := os.ReadFile(other); string(got) != "precious" {
		t.Errorf("destination was overwritten: %q", got)
	}
	if got, _ := os.ReadFile(old); string(got) != "mine" {
		t.Errorf("source changed: %q", got)
	}
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	repo, dir := setupRepo(t)
	if _, err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}

	first := writeNote(t, dir, "journal", "first")
	archived1, err := repo.Archive(ctx, first)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	second := writeNote(t, dir, "journal", "second")
	archived2, err := repo.Archive(ctx, second)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	archiveDir := filepath.Join(dir, "archive")
	if archived1 != filepath.Join(archiveDir, "journal.txt") {
		t.Errorf("unexpected first archive path %s", archived1)
	}
	if archived2 != filepath.Join(archiveDir, "journal (1).txt") {
		t.Errorf("unexpected second archive path %s", archived2)
	}

	if got, _ := os.ReadFile(archived1); string(got) != "first" {
		t.Errorf("first archived note was overwritten: %q", got)
	}
	if got, _ := os.ReadFile(archived2); string(got) != "second" {
		t.Errorf("unexpected second archived note: %q", got)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo, dir := setupRepo(t)
	if _, err := repo.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	path := writeNote(t, dir, "gone", "")

	if err := repo.Delete(ctx, path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}
	if err := repo.Delete(ctx, path); err == nil {
		t.Error("expected error deleting a missing file")
	}
}
