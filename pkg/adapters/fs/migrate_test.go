package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jotter/pkg/adapters/fs"
)

func TestMoveAll(t *testing.T) {
	t.Run("Moves Notes And Archive", func(t *testing.T) {
		root := t.TempDir()
		oldDir := filepath.Join(root, "old")
		newDir := filepath.Join(root, "new")
		require.NoError(t, os.MkdirAll(filepath.Join(oldDir, "archive"), 0755))
		writeNote(t, oldDir, "a", "A")
		writeNote(t, oldDir, "b", "B")
		writeNote(t, filepath.Join(oldDir, "archive"), "c", "C")

		moved, err := fs.MoveAll(oldDir, newDir, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, moved)

		for _, rel := range []string{"a.txt", "b.txt", filepath.Join("archive", "c.txt")} {
			assert.FileExists(t, filepath.Join(newDir, rel))
			assert.NoFileExists(t, filepath.Join(oldDir, rel))
		}
		assert.NoDirExists(t, filepath.Join(oldDir, "archive"))

		got, err := os.ReadFile(filepath.Join(newDir, "archive", "c.txt"))
		require.NoError(t, err)
		assert.Equal(t, "C", string(got))
	})

	t.Run("Leaves Foreign Files Behind", func(t *testing.T) {
		root := t.TempDir()
		oldDir := filepath.Join(root, "old")
		newDir := filepath.Join(root, "new")
		require.NoError(t, os.MkdirAll(filepath.Join(oldDir, "archive"), 0755))
		writeNote(t, oldDir, "a", "A")
		writeNote(t, filepath.Join(oldDir, "archive"), "c", "C")
		require.NoError(t, os.WriteFile(filepath.Join(oldDir, "archive", "photo.png"), []byte("x"), 0644))

		_, err := fs.MoveAll(oldDir, newDir, nil)
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(newDir, "archive", "c.txt"))
		assert.FileExists(t, filepath.Join(oldDir, "archive", "photo.png"))
	})

	t.Run("Empty Archive Is Not Created", func(t *testing.T) {
		root := t.TempDir()
		oldDir := filepath.Join(root, "old")
		newDir := filepath.Join(root, "new")
		require.NoError(t, os.MkdirAll(filepath.Join(oldDir, "archive"), 0755))
		writeNote(t, oldDir, "a", "A")

		_, err := fs.MoveAll(oldDir, newDir, nil)
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(newDir, "a.txt"))
		assert.NoDirExists(t, filepath.Join(newDir, "archive"))
	})

	t.Run("Refuses To Overwrite", func(t *testing.T) {
		root := t.TempDir()
		oldDir := filepath.Join(root, "old")
		newDir := filepath.Join(root, "new")
		require.NoError(t, os.MkdirAll(oldDir, 0755))
		require.NoError(t, os.MkdirAll(newDir, 0755))
		writeNote(t, oldDir, "a", "old copy")
		writeNote(t, newDir, "a", "new copy")

		_, err := fs.MoveAll(oldDir, newDir, nil)
		require.Error(t, err)

		got, err := os.ReadFile(filepath.Join(newDir, "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "new copy", string(got))
	})

	t.Run("Missing Old Directory Is a No-op", func(t *testing.T) {
		root := t.TempDir()

		moved, err := fs.MoveAll(filepath.Join(root, "nope"), filepath.Join(root, "new"), nil)
		require.NoError(t, err)
		assert.Zero(t, moved)
	})
}

func TestRepository_MoveAll(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	oldDir := filepath.Join(root, "old")
	require.NoError(t, os.MkdirAll(oldDir, 0755))
	writeNote(t, oldDir, "a", "A")

	prefs := &dirPrefs{dir: filepath.Join(root, "new")}
	repo := fs.NewRepository(fs.Config{Preferences: prefs})

	require.NoError(t, repo.MoveAll(ctx, oldDir))
	assert.FileExists(t, filepath.Join(prefs.dir, "a.txt"))

	state, ok := repo.State().(fs.RepositoryState)
	require.True(t, ok)
	assert.NotNil(t, state.LastMigration)
	assert.Equal(t, prefs.dir, state.Path)
}
