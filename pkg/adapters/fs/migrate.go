package fs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/aretw0/jotter/pkg/core"
)

// MoveAll moves the note files of oldDir into newDir, then the note files of
// oldDir's archive into newDir's archive, removing the emptied old archive.
// It refuses to overwrite a note that already exists in newDir and returns
// the number of files moved.
func MoveAll(oldDir, newDir string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if _, err := os.Stat(oldDir); os.IsNotExist(err) {
		logger.Debug("old notes directory missing, nothing to move", "dir", oldDir)
		return 0, nil
	}

	if err := os.MkdirAll(newDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create notes directory: %w", err)
	}

	moved, err := moveNotes(oldDir, newDir)
	if err != nil {
		return moved, err
	}

	oldArchive := filepath.Join(oldDir, core.ArchiveDirName)
	info, err := os.Stat(oldArchive)
	if err != nil || !info.IsDir() {
		return moved, nil
	}

	archived, err := noteFiles(oldArchive)
	if err != nil {
		return moved, err
	}
	if len(archived) == 0 {
		return moved, nil
	}

	newArchive := filepath.Join(newDir, core.ArchiveDirName)
	if err := os.MkdirAll(newArchive, 0755); err != nil {
		return moved, fmt.Errorf("failed to create archive directory: %w", err)
	}

	n, err := moveNotes(oldArchive, newArchive)
	moved += n
	if err != nil {
		return moved, err
	}

	if err := os.Remove(oldArchive); err != nil {
		// Files other than notes keep the old archive alive; they are not ours to move.
		logger.Warn("old archive directory not removed", "dir", oldArchive, "error", err)
	}
	return moved, nil
}

func moveNotes(from, to string) (int, error) {
	paths, err := noteFiles(from)
	if err != nil {
		return 0, err
	}
	for i, src := range paths {
		if err := moveFile(src, filepath.Join(to, filepath.Base(src))); err != nil {
			return i, err
		}
	}
	return len(paths), nil
}

// moveFile renames src to dst, copying across filesystems when a rename is impossible.
func moveFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("destination already exists: %s", dst)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("failed to move %s: %w", filepath.Base(src), err)
	}

	if err := copyFile(src, dst); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("failed to copy %s: %w", filepath.Base(src), err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove %s after copy: %w", filepath.Base(src), err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
