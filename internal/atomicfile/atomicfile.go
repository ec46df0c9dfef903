// Package atomicfile writes files by renaming a fully written temp file into place.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix is the prefix used for temporary atomic write files.
// Temp files never carry a note extension, so directory scans skip them.
const TempFilePrefix = ".jotter-tmp-"

// WriteFile writes data to filename atomically by writing to a temp file in the
// same directory and renaming it over the target.
//
// If perm is 0 the mode of an existing target is preserved, falling back to 0644.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		if st, err := os.Stat(filename); err == nil {
			perm = st.Mode().Perm()
		} else {
			perm = 0o644
		}
	}

	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filename); err != nil {
		// Windows refuses to rename over an existing file.
		_ = os.Remove(filename)
		if err2 := os.Rename(tmpPath, filename); err2 != nil {
			return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
		}
	}

	return nil
}
